package commands

import (
	"context"

	"github.com/spf13/cobra"
	"tableflip.dev/coach/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove today's incomplete tasks for a clean slate",
		Example: `
coach reset
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := reset.Reset{
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
