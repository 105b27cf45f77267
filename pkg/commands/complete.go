package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"tableflip.dev/coach/pkg/commands/options"
	"tableflip.dev/coach/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"completed", "done", "toggle"},
		Short:   "Toggle a task done or back to open",
		Example: `
coach complete <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")

			return nil
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:      io.ID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
