package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/coach/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive day view",
		Example: `
coach ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			return tui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
