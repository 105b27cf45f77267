package commands

import (
	"context"

	"github.com/spf13/cobra"
	"tableflip.dev/coach/pkg/commands/options"
	"tableflip.dev/coach/pkg/runner/agenda"
)

func addAgenda(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	wo := &options.WatchOptions{}

	cmd := &cobra.Command{
		Use:     "agenda",
		Aliases: []string{"day", "calendar"},
		Short:   "Print today's hour grid and unscheduled tasks",
		Example: `
coach agenda
coach agenda --watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := agenda.Agenda{
				ShowID:  io.ShowID,
				Watch:   wo.Watch,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddWatchArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
