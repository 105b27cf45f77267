package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "coach",
		Short: base.Wrap80("A pocket productivity coach on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addRemove(topLevel)
	addReset(topLevel)
	addSuggest(topLevel)
	addSchedule(topLevel)
	addUnschedule(topLevel)
	addAgenda(topLevel)
	addStatus(topLevel)
	addVersion(topLevel)
}

func newService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p}, nil
}
