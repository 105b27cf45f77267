package commands

import (
	"context"

	"github.com/spf13/cobra"
	"tableflip.dev/coach/pkg/commands/options"
	"tableflip.dev/coach/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"tasks", "ls"},
		Short:   "List today's tasks",
		Example: `
coach get
coach get --category skills
coach get --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:   io.ShowID,
				Category: co.Category,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
