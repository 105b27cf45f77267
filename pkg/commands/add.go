package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"tableflip.dev/coach/pkg/commands/options"
	"tableflip.dev/coach/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to today's list",
		Example: `
coach add follow up with the recruiter
coach add polish the portfolio site --time="45 min" --category=portfolio
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			to.Text = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := add.Add{
				Text:     to.Text,
				Duration: to.Duration,
				Category: co.Category,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDurationArgs(cmd, to)
	options.AddCategoryArgs(cmd, co)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
