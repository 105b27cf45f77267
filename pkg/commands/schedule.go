package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"tableflip.dev/coach/pkg/commands/options"
	"tableflip.dev/coach/pkg/runner/schedule"
)

func addSchedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	bo := &options.BlockOptions{}

	cmd := &cobra.Command{
		Use:   "schedule <task id>",
		Short: "Place a task on the hour grid",
		Example: `
coach schedule <task id> --from 14 --to 16
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := schedule.Schedule{
				TaskID:  io.ID,
				From:    bo.From,
				To:      bo.To,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddBlockArgs(cmd, bo)

	topLevel.AddCommand(cmd)
}

func addUnschedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	bo := &options.BlockOptions{}

	cmd := &cobra.Command{
		Use:   "unschedule [block id]",
		Short: "Take a block off the hour grid",
		Example: `
coach unschedule <block id>
coach unschedule --all
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				io.ID = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if io.ID == "" && !bo.All {
				return errors.New("requires a block id or --all")
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			if bo.All {
				s := schedule.Clear{Service: svc}
				return output.HandleError(s.Do(context.Background()))
			}
			s := schedule.Unschedule{
				ID:      io.ID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAllBlocksArg(cmd, bo)

	topLevel.AddCommand(cmd)
}
