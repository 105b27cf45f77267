package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"tableflip.dev/coach/pkg/commands/options"
	"tableflip.dev/coach/pkg/runner/suggest"
)

func addSuggest(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:     "suggest [category]",
		Aliases: []string{"suggestions", "ideas"},
		Short:   "Browse the activity suggestion catalog",
		Example: `
coach suggest
coach suggest skills
coach suggest --show-id
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				co.Category = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := suggest.List{
				ShowID:   io.ShowID,
				Category: co.Category,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	addSuggestPick(cmd)
	addSuggestAdd(cmd)
	addSuggestEdit(cmd)
	addSuggestRemove(cmd)
	addSuggestReset(cmd)

	topLevel.AddCommand(cmd)
}

func addSuggestPick(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pick <category> <suggestion id>",
		Short: "Promote a suggestion into today's tasks",
		Example: `
coach suggest pick skills <suggestion id>
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := suggest.Pick{
				Category: args[0],
				ID:       args[1],
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addSuggestAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <category>",
		Short: "Add a blank suggestion to an activity",
		Example: `
coach suggest add projects
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := suggest.Add{
				Category: args[0],
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addSuggestEdit(topLevel *cobra.Command) {
	so := &options.SuggestionOptions{}

	cmd := &cobra.Command{
		Use:   "edit <category> <suggestion id>",
		Short: "Rewrite a suggestion's text or duration hint",
		Example: `
coach suggest edit skills <suggestion id> --text="Record a screencast" --time="20 min"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a category and a suggestion id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := suggest.Edit{
				Category: args[0],
				ID:       args[1],
				Text:     so.Text,
				Time:     so.Time,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSuggestionArgs(cmd, so)

	topLevel.AddCommand(cmd)
}

func addSuggestRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <category> <suggestion id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a suggestion from an activity",
		Example: `
coach suggest rm portfolio <suggestion id>
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := suggest.Delete{
				Category: args[0],
				ID:       args[1],
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addSuggestReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset <category>",
		Short: "Restore an activity's default suggestions",
		Example: `
coach suggest reset applications
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := suggest.ResetActivity{
				Category: args[0],
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
