// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions captures the free-text task flags shared by add-style
// commands.
type TaskOptions struct {
	Text     string
	Duration string
}

func AddDurationArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Duration, "time", "t", "",
		`Specify a duration hint, example: --time="30-45 min".`)
}

// CategoryOptions selects one activity category.
type CategoryOptions struct {
	Category string
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify the category: applications, portfolio, projects or skills.")
}
