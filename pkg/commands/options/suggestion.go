package options

import (
	"github.com/spf13/cobra"
)

// SuggestionOptions
type SuggestionOptions struct {
	Text string
	Time string
}

func AddSuggestionArgs(cmd *cobra.Command, o *SuggestionOptions) {
	cmd.Flags().StringVar(&o.Text, "text", "",
		"Replacement text for the suggestion.")
	cmd.Flags().StringVar(&o.Time, "time", "",
		`Replacement duration hint, example: --time="45 min".`)
}
