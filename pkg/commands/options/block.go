package options

import (
	"github.com/spf13/cobra"
)

// BlockOptions
type BlockOptions struct {
	From int
	To   int
	All  bool
}

func AddBlockArgs(cmd *cobra.Command, o *BlockOptions) {
	cmd.Flags().IntVar(&o.From, "from", 9,
		"First hour of the block, 0 through 23.")
	cmd.Flags().IntVar(&o.To, "to", 9,
		"Last hour of the block, inclusive.")
}

func AddAllBlocksArg(cmd *cobra.Command, o *BlockOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Remove every block on the calendar.")
}
