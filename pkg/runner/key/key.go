// Package key provides CLI helpers to display the category legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/coach/pkg/coach"
)

// Key prints the category legend describing symbols and meanings.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(color.Output, "")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("Symbol"), bold.Sprint("Meaning"))
	for _, c := range coach.DefaultCategories() {
		tbl.AddRow(c.Title, c.Symbol, c.Meaning)
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
	return nil
}
