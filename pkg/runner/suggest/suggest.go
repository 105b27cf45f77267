// Package suggest provides runner logic for the activity suggestion catalog.
package suggest

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/coach"
	"tableflip.dev/coach/pkg/printers"
)

// List prints the suggestion catalog, all activities or just one.
type List struct {
	ShowID   bool
	Category string

	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list suggestions, no service")
	}

	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Category != "" {
		a := doc.Activities[n.Category]
		if a == nil {
			return app.ErrNoActivity
		}
		pp.Suggestions(n.Category, a)
		return nil
	}

	for _, c := range coach.DefaultCategories() {
		if a := doc.Activities[c.Key]; a != nil {
			pp.Suggestions(c.Key, a)
		}
	}
	return nil
}
