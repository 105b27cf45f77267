package suggest

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/printers"
)

// Edit rewrites one suggestion's text and duration hint.
type Edit struct {
	Category string
	ID       string
	Text     string
	Time     string

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	doc, err := n.Service.EditSuggestion(ctx, n.Category, n.ID, n.Text, n.Time)
	if err != nil {
		return err
	}
	a := doc.Activities[n.Category]
	if a == nil {
		return app.ErrNoActivity
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Suggestions(n.Category, a)
	return nil
}

// Add appends a placeholder suggestion ready for editing.
type Add struct {
	Category string
	Service  *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if _, err := n.Service.AddSuggestion(ctx, n.Category); err != nil {
		return err
	}

	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Suggestions(n.Category, doc.Activities[n.Category])
	return nil
}

// Delete removes one suggestion from an activity.
type Delete struct {
	Category string
	ID       string
	Service  *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}

	doc, err := n.Service.DeleteSuggestion(ctx, n.Category, n.ID)
	if err != nil {
		return err
	}
	a := doc.Activities[n.Category]
	if a == nil {
		return app.ErrNoActivity
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Suggestions(n.Category, a)
	return nil
}

// ResetActivity restores one activity back to its default suggestions.
type ResetActivity struct {
	Category string
	Service  *app.Service
}

func (n *ResetActivity) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reset, no service")
	}

	doc, err := n.Service.ResetActivity(ctx, n.Category)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Suggestions(n.Category, doc.Activities[n.Category])
	return nil
}
