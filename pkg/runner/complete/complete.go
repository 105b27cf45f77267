// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/printers"
)

// Complete toggles the completed flag on a task.
type Complete struct {
	ID      string
	Service *app.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	doc, err := n.Service.ToggleTask(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title(time.Now().Format("January 2, 2006"))
	pp.Tasks(doc.Tasks...)
	return nil
}
