package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/coach"
	"tableflip.dev/coach/pkg/printers"
)

// Get lists tasks, optionally narrowed to one category.
type Get struct {
	ShowID   bool
	Category string

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	tasks := n.filtered(doc.Tasks)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount(time.Now().Format("January 2, 2006"), len(tasks))
	pp.Tasks(tasks...)
	return nil
}

func (n *Get) filtered(all []*coach.Task) []*coach.Task {
	if n.Category == "" {
		return all
	}
	c := make([]*coach.Task, 0, len(all))
	for _, t := range all {
		if t.Category == n.Category {
			c = append(c, t)
		}
	}
	return c
}
