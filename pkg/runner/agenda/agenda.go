// Package agenda renders the day calendar, optionally live-updating.
package agenda

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/coach"
	"tableflip.dev/coach/pkg/printers"
)

// refreshInterval re-renders the time marker even when nothing changes on
// disk.
const refreshInterval = time.Minute

// Agenda prints the hour grid with today's blocks and the unscheduled task
// queue. With Watch set it keeps re-rendering on store changes and on a
// periodic tick until the context is cancelled.
type Agenda struct {
	ShowID bool
	Watch  bool

	Service *app.Service
}

func (n *Agenda) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show agenda, no service")
	}

	if err := n.render(ctx); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
		case <-ticker.C:
		}
		if err := n.render(ctx); err != nil {
			return err
		}
	}
}

func (n *Agenda) render(ctx context.Context) error {
	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Day(time.Now(), doc.TimeBlocks)

	if unscheduled := coach.UnscheduledTasks(doc); len(unscheduled) > 0 {
		pp.Title("Unscheduled")
		pp.Tasks(unscheduled...)
	}
	return nil
}
