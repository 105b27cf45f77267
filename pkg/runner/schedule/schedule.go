// Package schedule provides runner logic for calendar time blocks.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/printers"
)

// Schedule places a task on the hour grid. From and To are the inclusive
// drag endpoints, so scheduling 14 through 16 blocks out [14, 17).
type Schedule struct {
	TaskID string
	From   int
	To     int

	Service *app.Service
}

func (n *Schedule) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not schedule, no service")
	}

	if _, err := n.Service.AddTimeBlock(ctx, n.TaskID, n.From, n.To); err != nil {
		return err
	}

	return printDay(ctx, n.Service)
}

// Unschedule removes one time block.
type Unschedule struct {
	ID      string
	Service *app.Service
}

func (n *Unschedule) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not unschedule, no service")
	}

	if _, err := n.Service.DeleteTimeBlock(ctx, n.ID); err != nil {
		return err
	}

	return printDay(ctx, n.Service)
}

// Clear removes every time block.
type Clear struct {
	Service *app.Service
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear, no service")
	}

	if _, err := n.Service.ClearTimeBlocks(ctx); err != nil {
		return err
	}

	return printDay(ctx, n.Service)
}

func printDay(ctx context.Context, svc *app.Service) error {
	doc, err := svc.Document(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Day(time.Now(), doc.TimeBlocks)
	return nil
}
