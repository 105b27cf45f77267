// Package status summarizes the day: coach message, reality check, and
// counts.
package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/coach"
	"tableflip.dev/coach/pkg/printers"
)

type Status struct {
	Service *app.Service
}

func (n *Status) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show status, no service")
	}

	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	pp := printers.PrettyPrint{}

	fmt.Println("")
	pp.Title(now.Format("January 2, 2006"))
	pp.Coach(coach.Message(doc.Tasks, now.Hour()), coach.RealityCheck(doc.Tasks, now))

	completed, incomplete, _ := coach.TodayCounts(doc.Tasks)
	f := color.New(color.Faint)
	_, _ = fmt.Fprintf(color.Output, "Done today: %s\n", color.New(color.Bold).Sprintf("%d", completed))
	_, _ = fmt.Fprintln(color.Output, f.Sprintf("Open: %d", incomplete))
	_, _ = fmt.Fprintln(color.Output, f.Sprintf("Active days this week: %d", doc.WeeklyActivityCount))
	fmt.Println("")
	return nil
}
