package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/printers"
	"tableflip.dev/coach/pkg/timeutil"
)

// Add creates a task from free text, with an optional duration hint and
// category.
type Add struct {
	Text     string
	Duration string
	Category string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	minutes := timeutil.ParseMinutes(n.Duration)

	if _, err := n.Service.AddTask(ctx, n.Text, minutes, n.Category); err != nil {
		return err
	}

	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(time.Now().Format("January 2, 2006"))
	pp.Tasks(doc.Tasks...)
	return nil
}
