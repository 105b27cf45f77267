package suggest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/printers"
)

// Pick promotes one suggestion into a task.
type Pick struct {
	Category string
	ID       string

	Service *app.Service
}

func (n *Pick) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not pick, no service")
	}

	if _, err := n.Service.AddTaskFromSuggestion(ctx, n.Category, n.ID); err != nil {
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
