package remove

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/printers"
)

// Remove deletes a task permanently.
type Remove struct {
	ID      string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	doc, err := n.Service.DeleteTask(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title(time.Now().Format("January 2, 2006"))
	pp.Tasks(doc.Tasks...)
	return nil
}
