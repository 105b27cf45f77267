package reset

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/coach/pkg/app"
)

// Reset removes today's abandoned tasks: incomplete and not carried over.
type Reset struct {
	Service *app.Service
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reset, no service")
	}

	removed, err := n.Service.ResetIncompleteTasks(ctx)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	switch removed {
	case 1:
		_, _ = fmt.Fprintln(color.Output, f.Sprint("Removed 1 task."))
	default:
		_, _ = fmt.Fprintln(color.Output, f.Sprintf("Removed %d tasks.", removed))
	}
	return nil
}
