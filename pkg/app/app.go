// Package app provides high-level operations over the coach document.
// It wraps persistence and the document transition functions so UIs and
// CLIs can share logic: every mutation loads the document, applies one
// change, and writes the whole document back.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/coach/pkg/coach"
	"tableflip.dev/coach/pkg/store"
	"tableflip.dev/coach/pkg/timeutil"
)

// Service provides the mutation contract for tasks, time blocks, and
// activity suggestions.
type Service struct {
	Persistence store.Persistence
}

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrEmptyText     = errors.New("app: task text required")
	ErrTaskNotFound  = errors.New("app: task not found")
	ErrNoActivity    = errors.New("app: unknown activity")
	ErrNoSuggestion  = errors.New("app: suggestion not found")
)

// Document loads the current document without mutating it.
func (s *Service) Document(ctx context.Context) (*coach.Document, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Load(ctx)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

func (s *Service) mutate(ctx context.Context, fn func(*coach.Document) error) (*coach.Document, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	doc, err := s.Persistence.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.Persistence.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AddTask creates a task from free text and a minute estimate. Empty or
// whitespace-only text is rejected before any mutation happens.
func (s *Service) AddTask(ctx context.Context, text string, minutes float64, category string) (*coach.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	var t *coach.Task
	_, err := s.mutate(ctx, func(d *coach.Document) error {
		t = d.AddTask(text, minutes, category, time.Now())
		return nil
	})
	return t, err
}

// AddTaskFromSuggestion promotes one suggestion into a task, parsing its
// duration hint into minutes.
func (s *Service) AddTaskFromSuggestion(ctx context.Context, activityKey, suggestionID string) (*coach.Task, error) {
	var t *coach.Task
	_, err := s.mutate(ctx, func(d *coach.Document) error {
		a := d.Activities[activityKey]
		if a == nil {
			return ErrNoActivity
		}
		sg := a.Suggestion(suggestionID)
		if sg == nil {
			return ErrNoSuggestion
		}
		t = d.AddTask(sg.Text, timeutil.ParseMinutes(sg.Time), activityKey, time.Now())
		return nil
	})
	return t, err
}

// ToggleTask flips completion on the matching task. Unknown ids are a
// silent no-op; the document is still written through.
func (s *Service) ToggleTask(ctx context.Context, id string) (*coach.Document, error) {
	return s.mutate(ctx, func(d *coach.Document) error {
		d.ToggleTask(id)
		return nil
	})
}

// DeleteTask removes the matching task, silently ignoring unknown ids.
func (s *Service) DeleteTask(ctx context.Context, id string) (*coach.Document, error) {
	return s.mutate(ctx, func(d *coach.Document) error {
		d.DeleteTask(id)
		return nil
	})
}

// ResetIncompleteTasks drops today's abandoned tasks and reports how many
// went.
func (s *Service) ResetIncompleteTasks(ctx context.Context) (int, error) {
	removed := 0
	_, err := s.mutate(ctx, func(d *coach.Document) error {
		removed = d.ResetIncompleteTasks()
		return nil
	})
	return removed, err
}

// AddTimeBlock schedules a task onto the hour grid from a drag gesture
// between two hour cells. The stored range is derived with BlockRange, so
// the start/end invariant holds by construction.
func (s *Service) AddTimeBlock(ctx context.Context, taskID string, dragStart, dragEnd int) (*coach.TimeBlock, error) {
	var b *coach.TimeBlock
	_, err := s.mutate(ctx, func(d *coach.Document) error {
		t := d.Task(taskID)
		if t == nil {
			return ErrTaskNotFound
		}
		start, end := coach.BlockRange(dragStart, dragEnd)
		b = d.AddTimeBlock(t, start, end)
		return nil
	})
	return b, err
}

// DeleteTimeBlock removes one block, silently ignoring unknown ids.
func (s *Service) DeleteTimeBlock(ctx context.Context, id string) (*coach.Document, error) {
	return s.mutate(ctx, func(d *coach.Document) error {
		d.DeleteTimeBlock(id)
		return nil
	})
}

// ClearTimeBlocks removes every block.
func (s *Service) ClearTimeBlocks(ctx context.Context) (*coach.Document, error) {
	return s.mutate(ctx, func(d *coach.Document) error {
		d.ClearTimeBlocks()
		return nil
	})
}

// AddSuggestion appends a placeholder suggestion to one activity.
func (s *Service) AddSuggestion(ctx context.Context, activityKey string) (*coach.Suggestion, error) {
	var sg *coach.Suggestion
	_, err := s.mutate(ctx, func(d *coach.Document) error {
		if sg = d.AddSuggestion(activityKey); sg == nil {
			return ErrNoActivity
		}
		return nil
	})
	return sg, err
}

// EditSuggestion rewrites a suggestion's text and duration hint. An empty
// text or timeHint keeps the current value. Unknown activity or suggestion
// ids are a silent no-op.
func (s *Service) EditSuggestion(ctx context.Context, activityKey, id, text, timeHint string) (*coach.Document, error) {
	return s.mutate(ctx, func(d *coach.Document) error {
		d.EditSuggestion(activityKey, id, text, timeHint)
		return nil
	})
}

// DeleteSuggestion removes a suggestion, silently ignoring unknown ids.
func (s *Service) DeleteSuggestion(ctx context.Context, activityKey, id string) (*coach.Document, error) {
	return s.mutate(ctx, func(d *coach.Document) error {
		d.DeleteSuggestion(activityKey, id)
		return nil
	})
}

// ResetActivity restores one activity to its default suggestions.
func (s *Service) ResetActivity(ctx context.Context, activityKey string) (*coach.Document, error) {
	return s.mutate(ctx, func(d *coach.Document) error {
		if !d.ResetActivity(activityKey) {
			return ErrNoActivity
		}
		return nil
	})
}
