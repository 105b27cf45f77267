package coach

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document is the aggregate root. It is loaded once at startup and written
// back wholesale after every mutation, last write wins.
type Document struct {
	Schema              int                  `json:"schema,omitempty"`
	Tasks               []*Task              `json:"tasks"`
	Activities          map[string]*Activity `json:"activities"`
	TimeBlocks          []*TimeBlock         `json:"timeBlocks"`
	LastActiveDate      string               `json:"lastActiveDate"`
	WeeklyActivityCount int                  `json:"weeklyActivityCount"`
}

// NewDocument returns a fresh document seeded with the default activity
// catalog.
func NewDocument(now time.Time) *Document {
	return &Document{
		Schema:         CurrentSchema,
		Tasks:          []*Task{},
		Activities:     DefaultActivities(),
		TimeBlocks:     []*TimeBlock{},
		LastActiveDate: now.Format(DateLayout),
	}
}

// RefreshDay recomputes the OldDay flag on every task against now and then
// runs the daily sweep: completed tasks from a previous day are dropped,
// everything else survives in order.
func (d *Document) RefreshDay(now time.Time) {
	kept := make([]*Task, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		t.OldDay = !t.CreatedAt.SameDay(now)
		if t.Completed && t.OldDay {
			continue
		}
		kept = append(kept, t)
	}
	d.Tasks = kept
}

// AddTask appends a new task. The first activity of a new calendar day bumps
// WeeklyActivityCount and moves LastActiveDate forward.
func (d *Document) AddTask(text string, minutes float64, category string, now time.Time) *Task {
	t := &Task{
		ID:        uuid.NewString(),
		Text:      strings.TrimSpace(text),
		Minutes:   minutes,
		CreatedAt: Timestamp{now},
		Category:  category,
	}
	d.Tasks = append(d.Tasks, t)

	today := now.Format(DateLayout)
	if d.LastActiveDate != today {
		d.WeeklyActivityCount++
		d.LastActiveDate = today
	}
	return t
}

// Task returns the task addressed by id, or nil. Printed surfaces shorten
// ids to eight characters, so a unique prefix addresses a task the same as
// its full id. An ambiguous prefix matches nothing.
func (d *Document) Task(id string) *Task {
	if id == "" {
		return nil
	}
	var match *Task
	for _, t := range d.Tasks {
		if t.ID == id {
			return t
		}
		if strings.HasPrefix(t.ID, id) {
			if match != nil {
				return nil
			}
			match = t
		}
	}
	return match
}

// ToggleTask flips the completed flag on the matching task. Unknown ids are
// a no-op; the return reports whether anything changed.
func (d *Document) ToggleTask(id string) bool {
	if t := d.Task(id); t != nil {
		t.Completed = !t.Completed
		return true
	}
	return false
}

// DeleteTask removes the matching task, no-op when absent.
func (d *Document) DeleteTask(id string) bool {
	match := d.Task(id)
	if match == nil {
		return false
	}
	for i, t := range d.Tasks {
		if t == match {
			d.Tasks = append(d.Tasks[:i], d.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// ResetIncompleteTasks removes today's abandoned tasks: everything that is
// neither completed nor carried over from a prior day. Returns the number
// removed.
func (d *Document) ResetIncompleteTasks() int {
	kept := make([]*Task, 0, len(d.Tasks))
	removed := 0
	for _, t := range d.Tasks {
		if !t.Completed && !t.OldDay {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	d.Tasks = kept
	return removed
}

// AddTimeBlock appends a calendar placement for the task. The caller is
// responsible for the 0 <= start < end <= 24 invariant; BlockRange produces
// hours that satisfy it by construction.
func (d *Document) AddTimeBlock(t *Task, startHour, endHour int) *TimeBlock {
	b := &TimeBlock{
		ID:        uuid.NewString(),
		TaskID:    t.ID,
		TaskText:  t.Text,
		StartHour: startHour,
		EndHour:   endHour,
		Category:  t.Category,
	}
	d.TimeBlocks = append(d.TimeBlocks, b)
	return b
}

// TimeBlock returns the block addressed by id or a unique prefix of it, the
// same addressing Task uses.
func (d *Document) TimeBlock(id string) *TimeBlock {
	if id == "" {
		return nil
	}
	var match *TimeBlock
	for _, b := range d.TimeBlocks {
		if b.ID == id {
			return b
		}
		if strings.HasPrefix(b.ID, id) {
			if match != nil {
				return nil
			}
			match = b
		}
	}
	return match
}

// DeleteTimeBlock removes the matching block, no-op when absent.
func (d *Document) DeleteTimeBlock(id string) bool {
	match := d.TimeBlock(id)
	if match == nil {
		return false
	}
	for i, b := range d.TimeBlocks {
		if b == match {
			d.TimeBlocks = append(d.TimeBlocks[:i], d.TimeBlocks[i+1:]...)
			return true
		}
	}
	return false
}

// ClearTimeBlocks removes every block.
func (d *Document) ClearTimeBlocks() {
	d.TimeBlocks = []*TimeBlock{}
}

// AddSuggestion appends a placeholder suggestion to the activity for editing.
// Returns nil when the activity key is unknown.
func (d *Document) AddSuggestion(key string) *Suggestion {
	a := d.Activities[key]
	if a == nil {
		return nil
	}
	s := suggest("New suggestion", "30 min")
	a.Suggestions = append(a.Suggestions, s)
	return s
}

// EditSuggestion rewrites the suggestion with the given id inside one
// activity. An empty text or timeHint keeps the current value, so the two
// fields can be edited independently. Unknown activity or id is a no-op.
func (d *Document) EditSuggestion(key, id, text, timeHint string) bool {
	a := d.Activities[key]
	if a == nil {
		return false
	}
	s := a.Suggestion(id)
	if s == nil {
		return false
	}
	if text != "" {
		s.Text = text
	}
	if timeHint != "" {
		s.Time = timeHint
	}
	return true
}

// DeleteSuggestion removes the suggestion with the given id from one
// activity. Unknown activity or id is a no-op.
func (d *Document) DeleteSuggestion(key, id string) bool {
	a := d.Activities[key]
	if a == nil {
		return false
	}
	match := a.Suggestion(id)
	if match == nil {
		return false
	}
	for i, s := range a.Suggestions {
		if s == match {
			a.Suggestions = append(a.Suggestions[:i], a.Suggestions[i+1:]...)
			return true
		}
	}
	return false
}

// ResetActivity restores one activity back to its default suggestion list.
func (d *Document) ResetActivity(key string) bool {
	def := DefaultActivities()[key]
	if def == nil || d.Activities == nil {
		return false
	}
	d.Activities[key] = def
	return true
}
