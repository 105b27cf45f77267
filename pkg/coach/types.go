// Package coach holds the day-coach domain model: tasks, activity
// suggestions, calendar time blocks, and the aggregate document that
// persistence reads and writes wholesale.
package coach

import "strings"

// Schema versions for the persisted document. Legacy documents carried no
// version at all and are detected by the zero value.
const (
	SchemaLegacy  = 0
	SchemaV1      = 1
	CurrentSchema = 2
)

// Task is a user-entered to-do with an estimated duration in minutes.
// OldDay is derived on load and marks carryovers from a prior calendar date.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Minutes   float64   `json:"time"`
	Completed bool      `json:"completed"`
	CreatedAt Timestamp `json:"createdAt"`
	OldDay    bool      `json:"oldDay"`
	Category  string    `json:"category,omitempty"`
}

// Suggestion is a template action inside an activity. The ID is stable and
// generated at creation; edit and delete address suggestions by it, so two
// suggestions with the same text stay distinguishable.
type Suggestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Time string `json:"time"`
}

// Activity is a named category of suggestions. The set of activities is
// fixed; only the suggestion list inside one is editable.
type Activity struct {
	Title       string        `json:"title"`
	Icon        string        `json:"icon"`
	Suggestions []*Suggestion `json:"suggestions"`
}

// Suggestion returns the suggestion addressed by id, or nil. As with task
// lookups, a unique prefix of the id works; an ambiguous one matches
// nothing.
func (a *Activity) Suggestion(id string) *Suggestion {
	if id == "" {
		return nil
	}
	var match *Suggestion
	for _, s := range a.Suggestions {
		if s.ID == id {
			return s
		}
		if strings.HasPrefix(s.ID, id) {
			if match != nil {
				return nil
			}
			match = s
		}
	}
	return match
}

// TimeBlock places a task on the day calendar. TaskText is a snapshot taken
// at placement time and is not re-synced if the task is later edited.
// Hours satisfy 0 <= StartHour < EndHour <= 24, end exclusive. Blocks may
// overlap.
type TimeBlock struct {
	ID        string `json:"id"`
	TaskID    string `json:"taskId"`
	TaskText  string `json:"taskText"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Category  string `json:"category,omitempty"`
}
