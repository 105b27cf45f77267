package coach

import (
	"testing"
	"time"
)

var noon = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

func TestRefreshDayMarksOldTasks(t *testing.T) {
	d := NewDocument(noon)
	d.Tasks = []*Task{
		{ID: "today", CreatedAt: Timestamp{noon.Add(-2 * time.Hour)}},
		{ID: "yesterday", CreatedAt: Timestamp{noon.AddDate(0, 0, -1)}},
	}

	d.RefreshDay(noon)

	if d.Tasks[0].OldDay {
		t.Errorf("task created today marked old")
	}
	if !d.Tasks[1].OldDay {
		t.Errorf("task created yesterday not marked old")
	}
}

func TestRefreshDaySweep(t *testing.T) {
	d := NewDocument(noon)
	d.Tasks = []*Task{
		{ID: "a", Completed: true, CreatedAt: Timestamp{noon.AddDate(0, 0, -1)}},  // swept
		{ID: "b", Completed: false, CreatedAt: Timestamp{noon.AddDate(0, 0, -1)}}, // carryover
		{ID: "c", Completed: true, CreatedAt: Timestamp{noon}},                    // today, kept
		{ID: "d", Completed: false, CreatedAt: Timestamp{noon}},
	}

	d.RefreshDay(noon)

	want := []string{"b", "c", "d"}
	if len(d.Tasks) != len(want) {
		t.Fatalf("expected %d tasks after sweep, got %d", len(want), len(d.Tasks))
	}
	for i, id := range want {
		if d.Tasks[i].ID != id {
			t.Errorf("task %d: expected %s, got %s", i, id, d.Tasks[i].ID)
		}
	}
}

func TestResetIncompleteTasks(t *testing.T) {
	d := NewDocument(noon)
	d.Tasks = []*Task{
		{ID: "done", Completed: true},
		{ID: "abandoned", Completed: false},
		{ID: "carryover", Completed: false, OldDay: true},
	}

	if removed := d.ResetIncompleteTasks(); removed != 1 {
		t.Fatalf("expected 1 task removed, got %d", removed)
	}
	if d.Task("abandoned") != nil {
		t.Errorf("abandoned task survived reset")
	}
	if d.Task("done") == nil || d.Task("carryover") == nil {
		t.Errorf("reset removed tasks it should keep")
	}
}

func TestAddTaskNewDayCounter(t *testing.T) {
	d := NewDocument(noon)
	d.LastActiveDate = noon.AddDate(0, 0, -1).Format(DateLayout)

	d.AddTask("first of the day", 30, "", noon)
	if d.WeeklyActivityCount != 1 {
		t.Fatalf("expected counter bump on new day, got %d", d.WeeklyActivityCount)
	}
	if d.LastActiveDate != noon.Format(DateLayout) {
		t.Fatalf("LastActiveDate not advanced: %s", d.LastActiveDate)
	}

	d.AddTask("second of the day", 15, CategorySkills, noon)
	if d.WeeklyActivityCount != 1 {
		t.Fatalf("same-day add must not bump counter, got %d", d.WeeklyActivityCount)
	}
}

func TestToggleAndDeleteUnknownID(t *testing.T) {
	d := NewDocument(noon)
	d.AddTask("keep me", 10, "", noon)

	if d.ToggleTask("nope") {
		t.Errorf("toggle of unknown id reported a change")
	}
	if d.DeleteTask("nope") {
		t.Errorf("delete of unknown id reported a change")
	}
	if len(d.Tasks) != 1 {
		t.Fatalf("no-op mutations altered the task list")
	}
}

func TestTaskLookupByPrefix(t *testing.T) {
	d := NewDocument(noon)
	task := d.AddTask("call the recruiter", 15, "", noon)

	// Listings shorten ids to eight characters, so that prefix must address
	// the task.
	if !d.ToggleTask(task.ID[:8]) {
		t.Fatalf("toggle by printed prefix did not match")
	}
	if !task.Completed {
		t.Errorf("prefix toggle did not flip the task")
	}
	if !d.DeleteTask(task.ID[:8]) {
		t.Fatalf("delete by printed prefix did not match")
	}
	if len(d.Tasks) != 0 {
		t.Errorf("prefix delete left the task behind")
	}
}

func TestTaskLookupAmbiguousPrefix(t *testing.T) {
	d := NewDocument(noon)
	d.Tasks = []*Task{
		{ID: "aaaa0001", Text: "first", CreatedAt: Timestamp{noon}},
		{ID: "aaaa0002", Text: "second", CreatedAt: Timestamp{noon}},
	}

	if d.ToggleTask("aaaa") {
		t.Errorf("ambiguous prefix matched a task")
	}
	// A full id still matches exactly even when it prefixes nothing else.
	if !d.ToggleTask("aaaa0001") {
		t.Errorf("full id did not match")
	}
	if d.Tasks[1].Completed {
		t.Errorf("wrong task toggled")
	}
}

func TestTimeBlockLookupByPrefix(t *testing.T) {
	d := NewDocument(noon)
	task := d.AddTask("deep work", 120, "", noon)
	b := d.AddTimeBlock(task, 9, 11)

	if !d.DeleteTimeBlock(b.ID[:8]) {
		t.Fatalf("delete by printed prefix did not match")
	}
	if len(d.TimeBlocks) != 0 {
		t.Errorf("prefix delete left the block behind")
	}
}

func TestSuggestionEditByID(t *testing.T) {
	d := NewDocument(noon)
	act := d.Activities[CategorySkills]

	// Two suggestions with identical text stay individually addressable.
	a := d.AddSuggestion(CategorySkills)
	b := d.AddSuggestion(CategorySkills)
	if a.Text != b.Text {
		t.Fatalf("expected identical placeholder text")
	}

	if !d.EditSuggestion(CategorySkills, b.ID, "practice interviews", "45 min") {
		t.Fatalf("edit by id failed")
	}
	if a.Text != "New suggestion" {
		t.Errorf("edit touched the wrong suggestion")
	}
	if !d.DeleteSuggestion(CategorySkills, a.ID) {
		t.Fatalf("delete by id failed")
	}
	for _, s := range act.Suggestions {
		if s.ID == a.ID {
			t.Errorf("deleted suggestion still present")
		}
	}
}

func TestSuggestionEditKeepsUnsetFields(t *testing.T) {
	d := NewDocument(noon)

	s := d.AddSuggestion(CategoryProjects)
	if !d.EditSuggestion(CategoryProjects, s.ID, "ship the side project", "") {
		t.Fatalf("text-only edit failed")
	}
	if s.Time != "30 min" {
		t.Errorf("text-only edit clobbered the time hint: %q", s.Time)
	}

	if !d.EditSuggestion(CategoryProjects, s.ID, "", "2 hours") {
		t.Fatalf("time-only edit failed")
	}
	if s.Text != "ship the side project" {
		t.Errorf("time-only edit clobbered the text: %q", s.Text)
	}
	if s.Time != "2 hours" {
		t.Errorf("time hint not updated: %q", s.Time)
	}
}

func TestSuggestionLookupByPrefix(t *testing.T) {
	d := NewDocument(noon)

	s := d.AddSuggestion(CategorySkills)
	if !d.EditSuggestion(CategorySkills, s.ID[:8], "mock interview", "") {
		t.Fatalf("edit by printed prefix did not match")
	}
	if s.Text != "mock interview" {
		t.Errorf("prefix edit did not apply")
	}
	if !d.DeleteSuggestion(CategorySkills, s.ID[:8]) {
		t.Fatalf("delete by printed prefix did not match")
	}
}

func TestResetActivity(t *testing.T) {
	d := NewDocument(noon)
	d.Activities[CategoryPortfolio].Suggestions = nil

	if !d.ResetActivity(CategoryPortfolio) {
		t.Fatalf("reset of known activity failed")
	}
	if len(d.Activities[CategoryPortfolio].Suggestions) != 5 {
		t.Fatalf("expected default portfolio suggestions back, got %d",
			len(d.Activities[CategoryPortfolio].Suggestions))
	}
	if d.ResetActivity("meetings") {
		t.Errorf("reset of unknown activity succeeded")
	}
}
