package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"tableflip.dev/coach/pkg/coach"
	"tableflip.dev/coach/pkg/store"
)

// memoryPersistence keeps the document in memory, cloning on the way in and
// out so tests observe only what was written through.
type memoryPersistence struct {
	mu    sync.Mutex
	doc   *coach.Document
	saves int
}

func newMemoryPersistence(doc *coach.Document) *memoryPersistence {
	return &memoryPersistence{doc: doc}
}

func cloneDocument(d *coach.Document) *coach.Document {
	data, err := json.Marshal(d)
	if err != nil {
		panic(err)
	}
	out := &coach.Document{}
	if err := json.Unmarshal(data, out); err != nil {
		panic(err)
	}
	return out
}

func (m *memoryPersistence) Load(_ context.Context) (*coach.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc == nil {
		return coach.NewDocument(time.Now()), nil
	}
	return cloneDocument(m.doc), nil
}

func (m *memoryPersistence) Save(d *coach.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = cloneDocument(d)
	m.saves++
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newService() (*Service, *memoryPersistence) {
	mp := newMemoryPersistence(coach.NewDocument(time.Now()))
	return &Service{Persistence: mp}, mp
}

func TestAddTaskWritesThrough(t *testing.T) {
	svc, mp := newService()
	ctx := context.Background()

	task, err := svc.AddTask(ctx, "apply somewhere", 30, coach.CategoryApplications)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if task.ID == "" || task.Completed || task.OldDay {
		t.Fatalf("unexpected new task state: %+v", task)
	}
	if mp.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", mp.saves)
	}

	doc, _ := svc.Document(ctx)
	if doc.Task(task.ID) == nil {
		t.Fatalf("task not persisted")
	}
}

func TestAddTaskRejectsEmptyText(t *testing.T) {
	svc, mp := newService()

	if _, err := svc.AddTask(context.Background(), "   ", 30, ""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if mp.saves != 0 {
		t.Fatalf("rejected input must not reach persistence, saves=%d", mp.saves)
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	task, _ := svc.AddTask(ctx, "a task", 10, "")
	doc, err := svc.ToggleTask(ctx, "missing")
	if err != nil {
		t.Fatalf("toggle unknown id should not error: %v", err)
	}
	if doc.Task(task.ID).Completed {
		t.Fatalf("no-op toggle changed another task")
	}
}

func TestToggleFlips(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	task, _ := svc.AddTask(ctx, "flip me", 10, "")
	doc, err := svc.ToggleTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !doc.Task(task.ID).Completed {
		t.Fatalf("task not completed after toggle")
	}
	doc, _ = svc.ToggleTask(ctx, task.ID)
	if doc.Task(task.ID).Completed {
		t.Fatalf("task still completed after second toggle")
	}
}

func TestToggleByPrintedPrefix(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	// Every listing shortens ids to eight characters, so the shortened id
	// has to drive the id-addressed operations.
	task, _ := svc.AddTask(ctx, "flip me", 10, "")
	doc, err := svc.ToggleTask(ctx, task.ID[:8])
	if err != nil {
		t.Fatalf("toggle by prefix: %v", err)
	}
	if !doc.Task(task.ID).Completed {
		t.Fatalf("toggle by printed prefix did not flip the task")
	}
}

func TestAddTimeBlockDragSemantics(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	task, _ := svc.AddTask(ctx, "deep work", 120, coach.CategoryProjects)

	// Inclusive drag from hour 14 to 16 becomes the half-open range [14, 17).
	block, err := svc.AddTimeBlock(ctx, task.ID, 14, 16)
	if err != nil {
		t.Fatalf("add block: %v", err)
	}
	if block.StartHour != 14 || block.EndHour != 17 {
		t.Fatalf("block range = [%d, %d), want [14, 17)", block.StartHour, block.EndHour)
	}
	if block.TaskText != "deep work" || block.Category != coach.CategoryProjects {
		t.Fatalf("block snapshot wrong: %+v", block)
	}

	if _, err := svc.AddTimeBlock(ctx, "missing", 9, 10); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestBlockSnapshotNotResynced(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	task, _ := svc.AddTask(ctx, "original text", 30, "")
	block, _ := svc.AddTimeBlock(ctx, task.ID, 9, 9)

	// Deleting the source task leaves the denormalized text untouched.
	if _, err := svc.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	doc, _ := svc.Document(ctx)
	if len(doc.TimeBlocks) != 1 || doc.TimeBlocks[0].TaskText != "original text" {
		t.Fatalf("block snapshot changed: %+v", doc.TimeBlocks)
	}
	_ = block
}

func TestClearTimeBlocks(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	task, _ := svc.AddTask(ctx, "scheduled", 30, "")
	_, _ = svc.AddTimeBlock(ctx, task.ID, 9, 10)
	_, _ = svc.AddTimeBlock(ctx, task.ID, 14, 15)

	doc, err := svc.ClearTimeBlocks(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(doc.TimeBlocks) != 0 {
		t.Fatalf("blocks survived clear: %d", len(doc.TimeBlocks))
	}
}

func TestAddTaskFromSuggestion(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	doc, _ := svc.Document(ctx)
	sg := doc.Activities[coach.CategorySkills].Suggestions[0]

	task, err := svc.AddTaskFromSuggestion(ctx, coach.CategorySkills, sg.ID)
	if err != nil {
		t.Fatalf("add from suggestion: %v", err)
	}
	if task.Text != sg.Text {
		t.Fatalf("task text = %q, want %q", task.Text, sg.Text)
	}
	if task.Minutes != 30 {
		t.Fatalf("duration hint %q parsed to %v minutes", sg.Time, task.Minutes)
	}
	if task.Category != coach.CategorySkills {
		t.Fatalf("task category = %q", task.Category)
	}

	if _, err := svc.AddTaskFromSuggestion(ctx, coach.CategorySkills, "missing"); !errors.Is(err, ErrNoSuggestion) {
		t.Fatalf("expected ErrNoSuggestion, got %v", err)
	}
	if _, err := svc.AddTaskFromSuggestion(ctx, "meetings", sg.ID); !errors.Is(err, ErrNoActivity) {
		t.Fatalf("expected ErrNoActivity, got %v", err)
	}
}

func TestSuggestionLifecycle(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	sg, err := svc.AddSuggestion(ctx, coach.CategoryPortfolio)
	if err != nil {
		t.Fatalf("add suggestion: %v", err)
	}

	doc, err := svc.EditSuggestion(ctx, coach.CategoryPortfolio, sg.ID, "record a demo video", "20 min")
	if err != nil {
		t.Fatalf("edit suggestion: %v", err)
	}
	found := false
	for _, s := range doc.Activities[coach.CategoryPortfolio].Suggestions {
		if s.ID == sg.ID {
			found = true
			if s.Text != "record a demo video" || s.Time != "20 min" {
				t.Fatalf("edit not applied: %+v", s)
			}
		}
	}
	if !found {
		t.Fatalf("edited suggestion missing")
	}

	doc, err = svc.DeleteSuggestion(ctx, coach.CategoryPortfolio, sg.ID)
	if err != nil {
		t.Fatalf("delete suggestion: %v", err)
	}
	for _, s := range doc.Activities[coach.CategoryPortfolio].Suggestions {
		if s.ID == sg.ID {
			t.Fatalf("suggestion survived delete")
		}
	}

	doc, err = svc.ResetActivity(ctx, coach.CategoryPortfolio)
	if err != nil {
		t.Fatalf("reset activity: %v", err)
	}
	if len(doc.Activities[coach.CategoryPortfolio].Suggestions) != 5 {
		t.Fatalf("reset did not restore defaults")
	}
}

func TestEditSuggestionPartialUpdate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	sg, err := svc.AddSuggestion(ctx, coach.CategorySkills)
	if err != nil {
		t.Fatalf("add suggestion: %v", err)
	}

	// Updating only the time hint must not blank the text.
	doc, err := svc.EditSuggestion(ctx, coach.CategorySkills, sg.ID, "", "20 min")
	if err != nil {
		t.Fatalf("edit suggestion: %v", err)
	}
	got := doc.Activities[coach.CategorySkills].Suggestion(sg.ID)
	if got == nil {
		t.Fatalf("suggestion missing after edit")
	}
	if got.Text != "New suggestion" {
		t.Fatalf("time-only edit clobbered the text: %q", got.Text)
	}
	if got.Time != "20 min" {
		t.Fatalf("time hint not updated: %q", got.Time)
	}
}

func TestResetIncompleteTasks(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	done, _ := svc.AddTask(ctx, "done today", 10, "")
	_, _ = svc.ToggleTask(ctx, done.ID)
	_, _ = svc.AddTask(ctx, "abandoned", 10, "")

	removed, err := svc.ResetIncompleteTasks(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removal, got %d", removed)
	}
	doc, _ := svc.Document(ctx)
	if doc.Task(done.ID) == nil || len(doc.Tasks) != 1 {
		t.Fatalf("reset removed the wrong tasks: %+v", doc.Tasks)
	}
}

func TestNoPersistenceConfigured(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Document(context.Background()); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
	if _, err := svc.AddTask(context.Background(), "x", 1, ""); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}
