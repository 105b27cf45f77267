package suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/coach"
	"tableflip.dev/coach/pkg/store"
)

type memoryPersistence struct {
	doc *coach.Document
}

func (m *memoryPersistence) Load(_ context.Context) (*coach.Document, error) {
	return m.doc, nil
}

func (m *memoryPersistence) Save(d *coach.Document) error {
	m.doc = d
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func testService() *app.Service {
	return &app.Service{Persistence: &memoryPersistence{doc: coach.NewDocument(time.Now())}}
}

func TestEditUnknownCategory(t *testing.T) {
	n := Edit{Category: "meetings", ID: "whatever", Text: "x", Service: testService()}
	if err := n.Do(context.Background()); !errors.Is(err, app.ErrNoActivity) {
		t.Fatalf("expected ErrNoActivity, got %v", err)
	}
}

func TestDeleteUnknownCategory(t *testing.T) {
	n := Delete{Category: "meetings", ID: "whatever", Service: testService()}
	if err := n.Do(context.Background()); !errors.Is(err, app.ErrNoActivity) {
		t.Fatalf("expected ErrNoActivity, got %v", err)
	}
}
