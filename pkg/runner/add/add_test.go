package add

import (
	"context"
	"testing"
)

func TestDoWithoutService(t *testing.T) {
	n := Add{Text: "anything"}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected an error with no service configured")
	}
}
