package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherStampsEvents(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got Event
	d.Subscribe(EventCustomerCreated, func(_ context.Context, e Event) error {
		got = e
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventCustomerCreated, SubjectID: "c-1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got.ID == "" {
		t.Error("expected generated event id")
	}
	if got.Timestamp.IsZero() {
		t.Error("expected timestamp stamped")
	}
	if got.SubjectID != "c-1" {
		t.Errorf("unexpected subject: %q", got.SubjectID)
	}
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	ran := false
	d.Subscribe(EventAgentCreated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventAgentCreated, func(context.Context, Event) error {
		ran = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventAgentCreated}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !ran {
		t.Error("later handlers must still run after a failure")
	}
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0
	d.Subscribe(EventAgentUpdated, func(context.Context, Event) error {
		calls++
		return nil
	})

	_ = d.Publish(context.Background(), Event{Type: EventCustomerUpdated})
	if calls != 0 {
		t.Errorf("handler for a different type ran %d times", calls)
	}
}
