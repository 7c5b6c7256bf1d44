package messaging

import (
	"context"
	"errors"
	"sync"
	"testing"

	"orcamento_api/internal/domain/entities"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.NotificationEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event entities.NotificationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) published() []entities.NotificationEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entities.NotificationEvent, len(p.events))
	copy(out, p.events)
	return out
}

func TestAsyncDispatcher_DeliversBeforeStop(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewAsyncDispatcher(pub, 8)

	for i := 0; i < 3; i++ {
		if err := d.Publish(context.Background(), entities.NotificationEvent{ExternalReferenceID: "qr"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	d.Stop()

	if got := len(pub.published()); got != 3 {
		t.Fatalf("expected 3 delivered events, got %d", got)
	}
}

func TestAsyncDispatcher_PublishNeverFails(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("queue down")}
	d := NewAsyncDispatcher(pub, 1)
	defer d.Stop()

	if err := d.Publish(context.Background(), entities.NotificationEvent{ExternalReferenceID: "qr-1"}); err != nil {
		t.Fatalf("expected nil error even when the publisher fails, got %v", err)
	}
}

func TestAsyncDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewAsyncDispatcher(&recordingPublisher{}, 1)
	d.Stop()
	d.Stop()
}
