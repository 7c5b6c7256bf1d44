package messaging

import (
	"context"
	"log"
	"sync"
	"time"

	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"
)

const (
	defaultDispatchBuffer  = 64
	defaultDispatchTimeout = 5 * time.Second
)

// AsyncDispatcher decouples the create path from the notification channel: a
// Publish call only hands the event to a buffered channel, and a worker
// goroutine drives the underlying publisher with its own timeout. When the
// buffer is full the event is dropped with a log line rather than blocking
// the caller; delivery is best-effort by contract.

type AsyncDispatcher struct {
	publisher interfaces.INotificationPublisher
	events    chan entities.NotificationEvent
	timeout   time.Duration
	stopOnce  sync.Once
	stop      chan struct{}
	wg        sync.WaitGroup
}

var _ interfaces.INotificationPublisher = (*AsyncDispatcher)(nil)

func NewAsyncDispatcher(publisher interfaces.INotificationPublisher, buffer int) *AsyncDispatcher {
	if buffer <= 0 {
		buffer = defaultDispatchBuffer
	}

	d := &AsyncDispatcher{
		publisher: publisher,
		events:    make(chan entities.NotificationEvent, buffer),
		timeout:   defaultDispatchTimeout,
		stop:      make(chan struct{}),
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

// Publish hands the event off and returns immediately. The returned error is
// always nil; it exists to satisfy the publisher contract.
func (d *AsyncDispatcher) Publish(_ context.Context, event entities.NotificationEvent) error {
	select {
	case d.events <- event:
	default:
		log.Printf("[notification][dispatcher] buffer full, dropping event reference_id=%s", event.ExternalReferenceID)
	}
	return nil
}

// Stop drains pending events and stops the worker. Safe to call more than
// once.
func (d *AsyncDispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
	})
	d.wg.Wait()
}

func (d *AsyncDispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case event := <-d.events:
			d.dispatch(event)
		case <-d.stop:
			for {
				select {
				case event := <-d.events:
					d.dispatch(event)
				default:
					return
				}
			}
		}
	}
}

func (d *AsyncDispatcher) dispatch(event entities.NotificationEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, event); err != nil {
		log.Printf("[notification][dispatcher] publish failed reference_id=%s err=%v", event.ExternalReferenceID, err)
	}
}
