package interfaces

import (
	"context"

	"orcamento_api/internal/domain/entities"
)

// INotificationPublisher places a notification event onto the external
// asynchronous channel. The call returns once the event is accepted by the
// channel; delivery to the final recipient is owned by an out-of-process
// collaborator.

type INotificationPublisher interface {
	Publish(ctx context.Context, event entities.NotificationEvent) error
}
