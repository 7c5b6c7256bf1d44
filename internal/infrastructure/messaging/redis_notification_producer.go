package messaging

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultNotificationQueue = "notifications"

// ConnectRedis creates the Redis client used as the notification channel.
//
// Supported env vars:
//   - REDIS_HOST (default: localhost)
//   - REDIS_PORT (default: 6379)
//   - REDIS_PASSWORD (optional)
func ConnectRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_HOST", "localhost") + ":" + getenvDefault("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if pong, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("Warning: could not connect to notification channel: %v", err)
	} else {
		log.Printf("Connected to notification channel: %s", pong)
	}
	return client
}

// RedisNotificationProducer pushes notification events as JSON onto a named
// Redis list; the mailing collaborator pops from the other end. The call
// returns once the event is accepted by the list, not when the mail is sent.

type RedisNotificationProducer struct {
	client *redis.Client
	queue  string
}

var _ interfaces.INotificationPublisher = (*RedisNotificationProducer)(nil)

func NewRedisNotificationProducer(client *redis.Client) *RedisNotificationProducer {
	return &RedisNotificationProducer{
		client: client,
		queue:  getenvDefault("NOTIFICATION_QUEUE", defaultNotificationQueue),
	}
}

func (p *RedisNotificationProducer) Publish(ctx context.Context, event entities.NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.client.LPush(ctx, p.queue, payload).Err()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
