package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/club59/pongking/pkg/logging"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisNotifier fans collection-change events out to every service
// instance sharing the store. Each instance reloads its snapshot when
// another instance reports a change; its own events are skipped.
type RedisNotifier struct {
	client     *redis.Client
	channel    string
	instanceId string
}

type changeEvent struct {
	Origin     string `json:"origin"`
	Collection string `json:"collection"`
}

func NewRedisNotifier(addr, password, channel string) *RedisNotifier {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &RedisNotifier{
		client:     rdb,
		channel:    channel,
		instanceId: uuid.NewString(),
	}
}

func (n *RedisNotifier) Ping(ctx context.Context) error {
	if err := n.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

func (n *RedisNotifier) Publish(ctx context.Context, collection string) error {
	payload, err := json.Marshal(changeEvent{
		Origin:     n.instanceId,
		Collection: collection,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}
	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

// Listen blocks until ctx is done, invoking onChange for every event
// published by another instance.
func (n *RedisNotifier) Listen(ctx context.Context, onChange func(collection string)) {
	pubsub := n.client.Subscribe(ctx, n.channel)
	defer pubsub.Close()

	logging.Info("change notification worker started", zap.String("channel", n.channel))
	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Error("change notification receive failed", zap.Error(err))
			continue
		}

		var event changeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			logging.Error("failed to unmarshal change event", zap.Error(err))
			continue
		}
		if event.Origin == n.instanceId {
			continue
		}
		onChange(event.Collection)
	}
}

func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
