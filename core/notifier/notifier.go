package notifier

import (
	"context"

	"roomboard/core/constants"
	"roomboard/core/logger"

	"github.com/redis/go-redis/v9"
)

// Notifier fans out "something changed" pings after committed mutations.
// Delivery is best effort: listeners re-fetch full state, so a missed ping
// costs one polling interval, never correctness.
type Notifier interface {
	RoomsChanged(ctx context.Context)
	ChatPosted(ctx context.Context)
	Subscribe(ctx context.Context, channel string) (<-chan string, func())
}

type redisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) Notifier {
	return &redisNotifier{client: client}
}

func (n *redisNotifier) publish(ctx context.Context, channel string) {
	if err := n.client.Publish(ctx, channel, "updated").Err(); err != nil {
		logger.Error("Notifier:Publish", "channel", channel, "error", err)
	}
}

func (n *redisNotifier) RoomsChanged(ctx context.Context) {
	n.publish(ctx, constants.ChannelRoomsUpdated)
}

func (n *redisNotifier) ChatPosted(ctx context.Context) {
	n.publish(ctx, constants.ChannelChatPosted)
}

// Subscribe returns a channel of pings for the given pub/sub channel and a
// cancel func the caller must invoke when done.
func (n *redisNotifier) Subscribe(ctx context.Context, channel string) (<-chan string, func()) {
	sub := n.client.Subscribe(ctx, channel)
	out := make(chan string, 8)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			select {
			case out <- msg.Payload:
			default:
				// Slow consumer; it will re-fetch on the next ping anyway.
			}
		}
	}()

	return out, func() { _ = sub.Close() }
}
