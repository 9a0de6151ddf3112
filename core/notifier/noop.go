package notifier

import "context"

// Noop is used in tests and in tooling that runs without redis.
type Noop struct {
	RoomsChangedCount int
	ChatPostedCount   int
}

func (n *Noop) RoomsChanged(ctx context.Context) { n.RoomsChangedCount++ }

func (n *Noop) ChatPosted(ctx context.Context) { n.ChatPostedCount++ }

func (n *Noop) Subscribe(ctx context.Context, channel string) (<-chan string, func()) {
	ch := make(chan string)
	return ch, func() { close(ch) }
}
