package service

import (
	"sync"

	"github.com/MKhiriev/go-chat-cipher/models"
)

// defaultEventBuffer is the channel capacity of a subscription.
const defaultEventBuffer = 16

// notifier is an in-process [Notifier]. Slow subscribers miss events
// instead of blocking writers; clients re-fetch on every event anyway.
type notifier struct {
	mu     sync.Mutex
	subs   map[string]map[chan models.ChatEvent]struct{}
	buffer int
}

// NewNotifier creates a [Notifier] whose subscriptions buffer up to buffer
// events. Non-positive values select the default capacity.
func NewNotifier(buffer int) Notifier {
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}

	return &notifier{
		subs:   make(map[string]map[chan models.ChatEvent]struct{}),
		buffer: buffer,
	}
}

func (n *notifier) Subscribe(chatID string) (<-chan models.ChatEvent, func()) {
	ch := make(chan models.ChatEvent, n.buffer)

	n.mu.Lock()
	if n.subs[chatID] == nil {
		n.subs[chatID] = make(map[chan models.ChatEvent]struct{})
	}
	n.subs[chatID][ch] = struct{}{}
	n.mu.Unlock()

	cancel := sync.OnceFunc(func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		delete(n.subs[chatID], ch)
		if len(n.subs[chatID]) == 0 {
			delete(n.subs, chatID)
		}
		close(ch)
	})

	return ch, cancel
}

func (n *notifier) Publish(event models.ChatEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.subs[event.ChatID] {
		select {
		case ch <- event:
		default:
		}
	}
}
