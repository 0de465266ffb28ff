package club

import (
	"sync"

	"github.com/club59/pongking/internal/domains/entities"
)

// Snapshot is the full current state of both collections. Values are
// copied in, so a snapshot never changes after it is published.
type Snapshot struct {
	Players []entities.Player `json:"players"`
	Matches []entities.Match  `json:"matches"`
}

// Bus fans snapshots out to subscribers. Delivery is latest-wins: a
// slow subscriber skips intermediate snapshots instead of blocking
// the publisher.
type Bus struct {
	mu          sync.Mutex
	subscribers map[int]chan Snapshot
	nextId      int
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[int]chan Snapshot),
	}
}

// Subscribe returns a snapshot channel and a cancel function. The
// channel is closed on cancel.
func (b *Bus) Subscribe() (<-chan Snapshot, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextId
	b.nextId++
	ch := make(chan Snapshot, 1)
	b.subscribers[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (b *Bus) Publish(snapshot Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Drop the stale snapshot, keep only the newest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
