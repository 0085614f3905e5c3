package notify

import (
	"log/slog"
	"sync"
)

const (
	defaultSubscriberBuffer = 8
	defaultRetainedTopics   = 1024
)

type topic struct {
	subscribers map[int]chan string
	retained    string
	hasRetained bool
}

// Broker is an in-process publish/subscribe hub keyed by process ID.
//
// The last message published on a topic is retained, so a subscriber that
// connects after a run has finished still receives its terminal status.
// Publishing never blocks: a subscriber whose buffer is full misses the message.
type Broker struct {
	mu          sync.Mutex
	topics      map[string]*topic
	order       []string
	nextID      int
	buffer      int
	maxRetained int
}

// NewBroker creates a broker. bufferSize is the per-subscriber channel buffer.
func NewBroker(bufferSize int) *Broker {
	if bufferSize <= 0 {
		bufferSize = defaultSubscriberBuffer
	}
	return &Broker{
		topics:      make(map[string]*topic),
		buffer:      bufferSize,
		maxRetained: defaultRetainedTopics,
	}
}

func (b *Broker) topicLocked(processID string) *topic {
	t, ok := b.topics[processID]
	if !ok {
		t = &topic{subscribers: make(map[int]chan string)}
		b.topics[processID] = t
		b.order = append(b.order, processID)
	}
	return t
}

// Publish delivers message to all current subscribers of processID and retains it.
func (b *Broker) Publish(processID, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.topicLocked(processID)
	t.retained = message
	t.hasRetained = true
	b.touchLocked(processID)

	for id, ch := range t.subscribers {
		select {
		case ch <- message:
		default:
			slog.Warn("[Broker] Subscriber buffer full, dropping message",
				"topic", Topic(processID),
				"subscriber", id,
			)
		}
	}

	b.evictLocked(processID)
}

// touchLocked moves processID to the newest end of the eviction order.
func (b *Broker) touchLocked(processID string) {
	for i, id := range b.order {
		if id == processID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.order = append(b.order, processID)
}

// Subscribe returns a channel receiving messages for processID and a cancel
// func that unsubscribes and closes the channel. If a message was already
// retained for the topic it is delivered immediately.
func (b *Broker) Subscribe(processID string) (<-chan string, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.topicLocked(processID)
	id := b.nextID
	b.nextID++

	ch := make(chan string, b.buffer)
	if t.hasRetained {
		ch <- t.retained
	}
	t.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if t, ok := b.topics[processID]; ok {
				delete(t.subscribers, id)
			}
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers returns how many live subscribers processID has.
func (b *Broker) Subscribers(processID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.topics[processID]; ok {
		return len(t.subscribers)
	}
	return 0
}

// evictLocked drops the oldest idle topics once more than maxRetained exist.
// The topic named by keep is never dropped.
func (b *Broker) evictLocked(keep string) {
	if len(b.order) <= b.maxRetained {
		return
	}
	kept := b.order[:0]
	excess := len(b.order) - b.maxRetained
	for _, id := range b.order {
		t := b.topics[id]
		if excess > 0 && id != keep && t != nil && len(t.subscribers) == 0 {
			delete(b.topics, id)
			excess--
			continue
		}
		kept = append(kept, id)
	}
	b.order = kept
}
