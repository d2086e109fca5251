// Package eventbus is a small synchronous publish/subscribe hub shared by
// scenes. Handlers run on the emitting goroutine in subscription order.
package eventbus

import "sync"

// Topic names an event.
type Topic string

const (
	CurrentSceneReady Topic = "current-scene-ready"
	ScoreChanged      Topic = "score-changed"
	WaveCleared       Topic = "wave-cleared"
	BombSpawned       Topic = "bomb-spawned"
	PlayerHit         Topic = "player-hit"
	SceneChanged      Topic = "scene-changed"
)

// Handler receives the payload passed to Emit.
type Handler func(payload any)

type subscription struct {
	id      uint64
	handler Handler
	once    bool
}

// Bus dispatches events to subscribers. A nil *Bus ignores every call.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Topic][]subscription
}

func New() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// On subscribes h to topic. The returned func unsubscribes it.
func (b *Bus) On(topic Topic, h Handler) (off func()) {
	return b.add(topic, h, false)
}

// Once subscribes h for the next event on topic only.
func (b *Bus) Once(topic Topic, h Handler) (off func()) {
	return b.add(topic, h, true)
}

func (b *Bus) add(topic Topic, h Handler, once bool) func() {
	if b == nil || h == nil {
		return func() {}
	}
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: h, once: once})
	b.mu.Unlock()
	return func() { b.remove(topic, id) }
}

func (b *Bus) remove(topic Topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(topic, id)
}

// Emit calls every handler subscribed to topic. Handlers may subscribe or
// unsubscribe while the event is being delivered; the change applies from
// the next Emit.
func (b *Bus) Emit(topic Topic, payload any) {
	if b == nil {
		return
	}
	b.mu.Lock()
	subs := append([]subscription(nil), b.subs[topic]...)
	for _, s := range subs {
		if s.once {
			b.removeLocked(topic, s.id)
		}
	}
	b.mu.Unlock()

	for _, s := range subs {
		s.handler(payload)
	}
}

func (b *Bus) removeLocked(topic Topic, id uint64) {
	subs := b.subs[topic]
	for i, s := range subs {
		if s.id == id {
			b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[topic]) == 0 {
		delete(b.subs, topic)
	}
}

// Count returns the number of handlers subscribed to topic.
func (b *Bus) Count(topic Topic) int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}
