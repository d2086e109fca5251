package eventbus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_OnEmit(t *testing.T) {
	b := New()
	var got []any
	b.On(ScoreChanged, func(p any) { got = append(got, p) })

	b.Emit(ScoreChanged, 10)
	b.Emit(ScoreChanged, 20)
	b.Emit(PlayerHit, nil)

	assert.Equal(t, []any{10, 20}, got)
}

func TestBus_HandlersRunInOrder(t *testing.T) {
	b := New()
	var order []string
	b.On(WaveCleared, func(any) { order = append(order, "first") })
	b.On(WaveCleared, func(any) { order = append(order, "second") })
	b.On(WaveCleared, func(any) { order = append(order, "third") })

	b.Emit(WaveCleared, nil)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBus_Off(t *testing.T) {
	b := New()
	calls := 0
	off := b.On(BombSpawned, func(any) { calls++ })

	b.Emit(BombSpawned, nil)
	off()
	off()
	b.Emit(BombSpawned, nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.Count(BombSpawned))
}

func TestBus_Once(t *testing.T) {
	b := New()
	calls := 0
	b.Once(CurrentSceneReady, func(any) { calls++ })

	b.Emit(CurrentSceneReady, "playing")
	b.Emit(CurrentSceneReady, "playing")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.Count(CurrentSceneReady))
}

func TestBus_SubscribeDuringEmit(t *testing.T) {
	b := New()
	late := 0
	b.On(ScoreChanged, func(any) {
		b.On(ScoreChanged, func(any) { late++ })
	})

	b.Emit(ScoreChanged, nil)
	assert.Equal(t, 0, late)
	assert.Equal(t, 2, b.Count(ScoreChanged))

	b.Emit(ScoreChanged, nil)
	assert.Equal(t, 1, late)
}

func TestBus_UnsubscribeDuringEmit(t *testing.T) {
	b := New()
	calls := 0
	var off func()
	off = b.On(PlayerHit, func(any) {
		calls++
		off()
	})

	b.Emit(PlayerHit, nil)
	b.Emit(PlayerHit, nil)
	assert.Equal(t, 1, calls)
}

func TestBus_Nil(t *testing.T) {
	var b *Bus
	assert.NotPanics(t, func() {
		off := b.On(ScoreChanged, func(any) {})
		off()
		b.Once(ScoreChanged, func(any) {})
		b.Emit(ScoreChanged, 1)
	})
	assert.Equal(t, 0, b.Count(ScoreChanged))
}

func TestBus_NilHandler(t *testing.T) {
	b := New()
	b.On(ScoreChanged, nil)
	assert.Equal(t, 0, b.Count(ScoreChanged))
}

func TestBus_Concurrent(t *testing.T) {
	b := New()
	var mu sync.Mutex
	total := 0
	b.On(ScoreChanged, func(p any) {
		mu.Lock()
		total += p.(int)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Emit(ScoreChanged, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, total)
}
