// Package anim holds named frame sequences for sprite sheets and a small
// player that steps through them.
package anim

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrDuplicateKey = errors.New("animation key already registered")
	ErrUnknownKey   = errors.New("unknown animation key")
	ErrEmptyKey     = errors.New("animation key is empty")
	ErrNoFrames     = errors.New("animation has no frames")
)

// Animation is a frame sequence played at FrameRate frames per second.
// Repeat -1 loops forever; any other value plays the frames once per
// repeat plus one and then holds the last frame.
type Animation struct {
	Key       string
	Frames    []int
	FrameRate float64
	Repeat    int
}

// Duration returns the length of one pass through the frames in seconds.
func (a Animation) Duration() float64 {
	if a.FrameRate <= 0 {
		return 0
	}
	return float64(len(a.Frames)) / a.FrameRate
}

// GenerateFrameNumbers returns the inclusive frame range start..end.
// A reversed range counts down.
func GenerateFrameNumbers(start, end int) []int {
	step := 1
	if end < start {
		step = -1
	}
	frames := make([]int, 0, abs(end-start)+1)
	for f := start; ; f += step {
		frames = append(frames, f)
		if f == end {
			break
		}
	}
	return frames
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Registry maps keys to animations. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	anims map[string]Animation
}

func NewRegistry() *Registry {
	return &Registry{anims: make(map[string]Animation)}
}

// Create registers a.
func (r *Registry) Create(a Animation) error {
	if a.Key == "" {
		return ErrEmptyKey
	}
	if len(a.Frames) == 0 {
		return fmt.Errorf("%w: %s", ErrNoFrames, a.Key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.anims[a.Key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, a.Key)
	}
	a.Frames = append([]int(nil), a.Frames...)
	r.anims[a.Key] = a
	return nil
}

func (r *Registry) Get(key string) (Animation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.anims[key]
	if !ok {
		return Animation{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return a, nil
}

func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.anims[key]
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.anims)
}
