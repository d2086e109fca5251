package anim

// Animator plays animations from a Registry for one sprite.
type Animator struct {
	registry *Registry

	current  Animation
	playing  bool
	index    int
	elapsed  float64
	passes   int
	finished bool
}

func NewAnimator(registry *Registry) *Animator {
	return &Animator{registry: registry}
}

// Play switches to the animation registered under key. With ignoreIfPlaying
// set, asking for the animation that is already running keeps its progress.
func (a *Animator) Play(key string, ignoreIfPlaying bool) error {
	if ignoreIfPlaying && a.playing && a.current.Key == key && !a.finished {
		return nil
	}
	next, err := a.registry.Get(key)
	if err != nil {
		return err
	}
	a.current = next
	a.playing = true
	a.index = 0
	a.elapsed = 0
	a.passes = 0
	a.finished = false
	return nil
}

// Update advances the current animation by dt seconds.
func (a *Animator) Update(dt float64) {
	if !a.playing || a.finished || a.current.FrameRate <= 0 {
		return
	}
	step := 1 / a.current.FrameRate
	a.elapsed += dt
	for a.elapsed >= step && !a.finished {
		a.elapsed -= step
		a.advance()
	}
}

func (a *Animator) advance() {
	if a.index < len(a.current.Frames)-1 {
		a.index++
		return
	}
	if a.current.Repeat < 0 || a.passes < a.current.Repeat {
		a.passes++
		a.index = 0
		return
	}
	a.finished = true
}

// Frame returns the sheet frame to draw, or 0 before anything has played.
func (a *Animator) Frame() int {
	if !a.playing {
		return 0
	}
	return a.current.Frames[a.index]
}

// Key returns the key of the current animation.
func (a *Animator) Key() string {
	return a.current.Key
}

// Finished reports whether a non-looping animation has reached its end.
func (a *Animator) Finished() bool {
	return a.finished
}
