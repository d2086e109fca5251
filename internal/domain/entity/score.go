package entity

import "fmt"

// Score counts points. It only ever goes up.
type Score struct {
	value  int
	points int
}

// NewScore creates a score that grows by points per collected star.
func NewScore(points int) *Score {
	return &Score{points: points}
}

// Collect adds one star's worth of points and returns the new value.
func (s *Score) Collect() int {
	s.value += s.points
	return s.value
}

func (s *Score) Value() int { return s.value }

// Text is the HUD label for the score.
func (s *Score) Text() string {
	return FormatScore(s.value)
}

// FormatScore renders v the way the HUD shows it.
func FormatScore(v int) string {
	return fmt.Sprintf("Score: %d", v)
}
