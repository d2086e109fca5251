// Package storage keeps the best score between runs.
package storage

import (
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	scoresObject   = "scores"
	scoresProperty = "best"
)

// Record is the persisted payload.
type Record struct {
	Best int `yaml:"best"`
	Runs int `yaml:"runs"`
}

// HighScores stores the best score through gdata. With a nil manager it
// keeps the record in memory only.
type HighScores struct {
	mu      sync.Mutex
	manager *gdata.Manager
	record  Record
}

// NewHighScores loads the saved record. A record that cannot be read is
// logged and replaced by an empty one.
func NewHighScores(m *gdata.Manager) *HighScores {
	h := &HighScores{manager: m}
	if err := h.load(); err != nil {
		log.Printf("[Storage] Warning: %v (starting from zero)", err)
	}
	return h
}

// Open opens the gdata store for appName. It returns a nil manager and the
// error when the platform has no usable storage.
func Open(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return m, nil
}

func (h *HighScores) load() error {
	if h.manager == nil || !h.manager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}
	data, err := h.manager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("decode scores: %w", err)
	}
	h.record = r
	log.Printf("[Storage] loaded best=%d runs=%d", r.Best, r.Runs)
	return nil
}

func (h *HighScores) Best() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.record.Best
}

func (h *HighScores) Runs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.record.Runs
}

// Persistent reports whether records survive a restart.
func (h *HighScores) Persistent() bool { return h.manager != nil }

// Submit counts a finished run and reports whether score beat the best.
// The in-memory record is updated even when saving fails.
func (h *HighScores) Submit(score int) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.record.Runs++
	newRecord := score > h.record.Best
	if newRecord {
		h.record.Best = score
	}
	return newRecord, h.saveLocked()
}

func (h *HighScores) saveLocked() error {
	if h.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(h.record)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := h.manager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	log.Printf("[Storage] saved best=%d runs=%d", h.record.Best, h.record.Runs)
	return nil
}
