package service

import (
	"sync"

	"github.com/etimad/showroom-backend/internal/app/model"
)

// GenerationTracker keeps the newest generated draft per subject key.
// Each request takes a sequence number; a result is applied only when no
// newer request for the same key has already been applied.
type GenerationTracker struct {
	mu      sync.Mutex
	issued  map[string]uint64
	applied map[string]model.GenerationDraft
}

func NewGenerationTracker() *GenerationTracker {
	return &GenerationTracker{
		issued:  make(map[string]uint64),
		applied: make(map[string]model.GenerationDraft),
	}
}

// Begin reserves the next sequence number for key
func (t *GenerationTracker) Begin(key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.issued[key]++
	return t.issued[key]
}

// Complete applies text if seq is newer than what is applied. It reports whether it did.
func (t *GenerationTracker) Complete(key string, seq uint64, text string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cur, ok := t.applied[key]; ok && cur.Sequence >= seq {
		return false
	}
	t.applied[key] = model.GenerationDraft{Key: key, Sequence: seq, Text: text}
	return true
}

// Draft returns the applied draft for key, flagged Pending while a newer request runs
func (t *GenerationTracker) Draft(key string) (model.GenerationDraft, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	d, ok := t.applied[key]
	issued := t.issued[key]
	if !ok {
		if issued == 0 {
			return model.GenerationDraft{}, false
		}
		return model.GenerationDraft{Key: key, Pending: true}, true
	}
	d.Pending = issued > d.Sequence
	return d, true
}
