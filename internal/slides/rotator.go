// Package slides owns the home-page hero rotation: a periodic task that
// advances a single current-index value modulo the slide count, stopped on
// shutdown.
package slides

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Rotator cycles through a fixed number of slides.
type Rotator struct {
	mu    sync.Mutex
	idx   int
	count int

	interval time.Duration
	c        *cron.Cron
}

// NewRotator creates a rotator over count slides advancing every interval.
// A non-positive interval disables automatic rotation; Next/Prev still work.
func NewRotator(count int, interval time.Duration) *Rotator {
	if count < 1 {
		count = 1
	}
	return &Rotator{count: count, interval: interval}
}

// Start begins periodic rotation. Safe to call with automatic rotation
// disabled, in which case it does nothing.
func (r *Rotator) Start() error {
	if r.interval <= 0 {
		return nil
	}
	r.c = cron.New()
	if _, err := r.c.AddFunc(fmt.Sprintf("@every %s", r.interval), r.advance); err != nil {
		return fmt.Errorf("schedule slide rotation: %w", err)
	}
	r.c.Start()
	return nil
}

// Stop cancels the periodic task. Idempotent.
func (r *Rotator) Stop() {
	if r.c != nil {
		r.c.Stop()
		r.c = nil
	}
}

// Current returns the index of the slide currently shown.
func (r *Rotator) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.idx
}

// Next advances to the following slide and returns the new index.
func (r *Rotator) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idx = (r.idx + 1) % r.count
	return r.idx
}

// Prev steps back one slide with wraparound and returns the new index.
func (r *Rotator) Prev() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idx = (r.idx - 1 + r.count) % r.count
	return r.idx
}

func (r *Rotator) advance() {
	r.Next()
}
