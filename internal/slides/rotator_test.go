package slides

import (
	"testing"
	"time"
)

func TestNextWrapsModuloCount(t *testing.T) {
	r := NewRotator(3, 0)

	if r.Current() != 0 {
		t.Fatalf("initial index = %d", r.Current())
	}
	wants := []int{1, 2, 0, 1}
	for _, want := range wants {
		if got := r.Next(); got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}

func TestPrevWrapsAround(t *testing.T) {
	r := NewRotator(3, 0)

	if got := r.Prev(); got != 2 {
		t.Errorf("Prev() from 0 = %d, want 2", got)
	}
	if got := r.Prev(); got != 1 {
		t.Errorf("Prev() = %d, want 1", got)
	}
}

func TestSingleSlideIsStable(t *testing.T) {
	r := NewRotator(1, 0)
	if r.Next() != 0 || r.Prev() != 0 {
		t.Error("single slide rotator should stay at 0")
	}
}

func TestZeroCountClamped(t *testing.T) {
	r := NewRotator(0, 0)
	if r.Next() != 0 {
		t.Error("clamped rotator should stay at 0")
	}
}

func TestStartDisabledWithoutInterval(t *testing.T) {
	r := NewRotator(3, 0)
	if err := r.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	r.Stop() // must not panic with no cron running
}

func TestPeriodicRotation(t *testing.T) {
	// Large count so the index cannot wrap back to zero during the wait.
	r := NewRotator(1000, 20*time.Millisecond)
	if err := r.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer r.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r.Current() > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("rotator did not advance within deadline")
}
