package hrtimer

import (
	"testing"
	"time"
)

func TestNanosecondsMonotonic(t *testing.T) {
	prev := Nanoseconds()
	for i := 0; i < 1000; i++ {
		now := Nanoseconds()
		if now < prev {
			t.Fatalf("clock went backwards: %d then %d", prev, now)
		}
		prev = now
	}
}

func TestElapsed(t *testing.T) {
	start := Nanoseconds()
	time.Sleep(10 * time.Millisecond)
	elapsed := Elapsed(start)
	if elapsed < 10*time.Millisecond {
		t.Errorf("elapsed %v, want at least 10ms", elapsed)
	}
	if elapsed > 5*time.Second {
		t.Errorf("elapsed %v looks wrong", elapsed)
	}
}

func TestConcurrentFirstUse(t *testing.T) {
	done := make(chan int64, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- Nanoseconds() }()
	}
	for i := 0; i < 8; i++ {
		if v := <-done; v < 0 {
			t.Fatalf("negative timestamp %d", v)
		}
	}
}
