package state

import (
	"testing"
	"time"
)

func TestClockAccumulates(t *testing.T) {
	c := NewClock(125 * time.Millisecond)
	if n := c.Advance(0.25); n != 2 {
		t.Errorf("expected 2 ticks for two intervals, got %d", n)
	}
	if n := c.Advance(0.0625); n != 0 {
		t.Errorf("expected no tick for half an interval, got %d", n)
	}
	if n := c.Advance(0.0625); n != 1 {
		t.Errorf("expected the remainder to complete a tick, got %d", n)
	}
	if n := c.Advance(-1); n != 0 {
		t.Errorf("negative delta should be ignored, got %d", n)
	}
	c.Advance(0.0625)
	c.Reset()
	if n := c.Advance(0.0625); n != 0 {
		t.Errorf("reset should drop the accumulated time, got %d", n)
	}
}
