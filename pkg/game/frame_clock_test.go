package game

import "testing"

func TestFrameClockFirstFrameSkipped(t *testing.T) {
	c := NewFrameClock(0.05)
	if _, ok := c.Advance(10.0); ok {
		t.Error("first frame should not advance the simulation")
	}
	dt, ok := c.Advance(10.016)
	if !ok {
		t.Fatal("second frame should advance")
	}
	if dt < 0.0159 || dt > 0.0161 {
		t.Errorf("dt = %v, want ~0.016", dt)
	}
}

func TestFrameClockClampsDelta(t *testing.T) {
	c := NewFrameClock(0.05)
	c.Advance(1.0)
	dt, _ := c.Advance(3.0)
	if dt != 0.05 {
		t.Errorf("dt = %v, want clamp 0.05", dt)
	}

	// 时间倒退时不产生负步长
	dt, _ = c.Advance(2.0)
	if dt != 0 {
		t.Errorf("dt = %v, want 0 for non-monotonic timestamp", dt)
	}
}

func TestFrameClockPauseResume(t *testing.T) {
	c := NewFrameClock(0.05)
	c.Advance(1.0)
	c.Pause()

	if !c.Paused() {
		t.Error("Paused() should be true")
	}
	if _, ok := c.Advance(1.02); ok {
		t.Error("paused clock must not advance")
	}

	c.Resume()
	// 恢复后的第一帧只重置时间戳
	if _, ok := c.Advance(30.0); ok {
		t.Error("first frame after resume should not advance")
	}
	dt, ok := c.Advance(30.01)
	if !ok || dt > 0.0101 {
		t.Errorf("dt after resume = (%v, %v), want small delta", dt, ok)
	}
}
