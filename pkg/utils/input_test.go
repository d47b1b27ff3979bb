package utils

import (
	"testing"
)

func TestDragManagerInitialState(t *testing.T) {
	dm := NewDragManager()

	if dm.GetState() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", dm.GetState())
	}
	if dm.GetInfo().TouchID != -1 {
		t.Errorf("Expected TouchID to be -1 initially, got %d", dm.GetInfo().TouchID)
	}
}

func TestDragManagerGesture(t *testing.T) {
	dm := NewDragManager()

	steps := []struct {
		name   string
		sample PointerSample
		want   DragState
		x, y   int
	}{
		{"idle", PointerSample{}, DragStateNone, 0, 0},
		{"press", PointerSample{JustPressed: true, Pressed: true, X: 100, Y: 200, TouchID: -1}, DragStateStarted, 100, 200},
		{"move", PointerSample{Pressed: true, X: 150, Y: 210}, DragStateDragging, 150, 210},
		{"move again", PointerSample{Pressed: true, X: 220, Y: 215}, DragStateDragging, 220, 215},
		{"release", PointerSample{X: 300, Y: 300}, DragStateEnded, 220, 215},
		{"after release", PointerSample{}, DragStateNone, 0, 0},
	}

	for _, step := range steps {
		dm.Advance(step.sample)
		info := dm.GetInfo()
		if info.State != step.want {
			t.Fatalf("%s: state = %v, want %v", step.name, info.State, step.want)
		}
		if info.CurrentX != step.x || info.CurrentY != step.y {
			t.Errorf("%s: position = (%d, %d), want (%d, %d)", step.name, info.CurrentX, info.CurrentY, step.x, step.y)
		}
	}
}

func TestDragManagerQuickTap(t *testing.T) {
	dm := NewDragManager()

	dm.Advance(PointerSample{JustPressed: true, Pressed: true, X: 10, Y: 10, Touch: true, TouchID: 3})
	if dm.GetState() != DragStateStarted || !dm.GetInfo().IsTouchInput {
		t.Fatalf("expected touch drag start, got %+v", dm.GetInfo())
	}
	dm.Advance(PointerSample{Touch: true})
	if dm.GetState() != DragStateEnded {
		t.Errorf("release right after press should end the drag, got %v", dm.GetState())
	}

	// 结束后的同一帧可以立刻开始新手势
	dm.Advance(PointerSample{JustPressed: true, Pressed: true, X: 50, Y: 60, TouchID: -1})
	if dm.GetState() != DragStateStarted || dm.GetInfo().IsTouchInput {
		t.Errorf("expected new mouse drag, got %+v", dm.GetInfo())
	}
}

func TestDragManagerGetDragDistance(t *testing.T) {
	dm := NewDragManager()
	dm.Advance(PointerSample{JustPressed: true, Pressed: true, X: 100, Y: 200})
	dm.Advance(PointerSample{Pressed: true, X: 150, Y: 280})

	dx, dy := dm.GetDragDistance()
	if dx != 50 || dy != 80 {
		t.Errorf("Expected distance (50, 80), got (%d, %d)", dx, dy)
	}

	dm.Reset()
	if dm.GetState() != DragStateNone {
		t.Errorf("Expected state to be DragStateNone after reset, got %v", dm.GetState())
	}
}
