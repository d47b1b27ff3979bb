package systems

import (
	"testing"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/config"
)

func newTestTrail() *TrailSystem {
	return NewTrailSystem(config.TrailConfig{Lifetime: 0.15, MaxPoints: 4, CollisionPoints: 3})
}

func TestTrailIgnoresMoveWithoutPress(t *testing.T) {
	trail := newTestTrail()
	trail.GestureMove(components.Vec2{X: 10, Y: 10}, 0)
	if trail.Len() != 0 {
		t.Fatalf("move without press recorded %d points", trail.Len())
	}

	trail.GestureStart(components.Vec2{}, 0)
	trail.GestureMove(components.Vec2{X: 5}, 0.01)
	trail.GestureEnd()
	trail.GestureMove(components.Vec2{X: 10}, 0.02)

	if trail.Len() != 2 {
		t.Errorf("expected 2 points after release, got %d", trail.Len())
	}
	if trail.Active() {
		t.Error("trail should be inactive after GestureEnd")
	}
}

func TestTrailStartClearsPreviousGesture(t *testing.T) {
	trail := newTestTrail()
	trail.GestureStart(components.Vec2{}, 0)
	trail.GestureMove(components.Vec2{X: 1}, 0.01)
	trail.GestureStart(components.Vec2{X: 100}, 0.02)

	pts := trail.Points()
	if len(pts) != 1 || pts[0].Position.X != 100 {
		t.Errorf("expected fresh trail starting at x=100, got %+v", pts)
	}
}

func TestTrailCapEvictsOldest(t *testing.T) {
	trail := newTestTrail()
	trail.GestureStart(components.Vec2{X: 0}, 0)
	for i := 1; i <= 6; i++ {
		trail.GestureMove(components.Vec2{X: float64(i)}, float64(i)*0.001)
	}

	pts := trail.Points()
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	for i, want := range []float64{3, 4, 5, 6} {
		if pts[i].Position.X != want {
			t.Errorf("point %d: x = %v, want %v", i, pts[i].Position.X, want)
		}
	}
}

func TestTrailPrune(t *testing.T) {
	tests := []struct {
		name string
		now  float64
		want int
	}{
		{"all fresh", 0.15, 3},
		{"oldest expired", 0.21, 2},
		{"all expired", 1.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trail := newTestTrail()
			trail.GestureStart(components.Vec2{}, 0)
			trail.GestureMove(components.Vec2{X: 1}, 0.1)
			trail.GestureMove(components.Vec2{X: 2}, 0.2)

			trail.Prune(tt.now)
			if trail.Len() != tt.want {
				t.Errorf("Prune(%v) left %d points, want %d", tt.now, trail.Len(), tt.want)
			}
		})
	}
}

func TestTrailRecent(t *testing.T) {
	trail := newTestTrail()
	trail.GestureStart(components.Vec2{X: 0}, 0)
	trail.GestureMove(components.Vec2{X: 1}, 0.01)

	if got := trail.Recent(3); len(got) != 2 {
		t.Errorf("Recent(3) on 2 points returned %d", len(got))
	}

	trail.GestureMove(components.Vec2{X: 2}, 0.02)
	trail.GestureMove(components.Vec2{X: 3}, 0.03)
	got := trail.Recent(2)
	if len(got) != 2 || got[0].Position.X != 2 || got[1].Position.X != 3 {
		t.Errorf("Recent(2) = %+v", got)
	}
}
