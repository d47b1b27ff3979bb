package scenes

import (
	"testing"

	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/engine"
	"github.com/decker502/watchninja/pkg/events"
	"github.com/decker502/watchninja/pkg/types"
	"github.com/decker502/watchninja/pkg/utils"
)

type fixedRandom struct{ f float64 }

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) Intn(n int) int   { return 0 }

func newTestScene(t *testing.T, mode types.GameMode) *RoundScene {
	t.Helper()
	cfg := config.Default()
	cfg.Mode = mode
	cfg.Timing.Act1Duration = 1
	cfg.Timing.Act2Duration = 2
	e, err := engine.New(cfg, fixedRandom{f: 0.5}, nil)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return NewRoundScene(e, cfg.Playfield.Width, cfg.Playfield.Height)
}

// press 模拟一次完整的点击：按下后立即抬起
func press(s *RoundScene, x, y int, now float64) {
	s.drag.Advance(utils.PointerSample{JustPressed: true, Pressed: true, X: x, Y: y, TouchID: -1})
	s.handlePointer(s.drag.GetInfo(), now)
	s.drag.Advance(utils.PointerSample{})
	s.handlePointer(s.drag.GetInfo(), now)
}

func TestTapAdvancesPhases(t *testing.T) {
	s := newTestScene(t, types.ModeMarket)

	press(s, 100, 100, 0)
	if got := s.engine.Phase(); got != types.PhaseAct1 {
		t.Fatalf("after tap on start screen phase = %v, want Act1", got)
	}

	for i := 0; i < 20; i++ {
		s.engine.Tick(0.05)
	}
	if got := s.engine.Phase(); got != types.PhaseTransition {
		t.Fatalf("after act 1 phase = %v, want Transition", got)
	}

	// 什么都没买，进入第二幕时直接结算
	press(s, 100, 100, 2)
	if got := s.engine.Phase(); got != types.PhaseOver {
		t.Fatalf("after tap on transition phase = %v, want Over", got)
	}

	press(s, 100, 100, 3)
	if got := s.engine.Phase(); got != types.PhaseStart {
		t.Fatalf("after tap on results phase = %v, want Start", got)
	}
}

func TestDragFeedsTrail(t *testing.T) {
	s := newTestScene(t, types.ModeArcade)
	press(s, 10, 10, 0)

	steps := []utils.PointerSample{
		{JustPressed: true, Pressed: true, X: 100, Y: 300, TouchID: -1},
		{Pressed: true, X: 100, Y: 300, TouchID: -1}, // 位置未变，不送入引擎
		{Pressed: true, X: 160, Y: 300, TouchID: -1},
		{Pressed: true, X: 220, Y: 310, TouchID: -1},
	}
	for i, sample := range steps {
		s.drag.Advance(sample)
		s.handlePointer(s.drag.GetInfo(), 0.1+float64(i)*0.01)
	}

	v := s.engine.View()
	if len(v.Trail) != 3 {
		t.Fatalf("trail length = %d, want 3", len(v.Trail))
	}
	if last := v.Trail[len(v.Trail)-1]; last.Position.X != 220 || last.Position.Y != 310 {
		t.Errorf("last trail point = %+v, want (220, 310)", last.Position)
	}
}

func TestDispatchFlashesOnPenalty(t *testing.T) {
	s := newTestScene(t, types.ModeArcade)
	s.dispatch([]events.Event{{Type: events.SlashGenuine, Amount: 10}})
	if s.flash != 0 {
		t.Fatalf("flash after genuine slash = %v, want 0", s.flash)
	}
	s.dispatch([]events.Event{{Type: events.Miss, Amount: -5}})
	if s.flash != flashDuration {
		t.Errorf("flash after miss = %v, want %v", s.flash, flashDuration)
	}
}
