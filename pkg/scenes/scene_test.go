package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingScene struct {
	updates []float64
	draws   int
}

func (s *recordingScene) Update(now float64)        { s.updates = append(s.updates, now) }
func (s *recordingScene) Draw(screen *ebiten.Image) { s.draws++ }

func TestSceneManager(t *testing.T) {
	sm := NewSceneManager()

	// 没有场景时什么都不做
	sm.Update(1)
	sm.Draw(nil)
	if sm.GetCurrentScene() != nil {
		t.Fatal("new manager should have no scene")
	}

	first, second := &recordingScene{}, &recordingScene{}
	sm.SwitchTo(first)
	sm.Update(2)
	sm.Draw(nil)
	sm.SwitchTo(second)
	sm.Update(3)

	if len(first.updates) != 1 || first.updates[0] != 2 || first.draws != 1 {
		t.Errorf("first scene got updates=%v draws=%d, want [2] and 1", first.updates, first.draws)
	}
	if len(second.updates) != 1 || second.updates[0] != 3 {
		t.Errorf("second scene got updates=%v, want [3]", second.updates)
	}
	if sm.GetCurrentScene() != Scene(second) {
		t.Error("current scene should be the last one switched to")
	}
}
