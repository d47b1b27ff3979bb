package systems

import (
	"testing"

	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/game"
	"github.com/decker502/watchninja/pkg/types"
)

// fixedRandom 总是返回同一个值的随机源
type fixedRandom struct {
	f float64
	n int
}

func (r *fixedRandom) Float64() float64 { return r.f }

func (r *fixedRandom) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

// scriptedRandom 依次返回预设的值，用完后循环
type scriptedRandom struct {
	floats []float64
	fi     int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRandom) Intn(n int) int { return 0 }

// newTestWorld 使用默认配置创建一局并进入指定阶段
func newTestWorld(t *testing.T, rng game.RandomSource, phases ...types.RoundPhase) *game.World {
	t.Helper()
	if rng == nil {
		rng = &fixedRandom{f: 0.5}
	}
	w := game.NewWorld(config.Default(), rng)
	for _, p := range phases {
		if err := w.Phase.Transition(p); err != nil {
			t.Fatalf("transition to %v: %v", p, err)
		}
	}
	return w
}

func arcadeConfig() *config.GameConfig {
	cfg := config.Default()
	cfg.Mode = types.ModeArcade
	return cfg
}
