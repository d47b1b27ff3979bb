package engine

import (
	"github.com/google/uuid"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/game"
	"github.com/decker502/watchninja/pkg/types"
)

// View 渲染用的只读快照
// 切片直接引用引擎内部集合，只在当前帧内有效，渲染方不得修改
type View struct {
	RoundID   uuid.UUID
	Mode      types.GameMode
	Phase     types.RoundPhase
	Remaining float64 // 当前幕剩余秒数，非计时阶段为 0
	Paused    bool

	Collectibles []*components.CollectibleComponent
	Offers       []*components.BuyerOfferComponent
	Halves       []*components.SplitHalfComponent
	Particles    []*components.ParticleComponent
	Popups       []*components.PopupComponent
	Trail        []components.TrailPoint

	Ledger    game.Ledger
	Inventory []*components.InventoryItem
	Rating    config.RatingTier

	Final     int
	Finalized bool
	BestScore int
	HasBest   bool
	NewBest   bool
}

// View 生成当前帧的快照
func (e *Engine) View() View {
	w := e.world
	return View{
		RoundID:      w.RoundID,
		Mode:         w.Phase.Mode(),
		Phase:        w.Phase.Current(),
		Remaining:    e.remaining(),
		Paused:       e.clock.Paused(),
		Collectibles: w.Collectibles.Items(),
		Offers:       w.Offers.Items(),
		Halves:       w.Halves.Items(),
		Particles:    w.Particles.Items(),
		Popups:       w.Popups.Items(),
		Trail:        e.trail.Points(),
		Ledger:       *w.Ledger,
		Inventory:    w.Economy.Inventory(),
		Rating:       e.score.Rating(w.Ledger.Score),
		Final:        e.final,
		Finalized:    e.finalized,
		BestScore:    e.best,
		HasBest:      e.hasBest,
		NewBest:      e.newBest,
	}
}

func (e *Engine) remaining() float64 {
	var duration float64
	switch e.world.Phase.Current() {
	case types.PhaseAct1:
		duration = e.cfg.Timing.Act1Duration
	case types.PhaseAct2:
		duration = e.cfg.Timing.Act2Duration
	default:
		return 0
	}
	if left := duration - e.world.Phase.Elapsed(); left > 0 {
		return left
	}
	return 0
}
