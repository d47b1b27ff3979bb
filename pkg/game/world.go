package game

import (
	"github.com/google/uuid"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/ecs"
	"github.com/decker502/watchninja/pkg/events"
	"github.com/decker502/watchninja/pkg/types"
)

// World 一局游戏的模拟上下文
//
// 所有可变状态（实体集合、账本、库存、阶段）都挂在这里，
// 由帧回调独占访问；各系统在构造时持有同一个 World 指针。
// 没有全局单例：重新开始一局就是创建一个新的 World。
type World struct {
	Config  *config.GameConfig
	RNG     RandomSource
	RoundID uuid.UUID

	Phase   *PhaseMachine
	Ledger  *Ledger
	Economy *Economy
	Events  *events.Outbox

	Collectibles *ecs.Pool[*components.CollectibleComponent]
	Offers       *ecs.Pool[*components.BuyerOfferComponent]
	Halves       *ecs.Pool[*components.SplitHalfComponent]
	Particles    *ecs.Pool[*components.ParticleComponent]
	Popups       *ecs.Pool[*components.PopupComponent]
}

// NewWorld 创建处于 Start 阶段的新一局
func NewWorld(cfg *config.GameConfig, rng RandomSource) *World {
	ledger := NewLedger()
	return &World{
		Config:       cfg,
		RNG:          rng,
		RoundID:      uuid.New(),
		Phase:        NewPhaseMachine(cfg.Mode),
		Ledger:       ledger,
		Economy:      NewEconomy(ledger),
		Events:       events.NewOutbox(),
		Collectibles: ecs.NewPool[*components.CollectibleComponent](),
		Offers:       ecs.NewPool[*components.BuyerOfferComponent](),
		Halves:       ecs.NewPool[*components.SplitHalfComponent](),
		Particles:    ecs.NewPool[*components.ParticleComponent](),
		Popups:       ecs.NewBoundedPool[*components.PopupComponent](cfg.Effects.PopupLimit),
	}
}

// Emit 发出事件，自动附带本局 ID 和当前阶段
func (w *World) Emit(e events.Event) {
	e.RoundID = w.RoundID
	e.Phase = w.Phase.Current()
	w.Events.Emit(e)
}

// IsMarket 是否为两幕玩法
func (w *World) IsMarket() bool {
	return w.Phase.Mode() == types.ModeMarket
}
