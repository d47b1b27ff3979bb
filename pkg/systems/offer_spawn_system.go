package systems

import (
	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/game"
	"github.com/decker502/watchninja/pkg/utils"
)

// OfferSpawnSystem 第二幕中定时为库存商品生成买家报价卡片
//
// 报价策略：
//   - 金表：固定高价区间
//   - 假货：固定低价区间
//   - 正品：以一定概率低于成本（概率随进度上升），否则高于成本，
//     加价上限随进度收窄
type OfferSpawnSystem struct {
	world      *game.World
	spawnTimer float64
}

// NewOfferSpawnSystem 创建报价生成系统
func NewOfferSpawnSystem(w *game.World) *OfferSpawnSystem {
	return &OfferSpawnSystem{world: w}
}

// Update 累加计时器，到达间隔时尝试生成一张报价卡片
// elapsed 为第二幕已用时间
func (s *OfferSpawnSystem) Update(dt, elapsed float64) {
	s.spawnTimer += dt
	interval := s.world.Config.Offers.Interval
	if s.spawnTimer < interval {
		return
	}
	s.spawnTimer -= interval
	s.Spawn(s.progress(elapsed))
}

func (s *OfferSpawnSystem) progress(elapsed float64) float64 {
	d := s.world.Config.Timing.Act2Duration
	if d <= 0 {
		return 1
	}
	return utils.Clamp01(elapsed / d)
}

// Spawn 为下一件可报价商品生成卡片
// 报价池为空（全部已售或都有卡片在场）时跳过，返回 false
func (s *OfferSpawnSystem) Spawn(t float64) (*components.BuyerOfferComponent, bool) {
	idx, ok := s.world.Economy.NextEligible()
	if !ok {
		return nil, false
	}
	item, _ := s.world.Economy.Item(idx)

	cfg := s.world.Config
	o := &components.BuyerOfferComponent{
		Kinematics:    Launch(s.world.RNG, cfg, cfg.Offers.CardHeight, 1),
		Width:         cfg.Offers.CardWidth,
		Height:        cfg.Offers.CardHeight,
		TargetIndex:   idx,
		Brand:         item.Brand,
		OfferPrice:    s.OfferPrice(item, t),
		Cost:          item.Cost,
		IsCounterfeit: item.IsCounterfeit,
		IsPremium:     item.IsPremium,
	}
	// 卡片只做轻微摆动，保持文字可读
	o.RotationSpeed *= 0.1
	s.world.Offers.Add(o)
	return o, true
}

// OfferPrice 按报价策略为商品出价
// t 为第二幕进度 [0, 1]
func (s *OfferSpawnSystem) OfferPrice(item *components.InventoryItem, t float64) int {
	offers := s.world.Config.Offers
	rng := s.world.RNG

	switch {
	case item.IsPremium:
		return game.RandIntRange(rng, offers.PremiumRange.Min, offers.PremiumRange.Max)
	case item.IsCounterfeit:
		return game.RandIntRange(rng, offers.CounterfeitRange.Min, offers.CounterfeitRange.Max)
	}

	badChance := offers.BadChanceBase + t*offers.BadChanceRange
	if game.Chance(rng, badChance) {
		discount := game.RandRange(rng, offers.BadDiscountMin, offers.BadDiscountMax)
		price := game.ApplyRate(item.Cost, -discount)
		if price >= item.Cost {
			price = item.Cost - 1
		}
		if price < 1 {
			price = 1
		}
		return price
	}

	maxMarkup := utils.Lerp(offers.GoodMarkupStart, offers.GoodMarkupEnd, t)
	if maxMarkup < offers.GoodMarkupMin {
		maxMarkup = offers.GoodMarkupMin
	}
	markup := game.RandRange(rng, offers.GoodMarkupMin, maxMarkup)
	price := game.ApplyRate(item.Cost, markup)
	if price <= item.Cost {
		price = item.Cost + 1
	}
	return price
}
