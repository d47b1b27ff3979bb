package systems

import (
	"math"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/events"
	"github.com/decker502/watchninja/pkg/game"
)

// SwipeDirection 报价卡片上的划动方向
type SwipeDirection int

const (
	// SwipeNone 方向不明确，不处理卡片
	SwipeNone SwipeDirection = iota
	// SwipeAccept 向右划：接受报价
	SwipeAccept
	// SwipeReject 向左划：拒绝报价
	SwipeReject
)

// SlashSystem 轨迹与实体的碰撞判定
//
// 第一幕：轨迹线段穿过手表判定圆即切中，切中后立刻标记 Slashed，
// 同一只手表在任何后续帧都不会再次结算。
// 第二幕：轨迹穿过报价卡片后按整条手势的水平方向决定接受或拒绝。
type SlashSystem struct {
	world   *game.World
	trail   *TrailSystem
	score   *ScoreSystem
	effects *EffectSystem
}

// NewSlashSystem 创建切割判定系统
// 参数:
//   - w: 本局模拟上下文
//   - trail: 轨迹来源
//   - score: 得分与连击
//   - effects: 切开效果
func NewSlashSystem(w *game.World, trail *TrailSystem, score *ScoreSystem, effects *EffectSystem) *SlashSystem {
	return &SlashSystem{
		world:   w,
		trail:   trail,
		score:   score,
		effects: effects,
	}
}

// SegmentHitsCircle 线段 ab 到圆心 c 的最近距离是否不超过 r
func SegmentHitsCircle(a, b, c components.Vec2, r float64) bool {
	ab := b.Sub(a)
	t := 0.0
	if lenSq := ab.LenSq(); lenSq > 0 {
		t = c.Sub(a).Dot(ab) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	closest := a.Add(ab.Scale(t))
	return c.Sub(closest).LenSq() <= r*r
}

// hitSegment 返回最近轨迹中第一条穿过判定圆的线段
func hitSegment(pts []components.TrailPoint, center components.Vec2, r float64) (components.Vec2, components.Vec2, bool) {
	for j := 1; j < len(pts); j++ {
		a, b := pts[j-1].Position, pts[j].Position
		if SegmentHitsCircle(a, b, center, r) {
			return a, b, true
		}
	}
	return components.Vec2{}, components.Vec2{}, false
}

// ClassifySwipe 按整条手势的首尾位移判定方向
// 水平位移需超过最小距离，且超过 竖直位移 × ratio
func ClassifySwipe(pts []components.TrailPoint, minDistance, ratio float64) SwipeDirection {
	if len(pts) < 2 {
		return SwipeNone
	}
	d := pts[len(pts)-1].Position.Sub(pts[0].Position)
	if math.Abs(d.X) <= minDistance || math.Abs(d.X) <= ratio*math.Abs(d.Y) {
		return SwipeNone
	}
	if d.X > 0 {
		return SwipeAccept
	}
	return SwipeReject
}

// UpdateCollectibles 第一幕：检测轨迹切中的手表
func (s *SlashSystem) UpdateCollectibles() {
	cfg := s.world.Config.Trail
	pts := s.trail.Recent(cfg.CollisionPoints)
	if len(pts) < 2 {
		return
	}

	pool := s.world.Collectibles
	for i, c := range pool.Items() {
		if c.Slashed || pool.IsMarked(i) {
			continue
		}
		a, b, hit := hitSegment(pts, c.Position, c.Size/2*cfg.HitGenerosity)
		if !hit {
			continue
		}
		c.Slashed = true
		s.resolveSlash(c, b.Sub(a).Angle())
		pool.Destroy(i)
	}
	pool.RemoveMarked()
}

func (s *SlashSystem) resolveSlash(c *components.CollectibleComponent, angle float64) {
	var points int
	var kind events.Type
	switch {
	case c.IsCounterfeit:
		points = s.score.RegisterCounterfeit(c.Value)
		kind = events.SlashCounterfeit
	case c.IsPremium:
		points = s.score.RegisterGenuine(c.Value)
		kind = events.SlashPremium
	default:
		points = s.score.RegisterGenuine(c.Value)
		kind = events.SlashGenuine
	}

	if s.world.IsMarket() {
		// 倍数取本次切中之后的值
		cost := c.DisplayPrice
		if s.world.Config.Scoring.ComboDiscount {
			cost = game.DiscountedCost(c.DisplayPrice, s.world.Ledger.ComboMultiplier)
		}
		s.world.Economy.Purchase(components.InventoryItem{
			Brand:         c.Brand,
			IsCounterfeit: c.IsCounterfeit,
			IsPremium:     c.IsPremium,
			DisplayPrice:  c.DisplayPrice,
			Cost:          cost,
		})
	}

	s.effects.SpawnSlice(c, angle)
	s.effects.SpawnPopup(c.Position, points)
	s.world.Emit(events.Event{Type: kind, Position: c.Position, Angle: angle, Amount: points})
}

// UpdateOffers 第二幕：检测轨迹穿过的报价卡片并按划动方向处理
func (s *SlashSystem) UpdateOffers() {
	cfg := s.world.Config.Trail
	recent := s.trail.Recent(cfg.CollisionPoints)
	if len(recent) < 2 {
		return
	}
	dir := ClassifySwipe(s.trail.Points(), cfg.SwipeMinDistance, cfg.SwipeRatio)
	if dir == SwipeNone {
		return
	}

	pool := s.world.Offers
	for i, o := range pool.Items() {
		if o.Resolved || pool.IsMarked(i) {
			continue
		}
		r := math.Max(o.Width, o.Height) / 2 * cfg.OfferHitGenerosity
		a, b, hit := hitSegment(recent, o.Position, r)
		if !hit {
			continue
		}
		o.Slashed = true
		o.Resolved = true
		if dir == SwipeAccept {
			s.accept(o, b.Sub(a).Angle())
			pool.Destroy(i)
		} else {
			s.reject(o)
		}
	}
	pool.RemoveMarked()
}

func (s *SlashSystem) accept(o *components.BuyerOfferComponent, angle float64) {
	profit, ok := s.world.Economy.Accept(o.TargetIndex, o.OfferPrice)
	if !ok {
		return
	}
	kind := events.OfferAcceptedGood
	clr := ColorSold
	if profit < 0 {
		kind = events.OfferAcceptedBad
		clr = ColorCounterfeit
	}
	s.effects.SpawnBurst(o.Position, clr)
	s.effects.SpawnPopup(o.Position, profit)
	s.world.Emit(events.Event{Type: kind, Position: o.Position, Angle: angle, Amount: o.OfferPrice})
}

// reject 拒绝报价：商品回到报价池，卡片被甩向左侧飞出
// 卡片已标记 Resolved，飞出屏幕时不会再次释放商品
func (s *SlashSystem) reject(o *components.BuyerOfferComponent) {
	s.world.Economy.Release(o.TargetIndex)
	o.Velocity.X = -s.world.Config.Offers.RejectFling
	o.RotationSpeed = -4
	s.world.Emit(events.Event{Type: events.OfferRejected, Position: o.Position, Amount: o.OfferPrice})
}
