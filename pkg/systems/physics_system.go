package systems

import (
	"math"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/ecs"
	"github.com/decker502/watchninja/pkg/events"
	"github.com/decker502/watchninja/pkg/game"
	"github.com/decker502/watchninja/pkg/types"
)

// missPopupInset 漏接提示距场地边缘的距离
const missPopupInset = 30.0

// PhysicsSystem 处理抛体运动与出界判定
//
// 手表和报价卡片离开场地后在这里被移除：
//   - 第一幕中未切中的正品掉出屏幕算漏接，扣分并清零连击，每件只结算一次
//   - 未解决的报价卡片飞出屏幕时释放对应库存，之后可再次生成报价
type PhysicsSystem struct {
	world   *game.World
	score   *ScoreSystem
	effects *EffectSystem
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - w: 本局模拟上下文
//   - score: 得分系统，用于结算漏接
//   - effects: 效果系统，用于显示漏接扣分
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(w *game.World, score *ScoreSystem, effects *EffectSystem) *PhysicsSystem {
	return &PhysicsSystem{
		world:   w,
		score:   score,
		effects: effects,
	}
}

// Integrate 推进一个抛体
// 重力按 GravityScale 缩放，先更新速度再更新位置
func Integrate(k *components.Kinematics, gravity, dt float64) {
	k.Velocity.Y += gravity * k.GravityScale * dt
	k.Position = k.Position.Add(k.Velocity.Scale(dt))
	k.Rotation += k.RotationSpeed * dt
}

// GravityFor 按实体种类选择重力加速度，碎屑粒子使用较轻的重力
func GravityFor(phys config.PhysicsConfig, e components.Entity) float64 {
	if e.Kind() == components.KindParticle {
		return phys.ParticleGravity
	}
	return phys.Gravity
}

// OutOfBounds 是否已离开场地
// 下落穿过底边（含余量）或超出左右边界（含余量）
func (s *PhysicsSystem) OutOfBounds(k *components.Kinematics) bool {
	field := s.world.Config.Playfield
	phys := s.world.Config.Physics
	if k.Position.Y > field.Height+phys.BottomMargin && k.Velocity.Y > 0 {
		return true
	}
	return k.Position.X < -phys.SideMargin || k.Position.X > field.Width+phys.SideMargin
}

// advance 推进池中每个实体，出界的实体先交给 exit 处理再移除
func advance[T components.Entity](s *PhysicsSystem, pool *ecs.Pool[T], dt float64, exit func(T)) {
	phys := s.world.Config.Physics
	for i, e := range pool.Items() {
		if pool.IsMarked(i) {
			continue
		}
		body := e.Body()
		Integrate(body, GravityFor(phys, e), dt)
		if !s.OutOfBounds(body) {
			continue
		}
		pool.Destroy(i)
		exit(e)
	}
	pool.RemoveMarked()
}

// UpdateCollectibles 推进第一幕的手表并清理出界实体
func (s *PhysicsSystem) UpdateCollectibles(dt float64) {
	advance(s, s.world.Collectibles, dt, s.collectibleExited)
}

func (s *PhysicsSystem) collectibleExited(c *components.CollectibleComponent) {
	if c.Slashed || !c.IsGenuine() || s.world.Phase.Current() != types.PhaseAct1 {
		return
	}
	penalty := s.score.RegisterMiss()
	s.world.Emit(events.Event{Type: events.Miss, Position: c.Position, Amount: penalty})
	if s.effects != nil {
		s.effects.SpawnPopup(s.missPopupPosition(c.Position), penalty)
	}
}

// missPopupPosition 漏接提示放在手表离开处附近的可见区域内，贴近底边
func (s *PhysicsSystem) missPopupPosition(exit components.Vec2) components.Vec2 {
	field := s.world.Config.Playfield
	x := math.Max(missPopupInset, math.Min(exit.X, field.Width-missPopupInset))
	return components.Vec2{X: x, Y: field.Height - missPopupInset}
}

// UpdateOffers 推进第二幕的报价卡片并清理出界卡片
func (s *PhysicsSystem) UpdateOffers(dt float64) {
	advance(s, s.world.Offers, dt, func(o *components.BuyerOfferComponent) {
		if !o.Resolved {
			s.world.Economy.Release(o.TargetIndex)
		}
	})
}
