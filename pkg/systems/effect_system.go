package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/game"
	"github.com/decker502/watchninja/pkg/utils"
)

// 切片碎屑配色，渲染表盘时使用同一组颜色
var (
	ColorGenuine     = color.RGBA{R: 42, G: 125, B: 79, A: 255}
	ColorCounterfeit = color.RGBA{R: 204, G: 51, B: 51, A: 255}
	ColorPremium     = color.RGBA{R: 255, G: 200, B: 50, A: 255}
	ColorSold        = color.RGBA{R: 90, G: 200, B: 120, A: 255}
)

// EffectSystem 纯装饰实体的效果系统
//
// 管理切开的半块、碎屑粒子和飘字提示，这些实体不影响账本。
// 飘字放在有上限的池中，超出上限时淘汰最早的一条。
type EffectSystem struct {
	world   *game.World
	effects config.EffectsConfig
	physics config.PhysicsConfig
}

// NewEffectSystem 创建效果系统
//
// 参数:
//   - w: 本局模拟上下文
//
// 返回:
//   - *EffectSystem: 效果系统实例
func NewEffectSystem(w *game.World) *EffectSystem {
	return &EffectSystem{
		world:   w,
		effects: w.Config.Effects,
		physics: w.Config.Physics,
	}
}

// SliceColor 被切中手表的碎屑颜色
func SliceColor(c *components.CollectibleComponent) color.RGBA {
	switch {
	case c.IsCounterfeit:
		return ColorCounterfeit
	case c.IsPremium:
		return ColorPremium
	default:
		return ColorGenuine
	}
}

// SpawnSlice 用两个半块替换被切中的手表，并产生一团碎屑
// 两个半块沿切线法线方向分开
func (s *EffectSystem) SpawnSlice(c *components.CollectibleComponent, angle float64) {
	normal := components.Vec2{X: -math.Sin(angle), Y: math.Cos(angle)}
	for _, side := range []components.ClipSide{components.ClipLeft, components.ClipRight} {
		dir := 1.0
		if side == components.ClipLeft {
			dir = -1
		}
		s.world.Halves.Add(&components.SplitHalfComponent{
			Kinematics: components.Kinematics{
				Position:      c.Position,
				Velocity:      c.Velocity.Scale(0.5).Add(normal.Scale(dir * s.effects.SplitSpeed)),
				Rotation:      c.Rotation,
				RotationSpeed: c.RotationSpeed + dir*2,
				GravityScale:  1,
				Slashed:       true,
			},
			Size:      c.Size,
			Side:      side,
			CutAngle:  angle,
			Brand:     c.Brand,
			Style:     c.Style,
			Sneaky:    c.Sneaky,
			Premium:   c.IsPremium,
			Fake:      c.IsCounterfeit,
			Life:      s.effects.SplitLife,
			MaxLife:   s.effects.SplitLife,
			FadeAlpha: 1,
		})
	}
	s.SpawnBurst(c.Position, SliceColor(c))
}

// SpawnBurst 向随机方向发射 ParticleCount 个粒子
func (s *EffectSystem) SpawnBurst(pos components.Vec2, clr color.RGBA) {
	rng := s.world.RNG
	for i := 0; i < s.effects.ParticleCount; i++ {
		theta := game.RandRange(rng, 0, 2*math.Pi)
		speed := s.effects.ParticleSpeed * game.RandRange(rng, 0.5, 1)
		life := game.RandRange(rng, s.effects.ParticleLifeMin, s.effects.ParticleLifeMax)
		s.world.Particles.Add(&components.ParticleComponent{
			Kinematics: components.Kinematics{
				Position:     pos,
				Velocity:     components.Vec2{X: math.Cos(theta) * speed, Y: math.Sin(theta) * speed},
				GravityScale: 1,
			},
			Color:   clr,
			Radius:  game.RandRange(rng, 2, 5),
			Life:    life,
			MaxLife: life,
		})
	}
}

// SpawnPopup 添加一条 "+15€" 样式的飘字，负数显示为扣分颜色
func (s *EffectSystem) SpawnPopup(pos components.Vec2, amount int) {
	text := fmt.Sprintf("%+d€", amount)
	s.world.Popups.Add(&components.PopupComponent{
		Position:  pos,
		VelocityY: -s.effects.PopupRise / s.effects.PopupLife,
		Text:      text,
		Negative:  amount < 0,
		Life:      s.effects.PopupLife,
		Alpha:     1,
	})
}

// Update 推进所有装饰实体并移除已过期的
func (s *EffectSystem) Update(dt float64) {
	s.updateHalves(dt)
	s.updateParticles(dt)
	s.updatePopups(dt)
}

func (s *EffectSystem) updateHalves(dt float64) {
	pool := s.world.Halves
	for i, h := range pool.Items() {
		Integrate(h.Body(), GravityFor(s.physics, h), dt)
		h.Life -= dt
		if h.MaxLife > 0 {
			h.FadeAlpha = utils.Clamp01(h.Life / h.MaxLife)
		}
		if h.Life <= 0 || h.Position.Y > s.world.Config.Playfield.Height+s.physics.BottomMargin {
			pool.Destroy(i)
		}
	}
	pool.RemoveMarked()
}

func (s *EffectSystem) updateParticles(dt float64) {
	pool := s.world.Particles
	for i, p := range pool.Items() {
		Integrate(p.Body(), GravityFor(s.physics, p), dt)
		p.Velocity.X *= s.physics.ParticleDrag
		p.Life -= dt
		if p.Life <= 0 {
			pool.Destroy(i)
		}
	}
	pool.RemoveMarked()
}

func (s *EffectSystem) updatePopups(dt float64) {
	pool := s.world.Popups
	for i, p := range pool.Items() {
		p.Age += dt
		p.Position.Y += p.VelocityY * dt
		if p.Life > 0 {
			p.Alpha = 1 - utils.EaseInQuad(utils.Clamp01(p.Age/p.Life))
		}
		if p.Age >= p.Life {
			pool.Destroy(i)
		}
	}
	pool.RemoveMarked()
}

// Clear 丢弃全部装饰实体，第一幕结束时调用
func (s *EffectSystem) Clear() {
	s.world.Halves.Clear()
	s.world.Particles.Clear()
	s.world.Popups.Clear()
}
