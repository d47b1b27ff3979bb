package systems

import (
	"math"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/game"
)

// SpawnSystem 第一幕中按难度曲线定时抛出手表
type SpawnSystem struct {
	world      *game.World
	difficulty *DifficultyEngine
	spawnTimer float64 // 距上次生成的累计时间
}

// NewSpawnSystem 创建手表生成系统
// 参数:
//   - w: 本局模拟上下文
//   - d: 难度引擎，提供生成间隔和假货比例
func NewSpawnSystem(w *game.World, d *DifficultyEngine) *SpawnSystem {
	return &SpawnSystem{
		world:      w,
		difficulty: d,
	}
}

// Update 累加计时器，达到当前难度的生成间隔时抛出一只手表
// elapsed 为第一幕已用时间
func (s *SpawnSystem) Update(dt, elapsed float64) {
	s.spawnTimer += dt
	diff := s.difficulty.At(elapsed)
	if s.spawnTimer < diff.SpawnInterval {
		return
	}
	s.spawnTimer -= diff.SpawnInterval
	s.Spawn(diff)
}

// Spawn 按给定难度生成一只手表并加入场地
func (s *SpawnSystem) Spawn(diff Difficulty) *components.CollectibleComponent {
	cfg := s.world.Config
	rng := s.world.RNG

	c := &components.CollectibleComponent{
		Kinematics: Launch(rng, cfg, cfg.Spawn.ItemSize, diff.SpeedMultiplier),
		Size:       cfg.Spawn.ItemSize,
		Style:      components.WatchStyle(rng.Intn(components.WatchStyleCount)),
	}

	// 金表概率固定，其余按难度决定真假
	switch {
	case game.Chance(rng, cfg.Spawn.PremiumChance):
		c.IsPremium = true
		c.Brand = cfg.Spawn.GenuineBrand
		c.DisplayPrice = game.RandIntRange(rng, cfg.Prices.Premium.Min, cfg.Prices.Premium.Max)
		c.Value = cfg.Scoring.PremiumPoints
	case game.Chance(rng, diff.CounterfeitChance):
		c.IsCounterfeit = true
		c.Brand = s.difficulty.FakeName(rng, diff.FakeNameTier)
		c.Sneaky = game.Chance(rng, cfg.Spawn.SneakyChance)
		c.DisplayPrice = game.RandIntRange(rng, cfg.Prices.Counterfeit.Min, cfg.Prices.Counterfeit.Max)
		c.Value = cfg.Scoring.CounterfeitPoints
	default:
		c.Brand = cfg.Spawn.GenuineBrand
		c.DisplayPrice = game.RandIntRange(rng, cfg.Prices.Genuine.Min, cfg.Prices.Genuine.Max)
		c.Value = cfg.Scoring.GenuinePoints
	}

	s.world.Collectibles.Add(c)
	return c
}

// Launch 计算从场地底部抛起的初始运动状态
//
// 随机选择左右两侧之一，朝场地中央方向抛出，顶点落在场地上部三分之一。
// 速度倍数 s 同时放大初速度并把重力缩放到 s²，顶点高度不随速度变化。
func Launch(rng game.RandomSource, cfg *config.GameConfig, size, speed float64) components.Kinematics {
	field := cfg.Playfield
	gravity := cfg.Physics.Gravity

	fromLeft := game.Chance(rng, 0.5)
	var x, vx float64
	if fromLeft {
		x = field.Width * game.RandRange(rng, 0.1, 0.4)
		vx = game.RandRange(rng, 30, 110)
	} else {
		x = field.Width * game.RandRange(rng, 0.6, 0.9)
		vx = -game.RandRange(rng, 30, 110)
	}
	y := field.Height + cfg.Physics.SpawnDepth

	apexY := field.Height*game.RandRange(rng, 0.08, 1.0/3) + size/2
	rise := y - apexY
	vy := -math.Sqrt(2 * gravity * rise)

	return components.Kinematics{
		Position:      components.Vec2{X: x, Y: y},
		Velocity:      components.Vec2{X: vx * speed, Y: vy * speed},
		RotationSpeed: game.RandRange(rng, -1.5, 1.5),
		GravityScale:  speed * speed,
	}
}
