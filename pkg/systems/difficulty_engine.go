package systems

import (
	"math"

	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/game"
	"github.com/decker502/watchninja/pkg/utils"
)

// Difficulty 某一时刻的难度参数
type Difficulty struct {
	Progress          float64 // t ∈ [0, 1]
	SpawnInterval     float64 // 秒
	SpeedMultiplier   float64 // 抛射速度倍数
	CounterfeitChance float64 // 非金表中为假货的概率
	FakeNameTier      int     // 假货品牌名分级下标
}

// DifficultyEngine 难度引擎
// 负责把第一幕已用时间换算成生成间隔、速度、假货比例和假名难度
type DifficultyEngine struct {
	spawn    config.SpawnConfig
	duration float64
}

// NewDifficultyEngine 创建新的难度引擎实例
// 参数:
//
//	spawn - 生成与难度曲线配置
//	act1Duration - 第一幕时长（秒），进度 t = 已用时间 / 时长
func NewDifficultyEngine(spawn config.SpawnConfig, act1Duration float64) *DifficultyEngine {
	return &DifficultyEngine{
		spawn:    spawn,
		duration: act1Duration,
	}
}

// Progress 计算进度 t，限制在 [0, 1]
func (d *DifficultyEngine) Progress(elapsed float64) float64 {
	if d.duration <= 0 {
		return 1
	}
	return utils.Clamp01(elapsed / d.duration)
}

// At 计算指定已用时间的难度参数
// 公式:
//
//	间隔 = max(最小间隔, 基础间隔 - t² × 幅度)
//	速度 = 1 + t × 速度幅度
//	假货概率 = 基础概率 + t × 增长幅度
//	假名分级 = min(分级数-1, floor(t × 分级数))
func (d *DifficultyEngine) At(elapsed float64) Difficulty {
	t := d.Progress(elapsed)
	return Difficulty{
		Progress:          t,
		SpawnInterval:     math.Max(d.spawn.MinInterval, d.spawn.BaseInterval-utils.EaseInQuad(t)*d.spawn.IntervalRange),
		SpeedMultiplier:   1 + t*d.spawn.SpeedRange,
		CounterfeitChance: d.spawn.CounterfeitBase + t*d.spawn.CounterfeitRange,
		FakeNameTier:      d.tierFor(t),
	}
}

func (d *DifficultyEngine) tierFor(t float64) int {
	n := len(d.spawn.FakeNameTiers)
	if n == 0 {
		return 0
	}
	tier := int(math.Floor(t * float64(n)))
	if tier > n-1 {
		tier = n - 1
	}
	return tier
}

// FakeName 从指定分级中随机挑选一个假货品牌名
// 分级为空时退回正品品牌名（只剩配色可供分辨）
func (d *DifficultyEngine) FakeName(rng game.RandomSource, tier int) string {
	if tier < 0 || tier >= len(d.spawn.FakeNameTiers) || len(d.spawn.FakeNameTiers[tier]) == 0 {
		return d.spawn.GenuineBrand
	}
	names := d.spawn.FakeNameTiers[tier]
	return names[rng.Intn(len(names))]
}
