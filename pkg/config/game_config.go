package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/watchninja/pkg/types"
)

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏全部可调参数
// 默认值见 Default()，同样内容也嵌入在 data/game.yaml 中
type GameConfig struct {
	Mode      types.GameMode  `yaml:"mode"`      // 玩法变体：market / arcade
	Playfield PlayfieldConfig `yaml:"playfield"` // 场地尺寸
	Timing    TimingConfig    `yaml:"timing"`    // 各幕时长与帧间隔上限
	Trail     TrailConfig     `yaml:"trail"`     // 手势轨迹与切割判定
	Physics   PhysicsConfig   `yaml:"physics"`   // 抛体物理
	Spawn     SpawnConfig     `yaml:"spawn"`     // 第一幕生成与难度曲线
	Prices    PriceConfig     `yaml:"prices"`    // 第一幕标价
	Scoring   ScoringConfig   `yaml:"scoring"`   // 得分与连击
	Offers    OfferConfig     `yaml:"offers"`    // 第二幕买家报价
	Effects   EffectsConfig   `yaml:"effects"`   // 装饰性效果
}

// PlayfieldConfig 场地尺寸（逻辑像素）
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig 时间参数（秒）
type TimingConfig struct {
	Act1Duration  float64 `yaml:"act1Duration"`  // 第一幕时长
	Act2Duration  float64 `yaml:"act2Duration"`  // 第二幕时长
	MaxFrameDelta float64 `yaml:"maxFrameDelta"` // 单帧最大时间步长
}

// TrailConfig 手势轨迹参数
type TrailConfig struct {
	Lifetime           float64 `yaml:"lifetime"`           // 轨迹点存活时间（秒）
	MaxPoints          int     `yaml:"maxPoints"`          // 轨迹点上限
	CollisionPoints    int     `yaml:"collisionPoints"`    // 参与碰撞检测的最近轨迹点数
	HitGenerosity      float64 `yaml:"hitGenerosity"`      // 手表判定半径放大倍数
	OfferHitGenerosity float64 `yaml:"offerHitGenerosity"` // 报价卡片判定半径放大倍数
	SwipeMinDistance   float64 `yaml:"swipeMinDistance"`   // 方向划动最小水平位移
	SwipeRatio         float64 `yaml:"swipeRatio"`         // 水平位移需超过 竖直位移 × 该比例
}

// PhysicsConfig 抛体物理参数
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`         // 像素/秒²
	ParticleGravity float64 `yaml:"particleGravity"` // 粒子使用更轻的重力
	ParticleDrag    float64 `yaml:"particleDrag"`    // 粒子水平速度每步乘数
	SideMargin      float64 `yaml:"sideMargin"`      // 左右出界余量
	BottomMargin    float64 `yaml:"bottomMargin"`    // 底部出界余量
	SpawnDepth      float64 `yaml:"spawnDepth"`      // 生成位置在底边以下的距离
}

// SpawnConfig 第一幕生成与难度曲线参数
type SpawnConfig struct {
	BaseInterval     float64    `yaml:"baseInterval"`     // 开局生成间隔（秒）
	MinInterval      float64    `yaml:"minInterval"`      // 间隔下限
	IntervalRange    float64    `yaml:"intervalRange"`    // 间隔随 t² 缩短的幅度
	SpeedRange       float64    `yaml:"speedRange"`       // 速度倍数 = 1 + t × SpeedRange
	CounterfeitBase  float64    `yaml:"counterfeitBase"`  // 假货基础概率
	CounterfeitRange float64    `yaml:"counterfeitRange"` // 假货概率随 t 增长幅度
	PremiumChance    float64    `yaml:"premiumChance"`    // 金表概率（固定）
	SneakyChance     float64    `yaml:"sneakyChance"`     // 假货使用正品配色的概率
	ItemSize         float64    `yaml:"itemSize"`         // 手表直径
	GenuineBrand     string     `yaml:"genuineBrand"`     // 正品品牌名
	FakeNameTiers    [][]string `yaml:"fakeNameTiers"`    // 假货品牌名分级，越往后越难分辨
}

// PriceRange 闭区间整数价格
type PriceRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// PriceConfig 第一幕标价
type PriceConfig struct {
	Genuine     PriceRange `yaml:"genuine"`
	Counterfeit PriceRange `yaml:"counterfeit"`
	Premium     PriceRange `yaml:"premium"`
}

// ComboStep 连击阈值：连击数 ≥ MinCombo 时倍数为 Multiplier
type ComboStep struct {
	MinCombo   int `yaml:"minCombo"`
	Multiplier int `yaml:"multiplier"`
}

// RatingTier 卖家评级：得分 ≥ MinScore 时获得该评级
type RatingTier struct {
	MinScore int    `yaml:"minScore"`
	Stars    int    `yaml:"stars"`
	Label    string `yaml:"label"`
}

// ScoringConfig 得分参数
type ScoringConfig struct {
	GenuinePoints     int          `yaml:"genuinePoints"`
	CounterfeitPoints int          `yaml:"counterfeitPoints"`
	PremiumPoints     int          `yaml:"premiumPoints"`
	MissPenalty       int          `yaml:"missPenalty"`   // 正数，扣分时取负
	ComboDiscount     bool         `yaml:"comboDiscount"` // 买入成本是否按连击倍数打折
	Combo             []ComboStep  `yaml:"combo"`         // 升序
	Ratings           []RatingTier `yaml:"ratings"`       // 升序
}

// OfferConfig 第二幕报价参数
type OfferConfig struct {
	Interval         float64    `yaml:"interval"` // 报价卡片生成间隔（秒）
	CardWidth        float64    `yaml:"cardWidth"`
	CardHeight       float64    `yaml:"cardHeight"`
	PremiumRange     PriceRange `yaml:"premiumRange"`     // 金表报价（固定高价区间）
	CounterfeitRange PriceRange `yaml:"counterfeitRange"` // 假货报价（固定低价区间）
	BadChanceBase    float64    `yaml:"badChanceBase"`    // 正品低价报价基础概率
	BadChanceRange   float64    `yaml:"badChanceRange"`   // 随第二幕进度增长幅度
	BadDiscountMin   float64    `yaml:"badDiscountMin"`   // 低价报价 = 成本 × (1 - 折扣)
	BadDiscountMax   float64    `yaml:"badDiscountMax"`
	GoodMarkupMin    float64    `yaml:"goodMarkupMin"`      // 高价报价加价下限
	GoodMarkupStart  float64    `yaml:"goodMarkupMaxStart"` // 开场加价上限
	GoodMarkupEnd    float64    `yaml:"goodMarkupMaxEnd"`   // 结束时加价上限（区间收窄）
	RejectFling      float64    `yaml:"rejectFling"`        // 拒绝时卡片被甩出的速度
}

// EffectsConfig 装饰性效果参数
type EffectsConfig struct {
	SplitLife       float64 `yaml:"splitLife"`
	SplitSpeed      float64 `yaml:"splitSpeed"`
	ParticleCount   int     `yaml:"particleCount"`
	ParticleLifeMin float64 `yaml:"particleLifeMin"`
	ParticleLifeMax float64 `yaml:"particleLifeMax"`
	ParticleSpeed   float64 `yaml:"particleSpeed"`
	PopupLife       float64 `yaml:"popupLife"`
	PopupRise       float64 `yaml:"popupRise"`
	PopupLimit      int     `yaml:"popupLimit"`
}

// Parse 在 base 的基础上解析 YAML 配置并校验
// YAML 中未出现的字段保留 base 中的值
func Parse(data []byte, base *GameConfig) (*GameConfig, error) {
	cfg := Default()
	if base != nil {
		copied := *base
		cfg = &copied
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile 从 YAML 文件加载配置，覆盖在 base 之上
func LoadFile(filePath string, base *GameConfig) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}

	cfg, err := Parse(data, base)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filePath, err)
	}
	return cfg, nil
}

// Validate 校验配置，时长为零或负数直接报错，避免出现永不结束的回合
func (c *GameConfig) Validate() error {
	if !c.Mode.IsValid() {
		return invalid("unknown mode %q", c.Mode)
	}

	positives := []struct {
		name  string
		value float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"timing.act1Duration", c.Timing.Act1Duration},
		{"timing.act2Duration", c.Timing.Act2Duration},
		{"timing.maxFrameDelta", c.Timing.MaxFrameDelta},
		{"trail.lifetime", c.Trail.Lifetime},
		{"trail.hitGenerosity", c.Trail.HitGenerosity},
		{"trail.offerHitGenerosity", c.Trail.OfferHitGenerosity},
		{"physics.gravity", c.Physics.Gravity},
		{"spawn.baseInterval", c.Spawn.BaseInterval},
		{"spawn.minInterval", c.Spawn.MinInterval},
		{"spawn.itemSize", c.Spawn.ItemSize},
		{"offers.interval", c.Offers.Interval},
		{"offers.cardWidth", c.Offers.CardWidth},
		{"offers.cardHeight", c.Offers.CardHeight},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return invalid("%s must be > 0, got %v", p.name, p.value)
		}
	}

	// 难度曲线的幅度只能朝一个方向变化
	ramps := []struct {
		name  string
		value float64
	}{
		{"spawn.intervalRange", c.Spawn.IntervalRange},
		{"spawn.speedRange", c.Spawn.SpeedRange},
		{"spawn.counterfeitRange", c.Spawn.CounterfeitRange},
		{"offers.badChanceRange", c.Offers.BadChanceRange},
	}
	for _, r := range ramps {
		if r.value < 0 {
			return invalid("%s must be >= 0, got %v", r.name, r.value)
		}
	}

	if c.Trail.MaxPoints < 2 {
		return invalid("trail.maxPoints must be >= 2, got %d", c.Trail.MaxPoints)
	}
	if c.Trail.CollisionPoints < 2 {
		return invalid("trail.collisionPoints must be >= 2, got %d", c.Trail.CollisionPoints)
	}

	probabilities := []struct {
		name  string
		value float64
	}{
		{"spawn.counterfeitBase", c.Spawn.CounterfeitBase},
		{"spawn.counterfeitBase+counterfeitRange", c.Spawn.CounterfeitBase + c.Spawn.CounterfeitRange},
		{"spawn.premiumChance", c.Spawn.PremiumChance},
		{"spawn.sneakyChance", c.Spawn.SneakyChance},
		{"offers.badChanceBase", c.Offers.BadChanceBase},
		{"offers.badChanceBase+badChanceRange", c.Offers.BadChanceBase + c.Offers.BadChanceRange},
		{"physics.particleDrag", c.Physics.ParticleDrag},
	}
	for _, p := range probabilities {
		if p.value < 0 || p.value > 1 {
			return invalid("%s must be within [0, 1], got %v", p.name, p.value)
		}
	}

	if c.Spawn.GenuineBrand == "" {
		return invalid("spawn.genuineBrand cannot be empty")
	}
	if len(c.Spawn.FakeNameTiers) == 0 {
		return invalid("spawn.fakeNameTiers cannot be empty")
	}
	for i, tier := range c.Spawn.FakeNameTiers {
		if len(tier) == 0 {
			return invalid("spawn.fakeNameTiers[%d] cannot be empty", i)
		}
	}

	for name, r := range map[string]PriceRange{
		"prices.genuine":          c.Prices.Genuine,
		"prices.counterfeit":      c.Prices.Counterfeit,
		"prices.premium":          c.Prices.Premium,
		"offers.premiumRange":     c.Offers.PremiumRange,
		"offers.counterfeitRange": c.Offers.CounterfeitRange,
	} {
		if r.Min < 1 || r.Max < r.Min {
			return invalid("%s must satisfy 1 <= min <= max, got [%d, %d]", name, r.Min, r.Max)
		}
	}

	if c.Offers.BadDiscountMin <= 0 || c.Offers.BadDiscountMax >= 1 || c.Offers.BadDiscountMax < c.Offers.BadDiscountMin {
		return invalid("offers bad discount must satisfy 0 < min <= max < 1, got [%v, %v]",
			c.Offers.BadDiscountMin, c.Offers.BadDiscountMax)
	}
	if c.Offers.GoodMarkupMin <= 0 || c.Offers.GoodMarkupEnd < c.Offers.GoodMarkupMin || c.Offers.GoodMarkupStart < c.Offers.GoodMarkupEnd {
		return invalid("offers good markup must satisfy 0 < min <= maxEnd <= maxStart, got min=%v end=%v start=%v",
			c.Offers.GoodMarkupMin, c.Offers.GoodMarkupEnd, c.Offers.GoodMarkupStart)
	}

	if err := validateCombo(c.Scoring.Combo); err != nil {
		return err
	}
	if err := validateRatings(c.Scoring.Ratings); err != nil {
		return err
	}
	if c.Scoring.MissPenalty < 0 {
		return invalid("scoring.missPenalty must be >= 0, got %d", c.Scoring.MissPenalty)
	}

	if c.Effects.PopupLimit < 1 {
		return invalid("effects.popupLimit must be >= 1, got %d", c.Effects.PopupLimit)
	}

	return nil
}

// validateCombo 连击表必须从 0 开始、阈值严格递增、倍数不减且 ≥ 1
func validateCombo(steps []ComboStep) error {
	if len(steps) == 0 {
		return invalid("scoring.combo cannot be empty")
	}
	if steps[0].MinCombo != 0 {
		return invalid("scoring.combo must start at minCombo 0, got %d", steps[0].MinCombo)
	}
	for i, s := range steps {
		if s.Multiplier < 1 {
			return invalid("scoring.combo[%d].multiplier must be >= 1, got %d", i, s.Multiplier)
		}
		if i == 0 {
			continue
		}
		prev := steps[i-1]
		if s.MinCombo <= prev.MinCombo {
			return invalid("scoring.combo thresholds must be strictly increasing at index %d", i)
		}
		if s.Multiplier < prev.Multiplier {
			return invalid("scoring.combo multipliers must be non-decreasing at index %d", i)
		}
	}
	return nil
}

// validateRatings 评级表阈值严格递增
func validateRatings(tiers []RatingTier) error {
	if len(tiers) == 0 {
		return invalid("scoring.ratings cannot be empty")
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].MinScore <= tiers[i-1].MinScore {
			return invalid("scoring.ratings thresholds must be strictly increasing at index %d", i)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
