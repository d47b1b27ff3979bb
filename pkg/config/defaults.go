package config

import "github.com/decker502/watchninja/pkg/types"

// 默认数值，与 data/game.yaml 保持一致
const (
	// DefaultPlayfieldWidth 逻辑画面宽度（竖屏手机比例）
	DefaultPlayfieldWidth = 390.0
	// DefaultPlayfieldHeight 逻辑画面高度
	DefaultPlayfieldHeight = 844.0

	// DefaultAct1Duration 第一幕 60 秒
	DefaultAct1Duration = 60.0
	// DefaultAct2Duration 第二幕 45 秒
	DefaultAct2Duration = 45.0
	// DefaultMaxFrameDelta 单帧最多推进 50ms
	DefaultMaxFrameDelta = 0.05
)

// Default 返回默认配置
func Default() *GameConfig {
	return &GameConfig{
		Mode: types.ModeMarket,
		Playfield: PlayfieldConfig{
			Width:  DefaultPlayfieldWidth,
			Height: DefaultPlayfieldHeight,
		},
		Timing: TimingConfig{
			Act1Duration:  DefaultAct1Duration,
			Act2Duration:  DefaultAct2Duration,
			MaxFrameDelta: DefaultMaxFrameDelta,
		},
		Trail: TrailConfig{
			Lifetime:           0.150,
			MaxPoints:          100,
			CollisionPoints:    6,
			HitGenerosity:      1.2,
			OfferHitGenerosity: 1.1,
			SwipeMinDistance:   30,
			SwipeRatio:         0.8,
		},
		Physics: PhysicsConfig{
			Gravity:         600,
			ParticleGravity: 300,
			ParticleDrag:    0.98,
			SideMargin:      200,
			BottomMargin:    100,
			SpawnDepth:      50,
		},
		Spawn: SpawnConfig{
			BaseInterval:     1.2,
			MinInterval:      0.45,
			IntervalRange:    0.7,
			SpeedRange:       0.5,
			CounterfeitBase:  0.25,
			CounterfeitRange: 0.3,
			PremiumChance:    0.05,
			SneakyChance:     0.3,
			ItemSize:         60,
			GenuineBrand:     "Montignac",
			FakeNameTiers: [][]string{
				{"Montblanq", "Mantignoc", "Montagnard"},
				{"Montignak", "Montinyac", "Montiganc"},
				{"Montigniak", "Montignaq", "Montlgnac"},
			},
		},
		Prices: PriceConfig{
			Genuine:     PriceRange{Min: 30, Max: 60},
			Counterfeit: PriceRange{Min: 20, Max: 45},
			Premium:     PriceRange{Min: 100, Max: 200},
		},
		Scoring: ScoringConfig{
			GenuinePoints:     15,
			CounterfeitPoints: -8,
			PremiumPoints:     50,
			MissPenalty:       5,
			ComboDiscount:     true,
			Combo: []ComboStep{
				{MinCombo: 0, Multiplier: 1},
				{MinCombo: 3, Multiplier: 2},
				{MinCombo: 6, Multiplier: 3},
				{MinCombo: 10, Multiplier: 4},
				{MinCombo: 15, Multiplier: 5},
			},
			Ratings: []RatingTier{
				{MinScore: 0, Stars: 1, Label: "Apprenti"},
				{MinScore: 50, Stars: 2, Label: "Vendeur"},
				{MinScore: 150, Stars: 3, Label: "Négociant"},
				{MinScore: 300, Stars: 4, Label: "Expert"},
				{MinScore: 500, Stars: 5, Label: "Légende"},
			},
		},
		Offers: OfferConfig{
			Interval:         1.5,
			CardWidth:        110,
			CardHeight:       70,
			PremiumRange:     PriceRange{Min: 150, Max: 300},
			CounterfeitRange: PriceRange{Min: 5, Max: 20},
			BadChanceBase:    0.2,
			BadChanceRange:   0.4,
			BadDiscountMin:   0.15,
			BadDiscountMax:   0.5,
			GoodMarkupMin:    0.1,
			GoodMarkupStart:  0.8,
			GoodMarkupEnd:    0.25,
			RejectFling:      900,
		},
		Effects: EffectsConfig{
			SplitLife:       1.0,
			SplitSpeed:      120,
			ParticleCount:   8,
			ParticleLifeMin: 0.4,
			ParticleLifeMax: 0.8,
			ParticleSpeed:   220,
			PopupLife:       1.0,
			PopupRise:       60,
			PopupLimit:      20,
		},
	}
}
