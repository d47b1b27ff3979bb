package systems

import (
	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/game"
)

// ScoreSystem 得分与连击
//
// 连击倍数始终由连击数按配置表推导，两者只在这里一起修改。
type ScoreSystem struct {
	world   *game.World
	scoring config.ScoringConfig
}

// NewScoreSystem 创建得分系统
func NewScoreSystem(w *game.World) *ScoreSystem {
	return &ScoreSystem{
		world:   w,
		scoring: w.Config.Scoring,
	}
}

// Multiplier 连击数对应的倍数
// 配置表按阈值升序排列，取最后一个满足的阈值
func (s *ScoreSystem) Multiplier(combo int) int {
	mult := 1
	for _, step := range s.scoring.Combo {
		if combo >= step.MinCombo {
			mult = step.Multiplier
		}
	}
	return mult
}

func (s *ScoreSystem) setCombo(combo int) {
	ledger := s.world.Ledger
	ledger.ComboCount = combo
	ledger.ComboMultiplier = s.Multiplier(combo)
}

// RegisterGenuine 切中正品：连击 +1，按新倍数加分
// 返回: 实际加分
func (s *ScoreSystem) RegisterGenuine(basePoints int) int {
	s.setCombo(s.world.Ledger.ComboCount + 1)
	points := basePoints * s.world.Ledger.ComboMultiplier
	s.world.Ledger.Score += points
	return points
}

// RegisterCounterfeit 切中假货：连击清零，扣分不乘倍数
func (s *ScoreSystem) RegisterCounterfeit(points int) int {
	s.setCombo(0)
	s.world.Ledger.Score += points
	return points
}

// RegisterMiss 正品掉出屏幕：扣分并清零连击
func (s *ScoreSystem) RegisterMiss() int {
	s.setCombo(0)
	s.world.Ledger.Score -= s.scoring.MissPenalty
	return -s.scoring.MissPenalty
}

// Rating 按得分查找卖家评级
func (s *ScoreSystem) Rating(score int) config.RatingTier {
	tiers := s.scoring.Ratings
	if len(tiers) == 0 {
		return config.RatingTier{}
	}
	rating := tiers[0]
	for _, tier := range tiers {
		if score >= tier.MinScore {
			rating = tier
		}
	}
	return rating
}
