package game

import "github.com/shopspring/decimal"

// 价格计算统一使用 decimal，结果四舍五入到整欧元

// DiscountedCost 连击折扣后的买入成本 = 标价 / 倍数
// 结果至少为 1 欧元
func DiscountedCost(price, multiplier int) int {
	if multiplier <= 1 {
		return price
	}
	cost := decimal.NewFromInt(int64(price)).
		Div(decimal.NewFromInt(int64(multiplier))).
		Round(0).
		IntPart()
	if cost < 1 {
		return 1
	}
	return int(cost)
}

// ApplyRate 按比例调整金额：amount × (1 + rate)，四舍五入
// rate 为负数时表示折价
func ApplyRate(amount int, rate float64) int {
	return int(decimal.NewFromInt(int64(amount)).
		Mul(decimal.NewFromFloat(1 + rate)).
		Round(0).
		IntPart())
}
