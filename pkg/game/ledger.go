package game

// Ledger 一局游戏的账本
//
// Score 是第一幕的即时得分（含连击倍数与漏切扣分）；
// Act1Spending / Act2Revenue 是两幕玩法的买入支出与卖出收入。
type Ledger struct {
	Score           int
	ComboCount      int
	ComboMultiplier int
	Act1Spending    int
	Act2Revenue     int
}

// NewLedger 创建空账本，倍数初始为 1
func NewLedger() *Ledger {
	return &Ledger{ComboMultiplier: 1}
}

// Profit 两幕玩法的最终利润 = 卖出收入 - 买入支出
func (l *Ledger) Profit() int {
	return l.Act2Revenue - l.Act1Spending
}
