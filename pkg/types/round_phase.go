// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// RoundPhase 定义一局游戏的阶段
// 状态机的合法转换见 game.PhaseMachine
type RoundPhase int

const (
	// PhaseStart 开始界面，等待玩家点击开始
	PhaseStart RoundPhase = iota
	// PhaseAct1 第一幕：买入阶段（切手表）
	PhaseAct1
	// PhaseTransition 幕间：展示库存，等待玩家进入第二幕
	PhaseTransition
	// PhaseAct2 第二幕：转卖阶段（划动接受/拒绝报价）
	PhaseAct2
	// PhaseOver 结算界面
	PhaseOver
)

// String 返回阶段的字符串表示
func (p RoundPhase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhaseAct1:
		return "Act1"
	case PhaseTransition:
		return "Transition"
	case PhaseAct2:
		return "Act2"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// GameMode 定义游戏玩法变体
type GameMode string

const (
	// ModeMarket 两幕玩法：买入 → 转卖，最终结果为利润
	ModeMarket GameMode = "market"
	// ModeArcade 单幕玩法：只有切手表阶段，最终结果为累计得分
	ModeArcade GameMode = "arcade"
)

// IsValid 检查玩法变体是否受支持
func (m GameMode) IsValid() bool {
	return m == ModeMarket || m == ModeArcade
}
