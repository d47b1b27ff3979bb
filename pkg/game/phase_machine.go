package game

import (
	"errors"
	"fmt"

	"github.com/decker502/watchninja/pkg/types"
)

// ErrInvalidTransition 不在合法边集合中的阶段转换
var ErrInvalidTransition = errors.New("invalid phase transition")

// phaseTimeEpsilon 阶段计时的比较容差（秒）
// 计时按帧累加浮点 dt，1/60 这类步长的累加和会略小于整数秒
const phaseTimeEpsilon = 1e-6

// marketTransitions 两幕玩法的合法转换
//
//	Start → Act1 → Transition → Act2 → Over
//	                   └────────────────→ Over（库存为空）
var marketTransitions = map[types.RoundPhase][]types.RoundPhase{
	types.PhaseStart:      {types.PhaseAct1},
	types.PhaseAct1:       {types.PhaseTransition},
	types.PhaseTransition: {types.PhaseAct2, types.PhaseOver},
	types.PhaseAct2:       {types.PhaseOver},
}

// arcadeTransitions 单幕玩法的合法转换：Start → Act1 → Over
var arcadeTransitions = map[types.RoundPhase][]types.RoundPhase{
	types.PhaseStart: {types.PhaseAct1},
	types.PhaseAct1:  {types.PhaseOver},
}

// PhaseMachine 一局游戏的有限状态机
//
// 同时记录进入当前阶段后经过的模拟时间，两幕各自独立计时。
// 切换到新阶段是唯一的取消机制：调用方在切换后丢弃上一阶段的在场实体。
type PhaseMachine struct {
	mode    types.GameMode
	edges   map[types.RoundPhase][]types.RoundPhase
	current types.RoundPhase
	elapsed float64
}

// NewPhaseMachine 创建状态机，初始阶段为 Start
func NewPhaseMachine(mode types.GameMode) *PhaseMachine {
	edges := marketTransitions
	if mode == types.ModeArcade {
		edges = arcadeTransitions
	}
	return &PhaseMachine{
		mode:    mode,
		edges:   edges,
		current: types.PhaseStart,
	}
}

// Current 当前阶段
func (m *PhaseMachine) Current() types.RoundPhase {
	return m.current
}

// Mode 玩法变体
func (m *PhaseMachine) Mode() types.GameMode {
	return m.mode
}

// Elapsed 进入当前阶段后经过的时间（秒）
func (m *PhaseMachine) Elapsed() float64 {
	return m.elapsed
}

// Advance 推进当前阶段计时，返回推进后的时间
func (m *PhaseMachine) Advance(dt float64) float64 {
	m.elapsed += dt
	return m.elapsed
}

// Reached 当前阶段计时是否已达到 duration
// 累加和与 duration 相差不到 phaseTimeEpsilon 时视为恰好到达，在这一帧切换
func (m *PhaseMachine) Reached(duration float64) bool {
	return m.elapsed >= duration-phaseTimeEpsilon
}

// CanTransition 检查从当前阶段到 to 是否为合法边
func (m *PhaseMachine) CanTransition(to types.RoundPhase) bool {
	for _, next := range m.edges[m.current] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition 切换到新阶段并重置阶段计时
func (m *PhaseMachine) Transition(to types.RoundPhase) error {
	if !m.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s (mode %s)", ErrInvalidTransition, m.current, to, m.mode)
	}
	m.current = to
	m.elapsed = 0
	return nil
}
