package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/watchninja/pkg/engine"
	"github.com/decker502/watchninja/pkg/events"
	"github.com/decker502/watchninja/pkg/types"
	"github.com/decker502/watchninja/pkg/utils"
)

// flashDuration 切到假货或漏接时屏幕闪红的时长（秒）
const flashDuration = 0.25

// RoundScene 唯一的游戏场景
//
// 负责把指针输入翻译成引擎的手势和阶段操作，并绘制引擎快照：
//   - Start / Transition / Over 阶段的点击推进阶段
//   - Act1 / Act2 阶段的拖拽成为切割手势
//   - 窗口失去焦点时暂停
type RoundScene struct {
	engine *engine.Engine
	drag   *utils.DragManager

	width, height float64

	lastX, lastY int     // 上一次送入引擎的指针位置
	flash        float64 // 剩余闪红时间
	lastNow      float64
}

// NewRoundScene 创建游戏场景
// 参数:
//   - e: 已创建的引擎（处于 Start 阶段）
//   - width, height: 逻辑场地尺寸
func NewRoundScene(e *engine.Engine, width, height float64) *RoundScene {
	return &RoundScene{
		engine: e,
		drag:   utils.NewDragManager(),
		width:  width,
		height: height,
	}
}

// Update 每个 tick 调用一次
func (s *RoundScene) Update(now float64) {
	if !ebiten.IsFocused() {
		s.engine.Pause()
		s.drag.Reset()
		return
	}
	s.engine.Resume()

	s.drag.Update()
	s.handlePointer(s.drag.GetInfo(), now)
	s.advance(now)
}

// advance 推进引擎并消费本帧事件
func (s *RoundScene) advance(now float64) {
	if s.engine.Frame(now) && now > s.lastNow {
		s.flash -= now - s.lastNow
	}
	s.lastNow = now
	s.dispatch(s.engine.DrainEvents())
}

// handlePointer 把一帧的拖拽状态翻译成引擎操作
func (s *RoundScene) handlePointer(info utils.DragInfo, now float64) {
	x, y := float64(info.CurrentX), float64(info.CurrentY)

	switch info.State {
	case utils.DragStateStarted:
		s.lastX, s.lastY = info.CurrentX, info.CurrentY
		s.handlePress(x, y, now)

	case utils.DragStateDragging:
		if info.CurrentX == s.lastX && info.CurrentY == s.lastY {
			return
		}
		s.lastX, s.lastY = info.CurrentX, info.CurrentY
		s.engine.GestureMove(x, y, now)

	case utils.DragStateEnded:
		s.engine.GestureEnd(x, y, now)
	}
}

// handlePress 按下：在非计时阶段作为按钮点击，在两幕中开始手势
func (s *RoundScene) handlePress(x, y, now float64) {
	var err error
	switch s.engine.Phase() {
	case types.PhaseStart:
		err = s.engine.Play()
	case types.PhaseTransition:
		err = s.engine.StartSelling()
	case types.PhaseOver:
		s.engine.Restart()
	default:
		s.engine.GestureStart(x, y, now)
	}
	if err != nil {
		log.Printf("[RoundScene] Error: %v", err)
	}
}

// dispatch 响应引擎事件
// 音效与震动不在本项目范围内，这里只做屏幕闪红和日志
func (s *RoundScene) dispatch(evs []events.Event) {
	for _, ev := range evs {
		switch ev.Type {
		case events.SlashCounterfeit, events.Miss, events.OfferAcceptedBad:
			s.flash = flashDuration
		}
		log.Printf("[RoundScene] Event %s amount=%d phase=%v", ev.Type, ev.Amount, ev.Phase)
	}
}
