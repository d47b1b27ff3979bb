// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ============================================================================
// 拖拽状态管理器 - 把鼠标/触摸输入整理成 按下 → 移动 → 抬起 的手势流
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// TouchID 当前跟踪的触摸ID（-1表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// PointerSample 一帧的指针采样
type PointerSample struct {
	JustPressed bool // 本帧刚按下
	Pressed     bool // 本帧仍按住
	X, Y        int
	Touch       bool
	TouchID     ebiten.TouchID
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态，每个场景持有自己的实例
type DragManager struct {
	info DragInfo
}

// NewDragManager 创建拖拽管理器
func NewDragManager() *DragManager {
	dm := &DragManager{}
	dm.Reset()
	return dm
}

// Update 采样 ebiten 输入并推进拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	dm.Advance(dm.sample())
}

// sample 读取本帧指针状态，优先检测触摸输入
func (dm *DragManager) sample() PointerSample {
	if dm.info.State == DragStateNone || dm.info.State == DragStateEnded {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			x, y := ebiten.TouchPosition(ids[0])
			return PointerSample{JustPressed: true, Pressed: true, X: x, Y: y, Touch: true, TouchID: ids[0]}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			return PointerSample{JustPressed: true, Pressed: true, X: x, Y: y, TouchID: -1}
		}
		return PointerSample{TouchID: -1}
	}

	if dm.info.IsTouchInput {
		for _, id := range ebiten.AppendTouchIDs(nil) {
			if id == dm.info.TouchID {
				x, y := ebiten.TouchPosition(id)
				return PointerSample{Pressed: true, X: x, Y: y, Touch: true, TouchID: id}
			}
		}
		// 触摸已释放，保留最后位置
		return PointerSample{X: dm.info.CurrentX, Y: dm.info.CurrentY, Touch: true, TouchID: dm.info.TouchID}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), X: x, Y: y, TouchID: -1}
}

// Advance 用一帧采样推进状态机
//
//	None ─按下→ Started ─按住→ Dragging ─释放→ Ended ─下一帧→ None
//
// Started 当帧就释放时直接进入 Ended（快速点击）。
func (dm *DragManager) Advance(s PointerSample) {
	switch dm.info.State {
	case DragStateNone, DragStateEnded:
		dm.Reset()
		if s.JustPressed {
			dm.info = DragInfo{
				State:        DragStateStarted,
				StartX:       s.X,
				StartY:       s.Y,
				CurrentX:     s.X,
				CurrentY:     s.Y,
				TouchID:      s.TouchID,
				IsTouchInput: s.Touch,
			}
		}

	case DragStateStarted, DragStateDragging:
		if !s.Pressed {
			dm.info.State = DragStateEnded
			return
		}
		dm.info.State = DragStateDragging
		dm.info.CurrentX, dm.info.CurrentY = s.X, s.Y
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}
