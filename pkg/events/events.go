// Package events 定义模拟核心向外发出的离散事件
//
// 核心只负责产出事件值（发件箱模式），不直接触发音效、震动或粒子渲染。
// 音频/震动/渲染协作者在每帧结束时通过 Drain 取走事件自行响应。
package events

import (
	"github.com/google/uuid"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/types"
)

// Type 事件类型
type Type int

const (
	// SlashGenuine 切中正品手表
	SlashGenuine Type = iota
	// SlashCounterfeit 切中假货
	SlashCounterfeit
	// SlashPremium 切中金表
	SlashPremium
	// Miss 正品手表未被切中就飞出屏幕（仅第一幕）
	Miss
	// OfferAcceptedGood 接受了高于成本的报价
	OfferAcceptedGood
	// OfferAcceptedBad 接受了低于成本的报价
	OfferAcceptedBad
	// OfferRejected 拒绝了报价，商品回到报价池
	OfferRejected
	// PhaseChanged 阶段切换，Phase 字段为新阶段
	PhaseChanged
	// NewBestScore 本局结果刷新了最高纪录
	NewBestScore
)

// String 返回事件类型名
func (t Type) String() string {
	switch t {
	case SlashGenuine:
		return "slash-genuine"
	case SlashCounterfeit:
		return "slash-counterfeit"
	case SlashPremium:
		return "slash-premium"
	case Miss:
		return "miss"
	case OfferAcceptedGood:
		return "offer-accepted-good"
	case OfferAcceptedBad:
		return "offer-accepted-bad"
	case OfferRejected:
		return "offer-rejected"
	case PhaseChanged:
		return "phase-changed"
	case NewBestScore:
		return "new-best-score"
	default:
		return "unknown"
	}
}

// Event 一条离散事件
type Event struct {
	Type     Type
	RoundID  uuid.UUID
	Position components.Vec2 // 事件发生位置（切中点、飞出点）
	Angle    float64         // 切线角度（弧度），仅切中事件有效
	Amount   int             // 得分变化或成交价
	Phase    types.RoundPhase
}

// Outbox 单线程事件发件箱
// 所有写入都发生在帧回调内，无需加锁
type Outbox struct {
	pending []Event
}

// NewOutbox 创建事件发件箱
func NewOutbox() *Outbox {
	return &Outbox{pending: make([]Event, 0, 32)}
}

// Emit 追加一条事件
func (o *Outbox) Emit(e Event) {
	o.pending = append(o.pending, e)
}

// Len 待取走的事件数量
func (o *Outbox) Len() int {
	return len(o.pending)
}

// Drain 按发生顺序返回全部事件并清空发件箱
func (o *Outbox) Drain() []Event {
	if len(o.pending) == 0 {
		return nil
	}
	out := make([]Event, len(o.pending))
	copy(out, o.pending)
	o.pending = o.pending[:0]
	return out
}
