package game

// FrameClock 帧时钟
//
// 把宿主提供的单调时间戳换算成模拟步长：
//   - 启动或恢复后的第一帧只记录时间戳，不推进模拟
//   - 单帧步长上限为 maxDelta，避免卡顿后一次性推进过多
//   - 暂停期间不产生步长
type FrameClock struct {
	maxDelta float64
	last     float64
	hasLast  bool
	paused   bool
}

// NewFrameClock 创建帧时钟
func NewFrameClock(maxDelta float64) *FrameClock {
	return &FrameClock{maxDelta: maxDelta}
}

// Advance 输入当前时间戳（秒），返回本帧应推进的步长
// ok 为 false 时本帧不应推进模拟
func (c *FrameClock) Advance(now float64) (dt float64, ok bool) {
	if c.paused {
		return 0, false
	}
	if !c.hasLast {
		c.last = now
		c.hasLast = true
		return 0, false
	}

	dt = now - c.last
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt, true
}

// Pause 暂停（宿主失去焦点）
func (c *FrameClock) Pause() {
	c.paused = true
}

// Resume 恢复，并丢弃暂停前的时间戳，防止出现巨大的步长
func (c *FrameClock) Resume() {
	c.paused = false
	c.hasLast = false
}

// Paused 是否处于暂停状态
func (c *FrameClock) Paused() bool {
	return c.paused
}
