package systems

import (
	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/config"
)

// TrailSystem 维护当前手势的轨迹点
//
// 轨迹点由宿主提供的时间戳标记，只有按下（GestureStart）之后的移动才会被记录。
// 抬起后轨迹保留，直到按寿命自然淡出。
type TrailSystem struct {
	points    []components.TrailPoint
	active    bool
	lifetime  float64
	maxPoints int
}

// NewTrailSystem 创建轨迹系统
// 参数:
//   - cfg: 轨迹配置（寿命、点数上限）
func NewTrailSystem(cfg config.TrailConfig) *TrailSystem {
	return &TrailSystem{
		points:    make([]components.TrailPoint, 0, cfg.MaxPoints),
		lifetime:  cfg.Lifetime,
		maxPoints: cfg.MaxPoints,
	}
}

// GestureStart 开始新手势：清空旧轨迹并记录起点
func (s *TrailSystem) GestureStart(p components.Vec2, t float64) {
	s.points = s.points[:0]
	s.active = true
	s.append(p, t)
}

// GestureMove 手势移动，未按下时忽略
func (s *TrailSystem) GestureMove(p components.Vec2, t float64) {
	if !s.active {
		return
	}
	s.append(p, t)
}

// GestureEnd 结束手势，已记录的轨迹点保留
func (s *TrailSystem) GestureEnd() {
	s.active = false
}

// Active 手势是否仍按下
func (s *TrailSystem) Active() bool {
	return s.active
}

func (s *TrailSystem) append(p components.Vec2, t float64) {
	s.points = append(s.points, components.TrailPoint{Position: p, Time: t})
	if over := len(s.points) - s.maxPoints; over > 0 {
		s.points = append(s.points[:0], s.points[over:]...)
	}
}

// Prune 丢弃早于 now - lifetime 的轨迹点
// 轨迹点按时间递增，只需从头部裁剪
func (s *TrailSystem) Prune(now float64) {
	cut := 0
	for cut < len(s.points) && now-s.points[cut].Time > s.lifetime {
		cut++
	}
	if cut > 0 {
		s.points = append(s.points[:0], s.points[cut:]...)
	}
}

// Points 返回全部轨迹点（只读视图）
func (s *TrailSystem) Points() []components.TrailPoint {
	return s.points
}

// Recent 返回最近的 n 个轨迹点
func (s *TrailSystem) Recent(n int) []components.TrailPoint {
	if n >= len(s.points) {
		return s.points
	}
	return s.points[len(s.points)-n:]
}

// Len 当前轨迹点数
func (s *TrailSystem) Len() int {
	return len(s.points)
}
