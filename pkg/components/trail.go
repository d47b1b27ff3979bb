package components

// TrailPoint 手势轨迹上的一个采样点
type TrailPoint struct {
	Position Vec2
	Time     float64 // 单调时间戳（秒）
}
