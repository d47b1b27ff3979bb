package components

import "math"

// Vec2 二维向量（世界坐标，像素）
type Vec2 struct {
	X, Y float64
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 返回 v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot 点积
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq 长度的平方
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle 向量方向（弧度）
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
