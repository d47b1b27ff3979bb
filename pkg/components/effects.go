package components

import "image/color"

// ClipSide 切开后的半块位于切线哪一侧
type ClipSide int

const (
	ClipLeft ClipSide = iota
	ClipRight
)

// SplitHalfComponent 被切开的手表半块
type SplitHalfComponent struct {
	Kinematics

	Size      float64
	Side      ClipSide
	CutAngle  float64 // 切线角度（弧度），渲染时用于裁剪
	Brand     string
	Style     WatchStyle
	Sneaky    bool
	Premium   bool
	Fake      bool
	Life      float64 // 剩余寿命（秒）
	MaxLife   float64
	FadeAlpha float64 // 0~1
}

// Kind 实现 Entity 接口
func (s *SplitHalfComponent) Kind() EntityKind { return KindSplitHalf }

// Body 实现 Entity 接口
func (s *SplitHalfComponent) Body() *Kinematics { return &s.Kinematics }

// ParticleComponent 切中时飞溅的碎屑
type ParticleComponent struct {
	Kinematics

	Color   color.RGBA
	Radius  float64
	Life    float64 // 剩余寿命（秒）
	MaxLife float64
}

// Kind 实现 Entity 接口
func (p *ParticleComponent) Kind() EntityKind { return KindParticle }

// Body 实现 Entity 接口
func (p *ParticleComponent) Body() *Kinematics { return &p.Kinematics }

// Alpha 按剩余寿命计算透明度
func (p *ParticleComponent) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	a := p.Life / p.MaxLife
	if a < 0 {
		return 0
	}
	return a
}

// PopupComponent 飘字（如 "+15€"）
type PopupComponent struct {
	Position  Vec2
	VelocityY float64
	Text      string
	Negative  bool // 负值用红色显示
	Age       float64
	Life      float64
	Alpha     float64
}
