package components

// EntityKind 实体类型判别字段
// 渲染和碰撞逻辑通过 Kind 区分实体，而不是检查字段是否存在
type EntityKind int

const (
	KindCollectible EntityKind = iota // 下落的手表
	KindBuyerOffer                    // 第二幕的买家报价卡片
	KindSplitHalf                     // 被切开的半块
	KindParticle                      // 碎屑粒子
)

// String 返回实体类型的字符串表示
func (k EntityKind) String() string {
	switch k {
	case KindCollectible:
		return "Collectible"
	case KindBuyerOffer:
		return "BuyerOffer"
	case KindSplitHalf:
		return "SplitHalf"
	case KindParticle:
		return "Particle"
	default:
		return "Unknown"
	}
}

// Kinematics 所有实体共享的运动学状态
type Kinematics struct {
	Position      Vec2    // 中心位置
	Velocity      Vec2    // 速度（像素/秒）
	Rotation      float64 // 当前旋转角度（弧度）
	RotationSpeed float64 // 旋转速度（弧度/秒）

	// GravityScale 重力倍数
	// 难度提升时整体加快飞行速度：速度 ×s、重力 ×s²，抛物线顶点高度不变
	GravityScale float64

	// Slashed 一旦置为 true 永不重置，防止同一手势多段轨迹重复计分
	Slashed bool
}

// Entity 所有实体的公共接口
type Entity interface {
	Kind() EntityKind
	Body() *Kinematics
}
