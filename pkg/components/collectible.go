package components

// WatchStyle 手表外观样式（纯装饰）
type WatchStyle int

const (
	StyleRound WatchStyle = iota
	StyleSquare
	StyleSport
)

// WatchStyleCount 样式数量，用于随机选择
const WatchStyleCount = 3

// String 返回样式名
func (s WatchStyle) String() string {
	switch s {
	case StyleRound:
		return "round"
	case StyleSquare:
		return "square"
	case StyleSport:
		return "sport"
	default:
		return "unknown"
	}
}

// CollectibleComponent 第一幕中抛起的手表
type CollectibleComponent struct {
	Kinematics

	Size  float64    // 直径（像素）
	Brand string     // 表盘上显示的品牌名
	Style WatchStyle // 外观样式

	IsCounterfeit bool // 假货
	IsPremium     bool // 金表（稀有正品）
	Sneaky        bool // 假货但使用正品配色，只能靠品牌名分辨

	DisplayPrice int // 卡片上展示的价格（欧元）
	Value        int // 切中后的基础得分（已含正负号，不含连击倍数）
}

// Kind 实现 Entity 接口
func (c *CollectibleComponent) Kind() EntityKind { return KindCollectible }

// Body 实现 Entity 接口
func (c *CollectibleComponent) Body() *Kinematics { return &c.Kinematics }

// IsGenuine 正品（包括金表）
func (c *CollectibleComponent) IsGenuine() bool {
	return !c.IsCounterfeit
}
