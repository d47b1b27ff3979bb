package components

// BuyerOfferComponent 第二幕中飞过的买家报价卡片
// 每张卡片绑定库存中的一件商品（TargetIndex）
type BuyerOfferComponent struct {
	Kinematics

	Width, Height float64 // 卡片尺寸

	TargetIndex int    // 对应库存下标
	Brand       string // 冗余保存，便于渲染
	OfferPrice  int    // 买家出价
	Cost        int    // 买入成本（卡片上显示"Payé"）

	IsCounterfeit bool
	IsPremium     bool

	// Resolved 报价已被接受或拒绝
	// 已解决的卡片飞出屏幕时不再释放库存
	Resolved bool
}

// Kind 实现 Entity 接口
func (o *BuyerOfferComponent) Kind() EntityKind { return KindBuyerOffer }

// Body 实现 Entity 接口
func (o *BuyerOfferComponent) Body() *Kinematics { return &o.Kinematics }

// Margin 该报价相对成本的盈亏
func (o *BuyerOfferComponent) Margin() int {
	return o.OfferPrice - o.Cost
}
