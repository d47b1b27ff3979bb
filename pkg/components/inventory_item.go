package components

// InventoryItem 第一幕买入的一件商品
//
// 一局之内不会被删除，最终的已售/未售状态进入结算账本。
//
// 价格字段：
//   - DisplayPrice: 第一幕卡片上展示的价格
//   - Cost: 实际计入 Act1Spending 的成本（开启连击折扣时为 DisplayPrice / 倍数，四舍五入）
type InventoryItem struct {
	Brand         string
	IsCounterfeit bool
	IsPremium     bool
	DisplayPrice  int
	Cost          int

	Sold         bool
	SoldFor      int
	OfferPending bool // 已有买家卡片在场
}

// Eligible 是否可以生成新的报价
func (it *InventoryItem) Eligible() bool {
	return !it.Sold && !it.OfferPending
}

// Profit 已售商品的盈亏
func (it *InventoryItem) Profit() int {
	if !it.Sold {
		return 0
	}
	return it.SoldFor - it.Cost
}
