package game

import "github.com/decker502/watchninja/pkg/components"

// Economy 库存与报价池
//
// 库存只增不减；报价池由 Sold=false && OfferPending=false 的商品构成，
// 采用轮询方式挑选下一件待报价商品。
type Economy struct {
	ledger    *Ledger
	inventory []*components.InventoryItem
	cursor    int // 下一次轮询的起点
}

// NewEconomy 创建经济系统，支出与收入记入 ledger
func NewEconomy(ledger *Ledger) *Economy {
	return &Economy{
		ledger:    ledger,
		inventory: make([]*components.InventoryItem, 0, 32),
	}
}

// Inventory 库存只读视图
func (e *Economy) Inventory() []*components.InventoryItem {
	return e.inventory
}

// Len 库存数量
func (e *Economy) Len() int {
	return len(e.inventory)
}

// Item 返回下标 i 处的商品
func (e *Economy) Item(i int) (*components.InventoryItem, bool) {
	if i < 0 || i >= len(e.inventory) {
		return nil, false
	}
	return e.inventory[i], true
}

// Purchase 买入一件商品，成本计入 Act1Spending，返回库存下标
func (e *Economy) Purchase(item components.InventoryItem) int {
	item.Sold = false
	item.SoldFor = 0
	item.OfferPending = false
	e.inventory = append(e.inventory, &item)
	e.ledger.Act1Spending += item.Cost
	return len(e.inventory) - 1
}

// NextEligible 轮询下一件可报价商品并将其标记为报价中
// 没有可报价商品时返回 false，这是正常情况，调用方本帧跳过生成即可
func (e *Economy) NextEligible() (int, bool) {
	n := len(e.inventory)
	for step := 0; step < n; step++ {
		i := (e.cursor + step) % n
		if e.inventory[i].Eligible() {
			e.inventory[i].OfferPending = true
			e.cursor = (i + 1) % n
			return i, true
		}
	}
	return 0, false
}

// Release 报价未成交（拒绝或飞出屏幕），商品回到报价池
// 已售商品不受影响
func (e *Economy) Release(i int) {
	item, ok := e.Item(i)
	if !ok || item.Sold {
		return
	}
	item.OfferPending = false
}

// Accept 接受报价：标记已售、记录成交价并计入收入
// 返回该商品的盈亏；商品已售或下标无效时返回 false
func (e *Economy) Accept(i int, offerPrice int) (int, bool) {
	item, ok := e.Item(i)
	if !ok || item.Sold {
		return 0, false
	}
	item.Sold = true
	item.SoldFor = offerPrice
	item.OfferPending = false
	e.ledger.Act2Revenue += offerPrice
	return offerPrice - item.Cost, true
}

// AllSold 库存非空且全部售出
func (e *Economy) AllSold() bool {
	if len(e.inventory) == 0 {
		return false
	}
	for _, item := range e.inventory {
		if !item.Sold {
			return false
		}
	}
	return true
}

// SoldCount 已售数量
func (e *Economy) SoldCount() int {
	count := 0
	for _, item := range e.inventory {
		if item.Sold {
			count++
		}
	}
	return count
}

// RealizedProfit 已售商品的盈亏之和
// 恒等于 Σ未售成本 + Σ成交价 - Act1Spending
func (e *Economy) RealizedProfit() int {
	total := 0
	for _, item := range e.inventory {
		total += item.Profit()
	}
	return total
}

