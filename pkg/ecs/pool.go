// Package ecs 提供按类型分池的实体存储
package ecs

// Pool 是按插入顺序保存同一类实体的集合
//
// 遍历顺序稳定：渲染顺序即生成顺序。
// 删除采用"先标记、后清理"的方式：帧内只调用 Destroy 标记，
// 帧末由 RemoveMarked 统一压缩，避免遍历过程中修改切片。
type Pool[T any] struct {
	items  []T
	marked []bool
	limit  int // 容量上限，0 表示不限制
}

// NewPool 创建一个不限容量的实体池
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		items:  make([]T, 0, 16),
		marked: make([]bool, 0, 16),
	}
}

// NewBoundedPool 创建一个有容量上限的实体池
// 超出上限时最旧的实体被淘汰
func NewBoundedPool[T any](limit int) *Pool[T] {
	p := NewPool[T]()
	p.limit = limit
	return p
}

// Add 追加实体到末尾，返回其当前下标
func (p *Pool[T]) Add(item T) int {
	if p.limit > 0 && len(p.items) >= p.limit {
		// 淘汰最旧的实体
		var zero T
		p.items[0] = zero
		p.items = p.items[1:]
		p.marked = p.marked[1:]
	}
	p.items = append(p.items, item)
	p.marked = append(p.marked, false)
	return len(p.items) - 1
}

// Len 返回池中实体数量（包括已标记但尚未清理的实体）
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// At 返回下标 i 处的实体
func (p *Pool[T]) At(i int) T {
	return p.items[i]
}

// Items 返回底层切片的只读视图
// 调用者不应修改切片本身
func (p *Pool[T]) Items() []T {
	return p.items
}

// Destroy 标记下标 i 处的实体待删除（不立即删除）
func (p *Pool[T]) Destroy(i int) {
	if i >= 0 && i < len(p.marked) {
		p.marked[i] = true
	}
}

// IsMarked 检查下标 i 处的实体是否已被标记删除
func (p *Pool[T]) IsMarked(i int) bool {
	return i >= 0 && i < len(p.marked) && p.marked[i]
}

// RemoveMarked 清理所有标记删除的实体，保持剩余实体的相对顺序
// 返回被清理的实体数量
func (p *Pool[T]) RemoveMarked() int {
	kept := 0
	var zero T
	for i := range p.items {
		if p.marked[i] {
			continue
		}
		p.items[kept] = p.items[i]
		p.marked[kept] = false
		kept++
	}
	removed := len(p.items) - kept
	for i := kept; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:kept]
	p.marked = p.marked[:kept]
	return removed
}

// Clear 立即清空所有实体
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
	p.marked = p.marked[:0]
}
