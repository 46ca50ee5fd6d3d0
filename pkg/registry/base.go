package registry

import (
	"sync"
)

// BaseRegistry 是注册表的基础实现
type BaseRegistry[T RegistryItem] struct {
	mu    sync.RWMutex
	items []T
}

// NewBaseRegistry 创建一个新的基础注册表实例
func NewBaseRegistry[T RegistryItem]() *BaseRegistry[T] {
	return &BaseRegistry[T]{
		items: make([]T, 0),
	}
}

// Register 将项目追加到注册表末尾，不做去重
func (r *BaseRegistry[T]) Register(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
}

// Find 线性扫描，返回第一个名称完全相等的项目
func (r *BaseRegistry[T]) Find(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Name() == name {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Contains 检查注册表中是否存在指定名称的项目
func (r *BaseRegistry[T]) Contains(name string) bool {
	_, exists := r.Find(name)
	return exists
}

// Count 返回指定名称的项目数量
func (r *BaseRegistry[T]) Count(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, item := range r.items {
		if item.Name() == name {
			count++
		}
	}
	return count
}

// List 按插入顺序列出注册表中的所有项目
func (r *BaseRegistry[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, len(r.items))
	copy(items, r.items)
	return items
}

// Len 返回项目总数
func (r *BaseRegistry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Remove 从注册表中移除第一个匹配名称的项目
func (r *BaseRegistry[T]) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.Name() == name {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear 清空注册表中的所有项目
func (r *BaseRegistry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]T, 0)
}
