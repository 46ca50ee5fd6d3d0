// Package world 提供内存中的世界实现，供命令行工具和测试使用。
package world

import (
	"sync"

	"github.com/google/uuid"

	"rogueblight/internal/entity"
)

// Memory 按加入顺序保存实体的世界
type Memory struct {
	name     string
	mu       sync.RWMutex
	entities []*entity.Entity
}

// NewMemory 创建一个空世界
func NewMemory(name string) *Memory {
	return &Memory{name: name}
}

// Name 返回世界名称
func (w *Memory) Name() string {
	return w.name
}

// AddEntity 将实体放入世界
func (w *Memory) AddEntity(e *entity.Entity) {
	if e == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entities = append(w.entities, e)
}

// Entities 按加入顺序返回实体列表的副本
func (w *Memory) Entities() []*entity.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	result := make([]*entity.Entity, len(w.entities))
	copy(result, w.entities)
	return result
}

// Len 返回实体数量
func (w *Memory) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entities)
}

// EntityByID 根据标识查找实体
func (w *Memory) EntityByID(id uuid.UUID) (*entity.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, e := range w.entities {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

// EntitiesByType 返回指定类型的实体
func (w *Memory) EntitiesByType(typeName string) []*entity.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var result []*entity.Entity
	for _, e := range w.entities {
		if e.TypeName() == typeName {
			result = append(result, e)
		}
	}
	return result
}
