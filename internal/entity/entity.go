// Package entity 定义实体、实体类型契约和实体行为的最小接口。
package entity

import (
	"github.com/google/uuid"

	"rogueblight/internal/descriptor"
	"rogueblight/internal/item"
)

// World 实体所在世界的最小契约
type World interface {
	// AddEntity 将实体放入世界
	AddEntity(e *Entity)
}

// Type 实体类型契约
type Type interface {
	// Name 返回类型名称，作为注册表查找键
	Name() string
	// SetConfig 在首次使用前注入类型配置
	SetConfig(cfg descriptor.Object)
	// Config 返回当前类型配置
	Config() descriptor.Object
	// Create 根据描述符在给定世界中创建实体
	Create(desc descriptor.Object, world World) (*Entity, error)
}

// Behavior 实体行为组件
type Behavior interface {
	// QueryMass 查询实体质量
	QueryMass(self *Entity) float64
	// InventoryComponent 返回实体的背包组件
	InventoryComponent() (*item.Inventory, bool)
	// LivingComponent 返回实体的生命组件
	LivingComponent() (Living, bool)
}

// Living 生命组件
type Living interface {
	Health() float64
	MaxHealth() float64
}

// Entity 世界中的游戏对象
type Entity struct {
	id       uuid.UUID
	typ      Type
	world    World
	behavior Behavior
	desc     descriptor.Object
}

// New 创建实体，不会自动放入世界
func New(id uuid.UUID, typ Type, world World, behavior Behavior, desc descriptor.Object) *Entity {
	return &Entity{
		id:       id,
		typ:      typ,
		world:    world,
		behavior: behavior,
		desc:     desc,
	}
}

func (e *Entity) ID() uuid.UUID                 { return e.id }
func (e *Entity) Type() Type                    { return e.typ }
func (e *Entity) World() World                  { return e.world }
func (e *Entity) Behavior() Behavior            { return e.behavior }
func (e *Entity) Descriptor() descriptor.Object { return e.desc }

// TypeName 返回实体类型名称
func (e *Entity) TypeName() string {
	if e.typ == nil {
		return ""
	}
	return e.typ.Name()
}

// Mass 通过行为组件查询质量，没有行为时为0
func (e *Entity) Mass() float64 {
	if e.behavior == nil {
		return 0
	}
	return e.behavior.QueryMass(e)
}

// Inventory 返回实体的背包组件
func (e *Entity) Inventory() (*item.Inventory, bool) {
	if e.behavior == nil {
		return nil, false
	}
	return e.behavior.InventoryComponent()
}
