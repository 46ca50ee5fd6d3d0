// Package item 实现物品、物品类型契约以及背包归属模型。
package item

import (
	"sync/atomic"

	"github.com/google/uuid"

	"rogueblight/internal/descriptor"
)

// Type 物品类型契约
type Type interface {
	// Name 返回类型名称，作为注册表查找键
	Name() string
	// SetConfig 在首次使用前注入类型配置
	SetConfig(cfg descriptor.Object)
	// Config 返回当前类型配置
	Config() descriptor.Object
	// Create 根据描述符创建物品并放入目标背包
	Create(desc descriptor.Object, inv *Inventory) (*Item, error)
}

// Item 物品归属记录
type Item struct {
	id            uuid.UUID
	qualifiedName string
	typ           Type
	mass          float64
	desc          descriptor.Object

	owner atomic.Pointer[Inventory]
}

// New 创建一个尚未放入任何背包的物品
func New(id uuid.UUID, qualifiedName string, typ Type, mass float64, desc descriptor.Object) *Item {
	return &Item{
		id:            id,
		qualifiedName: qualifiedName,
		typ:           typ,
		mass:          mass,
		desc:          desc,
	}
}

// UUID 返回物品的唯一标识
func (i *Item) UUID() uuid.UUID {
	return i.id
}

// QualifiedName 返回物品的显示/查找名称，不保证唯一
func (i *Item) QualifiedName() string {
	return i.qualifiedName
}

// Type 返回物品类型
func (i *Item) Type() Type {
	return i.typ
}

// TypeName 返回物品类型名称，类型为空时返回空字符串
func (i *Item) TypeName() string {
	if i.typ == nil {
		return ""
	}
	return i.typ.Name()
}

// Mass 返回物品质量
func (i *Item) Mass() float64 {
	return i.mass
}

// Descriptor 返回创建物品时使用的描述符
func (i *Item) Descriptor() descriptor.Object {
	return i.desc
}

// Owner 返回当前持有该物品的背包，未被持有时返回 nil
func (i *Item) Owner() *Inventory {
	return i.owner.Load()
}
