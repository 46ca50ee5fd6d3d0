// Package basegame 包含引擎内置的最小类型集合。
package basegame

import (
	"rogueblight/internal/descriptor"
	"rogueblight/internal/entity"
	"rogueblight/internal/item"
)

// 内置类型名称
const (
	TypeItemContainer = "item_container"
	TypeStone         = "stone"
)

// FieldContents 容器描述符中初始物品列表的字段
const FieldContents = "contents"

// ItemCreator 根据描述符在背包中创建物品
type ItemCreator interface {
	CreateItemInInventory(inv *item.Inventory, desc descriptor.Object) bool
}

// ItemContainer 带背包组件的实体类型
type ItemContainer struct {
	*entity.BasicType
	creator ItemCreator
}

// NewItemContainer 创建容器类型，creator 用于生成描述符 contents 中的物品
func NewItemContainer(creator ItemCreator) *ItemContainer {
	return &ItemContainer{
		BasicType: entity.NewBasicType(TypeItemContainer),
		creator:   creator,
	}
}

// Create 创建容器实体，并把 contents 中的物品放入其背包
func (c *ItemContainer) Create(desc descriptor.Object, world entity.World) (*entity.Entity, error) {
	inv := item.NewInventory()
	behavior := c.Behavior(desc)
	behavior.Inventory = inv

	if contents, ok := desc.Objects(FieldContents); ok && c.creator != nil {
		for _, itemDesc := range contents {
			c.creator.CreateItemInInventory(inv, itemDesc)
		}
	}

	return entity.CreateEntity(c, desc, world, behavior)
}

// NewStone 创建石头物品类型
func NewStone() *item.BasicType {
	return item.NewBasicType(TypeStone)
}
