package registry

import (
	"rogueblight/internal/entity"
	"rogueblight/internal/item"
)

// Plugin 向注册表提供一组实体类型和物品类型
type Plugin interface {
	Name() string
	EntityTypes() []entity.Type
	ItemTypes() []item.Type
}
