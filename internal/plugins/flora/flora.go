// Package flora 提供植物相关的示例插件：树木实体与树枝、苹果物品。
package flora

import (
	"rogueblight/internal/descriptor"
	"rogueblight/internal/entity"
	"rogueblight/internal/item"
	"rogueblight/internal/plugins"
	"rogueblight/internal/registry"
)

// PluginName 插件注册名称
const PluginName = "flora"

// 插件提供的类型名称
const (
	TypeTree  = "tree"
	TypeStick = "stick"
	TypeApple = "apple"
)

func init() {
	plugins.RegisterPluginFactory(PluginName, New)
}

// Plugin 植物插件
type Plugin struct{}

// New 创建植物插件
func New() registry.Plugin {
	return &Plugin{}
}

func (p *Plugin) Name() string { return PluginName }

// EntityTypes 返回树木类型，插件类型不经过配置合并，因此自带默认配置
func (p *Plugin) EntityTypes() []entity.Type {
	tree := entity.NewBasicType(TypeTree)
	tree.SetConfig(descriptor.Object{
		entity.FieldMass:      float64(500),
		entity.FieldMaxHealth: float64(40),
	})
	return []entity.Type{tree}
}

func (p *Plugin) ItemTypes() []item.Type {
	stick := item.NewBasicType(TypeStick)
	stick.SetConfig(descriptor.Object{
		item.FieldDisplayName: "Stick",
		item.FieldMass:        0.5,
	})
	apple := item.NewBasicType(TypeApple)
	apple.SetConfig(descriptor.Object{
		item.FieldDisplayName: "Apple",
		item.FieldMass:        0.2,
	})
	return []item.Type{stick, apple}
}
