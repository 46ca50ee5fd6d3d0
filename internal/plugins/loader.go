package plugins

import (
	"rogueblight/internal/common/errors"
	"rogueblight/internal/entity"
	"rogueblight/internal/item"
	"rogueblight/internal/registry"
	"rogueblight/internal/util"
)

// PluginTarget 接收插件的注册表
type PluginTarget interface {
	AddPlugin(p registry.Plugin)
}

// ConfiguringTarget 能够为类型合并配置的注册表
type ConfiguringTarget interface {
	PluginTarget
	RegisterType(t entity.Type)
	RegisterConfiguredItemType(t item.Type)
}

// Loader 插件加载器
type Loader struct {
	table *FactoryTable
	// MergeConfig 为 true 且目标支持时，插件类型逐个经过配置合并后注册
	MergeConfig bool
}

// NewLoader 创建插件加载器，table 为空时使用全局工厂表
func NewLoader(table *FactoryTable) *Loader {
	if table == nil {
		table = factoryTable
	}
	return &Loader{table: table}
}

// LoadPlugins 按顺序加载启用的插件，返回成功加载的插件名称和遇到的第一个错误
func (l *Loader) LoadPlugins(target PluginTarget, enabled []string) ([]string, error) {
	util.Infow("开始加载插件", map[string]any{
		"enabled":   enabled,
		"available": l.table.Names(),
	})

	var firstErr error
	loaded := make([]string, 0, len(enabled))
	for _, name := range enabled {
		plugin, err := l.instantiate(name)
		if err != nil {
			util.LogErrorWithFields(err, "加载插件失败", map[string]any{
				"plugin_name": name,
			})
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		l.register(target, plugin)
		loaded = append(loaded, name)
		util.Infow("成功加载插件", map[string]any{
			"plugin_name": name,
		})
	}

	util.Infow("插件加载完成", map[string]any{
		"loaded_count": len(loaded),
		"total_count":  len(enabled),
	})
	return loaded, firstErr
}

func (l *Loader) register(target PluginTarget, plugin registry.Plugin) {
	configuring, ok := target.(ConfiguringTarget)
	if !l.MergeConfig || !ok {
		target.AddPlugin(plugin)
		return
	}

	util.Infow("添加插件并合并类型配置", map[string]any{
		"plugin_name": plugin.Name(),
	})
	for _, t := range plugin.EntityTypes() {
		configuring.RegisterType(t)
	}
	for _, t := range plugin.ItemTypes() {
		configuring.RegisterConfiguredItemType(t)
	}
}

func (l *Loader) instantiate(name string) (registry.Plugin, error) {
	factory, ok := l.table.Get(name)
	if !ok {
		return nil, errors.NewPluginNotFoundError(name)
	}
	plugin := factory()
	if plugin == nil {
		return nil, errors.NewErrorWithDetails(errors.ErrCodePluginInvalid, "插件工厂返回空实例", "插件名称: "+name)
	}
	return plugin, nil
}
