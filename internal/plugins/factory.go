// Package plugins 管理按名称注册的插件工厂，并把启用的插件加载进类型注册表。
//
// 每个插件包应该：
//  1. 实现 registry.Plugin 接口
//  2. 在 init() 函数中调用 RegisterPluginFactory 注册自己
//  3. 由 cmd 通过空白导入引入
package plugins

import (
	"sort"
	"sync"

	"rogueblight/internal/registry"
	"rogueblight/internal/util"
)

// PluginFactory 插件工厂函数类型
type PluginFactory func() registry.Plugin

// factoryTable 全局插件工厂表
var factoryTable = &FactoryTable{
	factories: make(map[string]PluginFactory),
}

// FactoryTable 插件工厂表
type FactoryTable struct {
	factories map[string]PluginFactory
	mutex     sync.RWMutex
}

// NewFactoryTable 创建独立的插件工厂表
func NewFactoryTable() *FactoryTable {
	return &FactoryTable{factories: make(map[string]PluginFactory)}
}

// Register 注册插件工厂，同名工厂会被覆盖
func (t *FactoryTable) Register(name string, factory PluginFactory) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if _, exists := t.factories[name]; exists {
		util.Warnw("插件工厂已存在，将被覆盖", map[string]any{
			"plugin_name": name,
		})
	}
	t.factories[name] = factory
	util.Debugw("插件工厂已注册", map[string]any{
		"plugin_name": name,
	})
}

// Get 获取插件工厂
func (t *FactoryTable) Get(name string) (PluginFactory, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	factory, exists := t.factories[name]
	return factory, exists
}

// Names 返回排序后的插件名称
func (t *FactoryTable) Names() []string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	names := make([]string, 0, len(t.factories))
	for name := range t.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterPluginFactory 向全局工厂表注册插件工厂
func RegisterPluginFactory(name string, factory PluginFactory) {
	factoryTable.Register(name, factory)
}

// GetPluginFactory 从全局工厂表获取插件工厂
func GetPluginFactory(name string) (PluginFactory, bool) {
	return factoryTable.Get(name)
}

// ListPluginFactories 列出全局工厂表中的插件名称
func ListPluginFactories() []string {
	return factoryTable.Names()
}

// DefaultTable 返回全局工厂表
func DefaultTable() *FactoryTable {
	return factoryTable
}
