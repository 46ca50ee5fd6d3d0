// Package registry 维护实体类型与物品类型目录，合并类型配置并按描述符分派实例化。
package registry

import (
	"os"
	"path/filepath"
	"sync"

	"rogueblight/internal/basegame"
	"rogueblight/internal/common/errors"
	"rogueblight/internal/descriptor"
	"rogueblight/internal/engine"
	"rogueblight/internal/entity"
	"rogueblight/internal/item"
	"rogueblight/internal/util"
	ordered "rogueblight/pkg/registry"
)

// Registry 类型注册表
type Registry struct {
	entityTypes ordered.Registry[entity.Type]
	itemTypes   ordered.Registry[item.Type]

	mu      sync.RWMutex
	configs descriptor.Object // 为 nil 表示类型配置未加载
	logger  engine.Logger
}

// New 创建空注册表
func New() *Registry {
	return &Registry{
		entityTypes: ordered.NewRegistry[entity.Type](),
		itemTypes:   ordered.NewRegistry[item.Type](),
	}
}

func (r *Registry) log() engine.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.logger != nil {
		return r.logger
	}
	return util.DefaultLogger
}

// Init 加载类型配置文件并注册内置类型
func (r *Registry) Init(host engine.Host) {
	r.mu.Lock()
	if logger := host.Logger(); logger != nil {
		r.logger = logger
	}
	r.mu.Unlock()

	path := filepath.Join(host.DataPath(), host.TypeConfigFileName())
	doc, err := loadTypeConfig(path)
	if err != nil {
		r.log().Errorw("无法读取类型配置文件", map[string]interface{}{
			"path":  path,
			"error": err,
		})
	} else {
		r.mu.Lock()
		r.configs = doc
		r.mu.Unlock()
		r.log().Infow("类型配置已加载", map[string]interface{}{
			"path":    path,
			"entries": len(doc),
		})
	}

	r.RegisterEntityType(basegame.NewItemContainer(r))
	r.RegisterItemType(basegame.NewStone())
}

// Stop 停止注册表
func (r *Registry) Stop() {
	r.log().Infow("类型注册表已停止", map[string]interface{}{
		"entity_types": r.entityTypes.Len(),
		"item_types":   r.itemTypes.Len(),
	})
}

func loadTypeConfig(path string) (descriptor.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeConfigNotFound, "无法打开类型配置文件", err)
	}
	defer f.Close()

	doc, err := descriptor.Decode(f)
	if err != nil {
		return nil, errors.WrapConfigError("类型配置解析失败", err)
	}
	return doc, nil
}

// ConfigLoaded 返回类型配置文档是否已加载
func (r *Registry) ConfigLoaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.configs != nil
}

// TypeConfig 返回配置文档中指定类型的配置条目
func (r *Registry) TypeConfig(name string) (descriptor.Object, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.configs == nil {
		return nil, false
	}
	cfg, ok := r.configs.Object(name)
	if !ok {
		return nil, false
	}
	return cfg.Clone(), true
}

// configFor 查找类型配置，缺失时返回空配置并记录警告
func (r *Registry) configFor(name string) descriptor.Object {
	if cfg, ok := r.TypeConfig(name); ok {
		return cfg
	}
	r.log().Warnw("未找到类型配置，使用空配置", map[string]interface{}{
		"type_name":     name,
		"config_loaded": r.ConfigLoaded(),
	})
	return descriptor.Empty()
}

// RegisterType 合并类型配置后注册实体类型
func (r *Registry) RegisterType(t entity.Type) {
	if t == nil {
		r.log().Warnw("忽略空实体类型", nil)
		return
	}
	r.log().Infow("注册实体类型", map[string]interface{}{"type_name": t.Name()})
	t.SetConfig(r.configFor(t.Name()))
	r.RegisterEntityType(t)
}

// RegisterConfiguredItemType 合并类型配置后注册物品类型
func (r *Registry) RegisterConfiguredItemType(t item.Type) {
	if t == nil {
		r.log().Warnw("忽略空物品类型", nil)
		return
	}
	r.log().Infow("注册物品类型", map[string]interface{}{"type_name": t.Name()})
	t.SetConfig(r.configFor(t.Name()))
	r.RegisterItemType(t)
}

// RegisterEntityType 直接追加实体类型，不合并配置
func (r *Registry) RegisterEntityType(t entity.Type) {
	if t == nil {
		r.log().Warnw("忽略空实体类型", nil)
		return
	}
	if r.entityTypes.Contains(t.Name()) {
		r.log().Warnw("实体类型名称重复，新类型将被先注册的类型遮蔽", map[string]interface{}{
			"type_name": t.Name(),
		})
	}
	r.entityTypes.Register(t)
}

// RegisterItemType 直接追加物品类型，不合并配置
func (r *Registry) RegisterItemType(t item.Type) {
	if t == nil {
		r.log().Warnw("忽略空物品类型", nil)
		return
	}
	if r.itemTypes.Contains(t.Name()) {
		r.log().Warnw("物品类型名称重复，新类型将被先注册的类型遮蔽", map[string]interface{}{
			"type_name": t.Name(),
		})
	}
	r.itemTypes.Register(t)
}

// EntityTypeExists 检查实体类型是否已注册
func (r *Registry) EntityTypeExists(name string) bool {
	return r.entityTypes.Contains(name)
}

// ItemTypeExists 检查物品类型是否已注册
func (r *Registry) ItemTypeExists(name string) bool {
	return r.itemTypes.Contains(name)
}

// EntityTypes 按注册顺序返回实体类型
func (r *Registry) EntityTypes() []entity.Type {
	return r.entityTypes.List()
}

// ItemTypes 按注册顺序返回物品类型
func (r *Registry) ItemTypes() []item.Type {
	return r.itemTypes.List()
}

// typeNameOf 读取描述符的 type 字段，无效时记录警告
func (r *Registry) typeNameOf(desc descriptor.Object, kind string) (string, bool) {
	if !desc.Has(descriptor.TypeField) {
		r.log().Warnw("描述符缺少 type 字段", map[string]interface{}{
			"kind":       kind,
			"descriptor": desc.JSON(),
		})
		return "", false
	}
	name, ok := desc.TypeName()
	if !ok {
		r.log().Warnw("描述符的 type 字段不是字符串", map[string]interface{}{
			"kind":       kind,
			"descriptor": desc.JSON(),
		})
		return "", false
	}
	return name, true
}

// CreateEntityInWorld 根据描述符创建实体并放入世界
func (r *Registry) CreateEntityInWorld(desc descriptor.Object, world entity.World) (*entity.Entity, bool) {
	name, ok := r.typeNameOf(desc, "entity")
	if !ok {
		return nil, false
	}
	t, ok := r.entityTypes.Find(name)
	if !ok {
		r.log().Warnw("未找到匹配的实体类型", map[string]interface{}{"type_name": name})
		return nil, false
	}

	e, err := t.Create(desc, world)
	if err != nil || e == nil {
		r.log().Warnw("实体创建失败", map[string]interface{}{
			"type_name": name,
			"error":     errors.WrapCreationError(name, err),
		})
		return nil, false
	}
	return e, true
}

// CreateItemInInventory 根据描述符创建物品并放入背包，成功时返回 true
func (r *Registry) CreateItemInInventory(inv *item.Inventory, desc descriptor.Object) bool {
	name, ok := r.typeNameOf(desc, "item")
	if !ok {
		return false
	}
	t, ok := r.itemTypes.Find(name)
	if !ok {
		r.log().Warnw("未找到匹配的物品类型", map[string]interface{}{"type_name": name})
		return false
	}

	it, err := t.Create(desc, inv)
	if err != nil || it == nil {
		r.log().Warnw("物品创建失败", map[string]interface{}{
			"type_name": name,
			"error":     errors.WrapCreationError(name, err),
		})
		return false
	}
	return true
}

// AddPlugin 注册插件提供的全部类型，先实体类型后物品类型
func (r *Registry) AddPlugin(p Plugin) {
	if p == nil {
		r.log().Warnw("忽略空插件", nil)
		return
	}
	entityTypes := p.EntityTypes()
	itemTypes := p.ItemTypes()
	r.log().Infow("添加插件", map[string]interface{}{
		"plugin":       p.Name(),
		"entity_types": len(entityTypes),
		"item_types":   len(itemTypes),
	})
	for _, t := range entityTypes {
		r.RegisterEntityType(t)
	}
	for _, t := range itemTypes {
		r.RegisterItemType(t)
	}
}

// Reset 清空所有已注册类型，类型配置保持不变
func (r *Registry) Reset() {
	r.entityTypes.Clear()
	r.itemTypes.Clear()
	r.log().Infow("类型注册表已重置", nil)
}
