// Package engine 提供子系统管理器：数据目录、类型配置文件名、日志器，以及子系统生命周期。
package engine

import (
	"fmt"
	"path/filepath"
	"sync"

	"rogueblight/internal/common/errors"
	"rogueblight/internal/util"
)

// Logger 子系统使用的日志器，Errorw 对应 severe 级别
type Logger interface {
	Debugw(message string, fields map[string]interface{})
	Infow(message string, fields map[string]interface{})
	Warnw(message string, fields map[string]interface{})
	Errorw(message string, fields map[string]interface{})
}

// Host 子系统初始化时可以访问的管理器能力
type Host interface {
	// DataPath 返回数据目录
	DataPath() string
	// TypeConfigFileName 返回类型配置文件名
	TypeConfigFileName() string
	// Logger 返回日志器
	Logger() Logger
}

// Subsystem 由管理器统一初始化和停止的组件
type Subsystem interface {
	Init(host Host)
	Stop()
}

// Manager 子系统管理器
type Manager struct {
	dataPath           string
	typeConfigFileName string
	logger             Logger

	mu         sync.RWMutex
	keys       []string
	subsystems map[string]Subsystem
}

// NewManager 创建一个新的子系统管理器，logger 为空时使用默认日志器
func NewManager(dataPath, typeConfigFileName string, logger Logger) *Manager {
	if logger == nil {
		logger = util.DefaultLogger
	}
	return &Manager{
		dataPath:           dataPath,
		typeConfigFileName: typeConfigFileName,
		logger:             logger,
		subsystems:         make(map[string]Subsystem),
	}
}

func (m *Manager) DataPath() string           { return m.dataPath }
func (m *Manager) TypeConfigFileName() string { return m.typeConfigFileName }
func (m *Manager) Logger() Logger             { return m.logger }

// TypeConfigPath 返回类型配置文件的完整路径
func (m *Manager) TypeConfigPath() string {
	return filepath.Join(m.dataPath, m.typeConfigFileName)
}

// Register 注册一个子系统
// key 是子系统的唯一标识符，例如 "registry"
func (m *Manager) Register(key string, subsystem Subsystem) error {
	if key == "" || subsystem == nil {
		return errors.NewError(errors.ErrCodeInvalidParam, "子系统名称和实例不能为空")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.subsystems[key]; exists {
		return errors.NewErrorWithDetails(errors.ErrCodeSubsystemExists, "子系统已存在",
			fmt.Sprintf("子系统: %s", key))
	}

	m.subsystems[key] = subsystem
	m.keys = append(m.keys, key)
	return nil
}

// Get 根据键名获取子系统
func (m *Manager) Get(key string) (Subsystem, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subsystem, exists := m.subsystems[key]
	return subsystem, exists
}

// Keys 按注册顺序返回子系统键名
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// InitAll 按注册顺序初始化所有子系统
func (m *Manager) InitAll() {
	for _, key := range m.Keys() {
		subsystem, _ := m.Get(key)
		m.logger.Debugw("初始化子系统", map[string]interface{}{"subsystem": key})
		subsystem.Init(m)
	}
}

// StopAll 按注册的逆序停止所有子系统
func (m *Manager) StopAll() {
	keys := m.Keys()
	for i := len(keys) - 1; i >= 0; i-- {
		subsystem, _ := m.Get(keys[i])
		m.logger.Debugw("停止子系统", map[string]interface{}{"subsystem": keys[i]})
		subsystem.Stop()
	}
}

// Lookup 获取指定类型的子系统
func Lookup[T Subsystem](m *Manager, key string) (T, error) {
	var zero T
	subsystem, ok := m.Get(key)
	if !ok {
		return zero, errors.NewErrorWithDetails(errors.ErrCodeSubsystemNotFound, "子系统未找到",
			fmt.Sprintf("子系统: %s", key))
	}
	typed, ok := subsystem.(T)
	if !ok {
		return zero, errors.NewErrorWithDetails(errors.ErrCodeInternalErr, "子系统类型断言失败",
			fmt.Sprintf("子系统: %s", key))
	}
	return typed, nil
}
