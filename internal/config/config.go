package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"rogueblight/internal/common/errors"
)

// 全局配置实例
var Config *AppConfig

// 应用配置结构
type AppConfig struct {
	Data    DataConfig    `toml:"data"`
	Plugins PluginsConfig `toml:"plugins"`
	Logging LoggingConfig `toml:"logging"`
	MCP     MCPConfig     `toml:"mcp"`
}

// 数据目录配置
type DataConfig struct {
	Path           string `toml:"path"`             // 数据目录
	TypeConfigFile string `toml:"type_config_file"` // 类型配置文件名，相对于数据目录
}

// 插件配置
type PluginsConfig struct {
	Enabled     []string `toml:"enabled"`      // 启用的插件名称，按顺序加载
	MergeConfig bool     `toml:"merge_config"` // 插件类型是否合并类型配置
}

// 日志配置
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, text
	Output string `toml:"output"` // stdout, stderr, file
	File   string `toml:"file"`   // 日志文件路径
}

// MCP服务配置
type MCPConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// 默认值
const (
	DefaultDataPath       = "data"
	DefaultTypeConfigFile = "types.json"
	DefaultMCPName        = "rogueblight"
	DefaultMCPVersion     = "0.1.0"
)

// DefaultTypeConfig 首次运行时写入数据目录的类型配置
//
// 内置类型 item_container 与 stone 注册时不合并配置，因此这里只包含插件类型。
const DefaultTypeConfig = `{
  "tree": {"mass": 500, "max_health": 40},
  "stick": {"display_name": "Stick", "mass": 0.5},
  "apple": {"display_name": "Apple", "mass": 0.2}
}
`

// 加载配置文件
func LoadConfig(configPath string) error {
	// 如果没有指定配置文件路径，使用默认路径
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 检查配置文件是否存在
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// 创建默认配置文件
		if err := createDefaultConfig(configPath); err != nil {
			return fmt.Errorf("创建默认配置文件失败: %w", err)
		}
		// stdout 可能被 MCP 协议占用
		fmt.Fprintf(os.Stderr, "已创建默认配置文件: %s\n", configPath)
	}

	// 解析TOML配置文件
	var config AppConfig
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return errors.WrapConfigError("解析配置文件失败", err)
	}

	applyDefaults(&config)

	// 使用环境变量覆盖配置
	overrideWithEnv(&config)

	// 验证配置
	if err := validateConfig(&config); err != nil {
		return fmt.Errorf("配置验证失败: %w", err)
	}

	// 设置全局配置
	Config = &config
	return nil
}

// 获取默认配置文件路径
func getDefaultConfigPath() string {
	// 优先使用当前目录下的config.toml
	if _, err := os.Stat("config.toml"); err == nil {
		return "config.toml"
	}

	// 使用用户主目录下的配置文件
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}

	return filepath.Join(homeDir, ".rogueblight", "config.toml")
}

// 创建默认配置文件
func createDefaultConfig(configPath string) error {
	// 确保目录存在
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// 默认配置内容
	defaultConfig := `# rogueblight 配置文件

[data]
path = "data"
type_config_file = "types.json"

[plugins]
enabled = ["flora"]
merge_config = true

[logging]
level = "info"
format = "text"
output = "stderr"
file = ""

[mcp]
name = "rogueblight"
version = "0.1.0"
`

	return os.WriteFile(configPath, []byte(defaultConfig), 0644)
}

// 填充未配置项的默认值
func applyDefaults(config *AppConfig) {
	if config.Data.Path == "" {
		config.Data.Path = DefaultDataPath
	}
	if config.Data.TypeConfigFile == "" {
		config.Data.TypeConfigFile = DefaultTypeConfigFile
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "text"
	}
	if config.Logging.Output == "" {
		config.Logging.Output = "stderr"
	}
	if config.MCP.Name == "" {
		config.MCP.Name = DefaultMCPName
	}
	if config.MCP.Version == "" {
		config.MCP.Version = DefaultMCPVersion
	}
}

// 使用环境变量覆盖配置
func overrideWithEnv(config *AppConfig) {
	// 数据目录配置
	if path := os.Getenv("ROGUEBLIGHT_DATA_PATH"); path != "" {
		config.Data.Path = path
	}
	if file := os.Getenv("ROGUEBLIGHT_TYPE_CONFIG"); file != "" {
		config.Data.TypeConfigFile = file
	}

	// 日志配置
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// 验证配置
func validateConfig(config *AppConfig) error {
	if config.Data.Path == "" {
		return errors.NewConfigError("数据目录未配置")
	}
	if filepath.IsAbs(config.Data.TypeConfigFile) {
		return errors.NewErrorWithDetails(errors.ErrCodeConfigInvalid, "类型配置文件必须是相对于数据目录的路径", config.Data.TypeConfigFile)
	}

	// 验证日志级别
	validLevels := []string{"debug", "info", "warn", "error"}
	levelValid := false
	for _, level := range validLevels {
		if config.Logging.Level == level {
			levelValid = true
			break
		}
	}
	if !levelValid {
		return errors.NewErrorWithDetails(errors.ErrCodeConfigInvalid, "无效的日志级别", config.Logging.Level)
	}

	return nil
}

// 获取当前配置
func GetConfig() *AppConfig {
	return Config
}

// TypeConfigPath 返回类型配置文件的完整路径
func (c *AppConfig) TypeConfigPath() string {
	return filepath.Join(c.Data.Path, c.Data.TypeConfigFile)
}

// EnsureDataDir 确保数据目录存在，并在类型配置文件缺失时写入默认内容
func EnsureDataDir(config *AppConfig) (bool, error) {
	if err := os.MkdirAll(config.Data.Path, 0755); err != nil {
		return false, errors.WrapError(errors.ErrCodeInitializationFailed, "无法创建数据目录", err)
	}

	path := config.TypeConfigPath()
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(DefaultTypeConfig), 0644); err != nil {
		return false, errors.WrapError(errors.ErrCodeInitializationFailed, "无法写入默认类型配置", err)
	}
	return true, nil
}
