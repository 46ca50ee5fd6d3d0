package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rogueblight/internal/common/errors"
	"rogueblight/internal/config"
	"rogueblight/internal/engine"
	"rogueblight/internal/plugins"
	_ "rogueblight/internal/plugins/flora"
	"rogueblight/internal/registry"
	"rogueblight/internal/util"
	"rogueblight/internal/world"
)

const (
	// registryKey 注册表在子系统管理器中的键
	registryKey = "registry"
	// annotationStdoutReserved 标记 stdout 被协议占用的命令
	annotationStdoutReserved = "stdout_reserved"
)

var (
	// configPath 是配置文件的路径
	configPath string
	// verbose 标志用于启用详细输出
	verbose bool

	manager       *engine.Manager
	typeRegistry  *registry.Registry
	gameWorld     *world.Memory
	loadedPlugins []string
)

// rootCmd 代表没有调用子命令时的基础命令
var rootCmd = &cobra.Command{
	Use:   "rogueblight",
	Short: "Rogueblight 类型注册表工具",
	Long: `Rogueblight 是 roguelike 引擎的实体与物品类型注册表，
提供类型配置合并、插件加载、描述符实例化和背包管理功能。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if manager != nil {
			manager.StopAll()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// 默认行为：显示状态信息
		showStatus()
	},
}

// Execute 将所有子命令添加到根命令并适当设置标志。
// 这是由 main.main() 调用的。它只需要对 rootCmd 调用一次。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "命令执行失败: %s\n", errors.GetUserFriendlyMessage(err))
		if verbose {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径 (默认: $ROGUEBLIGHT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "详细输出")
}

// initializeApp 初始化应用
func initializeApp(cmd *cobra.Command) error {
	// 1. 处理配置文件路径
	if configPath == "" {
		configPath = os.Getenv("ROGUEBLIGHT_CONFIG")
	}

	// 2. 加载配置文件
	if err := config.LoadConfig(configPath); err != nil {
		return errors.WrapError(errors.ErrCodeConfigInvalid, "配置加载失败", err)
	}
	cfg := config.Config

	// 3. 根据verbose标志调整日志级别
	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}

	// 4. 初始化日志系统，MCP 服务独占 stdout
	logOutput := cfg.Logging.Output
	if cmd.Annotations[annotationStdoutReserved] == "true" && logOutput == "stdout" {
		logOutput = "stderr"
	}
	if err := util.InitLogger(logLevel, cfg.Logging.Format, logOutput, cfg.Logging.File); err != nil {
		return errors.WrapError(errors.ErrCodeConfigInvalid, "日志系统初始化失败", err)
	}

	util.Debugw("配置详情", map[string]any{
		"data_path":        cfg.Data.Path,
		"type_config_file": cfg.Data.TypeConfigFile,
		"plugins":          cfg.Plugins.Enabled,
		"log_level":        logLevel,
		"config_path":      configPath,
	})

	// 5. 准备数据目录
	created, err := config.EnsureDataDir(cfg)
	if err != nil {
		return err
	}
	if created {
		util.Infow("已写入默认类型配置", map[string]any{"path": cfg.TypeConfigPath()})
	}

	// 6. 初始化引擎子系统和插件
	if err := initializeEngine(cfg); err != nil {
		return errors.WrapError(errors.ErrCodeInitializationFailed, "引擎初始化失败", err)
	}
	return nil
}

// initializeEngine 创建子系统管理器、注册表和世界，并加载启用的插件
func initializeEngine(cfg *config.AppConfig) error {
	manager = engine.NewManager(cfg.Data.Path, cfg.Data.TypeConfigFile, util.DefaultLogger)
	typeRegistry = registry.New()
	if err := manager.Register(registryKey, typeRegistry); err != nil {
		return err
	}
	manager.InitAll()

	loader := plugins.NewLoader(nil)
	loader.MergeConfig = cfg.Plugins.MergeConfig
	loaded, err := loader.LoadPlugins(typeRegistry, cfg.Plugins.Enabled)
	if err != nil {
		// 插件缺失不影响启动
		util.Warnw("部分插件未加载", map[string]any{"error": err})
	}
	loadedPlugins = loaded

	gameWorld = world.NewMemory("overworld")

	util.Debugw("引擎状态", map[string]interface{}{
		"subsystems":   manager.Keys(),
		"entity_types": len(typeRegistry.EntityTypes()),
		"item_types":   len(typeRegistry.ItemTypes()),
		"plugins":      loadedPlugins,
	})
	return nil
}

// showStatus 显示应用状态
func showStatus() {
	cfg := config.Config
	fmt.Println("Rogueblight 注册表初始化完成")
	fmt.Printf("数据目录: %s\n", cfg.Data.Path)
	if typeRegistry.ConfigLoaded() {
		fmt.Printf("类型配置: %s\n", cfg.TypeConfigPath())
	} else {
		fmt.Printf("类型配置: %s (未加载，使用空配置)\n", cfg.TypeConfigPath())
	}
	fmt.Printf("实体类型: %d\n", len(typeRegistry.EntityTypes()))
	fmt.Printf("物品类型: %d\n", len(typeRegistry.ItemTypes()))
	fmt.Printf("已加载插件: %v\n", loadedPlugins)
	fmt.Printf("日志级别: %s\n", cfg.Logging.Level)
	fmt.Println("\n使用 'rogueblight --help' 查看可用命令")
}
