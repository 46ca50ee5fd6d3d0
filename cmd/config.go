package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rogueblight/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "配置管理",
	Long:  "管理 Rogueblight 的配置文件和设置",
}

// configShowCmd represents the show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "显示当前配置",
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

// showConfig 显示配置信息
func showConfig() {
	cfg := config.Config
	fmt.Println("当前配置:")
	fmt.Printf("  配置文件: %s\n", configPath)
	fmt.Printf("  数据目录: %s\n", cfg.Data.Path)
	fmt.Printf("  类型配置文件: %s\n", cfg.Data.TypeConfigFile)
	fmt.Printf("  启用插件: %v\n", cfg.Plugins.Enabled)
	fmt.Printf("  日志级别: %s\n", cfg.Logging.Level)

	if verbose {
		fmt.Printf("  插件配置合并: %t\n", cfg.Plugins.MergeConfig)
		fmt.Printf("  日志格式: %s\n", cfg.Logging.Format)
		fmt.Printf("  日志输出: %s\n", cfg.Logging.Output)
		fmt.Printf("  MCP服务: %s %s\n", cfg.MCP.Name, cfg.MCP.Version)
	}
}
