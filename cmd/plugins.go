package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"rogueblight/internal/config"
	"rogueblight/internal/plugins"
)

// pluginsCmd represents the plugins command
var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "插件管理",
}

// pluginsListCmd lists plugin factories
var pluginsListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出可用插件",
	Run: func(cmd *cobra.Command, args []string) {
		listPlugins()
	},
}

func init() {
	rootCmd.AddCommand(pluginsCmd)
	pluginsCmd.AddCommand(pluginsListCmd)
}

func listPlugins() {
	enabled := config.Config.Plugins.Enabled
	fmt.Println(sectionStyle.Render("可用插件"))
	for _, name := range plugins.ListPluginFactories() {
		state := mutedStyle.Render("未启用")
		if slices.Contains(loadedPlugins, name) {
			state = nameStyle.Render("已加载")
		} else if slices.Contains(enabled, name) {
			state = "加载失败"
		}
		fmt.Printf("  %-12s %s\n", name, state)
	}

	for _, name := range enabled {
		if _, ok := plugins.GetPluginFactory(name); !ok {
			fmt.Printf("  %-12s %s\n", name, "未找到")
		}
	}
}
