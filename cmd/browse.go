package cmd

import (
	"github.com/spf13/cobra"

	"rogueblight/internal/tui"
)

// browseCmd starts the terminal browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "启动交互式类型浏览器",
	Long:  "在终端界面中浏览类型目录，实例化实体并向容器中放入物品",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(typeRegistry, gameWorld)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
