package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rogueblight/internal/config"
	"rogueblight/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP服务",
	Long:  "通过 Model Context Protocol (MCP) 暴露类型注册表",
}

// mcpServeCmd serves the registry over stdio
var mcpServeCmd = &cobra.Command{
	Use:         "serve",
	Short:       "在标准输入输出上运行MCP服务",
	Annotations: map[string]string{annotationStdoutReserved: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		service := mcp.NewService(typeRegistry, gameWorld, config.Config.MCP.Name, config.Config.MCP.Version)
		return service.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.AddCommand(mcpServeCmd)
}
