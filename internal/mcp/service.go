// Package mcp 通过 MCP 协议对外暴露类型注册表与内存世界。
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"rogueblight/internal/common/errors"
	"rogueblight/internal/registry"
	"rogueblight/internal/util"
	"rogueblight/internal/world"
)

// Service MCP服务
type Service struct {
	registry *registry.Registry
	world    *world.Memory
	server   *mcp.Server
}

// NewService 创建MCP服务并注册全部工具
func NewService(reg *registry.Registry, w *world.Memory, name, version string) *Service {
	s := &Service{
		registry: reg,
		world:    w,
		server:   mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil),
	}
	s.registerTools()
	return s
}

func (s *Service) registerTools() {
	mcp.AddTool(s.server, ListTypesTool(), s.ListTypesHandler())
	mcp.AddTool(s.server, CreateEntityTool(), s.CreateEntityHandler())
	mcp.AddTool(s.server, CreateItemTool(), s.CreateItemHandler())
	mcp.AddTool(s.server, ListEntitiesTool(), s.ListEntitiesHandler())
	mcp.AddTool(s.server, TransferItemTool(), s.TransferItemHandler())
}

// Server 返回底层 MCP 服务器
func (s *Service) Server() *mcp.Server {
	return s.server
}

// Run 在标准输入输出上运行服务，直到客户端断开或 ctx 取消
func (s *Service) Run(ctx context.Context) error {
	return s.Serve(ctx, &mcp.StdioTransport{})
}

// Serve 在指定传输上运行服务
func (s *Service) Serve(ctx context.Context, transport mcp.Transport) error {
	util.Infow("MCP服务启动", map[string]any{
		"world":        s.world.Name(),
		"entity_types": len(s.registry.EntityTypes()),
		"item_types":   len(s.registry.ItemTypes()),
	})

	if err := s.server.Run(ctx, transport); err != nil && ctx.Err() == nil {
		return errors.WrapError(errors.ErrCodeMCPServeFailed, "MCP服务运行失败", err)
	}

	util.Infow("MCP服务已停止", nil)
	return nil
}
