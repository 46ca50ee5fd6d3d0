package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"rogueblight/internal/common/errors"
	"rogueblight/internal/descriptor"
	"rogueblight/internal/entity"
	"rogueblight/internal/item"
)

// TypeSummary 已注册类型的摘要
type TypeSummary struct {
	Name   string         `json:"name" jsonschema:"type name used in descriptors"`
	Config map[string]any `json:"config,omitempty" jsonschema:"merged type configuration"`
}

// ListTypesInput 列出类型的输入
type ListTypesInput struct{}

// ListTypesResult 列出类型的输出
type ListTypesResult struct {
	EntityTypes []TypeSummary `json:"entity_types" jsonschema:"registered entity types in lookup order"`
	ItemTypes   []TypeSummary `json:"item_types" jsonschema:"registered item types in lookup order"`
}

// ItemSummary 物品摘要
type ItemSummary struct {
	UUID string  `json:"uuid" jsonschema:"item identity"`
	Name string  `json:"name" jsonschema:"qualified item name"`
	Type string  `json:"type" jsonschema:"item type name"`
	Mass float64 `json:"mass" jsonschema:"item mass"`
}

// EntitySummary 实体摘要
type EntitySummary struct {
	ID    string        `json:"id" jsonschema:"entity identity"`
	Type  string        `json:"type" jsonschema:"entity type name"`
	Mass  float64       `json:"mass" jsonschema:"total mass including carried items"`
	Items []ItemSummary `json:"items,omitempty" jsonschema:"inventory contents sorted by name"`
}

// CreateEntityInput 创建实体的输入
type CreateEntityInput struct {
	Descriptor map[string]any `json:"descriptor" jsonschema:"entity descriptor, a JSON object with a string type field"`
}

// CreateItemInput 创建物品的输入
type CreateItemInput struct {
	EntityID   string         `json:"entity_id" jsonschema:"id of an entity with an inventory"`
	Descriptor map[string]any `json:"descriptor" jsonschema:"item descriptor, a JSON object with a string type field"`
}

// ListEntitiesInput 列出实体的输入
type ListEntitiesInput struct {
	Type string `json:"type,omitempty" jsonschema:"only list entities of this type"`
}

// ListEntitiesResult 列出实体的输出
type ListEntitiesResult struct {
	Entities []EntitySummary `json:"entities" jsonschema:"entities in insertion order"`
}

// TransferItemInput 转移物品的输入
type TransferItemInput struct {
	FromEntityID string `json:"from_entity_id" jsonschema:"entity currently holding the item"`
	ToEntityID   string `json:"to_entity_id" jsonschema:"entity receiving the item"`
	ItemUUID     string `json:"item_uuid" jsonschema:"item to move"`
}

// TransferItemResult 转移物品的输出
type TransferItemResult struct {
	Moved bool          `json:"moved" jsonschema:"whether the item was moved"`
	From  EntitySummary `json:"from" jsonschema:"source entity after the transfer"`
	To    EntitySummary `json:"to" jsonschema:"destination entity after the transfer"`
}

// ListTypesTool 列出已注册类型
func ListTypesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_types",
		Description: "Lists registered entity and item types with their configuration",
	}
}

// CreateEntityTool 根据描述符创建实体
func CreateEntityTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_entity",
		Description: "Creates an entity from a descriptor and adds it to the world",
	}
}

// CreateItemTool 根据描述符在实体背包中创建物品
func CreateItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_item",
		Description: "Creates an item from a descriptor inside an entity's inventory",
	}
}

// ListEntitiesTool 列出世界中的实体
func ListEntitiesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_entities",
		Description: "Lists entities in the world",
	}
}

// TransferItemTool 在两个实体的背包之间转移物品
func TransferItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "transfer_item",
		Description: "Moves an item between the inventories of two entities",
	}
}

// ListTypesHandler 列出类型
func (s *Service) ListTypesHandler() mcp.ToolHandlerFor[ListTypesInput, ListTypesResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListTypesInput) (*mcp.CallToolResult, ListTypesResult, error) {
		result := ListTypesResult{
			EntityTypes: make([]TypeSummary, 0),
			ItemTypes:   make([]TypeSummary, 0),
		}
		for _, t := range s.registry.EntityTypes() {
			result.EntityTypes = append(result.EntityTypes, TypeSummary{Name: t.Name(), Config: t.Config()})
		}
		for _, t := range s.registry.ItemTypes() {
			result.ItemTypes = append(result.ItemTypes, TypeSummary{Name: t.Name(), Config: t.Config()})
		}
		return nil, result, nil
	}
}

// CreateEntityHandler 创建实体
func (s *Service) CreateEntityHandler() mcp.ToolHandlerFor[CreateEntityInput, EntitySummary] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CreateEntityInput) (*mcp.CallToolResult, EntitySummary, error) {
		desc := descriptor.FromMap(input.Descriptor)
		e, ok := s.registry.CreateEntityInWorld(desc, s.world)
		if !ok {
			return nil, EntitySummary{}, creationFailed(desc)
		}
		return nil, summarizeEntity(e), nil
	}
}

// CreateItemHandler 创建物品
func (s *Service) CreateItemHandler() mcp.ToolHandlerFor[CreateItemInput, EntitySummary] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CreateItemInput) (*mcp.CallToolResult, EntitySummary, error) {
		e, inv, err := s.entityWithInventory(input.EntityID)
		if err != nil {
			return nil, EntitySummary{}, err
		}
		desc := descriptor.FromMap(input.Descriptor)
		if !s.registry.CreateItemInInventory(inv, desc) {
			return nil, EntitySummary{}, creationFailed(desc)
		}
		return nil, summarizeEntity(e), nil
	}
}

// ListEntitiesHandler 列出实体
func (s *Service) ListEntitiesHandler() mcp.ToolHandlerFor[ListEntitiesInput, ListEntitiesResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListEntitiesInput) (*mcp.CallToolResult, ListEntitiesResult, error) {
		entities := s.world.Entities()
		if input.Type != "" {
			entities = s.world.EntitiesByType(input.Type)
		}
		result := ListEntitiesResult{Entities: make([]EntitySummary, 0, len(entities))}
		for _, e := range entities {
			result.Entities = append(result.Entities, summarizeEntity(e))
		}
		return nil, result, nil
	}
}

// TransferItemHandler 转移物品
func (s *Service) TransferItemHandler() mcp.ToolHandlerFor[TransferItemInput, TransferItemResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input TransferItemInput) (*mcp.CallToolResult, TransferItemResult, error) {
		from, src, err := s.entityWithInventory(input.FromEntityID)
		if err != nil {
			return nil, TransferItemResult{}, err
		}
		to, dst, err := s.entityWithInventory(input.ToEntityID)
		if err != nil {
			return nil, TransferItemResult{}, err
		}
		id, err := uuid.Parse(input.ItemUUID)
		if err != nil {
			return nil, TransferItemResult{}, errors.WrapError(errors.ErrCodeInvalidParam, "物品UUID无效", err)
		}
		it, ok := src.ItemByUUID(id)
		if !ok {
			return nil, TransferItemResult{}, errors.NewItemNotFoundError(fmt.Sprintf("实体 %s 中没有物品 %s", input.FromEntityID, id))
		}

		moved := item.TransferItem(src, dst, it)
		return nil, TransferItemResult{
			Moved: moved,
			From:  summarizeEntity(from),
			To:    summarizeEntity(to),
		}, nil
	}
}

func (s *Service) entityWithInventory(rawID string) (*entity.Entity, *item.Inventory, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, nil, errors.WrapError(errors.ErrCodeInvalidParam, "实体ID无效", err)
	}
	e, ok := s.world.EntityByID(id)
	if !ok {
		return nil, nil, errors.NewErrorWithDetails(errors.ErrCodeNotFound, "实体未找到", id.String())
	}
	inv, ok := e.Inventory()
	if !ok {
		return nil, nil, errors.NewErrorWithDetails(errors.ErrCodeInvalidParam, "实体没有背包", id.String())
	}
	return e, inv, nil
}

func creationFailed(desc descriptor.Object) error {
	name, _ := desc.TypeName()
	return errors.WrapCreationError(name, fmt.Errorf("descriptor %s rejected", desc.JSON()))
}

func summarizeEntity(e *entity.Entity) EntitySummary {
	summary := EntitySummary{
		ID:   e.ID().String(),
		Type: e.TypeName(),
		Mass: e.Mass(),
	}
	if inv, ok := e.Inventory(); ok {
		for _, it := range sortedItems(inv) {
			summary.Items = append(summary.Items, ItemSummary{
				UUID: it.UUID().String(),
				Name: it.QualifiedName(),
				Type: it.TypeName(),
				Mass: it.Mass(),
			})
		}
	}
	return summary
}

// sortedItems 按名称排序背包中的物品
func sortedItems(inv *item.Inventory) []*item.Item {
	var items []*item.Item
	for _, name := range uniqueNames(inv.Names()) {
		items = append(items, inv.ItemsByQualifiedName(name)...)
	}
	return items
}

func uniqueNames(sorted []string) []string {
	out := make([]string, 0, len(sorted))
	for i, name := range sorted {
		if i == 0 || sorted[i-1] != name {
			out = append(out, name)
		}
	}
	return out
}
