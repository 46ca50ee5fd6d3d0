package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rogueblight/internal/common/errors"
	"rogueblight/internal/descriptor"
	"rogueblight/internal/entity"
	"rogueblight/internal/item"
)

var (
	spawnDescriptor string
	spawnFile       string
)

// spawnCmd represents the spawn command
var spawnCmd = &cobra.Command{
	Use:   "spawn",
	Short: "根据描述符实例化",
	Long:  "根据 JSON 描述符创建实体或物品，描述符必须包含字符串类型的 type 字段",
}

// spawnEntityCmd creates an entity in the world
var spawnEntityCmd = &cobra.Command{
	Use:   "entity",
	Short: "创建实体",
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := readDescriptor(cmd.InOrStdin())
		if err != nil {
			return err
		}
		e, ok := typeRegistry.CreateEntityInWorld(desc, gameWorld)
		if !ok {
			name, _ := desc.TypeName()
			return errors.WrapCreationError(name, fmt.Errorf("实体描述符未被接受"))
		}
		return printJSON(cmd.OutOrStdout(), entityView(e))
	},
}

// spawnItemCmd creates an item in a fresh inventory
var spawnItemCmd = &cobra.Command{
	Use:   "item",
	Short: "在新背包中创建物品",
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := readDescriptor(cmd.InOrStdin())
		if err != nil {
			return err
		}
		inv := item.NewInventory()
		if !typeRegistry.CreateItemInInventory(inv, desc) {
			name, _ := desc.TypeName()
			return errors.WrapCreationError(name, fmt.Errorf("物品描述符未被接受"))
		}
		return printJSON(cmd.OutOrStdout(), inventoryView(inv))
	},
}

func init() {
	rootCmd.AddCommand(spawnCmd)
	spawnCmd.AddCommand(spawnEntityCmd)
	spawnCmd.AddCommand(spawnItemCmd)
	spawnCmd.PersistentFlags().StringVarP(&spawnDescriptor, "descriptor", "d", "", "JSON 描述符")
	spawnCmd.PersistentFlags().StringVarP(&spawnFile, "file", "f", "", "描述符文件路径，- 表示标准输入")
}

// readDescriptor 从参数、文件或标准输入读取描述符
func readDescriptor(stdin io.Reader) (descriptor.Object, error) {
	switch {
	case spawnDescriptor != "":
		return descriptor.Parse([]byte(spawnDescriptor))
	case spawnFile == "-":
		return descriptor.Decode(stdin)
	case spawnFile != "":
		f, err := os.Open(spawnFile)
		if err != nil {
			return nil, errors.WrapError(errors.ErrCodeNotFound, "无法打开描述符文件", err)
		}
		defer f.Close()
		return descriptor.Decode(f)
	default:
		return nil, errors.NewError(errors.ErrCodeInvalidParam, "必须通过 --descriptor 或 --file 提供描述符")
	}
}

type itemJSON struct {
	UUID string  `json:"uuid"`
	Name string  `json:"name"`
	Type string  `json:"type"`
	Mass float64 `json:"mass"`
}

type inventoryJSON struct {
	ID    string     `json:"id"`
	Names []string   `json:"names"`
	Items []itemJSON `json:"items"`
}

type entityJSON struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	World     string         `json:"world"`
	Mass      float64        `json:"mass"`
	Health    *float64       `json:"health,omitempty"`
	Inventory *inventoryJSON `json:"inventory,omitempty"`
}

func inventoryView(inv *item.Inventory) inventoryJSON {
	view := inventoryJSON{
		ID:    inv.ID().String(),
		Names: inv.Names(),
		Items: make([]itemJSON, 0, inv.Count()),
	}
	for _, it := range inv.Items() {
		view.Items = append(view.Items, itemJSON{
			UUID: it.UUID().String(),
			Name: it.QualifiedName(),
			Type: it.TypeName(),
			Mass: it.Mass(),
		})
	}
	return view
}

func entityView(e *entity.Entity) entityJSON {
	view := entityJSON{
		ID:    e.ID().String(),
		Type:  e.TypeName(),
		World: gameWorld.Name(),
		Mass:  e.Mass(),
	}
	if e.Behavior() != nil {
		if living, ok := e.Behavior().LivingComponent(); ok {
			health := living.Health()
			view.Health = &health
		}
	}
	if inv, ok := e.Inventory(); ok {
		invView := inventoryView(inv)
		view.Inventory = &invView
	}
	return view
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapError(errors.ErrCodeInternalErr, "JSON编码失败", err)
	}
	_, err = fmt.Fprintln(w, strings.TrimSpace(string(data)))
	return err
}
