package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rogueblight/internal/basegame"
	"rogueblight/internal/common/errors"
	"rogueblight/internal/descriptor"
	"rogueblight/internal/item"
)

var demoStones int

// inventoryCmd represents the inventory command
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "背包操作",
}

// inventoryDemoCmd creates two containers and moves an item between them
var inventoryDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "演示两个容器之间的物品转移",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInventoryDemo()
	},
}

func init() {
	rootCmd.AddCommand(inventoryCmd)
	inventoryCmd.AddCommand(inventoryDemoCmd)
	inventoryDemoCmd.Flags().IntVarP(&demoStones, "stones", "n", 3, "初始放入第一个容器的石头数量")
}

func runInventoryDemo() error {
	contents := make([]any, 0, demoStones)
	for i := 0; i < demoStones; i++ {
		contents = append(contents, map[string]any{
			descriptor.TypeField: basegame.TypeStone,
			item.FieldName:       fmt.Sprintf("stone-%02d", i+1),
		})
	}

	chest, ok := typeRegistry.CreateEntityInWorld(descriptor.Object{
		descriptor.TypeField:   basegame.TypeItemContainer,
		basegame.FieldContents: contents,
	}, gameWorld)
	if !ok {
		return errors.WrapCreationError(basegame.TypeItemContainer, nil)
	}
	sack, ok := typeRegistry.CreateEntityInWorld(descriptor.Object{
		descriptor.TypeField: basegame.TypeItemContainer,
	}, gameWorld)
	if !ok {
		return errors.WrapCreationError(basegame.TypeItemContainer, nil)
	}

	src, _ := chest.Inventory()
	dst, _ := sack.Inventory()
	printInventories("转移前", src, dst)

	if src.Count() == 0 {
		fmt.Println(mutedStyle.Render("第一个容器为空，没有可转移的物品"))
		return nil
	}

	moving := src.Items()[0]
	moved := item.TransferItem(src, dst, moving)
	fmt.Printf("\n转移 %s (%s): %t\n", nameStyle.Render(moving.QualifiedName()), moving.UUID(), moved)

	again := item.TransferItem(src, dst, moving)
	fmt.Printf("再次从原容器转移: %t\n\n", again)

	printInventories("转移后", src, dst)
	fmt.Printf("\n容器质量: %.2f / %.2f\n", chest.Mass(), sack.Mass())
	return nil
}

func printInventories(title string, inventories ...*item.Inventory) {
	fmt.Println(sectionStyle.Render(title))
	for _, inv := range inventories {
		fmt.Printf("  %s %d 件: %v\n", mutedStyle.Render(inv.ID().String()[:8]), inv.Count(), inv.Names())
		for _, id := range inv.UUIDs() {
			fmt.Printf("    %s\n", id)
		}
	}
}
