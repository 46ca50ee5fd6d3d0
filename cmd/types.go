package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"rogueblight/internal/common/errors"
	"rogueblight/internal/descriptor"
)

var typesMarkdown bool

var (
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ffff")).
			Bold(true)
	nameStyle    = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)
	mutedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "类型目录",
	Long:  "查看已注册的实体类型和物品类型",
}

// typesListCmd lists registered types
var typesListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出已注册的类型",
	RunE: func(cmd *cobra.Command, args []string) error {
		if typesMarkdown {
			return printTypesMarkdown()
		}
		printTypes()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.AddCommand(typesListCmd)
	typesListCmd.Flags().BoolVar(&typesMarkdown, "markdown", false, "以 Markdown 表格渲染")
}

type typeRow struct {
	kind   string
	name   string
	config descriptor.Object
}

func typeRows() []typeRow {
	var rows []typeRow
	for _, t := range typeRegistry.EntityTypes() {
		rows = append(rows, typeRow{kind: "实体", name: t.Name(), config: t.Config()})
	}
	for _, t := range typeRegistry.ItemTypes() {
		rows = append(rows, typeRow{kind: "物品", name: t.Name(), config: t.Config()})
	}
	return rows
}

// printTypes 以彩色文本列出类型
func printTypes() {
	current := ""
	for _, row := range typeRows() {
		if row.kind != current {
			current = row.kind
			fmt.Println(sectionStyle.Render(current + "类型"))
		}
		fmt.Printf("  %s %s\n", nameStyle.Render(row.name), mutedStyle.Render(row.config.JSON()))
	}
}

// typesMarkdownTable 生成类型目录的 Markdown 表格
func typesMarkdownTable() string {
	var b strings.Builder
	b.WriteString("# 类型目录\n\n")
	b.WriteString("| 种类 | 名称 | 配置 |\n")
	b.WriteString("|---|---|---|\n")
	for _, row := range typeRows() {
		fmt.Fprintf(&b, "| %s | `%s` | `%s` |\n", row.kind, row.name, strings.ReplaceAll(row.config.JSON(), "|", "\\|"))
	}
	return b.String()
}

// printTypesMarkdown 使用 glamour 渲染 Markdown 表格
func printTypesMarkdown() error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return errors.WrapError(errors.ErrCodeSystemError, "创建Markdown渲染器失败", err)
	}

	out, err := renderer.Render(typesMarkdownTable())
	if err != nil {
		return errors.WrapError(errors.ErrCodeSystemError, "渲染Markdown失败", err)
	}
	fmt.Print(out)
	return nil
}
