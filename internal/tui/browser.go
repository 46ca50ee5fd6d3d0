// Package tui 提供类型注册表与内存世界的终端浏览器。
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"rogueblight/internal/common/errors"
	"rogueblight/internal/descriptor"
	"rogueblight/internal/entity"
	"rogueblight/internal/item"
	"rogueblight/internal/registry"
	"rogueblight/internal/world"
)

// viewMode 表格当前展示的内容
type viewMode int

const (
	modeTypes viewMode = iota
	modeEntities
)

// Model 浏览器模型
type Model struct {
	// 组件
	table table.Model
	input textinput.Model

	// 状态
	mode         viewMode
	inputFocused bool
	target       *entity.Entity // 物品创建的目标容器
	status       string
	statusIsErr  bool
	quitting     bool
	width        int
	height       int

	registry *registry.Registry
	world    *world.Memory

	// 样式
	headerStyle lipgloss.Style
	statusStyle lipgloss.Style
	errorStyle  lipgloss.Style
	inputStyle  lipgloss.Style
	helpStyle   lipgloss.Style
}

// NewModel 创建浏览器模型
func NewModel(reg *registry.Registry, w *world.Memory) *Model {
	ti := textinput.New()
	ti.Placeholder = `{"type": "item_container", "contents": [{"type": "stone"}]}`
	ti.Prompt = "┃ "
	ti.CharLimit = 4000
	ti.Width = 76

	tbl := table.New(
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#04B575"))
	tbl.SetStyles(styles)

	m := &Model{
		table:    tbl,
		input:    ti,
		registry: reg,
		world:    w,
		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ffff")).
			Bold(true).
			MarginLeft(1),
		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff00")).
			MarginLeft(1),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")).
			MarginLeft(1),
		inputStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginLeft(1),
	}
	m.refresh()
	return m
}

// Init 初始化模型
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update 处理消息更新
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(m.width - 2)
		m.table.SetHeight(max(m.height-10, 3))
		m.input.Width = max(m.width-8, 20)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyTab:
			m.toggleMode()
			return m, nil

		case tea.KeyCtrlE:
			m.focusInput()
			return m, textinput.Blink

		case tea.KeyEsc:
			if m.inputFocused {
				m.focusTable()
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.inputFocused {
				m.submitInput()
			} else {
				m.activateRow()
			}
			return m, nil
		}
	}

	if m.inputFocused {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// View 渲染界面
func (m *Model) View() string {
	if m.quitting {
		return "再见!\n"
	}

	title := "类型目录"
	if m.mode == modeEntities {
		title = fmt.Sprintf("世界 %s 中的实体 (%d)", m.world.Name(), m.world.Len())
	}

	var sections []string
	sections = append(sections, m.headerStyle.Render("ROGUEBLIGHT · "+title))
	sections = append(sections, m.table.View())
	if m.target != nil {
		sections = append(sections, m.helpStyle.Render("物品目标容器: "+shortID(m.target.ID())))
	}
	if m.status != "" {
		style := m.statusStyle
		if m.statusIsErr {
			style = m.errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.inputStyle.Render(m.input.View()))
	sections = append(sections, m.helpStyle.Render("Tab: 切换视图 | Enter: 实例化/选为容器 | Ctrl+E: 输入描述符 | Esc: 返回/退出 | Ctrl+C: 退出"))

	return strings.Join(sections, "\n")
}

func (m *Model) toggleMode() {
	if m.mode == modeTypes {
		m.mode = modeEntities
	} else {
		m.mode = modeTypes
	}
	m.table.SetCursor(0)
	m.refresh()
}

func (m *Model) focusInput() {
	m.inputFocused = true
	m.input.Focus()
	m.table.Blur()
}

func (m *Model) focusTable() {
	m.inputFocused = false
	m.input.Blur()
	m.table.Focus()
}

// refresh 按当前视图重建表格
func (m *Model) refresh() {
	width := m.width
	if width <= 0 {
		width = 100
	}

	if m.mode == modeTypes {
		m.table.SetRows(nil)
		m.table.SetColumns([]table.Column{
			{Title: "种类", Width: 6},
			{Title: "名称", Width: 20},
			{Title: "配置", Width: max(width-36, 20)},
		})
		m.table.SetRows(m.typeRows())
		return
	}

	m.table.SetRows(nil)
	m.table.SetColumns([]table.Column{
		{Title: "ID", Width: 10},
		{Title: "类型", Width: 18},
		{Title: "质量", Width: 8},
		{Title: "物品", Width: max(width-46, 20)},
	})
	m.table.SetRows(m.entityRows())
}

func (m *Model) typeRows() []table.Row {
	var rows []table.Row
	for _, t := range m.registry.EntityTypes() {
		rows = append(rows, table.Row{"实体", t.Name(), t.Config().JSON()})
	}
	for _, t := range m.registry.ItemTypes() {
		rows = append(rows, table.Row{"物品", t.Name(), t.Config().JSON()})
	}
	return rows
}

func (m *Model) entityRows() []table.Row {
	var rows []table.Row
	for _, e := range m.world.Entities() {
		contents := "-"
		if inv, ok := e.Inventory(); ok {
			contents = strings.Join(inv.Names(), ", ")
		}
		rows = append(rows, table.Row{
			shortID(e.ID()),
			e.TypeName(),
			fmt.Sprintf("%.2f", e.Mass()),
			contents,
		})
	}
	return rows
}

// activateRow 类型视图中实例化所选类型，实体视图中把所选实体设为物品目标容器
func (m *Model) activateRow() {
	cursor := m.table.Cursor()

	if m.mode == modeEntities {
		entities := m.world.Entities()
		if cursor < 0 || cursor >= len(entities) {
			return
		}
		e := entities[cursor]
		if _, ok := e.Inventory(); !ok {
			m.setError(errors.NewErrorWithDetails(errors.ErrCodeInvalidParam, "实体没有背包", shortID(e.ID())))
			return
		}
		m.target = e
		m.setStatus("已选择目标容器 " + shortID(e.ID()))
		return
	}

	row := m.table.SelectedRow()
	if row == nil {
		return
	}
	m.spawn(descriptor.Object{descriptor.TypeField: row[1]})
}

func (m *Model) submitInput() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return
	}
	desc, err := descriptor.Parse([]byte(value))
	if err != nil {
		m.setError(err)
		return
	}
	if m.spawn(desc) {
		m.input.SetValue("")
	}
}

// spawn 按描述符的类型名称分派到实体或物品创建
func (m *Model) spawn(desc descriptor.Object) bool {
	name, ok := desc.TypeName()
	if !ok {
		m.setError(errors.NewDescriptorError("缺少字符串类型的 type 字段"))
		return false
	}

	switch {
	case m.registry.EntityTypeExists(name):
		e, ok := m.registry.CreateEntityInWorld(desc, m.world)
		if !ok {
			m.setError(errors.WrapCreationError(name, nil))
			return false
		}
		m.setStatus(fmt.Sprintf("已创建实体 %s (%s)", name, shortID(e.ID())))

	case m.registry.ItemTypeExists(name):
		inv, ok := m.targetInventory()
		if !ok {
			m.setError(errors.NewErrorWithDetails(errors.ErrCodeInvalidParam, "请先在实体视图中选择目标容器", name))
			return false
		}
		if !m.registry.CreateItemInInventory(inv, desc) {
			m.setError(errors.WrapCreationError(name, nil))
			return false
		}
		m.setStatus(fmt.Sprintf("已在容器 %s 中创建物品 %s", shortID(m.target.ID()), name))

	default:
		m.setError(errors.NewTypeNotFoundError(name))
		return false
	}

	m.refresh()
	return true
}

func (m *Model) targetInventory() (*item.Inventory, bool) {
	if m.target == nil {
		return nil, false
	}
	return m.target.Inventory()
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusIsErr = false
}

func (m *Model) setError(err error) {
	m.status = fmt.Sprintf("%s (%s)", errors.GetUserFriendlyMessage(err), errors.GetErrorCode(err))
	m.statusIsErr = true
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// Run 启动浏览器
func Run(reg *registry.Registry, w *world.Memory) error {
	p := tea.NewProgram(NewModel(reg, w), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapError(errors.ErrCodeSystemError, "终端界面运行失败", err)
	}
	return nil
}
