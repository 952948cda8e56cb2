package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"dexsect/internal/dalvik"
	"dexsect/internal/dexsect/styles"
	"dexsect/internal/ui/colorize"
)

type viewMode int

const (
	viewSummary viewMode = iota
	viewBlocks
	viewListing
)

type blockItem struct {
	addr  int
	block *dalvik.BasicBlock
}

func (i blockItem) Title() string {
	return fmt.Sprintf("%04x  %d instructions", i.addr, len(i.block.Insts))
}

func (i blockItem) Description() string { return "" }

func (i blockItem) FilterValue() string {
	return fmt.Sprintf("%04x %s", i.addr, exitName(i.block.Next.Kind))
}

type blockDelegate struct{}

func (d blockDelegate) Height() int                               { return 1 }
func (d blockDelegate) Spacing() int                              { return 0 }
func (d blockDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d blockDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(blockItem)
	if !ok {
		return
	}

	var addrStyle lipgloss.Style
	indicator := " "
	if index == m.Index() {
		indicator = ">"
		addrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	} else {
		addrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	}

	exit := exitName(i.block.Next.Kind)
	var exitDesc string
	switch i.block.Next.Kind {
	case dalvik.NextGoto:
		exitDesc = fmt.Sprintf("%s %04x", exit, i.block.Next.T)
	case dalvik.NextCond:
		exitDesc = fmt.Sprintf("%s %04x/%04x", exit, i.block.Next.T, i.block.Next.F)
	default:
		exitDesc = exit
	}

	fmt.Fprintf(w, " %s  %s  %3d insts  %s",
		indicator,
		addrStyle.Render(fmt.Sprintf("%04x", i.addr)),
		len(i.block.Insts),
		exitDesc)
}

type liftedMsg struct {
	code    []uint16
	blocks  dalvik.Blocks
	listing string
	err     error
}

func liftCmd(filepath string, entries []int) tea.Cmd {
	return func() tea.Msg {
		code, err := loadCode(filepath)
		if err != nil {
			return liftedMsg{err: err}
		}
		entries, err := parseEntries(entries, len(code))
		if err != nil {
			return liftedMsg{err: err}
		}
		blocks, err := dalvik.Lift(code, entries)
		if err != nil {
			return liftedMsg{err: err}
		}
		text, err := listing(code)
		if err != nil {
			return liftedMsg{err: err}
		}
		return liftedMsg{code: code, blocks: blocks, listing: text}
	}
}

type model struct {
	viewport   viewport.Model
	blocksList list.Model
	spinner    spinner.Model
	mode       viewMode
	filepath   string
	entries    []int
	code       []uint16
	blocks     dalvik.Blocks
	listing    string
	loading    bool
	err        error
	width      int
	height     int
}

func newModel(filepath string, entries []int) model {
	vp := viewport.New()
	vp.SetWidth(80)
	vp.SetHeight(24)

	blocksList := list.New([]list.Item{}, blockDelegate{}, 80, 24)
	blocksList.SetShowStatusBar(false)
	blocksList.SetFilteringEnabled(true)
	blocksList.Title = "Blocks"
	blocksList.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("99")).
		MarginLeft(2)
	blocksList.SetShowHelp(true)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	m := model{
		viewport:   vp,
		blocksList: blocksList,
		spinner:    s,
		mode:       viewSummary,
		filepath:   filepath,
		entries:    entries,
		loading:    true,
		width:      80,
		height:     24,
	}
	m.updateContent()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		liftCmd(m.filepath, m.entries),
		m.spinner.Tick,
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case liftedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.code = msg.code
			m.blocks = msg.blocks
			m.listing = msg.listing
			m.updateBlocksList()
		}
		m.updateContent()
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		if m.loading {
			m.updateContent()
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		if msg.Width != m.width || msg.Height != m.height {
			m.width = msg.Width
			m.height = msg.Height
			m.viewport.SetWidth(msg.Width)
			m.viewport.SetHeight(msg.Height - 2)
			m.blocksList.SetWidth(msg.Width)
			m.blocksList.SetHeight(msg.Height - 2)
			m.updateContent()
		}

	case tea.KeyMsg:
		if m.mode == viewBlocks && m.blocksList.FilterState() == list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		} else {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "s":
				m.mode = viewSummary
				m.updateContent()
				return m, nil
			case "b":
				if len(m.blocks) > 0 {
					m.mode = viewBlocks
				}
				return m, nil
			case "l":
				if m.listing != "" {
					m.mode = viewListing
					m.showListing(m.listing)
				}
				return m, nil
			case "enter":
				if m.mode == viewBlocks {
					if item, ok := m.blocksList.SelectedItem().(blockItem); ok {
						m.mode = viewListing
						m.showListing(blockListing(item.block))
					}
				}
				return m, nil
			case "tab":
				switch m.mode {
				case viewSummary:
					if len(m.blocks) > 0 {
						m.mode = viewBlocks
					}
				case viewBlocks:
					m.mode = viewListing
					m.showListing(m.listing)
				case viewListing:
					m.mode = viewSummary
					m.updateContent()
				}
				return m, nil
			}
		}
	}

	switch m.mode {
	case viewBlocks:
		m.blocksList, cmd = m.blocksList.Update(msg)
	default:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	var content string
	switch m.mode {
	case viewBlocks:
		content = m.blocksList.View()
	default:
		content = m.viewport.View()
	}

	var menu string
	switch m.mode {
	case viewBlocks:
		menu = " Enter: view block • S: summary • L: listing • Tab: cycle • Q: quit "
	case viewListing:
		menu = " S: summary • B: blocks • Tab: cycle • Q: quit "
	default:
		if len(m.blocks) > 0 {
			menu = " B: blocks • L: listing • Tab: cycle • Q: quit "
		} else {
			menu = " Q: quit "
		}
	}

	menuStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1).
		Width(m.width)

	return content + "\n" + menuStyle.Render(menu)
}

// showListing puts a colorized disassembly into the viewport.
func (m *model) showListing(text string) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		lines = append(lines, colorize.Line(line))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoTop()
}

func (m *model) updateContent() {
	var md strings.Builder
	md.WriteString("# Dexsect\n\n")
	fmt.Fprintf(&md, "```\n; %s\n", m.filepath)
	if m.code != nil {
		fmt.Fprintf(&md, "; %d code units\n", len(m.code))
	}
	if len(m.entries) > 0 {
		fmt.Fprintf(&md, "; entry points:")
		for _, e := range m.entries {
			fmt.Fprintf(&md, " %04x", e)
		}
		md.WriteString("\n")
	}
	md.WriteString("```\n")

	if m.err != nil {
		fmt.Fprintf(&md, "\n**Error:** %v\n", m.err)
	} else if len(m.blocks) > 0 {
		fmt.Fprintf(&md, "\n## Blocks\n\n%d basic blocks discovered.\n", len(m.blocks))
	}

	if m.loading {
		fmt.Fprintf(&md, "\n%s Lifting blocks...", m.spinner.View())
	}

	width := m.width
	if width == 0 {
		width = 80
	}
	renderer := styles.MarkdownRenderer(width - 2)
	rendered, _ := renderer.Render(md.String())
	m.viewport.SetContent(strings.TrimSuffix(rendered, "\n"))
}

func (m *model) updateBlocksList() {
	items := make([]list.Item, 0, len(m.blocks))
	for _, addr := range m.blocks.Addrs() {
		items = append(items, blockItem{addr: addr, block: m.blocks[addr]})
	}
	m.blocksList.SetItems(items)
	m.blocksList.Title = fmt.Sprintf("Blocks (%d total)", len(items))
}
