package controller

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// TUI behaves like SimpleUI for per-item output but paginates scan listings
// that do not fit on screen.
type TUI struct {
	*SimpleUI
}

// NewTUI wraps a SimpleUI with interactive listing support.
func NewTUI(simple *SimpleUI) *TUI {
	return &TUI{SimpleUI: simple}
}

// ScanListing prints short listings directly and opens an alt-screen pager
// for long ones.
func (p *TUI) ScanListing(items []ScanItem) error {
	model := newScanListModel(items)

	if f, ok := p.cmd.OutOrStdout().(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		return p.SimpleUI.ScanListing(items)
	}

	program := tea.NewProgram(model, tea.WithOutput(p.cmd.OutOrStdout()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// scanListModel is the Bubble Tea model paginating the scan listing.
type scanListModel struct {
	items    []ScanItem
	height   int
	width    int
	offset   int
	quitting bool
}

func newScanListModel(items []ScanItem) scanListModel {
	return scanListModel{items: items}
}

func (sm scanListModel) Init() tea.Cmd {
	return nil
}

func (sm scanListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

func (sm scanListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		sm.quitting = true
		return sm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		sm.quitting = true
		return sm, tea.Quit

	case "down", "j":
		sm.offset = min(sm.offset+1, sm.maxOffset())
		return sm, nil

	case "up", "k":
		sm.offset = max(sm.offset-1, 0)
		return sm, nil

	case "g", "home":
		sm.offset = 0
		return sm, nil

	case "G", "end":
		sm.offset = sm.maxOffset()
		return sm, nil

	case "d", "pgdown":
		sm.offset = min(sm.offset+sm.itemsPerPage(), sm.maxOffset())
		return sm, nil

	case "u", "pgup":
		sm.offset = max(sm.offset-sm.itemsPerPage(), 0)
		return sm, nil
	}

	return sm, nil
}

// itemsPerPage reserves room for the header, total line and footer.
func (sm scanListModel) itemsPerPage() int {
	if sm.height == 0 {
		return 10
	}

	const reserved = 9

	available := sm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (sm scanListModel) maxOffset() int {
	maxOff := len(sm.items) - sm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (sm scanListModel) needsPagination() bool {
	return len(sm.items) > sm.itemsPerPage() && sm.height > 0
}

func (sm scanListModel) View() string {
	var b strings.Builder

	b.WriteString("hanrename dictionary preview\n")
	b.WriteString(strings.Repeat("─", 34) + "\n\n")

	if len(sm.items) == 0 {
		b.WriteString("  no candidates found\n")
		return b.String()
	}

	perPage := sm.itemsPerPage()
	paginated := sm.needsPagination()

	start := sm.offset

	end := start + perPage
	if end > len(sm.items) {
		end = len(sm.items)
	}

	display := sm.items
	if paginated {
		display = sm.items[start:end]
	}

	for _, item := range display {
		fmt.Fprintf(&b, "  [%s] %s -> %s\n", item.Kind.String(), item.Path, item.Proposed)
	}

	fmt.Fprintf(&b, "\n  Total: %d candidate(s)\n", len(sm.items))

	if paginated {
		currentPage := (sm.offset / perPage) + 1
		totalPages := (len(sm.items) + perPage - 1) / perPage
		fmt.Fprintf(&b, "\n  Page %d/%d | Showing %d-%d of %d\n", currentPage, totalPages, start+1, end, len(sm.items))
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}
