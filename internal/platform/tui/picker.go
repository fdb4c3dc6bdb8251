package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PageItem is one selectable page in the picker.
type PageItem struct {
	Path  string // File path, or the demo page name
	Title string
	Info  string // Short description, e.g. element count or a load error
}

// PickerModel is the Bubble Tea model for choosing a page to play.
type PickerModel struct {
	items    []PageItem
	cursor   int
	width    int
	height   int
	keys     KeyMap
	quitting bool
	selected *PageItem // Set when user selects a page
}

// NewPickerModel creates a new page picker.
func NewPickerModel(items []PageItem, width, height int) PickerModel {
	return PickerModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for list navigation.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Exit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.ScrollUp):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.ScrollDown):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Start):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit picker to start the page
		}
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  P A G E B R E A K  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a page", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s  (%s)", cursor, item.Title, item.Info)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected page, or nil if none selected.
func (m PickerModel) Selected() *PageItem {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunPicker shows the picker and returns the chosen page path.
// ok is false when the user quit without choosing.
func RunPicker(items []PageItem, width, height int) (path string, ok bool, err error) {
	p := tea.NewProgram(NewPickerModel(items, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isPicker := finalModel.(PickerModel)
	if !isPicker || m.Selected() == nil {
		return "", false, nil
	}
	return m.Selected().Path, true, nil
}
