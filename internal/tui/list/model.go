package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultBufferSize is the number of extra rows rendered above/below the viewport.
const defaultBufferSize = 2

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// RenderFunc renders an item. selected is true for the cursor row.
type RenderFunc[T any] func(item T, selected bool) string

// VirtualListModel is a cursor over a growing list that renders only the rows
// around the viewport.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected    int
	visibleFrom int
	visibleTo   int // exclusive

	// height is the viewport size in items, not terminal lines.
	height     int
	width      int
	bufferSize int
}

// NewVirtualListModel creates a list over items with a viewport of height items.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
		bufferSize: defaultBufferSize,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys. Window sizing is owned by the parent view,
// which calls SetSize.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(keyMsg), nil
	}
	return m, nil
}

// handleKeyMsg processes keyboard input for navigation.
//
//nolint:exhaustive // Only navigation keys are handled.
func (m *VirtualListModel[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.items) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.height)
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			break
		}
		switch msg.Runes[0] {
		case 'j':
			m.SetSelected(m.selected + 1)
		case 'k':
			m.SetSelected(m.selected - 1)
		case 'g':
			m.SetSelected(0)
		case 'G':
			m.SetSelected(len(m.items) - 1)
		}
	}

	return m
}

// updateVisibleRange keeps the selected item inside [visibleFrom, visibleTo).
func (m *VirtualListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	halfViewport := m.height / halfViewportDivisor
	from := m.selected - halfViewport
	to := from + m.height

	if from < 0 {
		from = 0
		to = m.height
	}
	if to > len(m.items) {
		to = len(m.items)
		from = max(to-m.height, 0)
	}

	m.visibleFrom = from
	m.visibleTo = to
}

// View renders the visible rows plus the buffer, separated by newlines.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	renderFrom := max(m.visibleFrom-m.bufferSize, 0)
	renderTo := min(m.visibleTo+m.bufferSize, len(m.items))

	rows := make([]string, 0, renderTo-renderFrom)
	for i := renderFrom; i < renderTo; i++ {
		rows = append(rows, m.renderFunc(m.items[i], i == m.selected))
	}
	return strings.Join(rows, "\n")
}

// AppendItems adds items to the end of the list without moving the selection.
func (m *VirtualListModel[T]) AppendItems(items ...T) {
	if len(items) == 0 {
		return
	}
	m.items = append(m.items, items...)
	m.updateVisibleRange()
}

// SetSize updates the viewport dimensions. height is in items; values < 1 become 1.
func (m *VirtualListModel[T]) SetSize(height, width int) {
	m.height = max(height, 1)
	m.width = width
	m.updateVisibleRange()
}

// ItemCount returns the total number of items in the list.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected moves the cursor, clamping to valid bounds.
func (m *VirtualListModel[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// AtEnd reports whether the cursor is on the last item of a non-empty list.
func (m *VirtualListModel[T]) AtEnd() bool {
	return len(m.items) > 0 && m.selected == len(m.items)-1
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible item index (exclusive).
func (m *VirtualListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height in items.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// SelectedItem returns the item under the cursor, or nil for an empty list.
func (m *VirtualListModel[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}
