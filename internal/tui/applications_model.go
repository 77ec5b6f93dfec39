package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/appbrowser/internal/application"
	"github.com/rshade/appbrowser/internal/format"
	"github.com/rshade/appbrowser/internal/loader"
	listview "github.com/rshade/appbrowser/internal/tui/list"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// cardHeight is the rendered height of one record card, borders included.
	cardHeight = 8
	// chromeHeight covers the title, status line and help footer.
	chromeHeight = 6
)

// pageLoadedMsg carries the result of one LoadNextPage call. records is empty
// when the call was rejected by a guard or the fetch failed.
type pageLoadedMsg struct {
	page    int
	records []application.Record
}

// ApplicationsModel is the Bubble Tea model for the paged applications list.
//
// Fetches run as tea.Cmds on their own goroutines. Loader flags are re-read
// through Snapshot whenever a fetch returns.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ApplicationsModel struct {
	ctx       context.Context
	loader    *loader.Loader
	formatter *format.Formatter
	keys      KeyMap

	list     *listview.VirtualListModel[format.Display]
	loading  *LoadingState
	snapshot loader.Snapshot

	// inFlight counts dispatched load commands that have not reported back.
	inFlight int
	spinning bool

	width    int
	height   int
	quitting bool
}

// NewApplicationsModel builds the view around ld. Init requests page 1.
func NewApplicationsModel(
	ctx context.Context,
	ld *loader.Loader,
	formatter *format.Formatter,
) ApplicationsModel {
	if formatter == nil {
		formatter = format.New()
	}
	m := ApplicationsModel{
		ctx:       ctx,
		loader:    ld,
		formatter: formatter,
		keys:      DefaultKeyMap(),
		loading:   NewLoadingState(),
		snapshot:  ld.Snapshot(),
		inFlight:  1,
		spinning:  true,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.list = listview.NewVirtualListModel([]format.Display{}, m.listHeight(), m.width, renderCard)
	return m
}

// Init starts the spinner and loads the first page.
func (m ApplicationsModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.loadPage(1))
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m ApplicationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.listHeight(), m.width)
		return m, nil
	case pageLoadedMsg:
		return m.handlePageLoaded(msg)
	case spinner.TickMsg:
		if !m.Loading() {
			m.spinning = false
			return m, nil
		}
		return m, m.loading.Update(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ApplicationsModel) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	if m.inFlight > 0 {
		m.inFlight--
	}
	if len(msg.records) > 0 {
		m.loader.Append(msg.records...)
		rows := make([]format.Display, 0, len(msg.records))
		for _, r := range msg.records {
			rows = append(rows, m.formatter.Record(r))
		}
		m.list.AppendItems(rows...)
	}
	m.snapshot = m.loader.Snapshot()
	m.keys.LoadMore.SetEnabled(m.snapshot.HasMore)
	return m, nil
}

func (m ApplicationsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.LoadMore):
		return m.loadMore()
	}

	_, _ = m.list.Update(msg)

	// Reaching the last card pulls the next page when nothing is pending.
	if m.list.AtEnd() && m.snapshot.HasMore && !m.snapshot.HasError && !m.Loading() {
		return m.loadMore()
	}
	return m, nil
}

// loadMore dispatches the next page. It is forwarded to the loader even while
// a fetch is pending so the loader's own guard decides; once the list is
// exhausted the action no longer exists.
func (m ApplicationsModel) loadMore() (tea.Model, tea.Cmd) {
	if !m.snapshot.HasMore {
		return m, nil
	}
	cmds := []tea.Cmd{m.loadPage(m.snapshot.NextPage())}
	if !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.loading.Init())
	}
	m.inFlight++
	return m, tea.Batch(cmds...)
}

func (m ApplicationsModel) loadPage(page int) tea.Cmd {
	ctx, ld := m.ctx, m.loader
	return func() tea.Msg {
		return pageLoadedMsg{page: page, records: ld.LoadNextPage(ctx, page)}
	}
}

// Loading reports whether a fetch is pending.
func (m ApplicationsModel) Loading() bool {
	return m.inFlight > 0 || m.snapshot.IsLoading
}

// Snapshot returns the loader state as of the last completed fetch.
func (m ApplicationsModel) Snapshot() loader.Snapshot {
	return m.snapshot
}

// Quitting reports whether the user asked to exit.
func (m ApplicationsModel) Quitting() bool {
	return m.quitting
}

// listHeight is the number of whole cards that fit on screen.
func (m ApplicationsModel) listHeight() int {
	return max((m.height-chromeHeight)/cardHeight, 1)
}
