package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	affiliatedto "giftdrift/internal/modules/affiliate/dto"
	"giftdrift/internal/modules/discovery/dto"
	gesture "giftdrift/internal/modules/gesture/domain"
	profiledto "giftdrift/internal/modules/profile/dto"
	apperrors "giftdrift/internal/platform/errors"
	"giftdrift/internal/ui/components"
	"giftdrift/internal/ui/theme"
	browseview "giftdrift/internal/ui/views/browse"
	deckview "giftdrift/internal/ui/views/deck"
	providersview "giftdrift/internal/ui/views/providers"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type discoveryPort interface {
	Initialize(ctx context.Context, input dto.StartInput) (dto.StateOutput, error)
	HandleSwipe(ctx context.Context, dir gesture.Direction, g gesture.Gesture) (dto.SwipeOutput, error)
	FetchMore(ctx context.Context) (dto.StateOutput, error)
	ProductClick(ctx context.Context) (dto.ClickOutput, error)
	Reset(ctx context.Context, input dto.StartInput) (dto.StateOutput, error)
	Snapshot() dto.StateOutput
	Browse(ctx context.Context, input dto.BrowseInput) ([]dto.CardOutput, error)
}

type affiliatePort interface {
	List(ctx context.Context) ([]affiliatedto.ProviderOutput, error)
	Doctor(ctx context.Context) ([]affiliatedto.DoctorResult, error)
}

type profilePort interface {
	CurrentUser(ctx context.Context) (profiledto.UserOutput, error)
}

// ─── event bridge ─────────────────────────────────────────────────────────────

// discoveryEvent carries the interactor's host notifications into the message
// loop. Exactly one of its fields is set.
type discoveryEvent struct {
	summary *dto.SessionSummary
	pulse   bool
}

type discoveryEventMsg discoveryEvent

// EventBridge adapts the discovery observer callbacks onto a channel the
// Bubble Tea program drains. Register it with the interactor before the
// program starts.
type EventBridge struct {
	ch chan discoveryEvent
}

func NewEventBridge() *EventBridge {
	return &EventBridge{ch: make(chan discoveryEvent, 8)}
}

func (b *EventBridge) SessionCompleted(summary dto.SessionSummary) {
	select {
	case b.ch <- discoveryEvent{summary: &summary}:
	default:
	}
}

func (b *EventBridge) RecommendationsReady() {
	select {
	case b.ch <- discoveryEvent{pulse: true}:
	default:
	}
}

func (b *EventBridge) waitCmd() tea.Cmd {
	return func() tea.Msg {
		return discoveryEventMsg(<-b.ch)
	}
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDiscover tabID = iota
	tabBrowse
	tabProviders
	tabCount
)

var tabLabels = [tabCount]string{"Discover", "Browse", "Providers"}

// ─── async messages ───────────────────────────────────────────────────────────

type userLoadedMsg struct {
	user profiledto.UserOutput
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Like    key.Binding
	Nope    key.Binding
	Super   key.Binding
	Open    key.Binding
	Reset   key.Binding
	Fetch   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Like:    key.NewBinding(key.WithKeys("right", "l", "L"), key.WithHelp("→/l", "like")),
		Nope:    key.NewBinding(key.WithKeys("left", "x", "X"), key.WithHelp("←/x", "pass")),
		Super:   key.NewBinding(key.WithKeys("up", "s", "S"), key.WithHelp("↑/s", "super like")),
		Open:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "open product")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new session")),
		Fetch:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "load more")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Like, k.Nope, k.Super},
		{k.Open, k.Reset, k.Fetch},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global help
// overlay, and the command palette. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	discovery discoveryPort
	profile   profilePort
	events    *EventBridge

	deckView      deckview.Model
	browseView    browseview.Model
	providersView providersview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	user      profiledto.UserOutput
	loggedIn  bool
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	discovery discoveryPort,
	affiliate affiliatePort,
	profile profilePort,
	events *EventBridge,
	start dto.StartInput,
	thresholds gesture.Thresholds,
) Model {
	var providersV providersview.Model
	if affiliate != nil {
		providersV = providersview.New(affiliatePortBridge{p: affiliate})
	} else {
		providersV = providersview.New(nil)
	}

	return Model{
		discovery:     discovery,
		profile:       profile,
		events:        events,
		deckView:      deckview.New(deckPortBridge{p: discovery}, start, thresholds),
		browseView:    browseview.New(browsePortBridge{p: discovery}),
		providersView: providersV,
		activeTab:     tabDiscover,
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.deckView.Init(),
		m.browseView.Init(),
		m.providersView.Init(),
		m.loadUserCmd(),
	}
	if m.events != nil {
		cmds = append(cmds, m.events.waitCmd())
	}
	return tea.Batch(cmds...)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case userLoadedMsg:
		if msg.err != nil {
			if msg.err != apperrors.ErrNotLoggedIn {
				m.status = "profile check: " + msg.err.Error()
			}
			m.loggedIn = false
		} else {
			m.loggedIn = true
			m.user = msg.user
		}

	case discoveryEventMsg:
		switch {
		case msg.summary != nil:
			m.status = "session complete: " + msg.summary.SessionID
		case msg.pulse:
			m.status = "recommendations updated"
		}
		if m.events != nil {
			cmds = append(cmds, m.events.waitCmd())
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	// ClickedMsg surfaces the opened link in the status bar in addition to
	// the deck's own notice line.
	case deckview.ClickedMsg:
		if msg.Err == nil && msg.Out.Opened {
			m.status = "opened " + msg.Out.URL
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDiscover:
		m.deckView, tabCmd = m.deckView.Update(msg)
	case tabBrowse:
		m.browseView, tabCmd = m.browseView.Update(msg)
	case tabProviders:
		m.providersView, tabCmd = m.providersView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDiscover:
		return m.deckView.View()
	case tabBrowse:
		return m.browseView.View()
	case tabProviders:
		return m.providersView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "giftdrift  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.loggedIn {
		who := m.user.Name
		if who == "" {
			who = m.user.Email
		}
		left = theme.Hot.Render("● "+who) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "session:start":
		start := dto.StartInput{SessionType: "discovery"}
		if len(parts) >= 2 {
			start.SessionType = parts[1]
		}
		if len(parts) >= 3 {
			start.CategoryFocus = parts[2]
		}
		m.activeTab = tabDiscover
		m.status = "starting " + start.SessionType
		return m, m.deckView.StartSession(start)

	case "session:reset":
		m.activeTab = tabDiscover
		return m, m.deckView.StartSession(dto.StartInput{SessionType: "discovery"})

	case "deck:fetch-more":
		m.activeTab = tabDiscover
		return m, m.deckView.FetchMore()

	case "product:open":
		m.activeTab = tabDiscover
		return m, m.deckView.OpenProduct()

	case "browse":
		category := ""
		if len(parts) >= 2 {
			category = parts[1]
		}
		m.activeTab = tabBrowse
		return m, m.browseView.SetCategory(category)

	case "provider:list":
		m.activeTab = tabProviders
		m.status = "switched to Providers tab"
		return m, nil

	case "provider:doctor":
		m.activeTab = tabProviders
		return m, m.providersView.RunDoctor()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabBrowse:
		return m.browseView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.deckView, _ = m.deckView.Update(sz)
	m.browseView, _ = m.browseView.Update(sz)
	m.providersView, _ = m.providersView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadUserCmd() tea.Cmd {
	return func() tea.Msg {
		if m.profile == nil {
			return userLoadedMsg{err: apperrors.ErrNotLoggedIn}
		}
		user, err := m.profile.CurrentUser(context.Background())
		return userLoadedMsg{user: user, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type deckPortBridge struct{ p discoveryPort }

func (b deckPortBridge) Initialize(ctx context.Context, input dto.StartInput) (dto.StateOutput, error) {
	return b.p.Initialize(ctx, input)
}
func (b deckPortBridge) HandleSwipe(ctx context.Context, dir gesture.Direction, g gesture.Gesture) (dto.SwipeOutput, error) {
	return b.p.HandleSwipe(ctx, dir, g)
}
func (b deckPortBridge) FetchMore(ctx context.Context) (dto.StateOutput, error) {
	return b.p.FetchMore(ctx)
}
func (b deckPortBridge) ProductClick(ctx context.Context) (dto.ClickOutput, error) {
	return b.p.ProductClick(ctx)
}
func (b deckPortBridge) Reset(ctx context.Context, input dto.StartInput) (dto.StateOutput, error) {
	return b.p.Reset(ctx, input)
}
func (b deckPortBridge) Snapshot() dto.StateOutput {
	return b.p.Snapshot()
}

type browsePortBridge struct{ p discoveryPort }

func (b browsePortBridge) Browse(ctx context.Context, input dto.BrowseInput) ([]dto.CardOutput, error) {
	return b.p.Browse(ctx, input)
}

type affiliatePortBridge struct{ p affiliatePort }

func (b affiliatePortBridge) List(ctx context.Context) ([]affiliatedto.ProviderOutput, error) {
	return b.p.List(ctx)
}

func (b affiliatePortBridge) Doctor(ctx context.Context) ([]affiliatedto.DoctorResult, error) {
	return b.p.Doctor(ctx)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
