package deck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"giftdrift/internal/modules/discovery/domain"
	"giftdrift/internal/modules/discovery/dto"
	gesture "giftdrift/internal/modules/gesture/domain"
	"giftdrift/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type DeckPort interface {
	Initialize(ctx context.Context, input dto.StartInput) (dto.StateOutput, error)
	HandleSwipe(ctx context.Context, dir gesture.Direction, g gesture.Gesture) (dto.SwipeOutput, error)
	FetchMore(ctx context.Context) (dto.StateOutput, error)
	ProductClick(ctx context.Context) (dto.ClickOutput, error)
	Reset(ctx context.Context, input dto.StartInput) (dto.StateOutput, error)
	Snapshot() dto.StateOutput
}

// ─── messages ────────────────────────────────────────────────────────────────

type InitializedMsg struct {
	State dto.StateOutput
	Err   error
}

type SwipedMsg struct {
	Out dto.SwipeOutput
	Err error
}

type FetchedMsg struct {
	State dto.StateOutput
	Err   error
}

type ClickedMsg struct {
	Out dto.ClickOutput
	Err error
}

// Terminal cells are far coarser than pointer pixels, and roughly twice as
// tall as they are wide. Scaling cell deltas into gesture space keeps the
// stock thresholds meaningful for a mouse drag across a normal-width card.
const (
	cellScaleX = 12.0
	cellScaleY = 24.0
)

const cardWidth = 38

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     DeckPort
	start    dto.StartInput
	th       gesture.Thresholds
	state    dto.StateOutput
	summary  *dto.SessionSummary
	spinner  spinner.Model
	progress progress.Model
	notice   string

	dragging bool
	dragFrom gesture.Vec
	dragAt   gesture.Vec
	velocity gesture.Vec
	lastMove time.Time
	dragTime time.Time

	loading bool
	width   int
	height  int
}

func New(port DeckPort, start dto.StartInput, th gesture.Thresholds) Model {
	if th.Distance <= 0 || th.Velocity <= 0 {
		th = gesture.DefaultThresholds()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	pg := progress.New(
		progress.WithGradient("#a6e3a1", "#fab387"),
		progress.WithoutPercentage(),
	)
	pg.Width = cardWidth

	return Model{
		port:     port,
		start:    start,
		th:       th,
		spinner:  sp,
		progress: pg,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initializeCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case InitializedMsg:
		m.loading = false
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		m.state = msg.State
		m.summary = nil
		m.notice = msg.State.Notice

	case SwipedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		m.state = msg.Out.State
		m.notice = msg.Out.State.Notice
		if msg.Out.Completed {
			m.summary = msg.Out.Summary
		}

	case FetchedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		m.state = msg.State
		m.notice = msg.State.Notice

	case ClickedMsg:
		switch {
		case msg.Err != nil:
			m.notice = msg.Err.Error()
		case msg.Out.Opened:
			m.notice = "opened " + msg.Out.URL
		default:
			m.notice = msg.Out.URL
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		if cmd := m.handleMouse(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// Swipe issues a canonical button-style swipe, bypassing drag resolution.
func (m *Model) Swipe(dir gesture.Direction) tea.Cmd {
	m.resetDrag()
	return m.swipeCmd(dir, gesture.Canonical(dir))
}

// StartSession restarts discovery with the given parameters.
func (m *Model) StartSession(input dto.StartInput) tea.Cmd {
	m.start = input
	m.loading = true
	m.summary = nil
	m.resetDrag()
	return tea.Batch(m.initializeCmd(), m.spinner.Tick)
}

// FetchMore requests the next page out of band of the low-water trigger.
func (m *Model) FetchMore() tea.Cmd { return m.fetchMoreCmd() }

// OpenProduct opens the active card's tracked link.
func (m *Model) OpenProduct() tea.Cmd { return m.clickCmd() }

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.summary != nil {
		switch msg.String() {
		case "r", "enter":
			return m.resetCmd()
		}
		return nil
	}
	switch msg.String() {
	case "left", "x", "X":
		return m.Swipe(gesture.DirectionLeft)
	case "right", "l", "L":
		return m.Swipe(gesture.DirectionRight)
	case "up", "s", "S":
		return m.Swipe(gesture.DirectionUp)
	case "down":
		return m.Swipe(gesture.DirectionDown)
	case " ":
		return m.clickCmd()
	case "f":
		return m.fetchMoreCmd()
	case "r":
		return m.resetCmd()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.summary != nil {
		return nil
	}
	pos := gesture.Vec{X: float64(msg.X) * cellScaleX, Y: float64(msg.Y) * cellScaleY}
	now := time.Now()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.dragging = true
		m.dragFrom = pos
		m.dragAt = pos
		m.velocity = gesture.Vec{}
		m.dragTime = now
		m.lastMove = now

	case tea.MouseActionMotion:
		if !m.dragging {
			return nil
		}
		if dt := now.Sub(m.lastMove).Seconds(); dt > 0 {
			m.velocity = gesture.Vec{
				X: (pos.X - m.dragAt.X) / dt,
				Y: (pos.Y - m.dragAt.Y) / dt,
			}
		}
		m.dragAt = pos
		m.lastMove = now

	case tea.MouseActionRelease:
		if !m.dragging {
			return nil
		}
		offset := gesture.Vec{X: m.dragAt.X - m.dragFrom.X, Y: m.dragAt.Y - m.dragFrom.Y}
		velocity := m.velocity
		start, end := m.dragFrom, m.dragAt
		duration := now.Sub(m.dragTime)
		m.resetDrag()

		dir, ok := gesture.Resolve(offset, velocity, m.th)
		if !ok {
			return nil
		}
		return m.swipeCmd(dir, gesture.Make(dir, offset, velocity, start, end, duration))
	}
	return nil
}

func (m *Model) resetDrag() {
	m.dragging = false
	m.dragFrom = gesture.Vec{}
	m.dragAt = gesture.Vec{}
	m.velocity = gesture.Vec{}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Finding gifts…")
	}
	if m.summary != nil {
		return m.renderSummary()
	}

	var sections []string
	sections = append(sections, m.renderActiveCard())
	if preview := m.renderPreviews(); preview != "" {
		sections = append(sections, preview)
	}
	sections = append(sections, m.renderFooter())

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderActiveCard() string {
	card, ok := m.activeCard()
	if !ok {
		label := "Deck exhausted"
		if m.state.Fetching {
			label = m.spinner.View() + " Loading more gifts…"
		} else if m.state.HasMore {
			label = "Press f to load more gifts"
		}
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Surface1).
			Width(cardWidth).
			Padding(3, 1).
			Align(lipgloss.Center).
			Render(theme.Muted.Render(label))
	}

	var offset gesture.Vec
	if m.dragging {
		offset = gesture.Vec{X: m.dragAt.X - m.dragFrom.X, Y: m.dragAt.Y - m.dragFrom.Y}
	}
	p := gesture.Present(offset.X, offset.Y)

	var sb strings.Builder
	if overlay := overlayLabel(p); overlay != "" {
		sb.WriteString(overlay + "\n\n")
	}
	sb.WriteString(theme.Title.Render(card.Product.Name) + "\n")
	if card.Product.Brand != "" {
		sb.WriteString(theme.Muted.Render(card.Product.Brand) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(renderPrice(card.Product) + "\n")
	sb.WriteString(renderRating(card.Product) + "\n")
	if badges := renderBadges(card.Product); badges != "" {
		sb.WriteString(badges + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(card.Product.Category))

	border := theme.Surface1
	switch {
	case p.LikeOpacity >= 1:
		border = theme.Green
	case p.NopeOpacity >= 1:
		border = theme.Red
	case p.SuperOpacity >= 1:
		border = theme.Yellow
	}

	// Rotation cannot be drawn in cells, so the drag tilt becomes a
	// horizontal shift of the whole card instead.
	shift := int(p.Rotation)
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(theme.Mantle).
		Width(cardWidth).
		Padding(1, 2)
	if shift > 0 {
		style = style.MarginLeft(shift)
	} else if shift < 0 {
		style = style.MarginRight(-shift)
	}
	if p.Opacity < 0.7 {
		style = style.Faint(true)
	}
	return style.Render(sb.String())
}

func (m Model) renderPreviews() string {
	var rows []string
	for _, card := range m.state.Cards {
		if card.Active {
			continue
		}
		row := fmt.Sprintf("%s  %s", card.Product.Name, card.Product.FormatPrice())
		rows = append(rows, theme.Muted.Render(truncate(row, cardWidth)))
	}
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderFooter() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("swiped %d/%d   liked %d   passed %d   left %d",
		m.state.SwipeCount, m.state.MaxSwipes,
		m.state.LikeCount, m.state.DislikeCount, m.state.Remaining))
	if m.state.ShowProgress && m.state.MaxSwipes > 0 {
		ratio := float64(m.state.SwipeCount) / float64(m.state.MaxSwipes)
		sb.WriteString("\n" + m.progress.ViewAs(ratio))
	}
	if m.notice != "" {
		sb.WriteString("\n" + theme.Hot.Render(m.notice))
	}
	return sb.String()
}

func (m Model) renderSummary() string {
	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Session complete") + "\n\n")
	sb.WriteString(theme.Muted.Render("session:  ") + s.SessionID + "\n")
	sb.WriteString(theme.Muted.Render("type:     ") + s.SessionType + "\n")
	if s.CategoryFocus != "" {
		sb.WriteString(theme.Muted.Render("category: ") + s.CategoryFocus + "\n")
	}
	sb.WriteString(fmt.Sprintf("%s%d swipes, %d liked, %d passed\n",
		theme.Muted.Render("swipes:   "), s.SwipeCount, s.LikeCount, s.DislikeCount))
	sb.WriteString(theme.Muted.Render("duration: ") + s.Duration.Round(time.Second).String() + "\n")
	if s.NotePath != "" {
		sb.WriteString(theme.Muted.Render("note:     ") + s.NotePath + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("Press r to start a new session"))

	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Lavender).
		Background(theme.Mantle).
		Padding(1, 2).
		Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func (m Model) activeCard() (dto.CardOutput, bool) {
	for _, c := range m.state.Cards {
		if c.Active {
			return c, true
		}
	}
	return dto.CardOutput{}, false
}

// ActiveProductName returns the name on the active card, for the status bar.
func (m Model) ActiveProductName() string {
	if card, ok := m.activeCard(); ok {
		return card.Product.Name
	}
	return ""
}

func overlayLabel(p gesture.Presentation) string {
	switch {
	case p.LikeOpacity > 0:
		if p.LikeOpacity >= 1 {
			return theme.Like.Render("LIKE")
		}
		return theme.Like.Faint(true).Render("LIKE")
	case p.NopeOpacity > 0:
		if p.NopeOpacity >= 1 {
			return theme.Nope.Render("NOPE")
		}
		return theme.Nope.Faint(true).Render("NOPE")
	case p.SuperOpacity > 0:
		if p.SuperOpacity >= 1 {
			return theme.Super.Render("SUPER LIKE")
		}
		return theme.Super.Faint(true).Render("SUPER LIKE")
	}
	return ""
}

func renderPrice(p domain.Product) string {
	price := theme.Hot.Render(p.FormatPrice())
	if d := p.DiscountPercent(); d > 0 {
		return fmt.Sprintf("%s  %s", price, theme.Like.Render(fmt.Sprintf("-%.0f%%", d)))
	}
	return price
}

func renderRating(p domain.Product) string {
	full := int(p.Rating + 0.5)
	if full > 5 {
		full = 5
	}
	stars := strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
	return fmt.Sprintf("%s %.1f (%d)", theme.Super.Render(stars), p.Rating, p.ReviewCount)
}

func renderBadges(p domain.Product) string {
	var badges []string
	if p.Featured {
		badges = append(badges, theme.Hot.Render("featured"))
	}
	if p.Trending {
		badges = append(badges, theme.Like.Render("trending"))
	}
	if p.New {
		badges = append(badges, theme.Title.Render("new"))
	}
	if !p.Available {
		badges = append(badges, theme.Nope.Render("unavailable"))
	}
	if len(badges) == 0 {
		return ""
	}
	return strings.Join(badges, " ")
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) initializeCmd() tea.Cmd {
	port, start := m.port, m.start
	return func() tea.Msg {
		state, err := port.Initialize(context.Background(), start)
		return InitializedMsg{State: state, Err: err}
	}
}

func (m Model) swipeCmd(dir gesture.Direction, g gesture.Gesture) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.HandleSwipe(context.Background(), dir, g)
		return SwipedMsg{Out: out, Err: err}
	}
}

func (m Model) fetchMoreCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		state, err := port.FetchMore(context.Background())
		return FetchedMsg{State: state, Err: err}
	}
}

func (m Model) clickCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.ProductClick(context.Background())
		return ClickedMsg{Out: out, Err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	port, start := m.port, m.start
	return func() tea.Msg {
		state, err := port.Reset(context.Background(), start)
		return InitializedMsg{State: state, Err: err}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
