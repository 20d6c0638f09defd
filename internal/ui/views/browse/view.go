package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"giftdrift/internal/modules/discovery/dto"
	"giftdrift/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type BrowsePort interface {
	Browse(ctx context.Context, input dto.BrowseInput) ([]dto.CardOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type CatalogLoadedMsg struct {
	Cards []dto.CardOutput
	Err   error
}

// ─── list item ───────────────────────────────────────────────────────────────

type productItem struct {
	card dto.CardOutput
}

func (i productItem) Title() string { return i.card.Product.Name }
func (i productItem) Description() string {
	return fmt.Sprintf("%s  %s", i.card.Product.Category, i.card.Product.FormatPrice())
}
func (i productItem) FilterValue() string { return i.card.Product.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     BrowsePort
	category string
	list     list.Model
	detail   viewport.Model
	spinner  spinner.Model
	loading  bool
	width    int
	height   int
}

func New(port BrowsePort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Browse"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalogCmd(), m.spinner.Tick)
}

// SetCategory narrows the catalog and reloads it.
func (m *Model) SetCategory(category string) tea.Cmd {
	m.category = category
	m.loading = true
	return tea.Batch(m.loadCatalogCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case CatalogLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Browse — " + msg.Err.Error()
			return m, nil
		}
		title := "Browse"
		if m.category != "" {
			title = "Browse — " + m.category
		}
		m.list.Title = title
		items := make([]list.Item, len(msg.Cards))
		for i, c := range msg.Cards {
			items[i] = productItem{card: c}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.detail.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading catalog…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedProductURL returns the current selection's catalog URL, if any.
func (m Model) SelectedProductURL() (string, bool) {
	if item, ok := m.list.SelectedItem().(productItem); ok {
		return item.card.Product.URL, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(productItem)
	if !ok {
		return theme.Muted.Render("Select a product to see details")
	}
	p := item.card.Product

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(p.Name) + "\n\n")
	if p.Brand != "" {
		sb.WriteString(theme.Muted.Render("brand:    ") + p.Brand + "\n")
	}
	sb.WriteString(theme.Muted.Render("price:    ") + p.FormatPrice())
	if d := p.DiscountPercent(); d > 0 {
		sb.WriteString(fmt.Sprintf("  (-%.0f%%)", d))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s%.1f across %d reviews\n",
		theme.Muted.Render("rating:   "), p.Rating, p.ReviewCount))
	sb.WriteString(theme.Muted.Render("category: ") + p.Category + "\n")
	var flags []string
	if p.Featured {
		flags = append(flags, "featured")
	}
	if p.Trending {
		flags = append(flags, "trending")
	}
	if p.New {
		flags = append(flags, "new")
	}
	if !p.Available {
		flags = append(flags, "unavailable")
	}
	if len(flags) > 0 {
		sb.WriteString(theme.Muted.Render("flags:    ") + strings.Join(flags, ", ") + "\n")
	}
	if p.URL != "" {
		sb.WriteString(theme.Muted.Render("url:      ") + p.URL + "\n")
	}
	return sb.String()
}

func (m Model) loadCatalogCmd() tea.Cmd {
	port, category := m.port, m.category
	return func() tea.Msg {
		cards, err := port.Browse(context.Background(), dto.BrowseInput{Category: category, Limit: 50})
		return CatalogLoadedMsg{Cards: cards, Err: err}
	}
}
