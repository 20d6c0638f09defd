package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	affiliatedto "giftdrift/internal/modules/affiliate/dto"
	"giftdrift/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the affiliate use-case.
type Port interface {
	List(ctx context.Context) ([]affiliatedto.ProviderOutput, error)
	Doctor(ctx context.Context) ([]affiliatedto.DoctorResult, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// ProvidersLoadedMsg is sent when the provider inventory finishes loading.
type ProvidersLoadedMsg struct {
	Providers []affiliatedto.ProviderOutput
	Err       error
}

// DoctorDoneMsg is sent when a doctor run completes.
type DoctorDoneMsg struct {
	Results []affiliatedto.DoctorResult
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type providerItem struct{ p affiliatedto.ProviderOutput }

func (i providerItem) Title() string { return i.p.Name }
func (i providerItem) Description() string {
	switch {
	case i.p.Builtin:
		return "builtin fallback"
	case i.p.Enabled:
		return "enabled  " + i.p.Version
	default:
		return "disabled  " + i.p.Version
	}
}
func (i providerItem) FilterValue() string { return i.p.Name }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the self-contained Bubble Tea model for the Providers tab.
type Model struct {
	port    Port
	list    list.Model
	output  viewport.Model
	spinner spinner.Model
	results []affiliatedto.DoctorResult
	loading bool
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Providers"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
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
		output:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadProvidersCmd(), m.spinner.Tick)
}

// RunDoctor starts a health check pass over every configured provider.
func (m *Model) RunDoctor() tea.Cmd {
	m.loading = true
	return tea.Batch(m.doctorCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ProvidersLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.output.SetContent(theme.Hot.Render("Error: " + msg.Err.Error()))
			return m, nil
		}
		items := make([]list.Item, len(msg.Providers))
		for i, p := range msg.Providers {
			items[i] = providerItem{p: p}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.output.SetContent(m.renderResults())

	case DoctorDoneMsg:
		m.loading = false
		if msg.Err != nil {
			m.output.SetContent(theme.Hot.Render("Doctor failed: " + msg.Err.Error()))
			return m, nil
		}
		m.results = msg.Results
		m.output.SetContent(m.renderResults())
		m.output.GotoTop()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "d" {
			cmds = append(cmds, m.RunDoctor())
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)

		var vCmd tea.Cmd
		m.output, vCmd = m.output.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Checking providers…")
	}

	listW := m.width * 4 / 10
	outputW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	outputPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(outputW - 2).
		Height(m.height - 2).
		Render(m.output.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, outputPane)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	outputW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.output.Width = outputW - 4
	m.output.Height = m.height - 4
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return theme.Muted.Render("Press d to run provider diagnostics")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Doctor") + "\n\n")
	for _, r := range m.results {
		sb.WriteString(theme.Hot.Render(r.Name) + "\n")
		sb.WriteString(fmt.Sprintf("  binary    %s\n", checkMark(r.BinaryReachable)))
		sb.WriteString(fmt.Sprintf("  checksum  %s\n", checkMark(r.ChecksumValid)))
		sb.WriteString(fmt.Sprintf("  lifecycle %s\n", checkMark(r.LifecycleOK)))
		if r.Error != "" {
			sb.WriteString("  " + theme.Nope.Render(r.Error) + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func checkMark(ok bool) string {
	if ok {
		return theme.Like.Render("ok")
	}
	return theme.Nope.Render("fail")
}

func (m Model) loadProvidersCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		providers, err := port.List(context.Background())
		return ProvidersLoadedMsg{Providers: providers, Err: err}
	}
}

func (m Model) doctorCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		results, err := port.Doctor(context.Background())
		return DoctorDoneMsg{Results: results, Err: err}
	}
}
