package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"horsemanager/internal/domain"
	"horsemanager/internal/table"
	"horsemanager/internal/util"
)

// KeyMap lists the key bindings of the game.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	NextDay key.Binding
	Quit    key.Binding
}

// DefaultKeys are the standard bindings.
var DefaultKeys = KeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Cancel:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	NextDay: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next day")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k KeyMap) help() string {
	bindings := []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel, k.NextDay, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return " " + strings.Join(parts, "  ")
}

var (
	topbarStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	holidayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")) // black on yellow
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Hooks are optional callbacks into the application.
type Hooks struct {
	// NextDay advances the in-game date (restocking, saving). Called on the
	// NextDay key when no dialog is open.
	NextDay func(ctx context.Context) error
}

// Model is the bubbletea model wrapping a Navigator.
type Model struct {
	ctx    context.Context
	nav    *Navigator
	player string
	hooks  Hooks
	keys   KeyMap
	styles *table.Styles
	logger *slog.Logger

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	lastErr  error
}

// NewModel creates the program model.
func NewModel(ctx context.Context, nav *Navigator, player string, hooks Hooks, logger *slog.Logger) Model {
	if logger == nil {
		logger = util.Discard()
	}
	return Model{
		ctx:    ctx,
		nav:    nav,
		player: player,
		hooks:  hooks,
		keys:   DefaultKeys,
		styles: table.DefaultStyles(),
		logger: logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.nav.MoveSelection(-1)
		case key.Matches(msg, m.keys.Down):
			m.nav.MoveSelection(1)
		case key.Matches(msg, m.keys.Confirm):
			m.lastErr = m.nav.Confirm(m.ctx)
			if m.lastErr != nil {
				m.logger.Error("confirm failed", "error", m.lastErr)
			}
			if m.nav.Quit() {
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Cancel):
			m.nav.Cancel()
		case key.Matches(msg, m.keys.NextDay):
			if m.nav.Dialog() == nil && m.hooks.NextDay != nil {
				m.lastErr = m.hooks.NextDay(m.ctx)
				if m.lastErr != nil {
					m.logger.Error("next day failed", "error", m.lastErr)
				}
				m.nav.Refresh()
			}
		default:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerH := 1
		footerH := 1
		vpHeight := m.height - headerH - footerH
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.MouseWheelEnabled = true
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refresh()
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the navigator into the viewport and keeps the selected
// row (or the dialog) in view.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	lines := m.nav.Render(m.styles)
	m.viewport.SetContent(strings.Join(lines, "\n"))

	target := m.focusLine(lines)
	yOff := m.viewport.YOffset
	vpH := m.viewport.Height
	if target < yOff {
		m.viewport.SetYOffset(target)
	} else if target >= yOff+vpH {
		m.viewport.SetYOffset(target - vpH + 1)
	}
}

// focusLine is the line that must stay visible: the last dialog line, or
// the selected row of a table (header block is 5 lines, rows are 2 apart).
func (m *Model) focusLine(lines []string) int {
	if m.nav.Dialog() != nil {
		return len(lines) - 1
	}
	s := m.nav.Active()
	if s.Kind != TableScreen || s.selected < 0 {
		return 0
	}
	line := 5 + 2*s.selected
	if s.Addable && s.selected == len(m.nav.Items(s)) {
		line = len(lines) - 2
	}
	return min(line, len(lines)-1)
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.topbar() + "\n" + m.viewport.View() + "\n" + m.footer()
}

func (m Model) topbar() string {
	g := m.nav.game
	text := fmt.Sprintf(" %s    balance: %s    %s ",
		m.player,
		table.FormatCurrency(g.Balance()),
		g.Today().Format("Mon 2006-01-02"),
	)
	bar := topbarStyle.Render(text)
	if g.TodayEvent() == domain.EventHoliday {
		bar += holidayStyle.Render(" HOLIDAY: discounted shop, premium sales ")
	} else if next, ok := g.Calendar().NextHoliday(g.Today()); ok {
		bar += topbarStyle.Render(fmt.Sprintf("   next holiday: %s ", next.Format("Mon 2006-01-02")))
	}
	if gap := m.width - lipgloss.Width(bar); gap > 0 {
		bar += topbarStyle.Render(strings.Repeat(" ", gap))
	}
	return bar
}

func (m Model) footer() string {
	if m.lastErr != nil {
		return errorStyle.Render(padOrTrunc(" error: "+m.lastErr.Error(), m.width))
	}
	return footerStyle.Render(padOrTrunc(m.keys.help(), m.width))
}

func padOrTrunc(s string, width int) string {
	if width <= 0 {
		return s
	}
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return table.Truncate(s, width)
}
