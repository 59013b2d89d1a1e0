package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pokedex/core"
)

const notFoundMessage = "Pokémon not found"

type Looker interface {
	Lookup(ctx context.Context, query string) (core.Record, error)
}

// lookupDone carries the reply of one lookup together with the
// generation it was started under, so stale replies can be dropped.
type lookupDone struct {
	gen uint64
	rec core.Record
	err error
}

type Model struct {
	svc     Looker
	session *core.Session
	log     *slog.Logger
	timeout time.Duration

	input   textinput.Model
	spinner spinner.Model
	styles  Styles

	loading bool
	failed  bool
	rec     *core.Record
	width   int
}

func NewModel(svc Looker, session *core.Session, timeout time.Duration, log *slog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "name or number"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		svc:     svc,
		session: session,
		log:     log,
		timeout: timeout,
		input:   ti,
		spinner: sp,
		styles:  DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// startLookup stamps a new generation and fires one asynchronous
// request. The session stays untouched until the reply commits.
func (m *Model) startLookup(query string) tea.Cmd {
	gen := m.session.Begin()
	m.loading = true
	m.failed = false

	svc := m.svc
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		rec, err := svc.Lookup(ctx, query)
		return lookupDone{gen: gen, rec: rec, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				// Empty search falls back to the current selection.
				query = strconv.Itoa(m.session.Current())
			}
			return m, m.startLookup(query)

		case "ctrl+p":
			return m, m.startLookup(strconv.Itoa(m.session.PrevID()))

		case "ctrl+n":
			return m, m.startLookup(strconv.Itoa(m.session.NextID()))
		}

	case lookupDone:
		if m.session.Stale(msg.gen) {
			m.log.Debug("dropping stale lookup reply", "generation", msg.gen)
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn("lookup failed", "error", msg.err)
			m.loading = false
			m.failed = true
			return m, nil
		}
		if !m.session.Commit(msg.gen, msg.rec.ID) {
			return m, nil
		}
		m.loading = false
		m.failed = false
		rec := msg.rec
		m.rec = &rec
		m.input.Reset()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Pokédex"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " looking up...")
	case m.failed:
		b.WriteString(m.styles.Error.Render(notFoundMessage))
	case m.rec != nil:
		b.WriteString(m.renderRecord(*m.rec))
	default:
		b.WriteString(m.styles.Muted.Render("Type a name or number and press enter."))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter: search • ctrl+p: prev • ctrl+n: next • esc: quit"))
	return m.styles.App.Render(b.String())
}

func (m Model) renderRecord(rec core.Record) string {
	label := m.styles.Label.Render
	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s  #%d", m.styles.Name.Render(strings.ToUpper(rec.Name)), rec.ID),
		label("Sprite:    ")+rec.SpriteURL,
		label("Types:     ")+strings.Join(rec.Types, ", "),
		label("Height:    ")+fmt.Sprintf("%.1f m", rec.HeightM),
		label("Weight:    ")+fmt.Sprintf("%.1f kg", rec.WeightKG),
		label("Abilities: ")+strings.Join(rec.Abilities, ", "),
	)
}
