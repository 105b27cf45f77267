// Package tui hosts the Bubble Tea program for the interactive day view:
// a task pane, the hour-grid agenda, and the coach message bar. The clock
// and coach message refresh on a minute tick without touching persisted
// state.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/coach/pkg/app"
	"tableflip.dev/coach/pkg/coach"
	"tableflip.dev/coach/pkg/store"
	"tableflip.dev/coach/pkg/timeutil"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

type (
	docMsg          struct{ doc *coach.Document }
	errMsg          struct{ err error }
	tickMsg         time.Time
	watchStartedMsg struct{ events <-chan store.Event }
	watchMsg        struct{ ok bool }
)

type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc

	doc    *coach.Document
	cursor int
	mode   mode
	input  textinput.Model
	events <-chan store.Event

	now        time.Time
	termWidth  int
	termHeight int
	status     string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	doneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	carryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	coachStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	blockStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// New creates the UI model backed by the Service.
func New(svc *app.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "task text, optionally ending in a duration like 30m"
	ti.CharLimit = 256
	ti.Prompt = "> "

	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		input:  ti,
		now:    time.Now(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadDoc(), m.startWatch(), tickCmd())
}

func (m *Model) loadDoc() tea.Cmd {
	return func() tea.Msg {
		doc, err := m.svc.Document(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return docMsg{doc}
	}
}

func (m *Model) startWatch() tea.Cmd {
	return func() tea.Msg {
		events, err := m.svc.Watch(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return watchStartedMsg{events: events}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		_, ok := <-events
		return watchMsg{ok: ok}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case docMsg:
		m.doc = msg.doc
		if n := len(m.doc.Tasks); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}

	case errMsg:
		m.status = msg.err.Error()

	case tickMsg:
		m.now = time.Time(msg)
		cmds = append(cmds, tickCmd())

	case watchStartedMsg:
		m.events = msg.events
		cmds = append(cmds, m.waitForWatch())

	case watchMsg:
		if msg.ok {
			cmds = append(cmds, m.loadDoc(), m.waitForWatch())
		}

	case tea.KeyPressMsg:
		if m.mode == modeInsert {
			cmds = append(cmds, m.handleInsertKey(msg))
		} else if cmd, quit := m.handleNormalKey(msg); quit {
			m.cancel()
			return m, tea.Quit
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		return nil, true
	case "j", "down":
		if m.doc != nil && m.cursor < len(m.doc.Tasks)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case " ", "enter":
		if t := m.currentTask(); t != nil {
			return m.toggle(t.ID), false
		}
	case "d":
		if t := m.currentTask(); t != nil {
			return m.delete(t.ID), false
		}
	case "a":
		m.mode = modeInsert
		m.input.SetValue("")
		m.input.Focus()
	}
	return nil, false
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.mode = modeNormal
		m.input.Blur()
		if text == "" {
			return nil
		}
		return m.add(text)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) currentTask() *coach.Task {
	if m.doc == nil || m.cursor >= len(m.doc.Tasks) {
		return nil
	}
	return m.doc.Tasks[m.cursor]
}

func (m *Model) toggle(id string) tea.Cmd {
	return func() tea.Msg {
		doc, err := m.svc.ToggleTask(m.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return docMsg{doc}
	}
}

func (m *Model) delete(id string) tea.Cmd {
	return func() tea.Msg {
		doc, err := m.svc.DeleteTask(m.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return docMsg{doc}
	}
}

// add splits a trailing duration token off the text ("write cover letter
// 30m") before creating the task.
func (m *Model) add(text string) tea.Cmd {
	return func() tea.Msg {
		body, minutes := text, 0.0
		if i := strings.LastIndex(text, " "); i > 0 {
			if v := timeutil.ParseMinutes(text[i+1:]); v > 0 {
				body, minutes = text[:i], v
			}
		}
		if _, err := m.svc.AddTask(m.ctx, body, minutes, ""); err != nil {
			return errMsg{err}
		}
		doc, err := m.svc.Document(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return docMsg{doc}
	}
}

func (m *Model) View() string {
	if m.doc == nil {
		return "loading..."
	}

	left := m.renderTasks()
	right := m.renderAgenda()
	gap := lipgloss.NewStyle().Padding(0, 2).Render(" ")
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)

	sections := []string{
		coachStyle.Render(coach.Message(m.doc.Tasks, m.now.Hour())),
		faintStyle.Render(coach.RealityCheck(m.doc.Tasks, m.now)),
		"",
		body,
		"",
	}
	if m.status != "" {
		sections = append(sections, m.status)
	}
	if m.mode == modeInsert {
		sections = append(sections, m.input.View())
	} else {
		sections = append(sections, helpStyle.Render("j/k move · space toggle · a add · d delete · q quit"))
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderTasks() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.now.Format("January 2, 2006")))
	b.WriteString("\n")

	if len(m.doc.Tasks) == 0 {
		b.WriteString(faintStyle.Render(" none"))
		b.WriteString("\n")
		return b.String()
	}

	for i, t := range m.doc.Tasks {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}

		bullet := "●"
		line := t.Text
		style := lipgloss.NewStyle()
		if t.Completed {
			bullet = "✘"
			style = doneStyle
		} else if t.OldDay {
			style = carryStyle
		}
		if t.Minutes > 0 {
			line = fmt.Sprintf("%s  %s", line, timeutil.FormatMinutes(t.Minutes))
		}
		b.WriteString(prefix + style.Render(bullet+" "+line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderAgenda shows a working window of the hour grid centered loosely on
// now rather than all 24 rows.
func (m *Model) renderAgenda() string {
	currentHour := int(coach.ClockPosition(m.now))
	start, end := agendaWindow(currentHour)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Agenda"))
	b.WriteString("\n")

	for hour := start; hour < end; hour++ {
		label := fmt.Sprintf("%5s ", coach.FormatHour(hour))
		occupying := coach.BlocksForHour(m.doc.TimeBlocks, hour)

		switch {
		case len(occupying) == 0:
			b.WriteString(faintStyle.Render(label) + "\n")
		default:
			for i, blk := range occupying {
				pad := label
				if i > 0 {
					pad = strings.Repeat(" ", len(label))
				}
				b.WriteString(faintStyle.Render(pad) + blockStyle.Render("▐ "+blk.TaskText) + "\n")
			}
		}

		if hour == currentHour {
			b.WriteString(markerStyle.Render(fmt.Sprintf("%5s %s", m.now.Format("3:04"), strings.Repeat("─", 20))))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func agendaWindow(hour int) (int, int) {
	start := hour - 3
	if start < 0 {
		start = 0
	}
	end := start + 10
	if end > 24 {
		end = 24
		start = end - 10
	}
	return start, end
}

// Run launches the Bubble Tea UI.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
