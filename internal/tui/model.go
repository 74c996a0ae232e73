package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"habitbuilder/internal/engine"
	"habitbuilder/internal/journal"
	"habitbuilder/internal/store"
	"habitbuilder/internal/ui"
)

// The board walks through three phases: ticking habits and picking an
// energy rating, reviewing the submission result, then an optional
// free-text journal note. Already-logged days skip straight to done.
type phase int

const (
	phaseLog phase = iota
	phaseResult
	phaseJournal
	phaseDone
)

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	phase     phase
	habits    []store.Habit
	checked   map[string]bool
	selected  int
	energy    int
	result    *engine.SubmitResult
	noteInput textinput.Model

	lastLog string
	err     error
}

type submittedMsg struct {
	res *engine.SubmitResult
	err error
}

type journalSavedMsg struct {
	err error
}

func newBoardModel(svc *engine.Service) boardModel {
	ti := textinput.New()
	ti.Placeholder = "How did today go?"
	ti.CharLimit = 280
	ti.Width = 48

	m := boardModel{
		svc:       svc,
		habits:    svc.State().Habits,
		checked:   map[string]bool{},
		energy:    store.DefaultEnergy,
		noteInput: ti,
		lastLog:   "Space toggles a habit. Enter submits.",
	}
	if log, ok := svc.State().DayLogs[svc.Today()]; ok {
		m.phase = phaseDone
		m.lastLog = fmt.Sprintf("Today is already logged (%+d points).", log.Points)
	}
	return m
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) submitCmd() tea.Cmd {
	// Every configured habit goes into the log; unticked ones count as
	// missed, same as the log command.
	completed := make(map[string]bool, len(m.habits))
	for _, h := range m.habits {
		completed[h.Name] = m.checked[h.Name]
	}
	energy := m.energy
	return func() tea.Msg {
		res, err := m.svc.SubmitLog(engine.SubmitInput{Completed: completed, Energy: energy})
		return submittedMsg{res: res, err: err}
	}
}

func (m boardModel) journalCmd(text string) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.SaveJournal(journalEntry(text))
		return journalSavedMsg{err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case submittedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = "Submit failed: " + msg.err.Error()
			return m, nil
		}
		m.result = msg.res
		m.phase = phaseResult
		m.lastLog = msg.res.Message
		return m, nil
	case journalSavedMsg:
		if msg.err != nil {
			m.lastLog = "Journal failed: " + msg.err.Error()
			return m, nil
		}
		m.phase = phaseDone
		m.lastLog = "Journal saved. Press q to quit."
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m boardModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseLog:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.habits)-1 {
				m.selected++
			}
		case " ":
			if m.selected >= 0 && m.selected < len(m.habits) {
				name := m.habits[m.selected].Name
				m.checked[name] = !m.checked[name]
			}
		case "left", "h", "-":
			if m.energy > 1 {
				m.energy--
			}
		case "right", "l", "+", "=":
			if m.energy < 10 {
				m.energy++
			}
		case "enter":
			m.lastLog = "Submitting…"
			return m, m.submitCmd()
		}
		return m, nil

	case phaseResult:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "j", "enter":
			m.phase = phaseJournal
			m.lastLog = "Write a note, or Esc to skip."
			return m, m.noteInput.Focus()
		}
		return m, nil

	case phaseJournal:
		switch msg.String() {
		case "esc":
			m.phase = phaseDone
			m.lastLog = "Skipped journal. Press q to quit."
			return m, nil
		case "enter":
			return m, m.journalCmd(m.noteInput.Value())
		}
		var cmd tea.Cmd
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd

	default:
		if msg.String() == "q" || msg.String() == "enter" {
			return m, tea.Quit
		}
		return m, nil
	}
}

func (m boardModel) View() string {
	if m.err != nil && m.phase == phaseLog {
		return ui.Bad.Render("Error: "+m.err.Error()) + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.phase {
	case phaseLog:
		b.WriteString(m.renderChecklist())
	case phaseResult:
		b.WriteString(m.renderResult())
	case phaseJournal:
		b.WriteString(ui.H2.Render(ui.IconJournal + " Journal") + "\n\n")
		b.WriteString(m.noteInput.View())
		b.WriteString("\n")
	default:
		b.WriteString(ui.Muted.Render("Nothing left to do today."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Dim.Render(m.lastLog))
	b.WriteString("\n")
	return b.String()
}

func (m boardModel) renderHeader() string {
	st := m.svc.State()
	return fmt.Sprintf("%s  %s  %s  %s",
		ui.Heading(ui.IconHabit, fmt.Sprintf("Habit Builder — Day %d", m.svc.DayNumber())),
		ui.LabelValue("Level", st.CurrentLevel),
		ui.LabelValue("Points", st.TotalPoints),
		ui.LabelValue("Streak", ui.Streak(st.Streak)),
	)
}

func (m boardModel) renderChecklist() string {
	var out []string
	out = append(out, ui.H2.Render("Today's habits"))
	if len(m.habits) == 0 {
		out = append(out, ui.Muted.Render("(no habits configured)"))
	}
	for i, h := range m.habits {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		box := "[ ]"
		if m.checked[h.Name] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%s %s (%d pts)", cursor, box, h.Name, h.Points)
		if i == m.selected {
			line = ui.Key.Render(line)
		}
		out = append(out, line)
	}
	out = append(out, "")
	out = append(out, ui.LabelValue("Energy", energyBar(m.energy)))
	out = append(out, "")
	out = append(out, ui.Muted.Render("↑/↓ move · space toggle · ←/→ energy · enter submit · q quit"))
	return strings.Join(out, "\n")
}

func (m boardModel) renderResult() string {
	r := m.result
	var out []string
	out = append(out, ui.H2.Render(ui.IconSparkle+" Logged!"))
	out = append(out, ui.LabelValue("Completion", fmt.Sprintf("%d%%", r.Completion)))
	out = append(out, ui.LabelValue("Points", fmt.Sprintf("%+d", r.Points)))
	if r.StreakBonus > 0 {
		out = append(out, ui.LabelValue("Streak bonus", fmt.Sprintf("+%d %s", r.StreakBonus, ui.IconFlame)))
	}
	out = append(out, ui.LabelValue("Streak", r.Streak))
	for _, ev := range r.Events {
		out = append(out, ui.Gold.Render(ui.IconTrophy+" "+ev.String()))
	}
	out = append(out, "")
	out = append(out, ui.Muted.Render("enter: add a journal note · q: quit"))
	return strings.Join(out, "\n")
}

func journalEntry(text string) journal.Entry {
	return journal.Entry{FreeText: strings.TrimSpace(text)}
}

func energyBar(n int) string {
	return fmt.Sprintf("%s%s %d/10", strings.Repeat("█", n), strings.Repeat("░", 10-n), n)
}
