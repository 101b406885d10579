package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ry/internal/driver"
)

const statusWidth = 10

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	prog    progress.Model
	rows    []fileRow
	index   map[string]int
	width   int
	failed  int
	done    bool

	interrupted bool
}

type fileRow struct {
	path    string
	stage   driver.Stage
	status  driver.Status
	elapsed time.Duration
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that shows per-file progress of
// a directory run. The model quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	rows := make([]fileRow, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		rows[i] = fileRow{path: file, status: driver.StatusQueued}
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		rows:    rows,
		index:   index,
		width:   80,
	}
}

// Interrupted reports whether the user quit the view before the run finished.
func Interrupted(model tea.Model) bool {
	m, ok := model.(*progressModel)
	return ok && m.interrupted
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		// Ctrl+C в raw-режиме не доходит до signal.NotifyContext
		if msg.Type == tea.KeyCtrlC {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = max(msg.Width-4, 10)
		}
		return m, nil
	case progress.FrameMsg:
		next, cmd := m.prog.Update(msg)
		m.prog = next.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-14, 20)
	for _, row := range m.rows {
		label := rowLabel(row)
		b.WriteString("  ")
		b.WriteString(styleStatus(row.status).Render(fmt.Sprintf("%*s", statusWidth, label)))
		b.WriteString(" ")
		b.WriteString(truncate(row.path, nameWidth))
		if row.elapsed > 0 {
			fmt.Fprintf(&b, " %s", row.elapsed.Round(time.Microsecond))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	if m.failed > 0 {
		b.WriteString(styleStatus(driver.StatusError).Render(fmt.Sprintf("%d file(s) with errors", m.failed)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	row := &m.rows[idx]
	if ev.Status == driver.StatusError && row.status != driver.StatusError {
		m.failed++
	}
	row.stage = ev.Stage
	row.status = ev.Status
	row.elapsed = ev.Elapsed
	return m.prog.SetPercent(m.fraction())
}

// fraction: готовые файлы считаются целиком, файлы в работе наполовину.
func (m *progressModel) fraction() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	total := 0.0
	for _, row := range m.rows {
		switch row.status {
		case driver.StatusDone, driver.StatusError:
			total += 1
		case driver.StatusWorking:
			total += 0.5
		}
	}
	return total / float64(len(m.rows))
}

func rowLabel(row fileRow) string {
	if row.status == driver.StatusWorking {
		if s := row.stage.String(); s != "" {
			return s
		}
	}
	return row.status.String()
}

func styleStatus(status driver.Status) lipgloss.Style {
	switch status {
	case driver.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case driver.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case driver.StatusWorking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
