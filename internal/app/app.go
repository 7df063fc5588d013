package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaiwen/hrquest/internal/notify"
	"github.com/kaiwen/hrquest/internal/quest"
	"github.com/kaiwen/hrquest/internal/router"
	"github.com/kaiwen/hrquest/internal/screen"
	"github.com/kaiwen/hrquest/internal/screens/assessment"
	"github.com/kaiwen/hrquest/internal/screens/questmap"
	"github.com/kaiwen/hrquest/internal/store"
	"github.com/kaiwen/hrquest/internal/ui/layout"
	"github.com/kaiwen/hrquest/internal/ui/theme"
)

// AppModel is the root Bubble Tea model. It owns the quest session,
// routes messages to the active screen, and renders toasts over the
// frame.
type AppModel struct {
	session *quest.Session
	repo    store.EventRepo
	router  *router.Router
	width   int
	height  int

	toast    *notify.Notice
	toastSeq int
}

// newAppModel builds the root model. With the assessment skipped the
// quest map is the first screen; otherwise the placement flow runs
// first and replaces itself with the quest map.
func newAppModel(session *quest.Session, repo store.EventRepo, skipAssessment bool) AppModel {
	var first screen.Screen
	if skipAssessment {
		first = questmap.New(session, repo)
	} else {
		first = assessment.New(session, repo)
	}
	return AppModel{
		session: session,
		repo:    repo,
		router:  router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case notify.Msg:
		n := msg.Notice
		m.toast = &n
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(n.Level.TTL(), func(t time.Time) tea.Msg {
			return notify.DismissMsg{Seq: seq}
		})

	case notify.DismissMsg:
		if msg.Seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// Leaving a task screen abandons the attempt: the epoch
				// bump invalidates any in-flight timer or upload check.
				m.session.Close()
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.session.Player
	status := fmt.Sprintf("Lv %d  %s  ⚡ %d/%d XP", p.Level, p.Title, p.XP, p.MaxXP)
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	if m.toast != nil {
		content = overlayToast(content, *m.toast, m.width)
	}
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// overlayToast draws the toast box on the top-right of the content area.
func overlayToast(content string, n notify.Notice, width int) string {
	style := theme.ToastInfo
	switch n.Level {
	case notify.LevelSuccess:
		style = theme.ToastSuccess
	case notify.LevelWarning:
		style = theme.ToastWarning
	case notify.LevelError:
		style = theme.ToastError
	}

	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(n.Title)
	if n.Description != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(n.Description)
	}
	box := style.Render(body)

	placed := lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(box)
	return placed + "\n" + content
}

// Run starts the Bubble Tea program over a fresh session.
func Run(session *quest.Session, repo store.EventRepo, skipAssessment bool) error {
	p := tea.NewProgram(newAppModel(session, repo, skipAssessment))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
