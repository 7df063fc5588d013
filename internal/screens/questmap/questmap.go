package questmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaiwen/hrquest/internal/notify"
	"github.com/kaiwen/hrquest/internal/quest"
	"github.com/kaiwen/hrquest/internal/router"
	"github.com/kaiwen/hrquest/internal/screen"
	"github.com/kaiwen/hrquest/internal/screens/taskdetail"
	"github.com/kaiwen/hrquest/internal/store"
	"github.com/kaiwen/hrquest/internal/ui/components"
	"github.com/kaiwen/hrquest/internal/ui/layout"
	"github.com/kaiwen/hrquest/internal/ui/theme"
)

type rowKind int

const (
	rowModuleHeader rowKind = iota
	rowTask
)

type row struct {
	kind   rowKind
	module string
	task   *quest.Task
}

// MapScreen displays the quest map organized by module.
type MapScreen struct {
	session      *quest.Session
	repo         store.EventRepo
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*MapScreen)(nil)
var _ screen.KeyHintProvider = (*MapScreen)(nil)

// New creates a MapScreen over the session's catalog with the cursor on
// the active task.
func New(session *quest.Session, repo store.EventRepo) *MapScreen {
	var rows []row
	lastModule := ""
	for i := range session.Tasks {
		t := &session.Tasks[i]
		if t.Module != lastModule {
			rows = append(rows, row{kind: rowModuleHeader, module: t.Module})
			lastModule = t.Module
		}
		rows = append(rows, row{kind: rowTask, module: t.Module, task: t})
	}

	s := &MapScreen{
		session: session,
		repo:    repo,
		rows:    rows,
	}
	s.focusActive()
	return s
}

func (s *MapScreen) Init() tea.Cmd {
	return nil
}

func (s *MapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "g":
			s.focusActive()
		case "enter":
			return s, s.selectTask()
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *MapScreen) Title() string {
	return "Quest Map"
}

func (s *MapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open task"},
		{Key: "g", Description: "Active task"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *MapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	summary := s.renderSummary(width)
	listHeight := height - lipgloss.Height(summary)
	if listHeight < 1 {
		listHeight = 1
	}

	s.adjustScroll(listHeight)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}

		switch r.kind {
		case rowModuleHeader:
			lines = append(lines, s.renderModuleHeader(r.module, width))
		case rowTask:
			lines = append(lines, s.renderTaskRow(r, i == s.cursor, width))
		}
		visible++
	}

	return summary + "\n" + strings.Join(lines, "\n")
}

// renderSummary shows overall progress, the XP bar, and earned badges.
func (s *MapScreen) renderSummary(width int) string {
	p := s.session.Player

	progress := fmt.Sprintf("  %d/%d tasks cleared", s.session.Completed(), len(s.session.Tasks))
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(progress)

	barWidth := 32
	if barWidth > width-30 {
		barWidth = width - 30
	}
	left += "\n  " + components.XPBar(p.XPPercent(), p.XPToNext(), barWidth)

	var badges []string
	for _, b := range p.Badges {
		badges = append(badges, b.Icon.Glyph()+" "+b.Name)
	}
	badgeLine := lipgloss.NewStyle().Foreground(theme.Accent).
		Render("  " + strings.Join(badges, "   "))
	if len(badges) == 0 {
		badgeLine = theme.Hint.Render("  No badges yet — complete tasks to earn them")
	}

	return left + "\n" + badgeLine + "\n"
}

func (s *MapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowTask {
			s.cursor = next
			return
		}
		next += delta
	}
}

// focusActive puts the cursor on the session's active task, or the last
// task when everything is done.
func (s *MapScreen) focusActive() {
	active := s.session.Active()
	for i, r := range s.rows {
		if r.kind != rowTask {
			continue
		}
		s.cursor = i
		if active != nil && r.task.ID == active.ID {
			return
		}
	}
}

func (s *MapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowModuleHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectTask opens the task under the cursor. Locked tasks produce a
// warning toast and no navigation.
func (s *MapScreen) selectTask() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowTask || r.task == nil {
		return nil
	}

	notice, ok := s.session.Select(r.task.ID)
	if !ok {
		if notice.Title == "" {
			return nil
		}
		return func() tea.Msg { return notify.Msg{Notice: notice} }
	}

	detail := taskdetail.New(s.session, s.repo)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *MapScreen) renderModuleHeader(module string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(module))
}

func (s *MapScreen) renderTaskRow(r row, selected bool, width int) string {
	t := r.task
	status := s.session.StatusByID(t.ID)

	icon := "○"
	label := "Locked"
	switch status {
	case quest.StatusCompleted:
		icon = "●"
		label = "Cleared"
	case quest.StatusActive:
		icon = "◉"
		label = "Active"
	}
	if t.Boss {
		icon = "⚔"
	}

	reward := fmt.Sprintf("+%d XP", t.XPReward)

	padding := 4
	iconWidth := 3
	rewardWidth := 8
	labelWidth := 10
	spacing := 4
	nameWidth := width - padding - iconWidth - rewardWidth - labelWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := t.Title
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	var nameStyle, rewardStyle, labelStyle lipgloss.Style
	if selected {
		nameStyle = theme.Selected
		rewardStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		switch status {
		case quest.StatusCompleted:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
			rewardStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
		case quest.StatusActive:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
			rewardStyle = lipgloss.NewStyle().Foreground(theme.Accent)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			rewardStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	namePadded := fmt.Sprintf("%-*s", nameWidth, name)
	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		icon,
		nameStyle.Render(namePadded),
		rewardStyle.Render(fmt.Sprintf("%7s", reward)),
		labelStyle.Render(fmt.Sprintf("%9s", label)),
	)
}
