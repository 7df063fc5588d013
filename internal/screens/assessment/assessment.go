// Package assessment renders the optional placement flow shown before
// the quest map.
package assessment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	flow "github.com/kaiwen/hrquest/internal/assessment"
	"github.com/kaiwen/hrquest/internal/notify"
	"github.com/kaiwen/hrquest/internal/quest"
	"github.com/kaiwen/hrquest/internal/router"
	"github.com/kaiwen/hrquest/internal/screen"
	"github.com/kaiwen/hrquest/internal/screens/questmap"
	"github.com/kaiwen/hrquest/internal/store"
	"github.com/kaiwen/hrquest/internal/ui/components"
	"github.com/kaiwen/hrquest/internal/ui/layout"
	"github.com/kaiwen/hrquest/internal/ui/theme"
)

const (
	// analysisStepInterval paces the simulated progress ramp.
	analysisStepInterval = 500 * time.Millisecond
	// settleDelay holds the finished ramp briefly before the result.
	settleDelay = 800 * time.Millisecond
)

type analysisTickMsg time.Time
type settledMsg struct{}

// AssessmentScreen drives the placement flow and hands over to the
// quest map when it ends.
type AssessmentScreen struct {
	session *quest.Session
	repo    store.EventRepo
	flow    *flow.Flow
	menu    components.Menu
	spinner spinner.Model
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

func New(session *quest.Session, repo store.EventRepo) *AssessmentScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Secondary)

	s := &AssessmentScreen{
		session: session,
		repo:    repo,
		flow:    flow.New(),
		spinner: sp,
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "UPLOAD A SAMPLE WORKBOOK", Action: s.begin},
		{Label: "SKIP — START FROM TASK 1", Action: s.skip},
	})
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd { return nil }

func (s *AssessmentScreen) Title() string { return "Placement" }

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	switch s.flow.Stage {
	case flow.StageIntro:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
		}
	case flow.StageUpload:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Upload"},
		}
	case flow.StageResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Accept my path"},
			{Key: "s", Description: "Start from scratch"},
		}
	default:
		return []layout.KeyHint{}
	}
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisTickMsg:
		if s.flow.Stage != flow.StageAnalyzing {
			return s, nil
		}
		if s.flow.Advance() {
			return s, tea.Tick(settleDelay, func(time.Time) tea.Msg {
				return settledMsg{}
			})
		}
		return s, tea.Tick(analysisStepInterval, func(t time.Time) tea.Msg {
			return analysisTickMsg(t)
		})

	case settledMsg:
		s.flow.Finish()
		return s, nil

	case spinner.TickMsg:
		if s.flow.Stage != flow.StageAnalyzing {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.flow.Stage {
	case flow.StageIntro:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case flow.StageUpload:
		if msg.String() == "enter" {
			if !s.flow.StartAnalysis() {
				return s, nil
			}
			return s, tea.Batch(
				s.spinner.Tick,
				tea.Tick(analysisStepInterval, func(t time.Time) tea.Msg {
					return analysisTickMsg(t)
				}),
			)
		}

	case flow.StageResult:
		switch msg.String() {
		case "enter":
			return s, s.accept()
		case "s":
			return s, s.declineResult()
		}
	}
	return s, nil
}

func (s *AssessmentScreen) begin() tea.Cmd {
	s.flow.Begin()
	return nil
}

// skip leaves the flow from the intro straight to the quest map.
func (s *AssessmentScreen) skip() tea.Cmd {
	if !s.flow.Skip() {
		return nil
	}
	s.recordOutcome("skipped", nil)
	return s.handoff(nil)
}

// accept applies the placement override and moves on.
func (s *AssessmentScreen) accept() tea.Cmd {
	r := s.flow.Result
	if r == nil {
		return nil
	}
	notice := s.session.ApplyPlacement(r.RecommendedModule, flow.PlacedLevel, flow.PlacedXP, r.Title)
	s.recordOutcome("accepted", r)
	return s.handoff(&notice)
}

// declineResult discards the placement and starts from task 1.
func (s *AssessmentScreen) declineResult() tea.Cmd {
	s.recordOutcome("skipped", nil)
	return s.handoff(nil)
}

func (s *AssessmentScreen) recordOutcome(action string, r *flow.Result) {
	if s.repo == nil {
		return
	}
	data := store.AssessmentEventData{
		SessionID: s.session.ID,
		Action:    action,
	}
	if r != nil {
		data.PlacedTitle = r.Title
		data.PlacedLevel = flow.PlacedLevel
		data.RecommendedModule = r.RecommendedModule
	}
	_ = s.repo.AppendAssessment(context.Background(), data)
}

func (s *AssessmentScreen) handoff(notice *notify.Notice) tea.Cmd {
	next := questmap.New(s.session, s.repo)
	cmds := []tea.Cmd{
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
	}
	if notice != nil {
		n := *notice
		cmds = append(cmds, func() tea.Msg { return notify.Msg{Notice: n} })
	}
	return tea.Sequence(cmds...)
}

func (s *AssessmentScreen) View(width, height int) string {
	var content string
	switch s.flow.Stage {
	case flow.StageIntro:
		content = s.viewIntro()
	case flow.StageUpload:
		content = s.viewUpload()
	case flow.StageAnalyzing:
		content = s.viewAnalyzing(width)
	case flow.StageResult:
		content = s.viewResult()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AssessmentScreen) viewIntro() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Find your starting point"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Upload a workbook you've made and the coach\nwill place you on the quest map."))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	return b.String()
}

func (s *AssessmentScreen) viewUpload() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Upload a sample"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Any spreadsheet you're proud of will do."))
	b.WriteString("\n\n")
	b.WriteString(theme.Card.Render("  ⇪  Press Enter to upload  "))
	return b.String()
}

func (s *AssessmentScreen) viewAnalyzing(width int) string {
	barWidth := 44
	if barWidth > width-8 {
		barWidth = width - 8
	}

	var b strings.Builder
	b.WriteString(s.spinner.View() + " " +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Analyzing your workbook..."))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("", float64(s.flow.Progress)/100, true, barWidth).View())
	b.WriteString("\n\n")
	for _, line := range s.flow.Log {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("· " + line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *AssessmentScreen) viewResult() string {
	r := s.flow.Result
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Your placement"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("%s — %s", r.Level, r.Title)))
	b.WriteString("\n\n")

	b.WriteString(theme.Correct.Render("Strengths"))
	b.WriteString("\n")
	for _, t := range r.Strengths {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  + " + t))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Incorrect.Render("Worth practicing"))
	b.WriteString("\n")
	for _, t := range r.Weaknesses {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  - " + t))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(
		fmt.Sprintf("Recommended start: module %d — the basics are already yours.", r.RecommendedModule)))
	return theme.Card.Render(b.String())
}
