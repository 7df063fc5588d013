// Package taskdetail renders the mission card for the open task and
// drives the quiz or download/upload interaction it requires.
package taskdetail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaiwen/hrquest/internal/countdown"
	"github.com/kaiwen/hrquest/internal/notify"
	"github.com/kaiwen/hrquest/internal/quest"
	"github.com/kaiwen/hrquest/internal/router"
	"github.com/kaiwen/hrquest/internal/screen"
	"github.com/kaiwen/hrquest/internal/screens/levelup"
	"github.com/kaiwen/hrquest/internal/store"
	"github.com/kaiwen/hrquest/internal/ui/components"
	"github.com/kaiwen/hrquest/internal/ui/layout"
	"github.com/kaiwen/hrquest/internal/ui/theme"
)

// uploadCheckDelay is how long the simulated file check appears to run.
const uploadCheckDelay = 1500 * time.Millisecond

// DetailScreen shows one task: scenario, requirements, rewards, and the
// interaction area (quiz questions or the download/upload panel).
type DetailScreen struct {
	session *quest.Session
	repo    store.EventRepo
	task    *quest.Task

	// Quiz state: index of the question being shown and its selector.
	quizIdx int
	mc      components.MultiChoice

	spinner spinner.Model
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a DetailScreen for the session's currently open task.
func New(session *quest.Session, repo store.EventRepo) *DetailScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Secondary)

	d := &DetailScreen{
		session: session,
		repo:    repo,
		task:    session.Open(),
		spinner: sp,
	}
	if d.task != nil && d.task.IsQuiz() && len(d.task.Practices) > 0 {
		d.mc = newQuestionChoice(d.task.Practices[0])
	}
	return d
}

func newQuestionChoice(p quest.Practice) components.MultiChoice {
	return components.NewMultiChoice(p.Question, p.Options, p.Answer, p.Explanation)
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Title() string {
	if d.task == nil {
		return "Task"
	}
	return fmt.Sprintf("Task %d", d.task.ID)
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if d.task == nil {
		return d, nil
	}

	switch msg := msg.(type) {
	case timerTickMsg:
		d.session.Tick(msg.epoch)
		if msg.epoch == d.session.Epoch() && d.session.Timer.Running {
			return d, tickCmd(msg.epoch)
		}
		return d, nil

	case uploadResultMsg:
		d.session.ResolveUpload(msg.epoch, msg.success)
		if d.session.Upload == quest.UploadError {
			return d, func() tea.Msg {
				return notify.Msg{Notice: notify.Error(
					"Check failed",
					"The file didn't pass. Fix it and upload again.",
				)}
			}
		}
		return d, nil

	case spinner.TickMsg:
		if d.session.Upload != quest.UploadAnalyzing {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyMsg:
		if d.task.IsQuiz() {
			return d.updateQuiz(msg)
		}
		return d.updateSubmission(msg)
	}

	return d, nil
}

// claim completes the open task: journal entry, toast, pop back to the
// map, and the level-up overlay when one fired.
func (d *DetailScreen) claim() tea.Cmd {
	allCorrect := d.task.IsQuiz() && d.session.AllCorrect()

	c, ok := d.session.Complete()
	if !ok {
		return nil
	}

	if d.repo != nil {
		_ = d.repo.AppendTaskCompletion(context.Background(), store.TaskEventData{
			SessionID:      d.session.ID,
			TaskID:         c.Task.ID,
			TaskTitle:      c.Task.Title,
			Module:         c.Task.Module,
			Kind:           kindString(&c.Task),
			XPAwarded:      c.XP,
			Badge:          c.Badge,
			QuizAllCorrect: allCorrect,
		})
	}

	cmds := []tea.Cmd{
		func() tea.Msg { return notify.Msg{Notice: c.Notice} },
		func() tea.Msg { return router.PopScreenMsg{} },
	}
	if c.LevelUp != nil {
		up := *c.LevelUp
		cmds = append(cmds, func() tea.Msg {
			return router.PushScreenMsg{Screen: levelup.New(up)}
		})
	}
	return tea.Sequence(cmds...)
}

func kindString(t *quest.Task) string {
	if t.IsQuiz() {
		return "quiz"
	}
	return "standard"
}

func tickCmd(epoch int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{epoch: epoch}
	})
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	if d.task == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if d.task.IsQuiz() {
		return d.quizKeyHints()
	}
	return d.submissionKeyHints()
}

func (d *DetailScreen) View(width, height int) string {
	if d.task == nil {
		return ""
	}

	contentWidth := width - 8
	if contentWidth > 76 {
		contentWidth = 76
	}

	var b strings.Builder
	d.renderCard(&b, contentWidth)

	if d.task.IsQuiz() {
		d.renderQuiz(&b, contentWidth)
	} else {
		d.renderSubmission(&b, contentWidth)
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
}

// renderCard writes the mission briefing shared by both task kinds.
func (d *DetailScreen) renderCard(b *strings.Builder, width int) {
	t := d.task
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width).PaddingLeft(2)

	title := t.Title
	if t.Boss {
		title += "  [BOSS]"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("  " + title))
	b.WriteString("\n")
	b.WriteString(dim.Render("  " + t.Module))

	// Countdown badge, once the clock has been started. Stays visible at
	// 00:00 after expiry.
	if d.session.Timer.Started {
		clock := theme.Clock
		if d.session.Timer.Urgent() || d.session.Timer.Expired() {
			clock = theme.ClockUrgent
		}
		b.WriteString("   " + clock.Render("⏱ "+countdown.Format(d.session.Timer.Remaining)))
	}
	b.WriteString("\n\n")

	b.WriteString(body.Render(t.Scenario))
	b.WriteString("\n\n")
	if t.Desc != "" {
		b.WriteString(theme.Hint.PaddingLeft(2).Width(width).Render(t.Desc))
		b.WriteString("\n\n")
	}

	if len(t.Requirements) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("  Requirements"))
		b.WriteString("\n")
		for _, r := range t.Requirements {
			b.WriteString(dim.Render("  • " + r))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	reward := fmt.Sprintf("  Reward: +%d XP", t.XPReward)
	if t.BadgeReward != "" {
		reward += fmt.Sprintf("   %s %s", t.BadgeIcon.Glyph(), t.BadgeReward)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(reward))
	b.WriteString("\n")

	if len(t.SkillNodes) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("  Skills"))
		b.WriteString("\n")
		for _, n := range t.SkillNodes {
			b.WriteString(dim.Render(fmt.Sprintf("  %s — %s  (%s)", n.Name, n.Formula, n.VideoTitle)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}
