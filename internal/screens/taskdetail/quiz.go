package taskdetail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaiwen/hrquest/internal/screen"
	"github.com/kaiwen/hrquest/internal/ui/layout"
	"github.com/kaiwen/hrquest/internal/ui/theme"
)

// updateQuiz drives the question-by-question quiz interaction.
func (d *DetailScreen) updateQuiz(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// All questions seen: claim / retry / complete anyway.
	if d.session.AllAnswered() {
		switch key {
		case "enter":
			if d.session.AllCorrect() {
				return d, d.claim()
			}
		case "c":
			if !d.session.AllCorrect() {
				return d, d.claim()
			}
		case "r":
			d.session.RetryQuiz()
			d.quizIdx = 0
			d.mc = newQuestionChoice(d.task.Practices[0])
		}
		return d, nil
	}

	p := d.task.Practices[d.quizIdx]

	// Current question answered: advance on enter/n.
	if d.mc.Submitted {
		if key == "enter" || key == "n" {
			d.nextQuestion()
		}
		return d, nil
	}

	wasSubmitted := d.mc.Submitted
	var cmd tea.Cmd
	d.mc, cmd = d.mc.Update(msg)
	if !wasSubmitted && d.mc.Submitted {
		d.session.Answer(p.ID, d.mc.ChosenIndex)
	}
	return d, cmd
}

// nextQuestion moves to the first unanswered practice, if any.
func (d *DetailScreen) nextQuestion() {
	for i, p := range d.task.Practices {
		if _, ok := d.session.Answered(p.ID); !ok {
			d.quizIdx = i
			d.mc = newQuestionChoice(p)
			return
		}
	}
}

func (d *DetailScreen) quizKeyHints() []layout.KeyHint {
	if d.session.AllAnswered() {
		if d.session.AllCorrect() {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Claim reward"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "r", Description: "Retry quiz"},
			{Key: "c", Description: "Complete anyway"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if d.mc.Submitted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

// renderQuiz writes the quiz area under the mission card.
func (d *DetailScreen) renderQuiz(b *strings.Builder, width int) {
	answered := 0
	for _, p := range d.task.Practices {
		if _, ok := d.session.Answered(p.ID); ok {
			answered++
		}
	}

	header := fmt.Sprintf("  Quiz — %d of %d questions answered", answered, len(d.task.Practices))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
	b.WriteString("\n\n")

	if d.session.AllAnswered() {
		if d.session.AllCorrect() {
			b.WriteString(theme.Correct.PaddingLeft(2).Render("All correct! Claim your reward."))
		} else {
			b.WriteString(theme.Incorrect.PaddingLeft(2).Render("Some answers were off."))
			b.WriteString("\n")
			b.WriteString(theme.Hint.PaddingLeft(2).Render(
				"You saw every explanation — retry for a perfect run, or complete anyway."))
		}
		b.WriteString("\n")
		return
	}

	quiz := lipgloss.NewStyle().Width(width).PaddingLeft(2).Render(d.mc.View())
	b.WriteString(quiz)
	b.WriteString("\n")
}
