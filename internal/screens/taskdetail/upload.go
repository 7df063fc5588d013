package taskdetail

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaiwen/hrquest/internal/notify"
	"github.com/kaiwen/hrquest/internal/quest"
	"github.com/kaiwen/hrquest/internal/screen"
	"github.com/kaiwen/hrquest/internal/ui/components"
	"github.com/kaiwen/hrquest/internal/ui/layout"
	"github.com/kaiwen/hrquest/internal/ui/theme"
)

// updateSubmission drives the download -> timed work -> upload check
// interaction of a standard task.
func (d *DetailScreen) updateSubmission(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "d":
		notice, ok := d.session.Download()
		if !ok {
			return d, nil
		}
		cmds := []tea.Cmd{func() tea.Msg { return notify.Msg{Notice: notice} }}
		if d.session.Timer.Running {
			cmds = append(cmds, tickCmd(d.session.Epoch()))
		}
		return d, tea.Batch(cmds...)

	case "s", "x":
		// Demo outcome buttons: the check itself is simulated, the user
		// picks whether it passes.
		if d.session.Upload == quest.UploadAnalyzing {
			return d, nil
		}
		epoch, ok := d.session.BeginUploadCheck()
		if !ok {
			return d, nil
		}
		success := msg.String() == "s"
		return d, tea.Batch(
			d.spinner.Tick,
			tea.Tick(uploadCheckDelay, func(time.Time) tea.Msg {
				return uploadResultMsg{epoch: epoch, success: success}
			}),
		)

	case "enter":
		if d.session.CanComplete() {
			return d, d.claim()
		}
	}
	return d, nil
}

func (d *DetailScreen) submissionKeyHints() []layout.KeyHint {
	switch {
	case !d.session.HasDownloaded:
		return []layout.KeyHint{
			{Key: "d", Description: "Download file"},
			{Key: "Esc", Description: "Back"},
		}
	case d.session.Upload == quest.UploadSuccess:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Claim reward"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "s", Description: "Upload (pass)"},
			{Key: "x", Description: "Upload (fail)"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// renderSubmission writes the two-step panel under the mission card.
func (d *DetailScreen) renderSubmission(b *strings.Builder, width int) {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	stepStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	b.WriteString(stepStyle.Render("  Step 1 — Practice file"))
	b.WriteString("\n")
	if d.session.HasDownloaded {
		b.WriteString(theme.Correct.PaddingLeft(2).Render("✓ " + d.task.DownloadFile))
		if d.session.Timer.Running {
			b.WriteString(dim.Render("  (clock is running)"))
		}
	} else {
		b.WriteString(dim.Render("  " + d.task.DownloadFile + " — press d to download"))
	}
	b.WriteString("\n\n")

	b.WriteString(stepStyle.Render("  Step 2 — Submit your work"))
	b.WriteString("\n")

	switch {
	case !d.session.HasDownloaded:
		b.WriteString(theme.Hint.PaddingLeft(2).Render("Locked until you download the practice file."))
		b.WriteString("\n")

	case d.session.Upload == quest.UploadAnalyzing:
		b.WriteString("  " + d.spinner.View() + " " +
			lipgloss.NewStyle().Foreground(theme.Text).Render("Checking your work..."))
		b.WriteString("\n")

	case d.session.Upload == quest.UploadSuccess:
		b.WriteString(theme.Correct.PaddingLeft(2).Render("Check passed! Nicely done."))
		b.WriteString("\n\n")
		b.WriteString("  " + components.NewButton("Claim Reward", true, nil).View())
		b.WriteString("\n")

	case d.session.Upload == quest.UploadError:
		banner := lipgloss.NewStyle().
			Foreground(theme.Error).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Error).
			Padding(0, 1).
			Render("The file didn't pass the check. Fix it and upload again.")
		b.WriteString("  " + banner)
		b.WriteString("\n")

	default:
		b.WriteString(dim.Render("  Upload when ready: s simulates a passing check, x a failing one."))
		b.WriteString("\n")
	}
}
