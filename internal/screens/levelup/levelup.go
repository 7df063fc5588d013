// Package levelup shows the celebration overlay after a level-up.
package levelup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaiwen/hrquest/internal/quest"
	"github.com/kaiwen/hrquest/internal/router"
	"github.com/kaiwen/hrquest/internal/screen"
	"github.com/kaiwen/hrquest/internal/ui/layout"
	"github.com/kaiwen/hrquest/internal/ui/theme"
)

// LevelUpScreen is a transient overlay; any key dismisses it.
type LevelUpScreen struct {
	up quest.LevelUp
}

var _ screen.Screen = (*LevelUpScreen)(nil)
var _ screen.KeyHintProvider = (*LevelUpScreen)(nil)

func New(up quest.LevelUp) *LevelUpScreen {
	return &LevelUpScreen{up: up}
}

func (l *LevelUpScreen) Init() tea.Cmd { return nil }
func (l *LevelUpScreen) Title() string { return "Level Up" }

func (l *LevelUpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
	}
}

func (l *LevelUpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return l, nil
}

func (l *LevelUpScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render("★  LEVEL UP!  ★"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Level %d  →  Level %d", l.up.From, l.up.To)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(fmt.Sprintf("You are now a %s", l.up.Title)))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
