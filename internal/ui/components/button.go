package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/kaiwen/hrquest/internal/ui/theme"
)

// Button is a single action rendered as a highlighted box. Inactive
// buttons are visible but ignore input.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update fires OnPress on enter while the button is active.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
