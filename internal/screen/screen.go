package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/kaiwen/hrquest/internal/ui/layout"
)

// Screen is one view on the router stack: the quest map, an open task,
// the placement flow, or an overlay.
type Screen interface {
	// Init returns a command to run when the screen enters the stack.
	Init() tea.Cmd

	// Update handles a message and returns the replacement screen plus
	// any follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area between the header and footer.
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints in
// place of the app defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
