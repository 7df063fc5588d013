package quest

// BadgeIcon is the closed set of badge glyphs. The icon is resolved once
// when the badge is created, never at render time.
type BadgeIcon int

const (
	IconDefault BadgeIcon = iota
	IconStar
	IconShield
	IconSword
)

// Glyph returns the display character for the icon.
func (i BadgeIcon) Glyph() string {
	switch i {
	case IconStar:
		return "★"
	case IconShield:
		return "⛨"
	case IconSword:
		return "⚔"
	default:
		return "✦"
	}
}

// Badge is a named achievement earned by completing a specific task.
// Badges are unique by name and append-only.
type Badge struct {
	Name string
	Icon BadgeIcon
}
