package quest

// Starting values for a fresh player.
const (
	StartLevel = 1
	StartMaxXP = 20
	StartTitle = "Rookie Intern"
)

// titleForLevel maps level thresholds to display titles. Levels without
// an entry keep the player's previous title.
var titleForLevel = map[int]string{
	2: "Excel Beginner",
	3: "Function Explorer",
	5: "Data Analyst",
}

// PlayerState aggregates level, XP, title, and earned badges.
type PlayerState struct {
	Name   string
	Level  int
	Title  string
	XP     int
	MaxXP  int
	Badges []Badge
}

// NewPlayer creates a level-1 player with no badges.
func NewPlayer(name string) PlayerState {
	return PlayerState{
		Name:  name,
		Level: StartLevel,
		Title: StartTitle,
		MaxXP: StartMaxXP,
	}
}

// LevelUp describes a level transition for overlay display.
type LevelUp struct {
	From  int
	To    int
	Title string
}

// AwardXP adds xp and applies at most one level increment, regardless of
// how far the new total exceeds MaxXP. The engine deliberately does not
// loop to consume leftover XP against the raised threshold; large awards
// therefore under-level (see DESIGN.md).
func (p *PlayerState) AwardXP(xp int) *LevelUp {
	p.XP += xp
	if p.XP < p.MaxXP {
		return nil
	}

	up := &LevelUp{From: p.Level, To: p.Level + 1}
	p.Level++
	p.MaxXP = p.MaxXP * 3 / 2
	if t, ok := titleForLevel[p.Level]; ok {
		p.Title = t
	}
	up.Title = p.Title
	return up
}

// GrantBadge appends the badge unless one with the same name is already
// held. Returns true if the badge was added.
func (p *PlayerState) GrantBadge(name string, icon BadgeIcon) bool {
	if name == "" {
		return false
	}
	for _, b := range p.Badges {
		if b.Name == name {
			return false
		}
	}
	p.Badges = append(p.Badges, Badge{Name: name, Icon: icon})
	return true
}

// XPToNext returns the XP still needed to reach the next level, floored
// at zero for display.
func (p PlayerState) XPToNext() int {
	if d := p.MaxXP - p.XP; d > 0 {
		return d
	}
	return 0
}

// XPPercent returns XP progress toward the next level as 0.0-1.0, capped.
func (p PlayerState) XPPercent() float64 {
	if p.MaxXP <= 0 {
		return 0
	}
	pct := float64(p.XP) / float64(p.MaxXP)
	if pct > 1 {
		return 1
	}
	return pct
}
