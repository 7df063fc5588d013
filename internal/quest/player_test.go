package quest

import "testing"

func TestAwardXPBelowThreshold(t *testing.T) {
	p := NewPlayer("Alex")

	if up := p.AwardXP(15); up != nil {
		t.Errorf("unexpected level-up: %+v", up)
	}
	if p.XP != 15 || p.Level != 1 || p.MaxXP != 20 {
		t.Errorf("player = xp=%d level=%d maxXp=%d, want 15/1/20", p.XP, p.Level, p.MaxXP)
	}
}

func TestAwardXPSingleIncrementForLargeAward(t *testing.T) {
	p := NewPlayer("Alex")

	// 200 XP clears the level-2 threshold (20) and the raised level-3
	// threshold (30) many times over, but only one increment applies.
	up := p.AwardXP(200)

	if up == nil {
		t.Fatal("expected a level-up")
	}
	if up.From != 1 || up.To != 2 {
		t.Errorf("level-up %d -> %d, want 1 -> 2", up.From, up.To)
	}
	if p.Level != 2 {
		t.Errorf("level = %d, want 2", p.Level)
	}
	if p.MaxXP != 30 {
		t.Errorf("maxXp = %d, want 30", p.MaxXP)
	}
}

func TestAwardXPThresholdGrowth(t *testing.T) {
	p := NewPlayer("Alex")

	// Thresholds grow floor(*1.5): 20, 30, 45, 67, ...
	want := []int{30, 45, 67, 100}
	for _, w := range want {
		if up := p.AwardXP(p.MaxXP); up == nil {
			t.Fatal("expected a level-up")
		}
		if p.MaxXP != w {
			t.Errorf("maxXp = %d, want %d", p.MaxXP, w)
		}
	}
}

func TestTitleChangesOnlyAtMilestones(t *testing.T) {
	p := NewPlayer("Alex")
	if p.Title != "Rookie Intern" {
		t.Fatalf("starting title = %q", p.Title)
	}

	titles := map[int]string{
		2: "Excel Beginner",
		3: "Function Explorer",
		4: "Function Explorer", // no milestone, keeps previous
		5: "Data Analyst",
		6: "Data Analyst",
	}
	for p.Level < 6 {
		p.AwardXP(p.MaxXP)
		if want := titles[p.Level]; p.Title != want {
			t.Errorf("level %d title = %q, want %q", p.Level, p.Title, want)
		}
	}
}

func TestGrantBadgeDedupsByName(t *testing.T) {
	p := NewPlayer("Alex")

	if !p.GrantBadge("Org Architect", IconShield) {
		t.Fatal("first grant refused")
	}
	if p.GrantBadge("Org Architect", IconStar) {
		t.Error("duplicate name granted")
	}
	if p.GrantBadge("", IconDefault) {
		t.Error("empty badge granted")
	}
	if len(p.Badges) != 1 {
		t.Fatalf("badges = %d, want 1", len(p.Badges))
	}
	if p.Badges[0].Icon != IconShield {
		t.Errorf("icon = %v, want the original shield", p.Badges[0].Icon)
	}
}

func TestXPProgress(t *testing.T) {
	p := NewPlayer("Alex")
	p.XP = 15

	if got := p.XPToNext(); got != 5 {
		t.Errorf("XPToNext = %d, want 5", got)
	}
	if got := p.XPPercent(); got != 0.75 {
		t.Errorf("XPPercent = %v, want 0.75", got)
	}

	p.XP = 25
	if got := p.XPToNext(); got != 0 {
		t.Errorf("XPToNext past threshold = %d, want 0", got)
	}
	if got := p.XPPercent(); got != 1 {
		t.Errorf("XPPercent past threshold = %v, want capped at 1", got)
	}
}
