package quest

import "testing"

func TestCatalogIDsAreContiguous(t *testing.T) {
	tasks := Catalog()

	if len(tasks) != 23 {
		t.Fatalf("catalog size = %d, want 23", len(tasks))
	}
	for i, task := range tasks {
		if task.ID != i+1 {
			t.Errorf("task at index %d has id %d, want %d", i, task.ID, i+1)
		}
	}
}

func TestCatalogModuleOrder(t *testing.T) {
	want := []string{ModuleAttendance, ModulePeopleOrg, ModulePerformance, ModuleRelations}

	got := Modules(Catalog())
	if len(got) != len(want) {
		t.Fatalf("modules = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("module %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestQuizTasksAreWellFormed(t *testing.T) {
	quizzes := 0
	for _, task := range Catalog() {
		if !task.IsQuiz() {
			if len(task.Practices) != 0 {
				t.Errorf("task %d is standard but carries practices", task.ID)
			}
			continue
		}
		quizzes++
		if len(task.Practices) == 0 {
			t.Errorf("quiz task %d has no practices", task.ID)
		}
		for _, p := range task.Practices {
			if p.ID == "" || p.Question == "" {
				t.Errorf("task %d practice %q missing text", task.ID, p.ID)
			}
			if len(p.Options) < 2 {
				t.Errorf("task %d practice %q has %d options", task.ID, p.ID, len(p.Options))
			}
			if p.Answer < 0 || p.Answer >= len(p.Options) {
				t.Errorf("task %d practice %q answer %d out of range", task.ID, p.ID, p.Answer)
			}
			if p.Explanation == "" {
				t.Errorf("task %d practice %q has no explanation", task.ID, p.ID)
			}
		}
	}
	if quizzes != 4 {
		t.Errorf("quiz tasks = %d, want one per module", quizzes)
	}
}

func TestStandardTasksCarryFiles(t *testing.T) {
	for _, task := range Catalog() {
		if task.IsQuiz() {
			continue
		}
		if task.DownloadFile == "" {
			t.Errorf("task %d has no practice file", task.ID)
		}
		if task.TimeLimit <= 0 {
			t.Errorf("task %d has no time limit", task.ID)
		}
	}
}

func TestBossTasksUseSwordIcon(t *testing.T) {
	bosses := map[int]bool{6: true, 12: true, 18: true}
	for _, task := range Catalog() {
		if task.Boss != bosses[task.ID] {
			t.Errorf("task %d boss = %v, want %v", task.ID, task.Boss, bosses[task.ID])
		}
		if task.Boss && task.BadgeIcon != IconSword {
			t.Errorf("boss task %d icon = %v, want sword", task.ID, task.BadgeIcon)
		}
	}
}

func TestTasksBeforeModule(t *testing.T) {
	tasks := Catalog()

	tests := []struct {
		module int
		want   int
	}{
		{1, 0},
		{2, 6},
		{3, 12},
		{4, 18},
		{5, 23}, // past the last module
		{0, 0},
	}
	for _, tt := range tests {
		if got := TasksBeforeModule(tasks, tt.module); got != tt.want {
			t.Errorf("TasksBeforeModule(%d) = %d, want %d", tt.module, got, tt.want)
		}
	}
}
