package taskdetail

// timerTickMsg advances the countdown once per second. It carries the
// interaction epoch it was scheduled under; the session drops it if the
// task was closed or reopened in the meantime.
type timerTickMsg struct {
	epoch int
}

// uploadResultMsg lands the simulated file check. Epoch-guarded like
// timer ticks.
type uploadResultMsg struct {
	epoch   int
	success bool
}
