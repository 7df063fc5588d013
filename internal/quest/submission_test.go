package quest

import "testing"

// openStandardTask completes task 1 and opens task 2
// (M01_Task_01_Lateness.xlsx, 600s limit).
func openStandardTask(t *testing.T) *Session {
	t.Helper()
	s := NewSession("Alex")
	completeCurrent(t, s)
	if _, ok := s.Select(2); !ok {
		t.Fatal("select task 2 failed")
	}
	return s
}

func TestDownloadStartsTimerOnce(t *testing.T) {
	s := openStandardTask(t)

	notice, ok := s.Download()
	if !ok {
		t.Fatal("first download failed")
	}
	if notice.Description != "Downloading M01_Task_01_Lateness.xlsx..." {
		t.Errorf("notice = %q", notice.Description)
	}
	if !s.Timer.Running || s.Timer.Remaining != 600 {
		t.Fatalf("timer = %+v, want running at 600", s.Timer)
	}

	// Burn some time, then click download again: the timer must not restart.
	for i := 0; i < 100; i++ {
		s.Tick(s.Epoch())
	}
	if _, ok := s.Download(); ok {
		t.Error("repeat download was not a no-op")
	}
	if s.Timer.Remaining != 500 {
		t.Errorf("remaining = %d after repeat download, want 500", s.Timer.Remaining)
	}
}

func TestDownloadOnQuizTaskIsNoop(t *testing.T) {
	s := NewSession("Alex")
	s.Select(1) // quiz task, no download file

	if _, ok := s.Download(); ok {
		t.Error("downloaded on a task without a file")
	}
	if s.Timer.Running {
		t.Error("timer started for an untimed task")
	}
}

func TestUploadSuccessStopsTimer(t *testing.T) {
	s := openStandardTask(t)
	s.Download()
	for i := 0; i < 300; i++ {
		s.Tick(s.Epoch())
	}

	epoch, ok := s.BeginUploadCheck()
	if !ok {
		t.Fatal("upload check did not start")
	}
	if s.Upload != UploadAnalyzing {
		t.Fatalf("upload = %v, want analyzing", s.Upload)
	}

	s.ResolveUpload(epoch, true)

	if s.Upload != UploadSuccess {
		t.Errorf("upload = %v, want success", s.Upload)
	}
	if s.Timer.Running {
		t.Error("timer still running after passing check")
	}
	if s.Timer.Remaining != 300 {
		t.Errorf("remaining frozen at %d, want 300", s.Timer.Remaining)
	}
	if !s.CanComplete() {
		t.Error("claim not enabled after passing check")
	}
}

func TestUploadErrorIsRecoverable(t *testing.T) {
	s := openStandardTask(t)
	s.Download()

	epoch, _ := s.BeginUploadCheck()
	s.ResolveUpload(epoch, false)

	if s.Upload != UploadError {
		t.Fatalf("upload = %v, want error", s.Upload)
	}
	if !s.Timer.Running {
		t.Error("failing check must leave the clock running")
	}
	if s.CanComplete() {
		t.Error("claim enabled after failed check")
	}

	// Retry the upload.
	epoch, ok := s.BeginUploadCheck()
	if !ok {
		t.Fatal("retry upload check did not start")
	}
	s.ResolveUpload(epoch, true)
	if s.Upload != UploadSuccess {
		t.Errorf("upload = %v after retry, want success", s.Upload)
	}
}

func TestUploadRequiresDownload(t *testing.T) {
	s := openStandardTask(t)

	if _, ok := s.BeginUploadCheck(); ok {
		t.Error("upload check started before download")
	}
}

func TestStaleUploadResolveIsDropped(t *testing.T) {
	s := openStandardTask(t)
	s.Download()
	epoch, _ := s.BeginUploadCheck()

	// Close the detail view before the simulated check lands.
	s.Close()
	s.ResolveUpload(epoch, true)

	if s.Upload == UploadSuccess {
		t.Error("stale upload result mutated state for a closed task")
	}
}

func TestStaleTimerTickIsDropped(t *testing.T) {
	s := openStandardTask(t)
	s.Download()
	epoch := s.Epoch()

	s.Close()
	s.Tick(epoch)

	if s.Timer.Remaining != 600 {
		t.Errorf("stale tick moved the clock to %d", s.Timer.Remaining)
	}
}

func TestCloseStopsTimer(t *testing.T) {
	s := openStandardTask(t)
	s.Download()

	s.Close()

	if s.Timer.Running {
		t.Error("timer running after the detail view closed")
	}
}

func TestTimerExpiryAllowsLateSubmission(t *testing.T) {
	s := openStandardTask(t)
	s.Download()
	for i := 0; i < 700; i++ {
		s.Tick(s.Epoch())
	}

	if !s.Timer.Expired() {
		t.Fatalf("timer = %+v, want expired", s.Timer)
	}
	// The clock stays started so the view keeps showing 00:00.
	if !s.Timer.Started || s.Timer.Remaining != 0 {
		t.Errorf("timer = %+v, want started with 0 remaining", s.Timer)
	}

	// Expiry stops the clock but does not lock the task out.
	epoch, ok := s.BeginUploadCheck()
	if !ok {
		t.Fatal("late upload check refused")
	}
	s.ResolveUpload(epoch, true)
	if _, ok := s.Complete(); !ok {
		t.Error("late completion refused")
	}
}
