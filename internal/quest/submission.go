package quest

import (
	"fmt"

	"github.com/kaiwen/hrquest/internal/notify"
)

// UploadStatus tracks the simulated submission check for the open task.
type UploadStatus int

const (
	UploadIdle UploadStatus = iota
	UploadAnalyzing
	UploadSuccess
	UploadError
)

// Download marks the practice file as downloaded and, on the first
// download of a timed task, starts the countdown. Repeat clicks within
// the same task-open are no-ops: the timer never restarts.
func (s *Session) Download() (notify.Notice, bool) {
	t := s.Open()
	if t == nil || t.DownloadFile == "" || s.HasDownloaded {
		return notify.Notice{}, false
	}

	s.HasDownloaded = true
	s.Timer.Start(t.TimeLimit)

	return notify.Info(
		"Download started",
		fmt.Sprintf("Downloading %s...", t.DownloadFile),
	), true
}

// BeginUploadCheck starts the simulated file check. The outcome arrives
// later via ResolveUpload; the returned epoch must be carried by that
// delayed callback. Requires a downloaded file.
func (s *Session) BeginUploadCheck() (epoch int, ok bool) {
	t := s.Open()
	if t == nil || t.IsQuiz() || !s.HasDownloaded {
		return 0, false
	}
	s.Upload = UploadAnalyzing
	return s.epoch, true
}

// ResolveUpload lands the simulated check result. Stale callbacks (the
// task was closed or reopened since the check started) are dropped. A
// passing check stops the countdown; a failing one leaves it running.
func (s *Session) ResolveUpload(epoch int, success bool) {
	if epoch != s.epoch || s.Upload != UploadAnalyzing {
		return
	}
	if success {
		s.Upload = UploadSuccess
		s.Timer.Stop()
	} else {
		s.Upload = UploadError
	}
}
