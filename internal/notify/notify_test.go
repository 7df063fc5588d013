package notify

import (
	"testing"
	"time"
)

func TestConstructorLevels(t *testing.T) {
	tests := []struct {
		name string
		got  Notice
		want Level
	}{
		{"info", Info("t", "d"), LevelInfo},
		{"success", Success("t", "d"), LevelSuccess},
		{"warning", Warning("t", "d"), LevelWarning},
		{"error", Error("t", "d"), LevelError},
	}

	for _, tt := range tests {
		if tt.got.Level != tt.want {
			t.Errorf("%s: Level = %v, want %v", tt.name, tt.got.Level, tt.want)
		}
		if tt.got.Title != "t" || tt.got.Description != "d" {
			t.Errorf("%s: notice = %+v, want title 't' description 'd'", tt.name, tt.got)
		}
	}
}

func TestTTLScalesWithSeverity(t *testing.T) {
	tests := []struct {
		level Level
		want  time.Duration
	}{
		{LevelInfo, 4 * time.Second},
		{LevelSuccess, 4 * time.Second},
		{LevelWarning, 8 * time.Second},
		{LevelError, 12 * time.Second},
	}

	for _, tt := range tests {
		if got := tt.level.TTL(); got != tt.want {
			t.Errorf("TTL(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
