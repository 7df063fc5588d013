package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowHappyPath(t *testing.T) {
	f := New()
	assert.Equal(t, StageIntro, f.Stage)

	require.True(t, f.Begin())
	assert.Equal(t, StageUpload, f.Stage)

	require.True(t, f.StartAnalysis())
	assert.Equal(t, StageAnalyzing, f.Stage)
	assert.Zero(t, f.Progress)
	assert.Empty(t, f.Log)

	steps := 0
	for !f.Advance() {
		steps++
		require.Less(t, steps, 100, "analysis never completed")
	}
	assert.Equal(t, 100, f.Progress)

	require.True(t, f.Finish())
	assert.Equal(t, StageResult, f.Stage)
	require.NotNil(t, f.Result)
	assert.Equal(t, "L2", f.Result.Level)
	assert.Equal(t, "Advanced Excel User", f.Result.Title)
	assert.Equal(t, []string{"VLOOKUP application", "Pivot tables"}, f.Result.Strengths)
	assert.Equal(t, []string{"Array formulas", "Macro automation"}, f.Result.Weaknesses)
	assert.Equal(t, 2, f.Result.RecommendedModule)
}

func TestAnalysisLogCheckpoints(t *testing.T) {
	f := New()
	require.True(t, f.Begin())
	require.True(t, f.StartAnalysis())

	wantByProgress := map[int]int{
		20:  0,
		30:  1,
		50:  1,
		60:  2,
		80:  2,
		90:  3,
		100: 3,
	}
	for !f.Advance() {
	}
	assert.Equal(t, []string{
		"Parsing file structure...",
		"Measuring formula complexity...",
		"Evaluating data-handling logic...",
	}, f.Log)

	// Replay step by step to check when each line appears.
	f2 := New()
	require.True(t, f2.Begin())
	require.True(t, f2.StartAnalysis())
	for f2.Progress < 100 {
		f2.Advance()
		if want, ok := wantByProgress[f2.Progress]; ok {
			assert.Len(t, f2.Log, want, "log length at progress %d", f2.Progress)
		}
	}
}

func TestSkipLeavesFromIntroOnly(t *testing.T) {
	f := New()
	require.True(t, f.Skip())
	assert.True(t, f.Skipped)

	f2 := New()
	require.True(t, f2.Begin())
	assert.False(t, f2.Skip(), "skip must not be available past the intro")
	assert.False(t, f2.Skipped)
}

func TestTransitionsAreForwardOnly(t *testing.T) {
	f := New()

	assert.False(t, f.StartAnalysis(), "cannot analyze from intro")
	assert.False(t, f.Finish(), "cannot finish from intro")
	assert.False(t, f.Advance(), "advance outside analyzing is a no-op")

	require.True(t, f.Begin())
	assert.False(t, f.Begin(), "begin is not repeatable")
	assert.False(t, f.Finish(), "cannot finish from upload")

	require.True(t, f.StartAnalysis())
	assert.False(t, f.Finish(), "cannot finish before 100%")

	for !f.Advance() {
	}
	require.True(t, f.Finish())
	assert.False(t, f.StartAnalysis(), "no new run once the result is shown")
	assert.False(t, f.Begin())
}

func TestAdvanceStopsAtHundred(t *testing.T) {
	f := New()
	require.True(t, f.Begin())
	require.True(t, f.StartAnalysis())

	for i := 0; i < 50; i++ {
		f.Advance()
	}
	assert.Equal(t, 100, f.Progress)
	assert.Len(t, f.Log, 3, "checkpoint lines must not repeat")
}
