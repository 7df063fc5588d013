// Package assessment implements the optional placement flow shown
// before the quest map: a linear intro -> upload -> analyzing -> result
// machine with a skip edge out of the intro. Transitions are forward
// only; there is no way back or to cancel a running analysis.
package assessment

// Stage identifies the current step of the flow.
type Stage int

const (
	StageIntro Stage = iota
	StageUpload
	StageAnalyzing
	StageResult
)

func (s Stage) String() string {
	switch s {
	case StageIntro:
		return "intro"
	case StageUpload:
		return "upload"
	case StageAnalyzing:
		return "analyzing"
	case StageResult:
		return "result"
	default:
		return "unknown"
	}
}

// Player override applied when the result is accepted. The analysis is
// simulated, so the placement is fixed alongside the result payload.
const (
	PlacedLevel = 5
	PlacedXP    = 80
)

// Result is the placement payload shown on the result stage.
type Result struct {
	Level             string
	Title             string
	Strengths         []string
	Weaknesses        []string
	RecommendedModule int
}

// progressStep is how much each analysis tick advances.
const progressStep = 10

// checkpointLines are appended to the analysis log as progress crosses
// each threshold.
var checkpointLines = []struct {
	at   int
	line string
}{
	{30, "Parsing file structure..."},
	{60, "Measuring formula complexity..."},
	{90, "Evaluating data-handling logic..."},
}

// Flow is the placement state machine. The zero value is not usable;
// construct with New.
type Flow struct {
	Stage    Stage
	Progress int
	Log      []string
	Result   *Result
	Skipped  bool
}

func New() *Flow {
	return &Flow{Stage: StageIntro}
}

// Begin moves from the intro to the upload stage.
func (f *Flow) Begin() bool {
	if f.Stage != StageIntro {
		return false
	}
	f.Stage = StageUpload
	return true
}

// Skip leaves the flow from the intro without a placement.
func (f *Flow) Skip() bool {
	if f.Stage != StageIntro {
		return false
	}
	f.Skipped = true
	return true
}

// StartAnalysis moves from upload to analyzing with an empty log.
func (f *Flow) StartAnalysis() bool {
	if f.Stage != StageUpload {
		return false
	}
	f.Stage = StageAnalyzing
	f.Progress = 0
	f.Log = nil
	return true
}

// Advance moves the simulated analysis forward one step, appending
// checkpoint lines as their thresholds are crossed. Returns true when
// progress has reached 100 and the flow is ready to settle into the
// result stage.
func (f *Flow) Advance() (done bool) {
	if f.Stage != StageAnalyzing || f.Progress >= 100 {
		return f.Stage == StageAnalyzing && f.Progress >= 100
	}

	before := f.Progress
	f.Progress += progressStep
	if f.Progress > 100 {
		f.Progress = 100
	}
	for _, cp := range checkpointLines {
		if before < cp.at && f.Progress >= cp.at {
			f.Log = append(f.Log, cp.line)
		}
	}
	return f.Progress >= 100
}

// Finish settles the completed analysis into the result stage. The
// payload is fixed: no real file is inspected, so a deployment backed
// by a real analysis service would replace this method.
func (f *Flow) Finish() bool {
	if f.Stage != StageAnalyzing || f.Progress < 100 {
		return false
	}
	f.Stage = StageResult
	f.Result = &Result{
		Level:             "L2",
		Title:             "Advanced Excel User",
		Strengths:         []string{"VLOOKUP application", "Pivot tables"},
		Weaknesses:        []string{"Array formulas", "Macro automation"},
		RecommendedModule: 2,
	}
	return true
}
