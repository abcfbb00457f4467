package drivetext

// Stage names a step of an extraction run for progress reporting.
type Stage string

// Stage constants, in run order.
const (
	StageLaunching  Stage = "launching browser"
	StageLoading    Stage = "opening document"
	StageSearching  Stage = "searching for viewer frame"
	StageScrolling  Stage = "scrolling"
	StageExtracting Stage = "extracting text"
	StageDone       Stage = "finalizing"
)

// Progress reports how far an extraction run has advanced.
// Completed and Total are only meaningful during StageScrolling.
type Progress struct {
	Stage     Stage
	Completed int
	Total     int
}

// ProgressFunc is called as an extraction run advances.
type ProgressFunc func(Progress)
