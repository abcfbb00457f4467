package drivetext

// MatchRule identifies a candidate viewer frame element.
type MatchRule struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
}

// DefaultMatchRules returns the viewer frame rules, most specific first,
// ending with a catch-all that matches any frame.
func DefaultMatchRules() []MatchRule {
	return []MatchRule{
		{Name: "drive-export", Selector: "iframe[src*='drive.google.com/uc?export']"},
		{Name: "drive-viewer", Selector: "iframe[src*='drive.google.com/viewer']"},
		{Name: "viewer", Selector: "iframe[src*='/viewer']"},
		{Name: "pdf", Selector: "iframe[src*='pdf']"},
		{Name: "any-frame", Selector: "iframe"},
	}
}

// FrameStatus records how far the viewer frame search got.
type FrameStatus string

// FrameStatus constants.
const (
	FrameNotSearched FrameStatus = "not searched"
	FrameFound       FrameStatus = "found"
	FrameNotFound    FrameStatus = "not found"
)

// FrameResult is the outcome of a viewer frame search.
type FrameResult struct {
	Status FrameStatus

	// Element and Rule are set only when Status is FrameFound.
	Element Element
	Rule    MatchRule
}
