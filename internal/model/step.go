package model

// Step records one fix step of a trace.
type Step struct {
	Index      int64 `yaml:"step"`
	Before     int64 `yaml:"before"`
	AfterFix   int64 `yaml:"after_fix"`
	AfterIntro int64 `yaml:"after_introduce"`
}

// Trend describes how the pending count evolves with more iterations.
type Trend int

const (
	// Constant means fixes and introductions cancel out.
	Constant Trend = iota
	// Increasing means every step adds bugs.
	Increasing
	// Decreasing means every step removes bugs.
	Decreasing
)

func (t Trend) String() string {
	switch t {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	case Constant:
		return "constant"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the trend by name.
func (t Trend) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}
