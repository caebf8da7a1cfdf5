package geo

import "fmt"

//go:generate go tool stringer -type=MatchType -linecomment -output=matchtype_string.go
//go:generate go tool stringer -type=Confidence -linecomment -output=confidence_string.go

// MatchType describes which phase of the cascade produced a result.
type MatchType int

const (
	_ MatchType = iota // zero value is invalid

	MatchExact // exact
	MatchAlias // alias
	MatchFuzzy // fuzzy
)

// Confidence is the tier attached to a result. Higher values are stronger.
type Confidence int

const (
	_ Confidence = iota // zero value is invalid

	ConfidenceLow    // low
	ConfidenceMedium // medium
	ConfidenceHigh   // high
)

// DistrictCandidate is one entry of the candidate universe supplied by the caller.
type DistrictCandidate struct {
	Name         string `json:"name" yaml:"name" validate:"required"`
	Headquarters string `json:"headquarters,omitempty" yaml:"headquarters,omitempty"`
}

// Story is the text bundle searched for district mentions.
// A non-empty District is treated as ground truth.
type Story struct {
	Headline         string `json:"headline" validate:"required"`
	Summary          string `json:"summary,omitempty"`
	City             string `json:"city,omitempty"`
	District         string `json:"district,omitempty"`
	OriginalHeadline string `json:"original_headline,omitempty"`
	OriginalSummary  string `json:"original_summary,omitempty"`
}

// Result is a resolved district.
type Result struct {
	District   string     `json:"district"`
	Confidence Confidence `json:"confidence"`
	MatchType  MatchType  `json:"match_type"`
	// Score is 1 for exact and alias matches, the similarity for fuzzy ones.
	Score float64 `json:"score"`
}

// String returns a compact human-readable form, e.g. "Mumbai (alias, high)".
func (r Result) String() string {
	if r.MatchType == MatchFuzzy {
		return fmt.Sprintf("%s (%s, %s, %.3f)", r.District, r.MatchType, r.Confidence, r.Score)
	}

	return fmt.Sprintf("%s (%s, %s)", r.District, r.MatchType, r.Confidence)
}

// MarshalText implements encoding.TextMarshaler.
func (m MatchType) MarshalText() ([]byte, error) {
	if m < MatchExact || m > MatchFuzzy {
		return nil, fmt.Errorf("invalid match type %d", int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MatchType) UnmarshalText(text []byte) error {
	for v := MatchExact; v <= MatchFuzzy; v++ {
		if v.String() == string(text) {
			*m = v
			return nil
		}
	}

	return fmt.Errorf("unknown match type %q", text)
}

// MarshalText implements encoding.TextMarshaler.
func (c Confidence) MarshalText() ([]byte, error) {
	if c < ConfidenceLow || c > ConfidenceHigh {
		return nil, fmt.Errorf("invalid confidence %d", int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Confidence) UnmarshalText(text []byte) error {
	for v := ConfidenceLow; v <= ConfidenceHigh; v++ {
		if v.String() == string(text) {
			*c = v
			return nil
		}
	}

	return fmt.Errorf("unknown confidence %q", text)
}
