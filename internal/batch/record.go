package batch

import (
	"errors"

	"newsgeo/internal/geo"
)

// ErrInvalidRecord marks an input line that could not be decoded or failed validation.
var ErrInvalidRecord = errors.New("invalid record")

// Record is one input line.
type Record struct {
	ID               string `json:"id" validate:"notblank"`
	// Headline may be blank when District already carries the answer.
	Headline         string `json:"headline" validate:"notblank_without=District"`
	Summary          string `json:"summary,omitempty"`
	City             string `json:"city,omitempty"`
	District         string `json:"district,omitempty"`
	OriginalHeadline string `json:"original_headline,omitempty"`
	OriginalSummary  string `json:"original_summary,omitempty"`
	// Region restricts matching to the catalog districts of that region.
	Region string `json:"region,omitempty"`
}

// Story returns the matcher input for the record.
func (r *Record) Story() geo.Story {
	return geo.Story{
		Headline:         r.Headline,
		Summary:          r.Summary,
		City:             r.City,
		District:         r.District,
		OriginalHeadline: r.OriginalHeadline,
		OriginalSummary:  r.OriginalSummary,
	}
}

// Output is one output line. Unresolved records have a null district and no
// confidence, match type or score.
type Output struct {
	ID         string          `json:"id"`
	District   *string         `json:"district"`
	Confidence *geo.Confidence `json:"confidence,omitempty"`
	MatchType  *geo.MatchType  `json:"match_type,omitempty"`
	Score      float64         `json:"score,omitempty"`
	Error      string          `json:"error,omitempty"`
}

func newOutput(id string, res *geo.Result) Output {
	out := Output{ID: id}
	if res == nil {
		return out
	}

	district, confidence, matchType := res.District, res.Confidence, res.MatchType
	out.District = &district
	out.Confidence = &confidence
	out.MatchType = &matchType
	out.Score = res.Score

	return out
}

// Resolved reports whether a district was found.
func (o *Output) Resolved() bool {
	return o.District != nil
}

// Stats summarizes a run. Total is Resolved + Unresolved + Invalid.
type Stats struct {
	Total       int                   `json:"total"`
	Resolved    int                   `json:"resolved"`
	Unresolved  int                   `json:"unresolved"`
	Invalid     int                   `json:"invalid"`
	ByMatchType map[geo.MatchType]int `json:"by_match_type"`
}

func (s *Stats) add(o *Output) {
	s.Total++

	switch {
	case o.Error != "":
		s.Invalid++
	case o.Resolved():
		s.Resolved++

		if s.ByMatchType == nil {
			s.ByMatchType = make(map[geo.MatchType]int)
		}

		s.ByMatchType[*o.MatchType]++
	default:
		s.Unresolved++
	}
}
