package geo

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Thresholds and defaults for the fuzzy phase.
const (
	// DefaultFuzzyThreshold is the minimum similarity a fuzzy match must reach.
	DefaultFuzzyThreshold = 0.85
	// DefaultMediumThreshold is the similarity from which a fuzzy match is medium confidence.
	DefaultMediumThreshold = 0.95
	// DefaultMinTokenLength is the shortest token (in runes) used for fuzzy matching.
	DefaultMinTokenLength = 4
	// DefaultPatternCacheSize is the number of compiled word patterns kept.
	DefaultPatternCacheSize = 4096

	// scoreEpsilon absorbs float rounding so that e.g. 1-3/20 counts as 0.85.
	scoreEpsilon = 1e-9
)

// Matcher resolves stories to districts. It holds no per-call state and is safe
// for concurrent use.
type Matcher struct {
	aliases         *AliasTable
	fuzzyThreshold  float64
	mediumThreshold float64
	minTokenLength  int
	perfectExit     bool
	cacheSize       int64
	patterns        *patternCache
	log             zerolog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithAliases replaces the built-in alias table.
func WithAliases(t *AliasTable) Option {
	return func(m *Matcher) { m.aliases = t }
}

// WithFuzzyThreshold sets the minimum similarity for a fuzzy match.
func WithFuzzyThreshold(v float64) Option {
	return func(m *Matcher) { m.fuzzyThreshold = v }
}

// WithMediumThreshold sets the similarity from which fuzzy matches are medium confidence.
func WithMediumThreshold(v float64) Option {
	return func(m *Matcher) { m.mediumThreshold = v }
}

// WithMinTokenLength sets the shortest token considered by the fuzzy phase.
func WithMinTokenLength(n int) Option {
	return func(m *Matcher) { m.minTokenLength = n }
}

// WithPerfectMatchExit stops the fuzzy scan at the first similarity of 1.0.
// Ties keep the first candidate seen, so the result equals a full scan.
func WithPerfectMatchExit(enabled bool) Option {
	return func(m *Matcher) { m.perfectExit = enabled }
}

// WithPatternCacheSize bounds the compiled pattern cache. Zero disables it.
func WithPatternCacheSize(n int64) Option {
	return func(m *Matcher) { m.cacheSize = n }
}

// WithLogger sets the logger used for per-phase debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Matcher) { m.log = l }
}

// NewMatcher creates a Matcher using the built-in alias table unless overridden.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		fuzzyThreshold:  DefaultFuzzyThreshold,
		mediumThreshold: DefaultMediumThreshold,
		minTokenLength:  DefaultMinTokenLength,
		cacheSize:       DefaultPatternCacheSize,
		log:             zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.aliases == nil {
		m.aliases = DefaultAliases()
	}

	patterns, err := newPatternCache(m.cacheSize)
	if err != nil {
		m.log.Warn().Err(err).Msg("pattern cache disabled")
	}

	m.patterns = patterns

	return m
}

// Close releases the pattern cache. It must not run concurrently with Infer;
// the matcher keeps working afterwards, compiling patterns on demand.
func (m *Matcher) Close() {
	m.patterns.close()
	m.patterns = nil
}

// Aliases returns the alias table in use.
func (m *Matcher) Aliases() *AliasTable {
	return m.aliases
}

// Infer resolves story against districts, returning nil when nothing matches.
// A non-blank story.District is returned as is. Neither argument is modified.
func (m *Matcher) Infer(story Story, districts []DistrictCandidate) *Result {
	if strings.TrimSpace(story.District) != "" {
		return &Result{District: story.District, Confidence: ConfidenceHigh, MatchType: MatchExact, Score: 1}
	}

	if len(districts) == 0 {
		return nil
	}

	haystack := Haystack(story)
	if haystack == "" {
		return nil
	}

	ordered := byNameLength(districts)

	if r := m.matchExact(haystack, ordered); r != nil {
		return r
	}

	if r := m.matchAlias(haystack, ordered); r != nil {
		return r
	}

	return m.matchFuzzy(haystack, ordered)
}

// InferName is Infer reduced to the district name.
func (m *Matcher) InferName(story Story, districts []DistrictCandidate) (string, bool) {
	r := m.Infer(story, districts)
	if r == nil {
		return "", false
	}

	return r.District, true
}

// candidate is a DistrictCandidate with its normalized names precomputed.
type candidate struct {
	DistrictCandidate

	name string
	hq   string
}

// byNameLength returns normalized copies of districts ordered by name length,
// longest first. Equal lengths keep their input order. Nameless entries are dropped.
func byNameLength(districts []DistrictCandidate) []candidate {
	out := make([]candidate, 0, len(districts))
	for _, d := range districts {
		name := Normalize(d.Name)
		if name == "" {
			continue
		}

		out = append(out, candidate{DistrictCandidate: d, name: name, hq: Normalize(d.Headquarters)})
	}

	slices.SortStableFunc(out, func(a, b candidate) int {
		return utf8.RuneCountInString(b.name) - utf8.RuneCountInString(a.name)
	})

	return out
}

func (m *Matcher) matchExact(haystack string, ordered []candidate) *Result {
	for _, c := range ordered {
		if m.patterns.wholeWord(c.name).MatchString(haystack) {
			m.log.Debug().Str("district", c.Name).Msg("exact name match")
			return &Result{District: c.Name, Confidence: ConfidenceHigh, MatchType: MatchExact, Score: 1}
		}
	}

	for _, c := range ordered {
		if c.hq != "" && m.patterns.wholeWord(c.hq).MatchString(haystack) {
			m.log.Debug().Str("district", c.Name).Str("headquarters", c.Headquarters).Msg("exact headquarters match")
			return &Result{District: c.Name, Confidence: ConfidenceHigh, MatchType: MatchExact, Score: 1}
		}
	}

	return nil
}

func (m *Matcher) matchAlias(haystack string, ordered []candidate) *Result {
	for _, c := range ordered {
		for _, alias := range m.aliases.Names(c.Name) {
			key := Normalize(alias)
			if key == "" {
				continue
			}

			if m.patterns.wholeWord(key).MatchString(haystack) {
				m.log.Debug().Str("district", c.Name).Str("alias", alias).Msg("alias match")
				return &Result{District: c.Name, Confidence: ConfidenceHigh, MatchType: MatchAlias, Score: 1}
			}
		}
	}

	return nil
}

func (m *Matcher) matchFuzzy(haystack string, ordered []candidate) *Result {
	tokens := Tokens(haystack, m.minTokenLength)
	if len(tokens) == 0 {
		return nil
	}

	var (
		best      *candidate
		bestScore float64
	)

	consider := func(c *candidate, score float64) bool {
		if score+scoreEpsilon < m.fuzzyThreshold || (best != nil && score <= bestScore) {
			return false
		}

		best, bestScore = c, score

		return m.perfectExit && score+scoreEpsilon >= 1
	}

scan:
	for i := range ordered {
		c := &ordered[i]
		for _, tok := range tokens {
			if consider(c, Similarity(tok, c.name)) {
				break scan
			}

			if c.hq != "" && consider(c, Similarity(tok, c.hq)) {
				break scan
			}
		}
	}

	if best == nil {
		m.log.Debug().Int("tokens", len(tokens)).Msg("no fuzzy match")
		return nil
	}

	confidence := ConfidenceLow
	if bestScore+scoreEpsilon >= m.mediumThreshold {
		confidence = ConfidenceMedium
	}

	m.log.Debug().Str("district", best.Name).Float64("score", bestScore).Msg("fuzzy match")

	return &Result{District: best.Name, Confidence: confidence, MatchType: MatchFuzzy, Score: bestScore}
}

var defaultMatcher = sync.OnceValue(func() *Matcher { return NewMatcher() })

// InferDistrict resolves story with a shared Matcher built from the defaults.
func InferDistrict(story Story, districts []DistrictCandidate) *Result {
	return defaultMatcher().Infer(story, districts)
}

// InferDistrictName is InferDistrict reduced to the district name.
func InferDistrictName(story Story, districts []DistrictCandidate) (string, bool) {
	return defaultMatcher().InferName(story, districts)
}
