package geo

import (
	"bytes"
	"slices"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func karnataka() []DistrictCandidate {
	return []DistrictCandidate{
		{Name: "Mysuru", Headquarters: "Mysuru"},
		{Name: "Bengaluru"},
		{Name: "Bengaluru Rural", Headquarters: "Doddaballapura"},
		{Name: "Dakshina Kannada", Headquarters: "Mangaluru"},
		{Name: "Udupi"},
	}
}

func TestMatcher_Infer(t *testing.T) {
	tests := []struct {
		name       string
		story      Story
		districts  []DistrictCandidate
		expected   string
		confidence Confidence
		matchType  MatchType
	}{
		{
			name:       "ground truth with no candidates",
			story:      Story{Headline: "Anything at all", District: "Mysuru"},
			districts:  nil,
			expected:   "Mysuru",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "ground truth beats text",
			story:      Story{Headline: "Udupi fishermen protest", District: "Mysuru"},
			districts:  karnataka(),
			expected:   "Mysuru",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "ground truth returned verbatim",
			story:      Story{Headline: "Udupi fishermen protest", District: " Mysuru "},
			districts:  karnataka(),
			expected:   " Mysuru ",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "longer name first",
			story:      Story{Headline: "Bengaluru Rural district reports flooding"},
			districts:  []DistrictCandidate{{Name: "Bengaluru"}, {Name: "Bengaluru Rural"}},
			expected:   "Bengaluru Rural",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "longer normalized name first",
			story:      Story{Headline: "Tourism picks up in North Goa"},
			districts:  []DistrictCandidate{{Name: "Goa          "}, {Name: "North  Goa"}},
			expected:   "North  Goa",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "case insensitive",
			story:      Story{Headline: "UDUPI temple festival"},
			districts:  karnataka(),
			expected:   "Udupi",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "headquarters returns district name",
			story:      Story{Headline: "Painavu gets a new bus stand"},
			districts:  []DistrictCandidate{{Name: "Idukki", Headquarters: "Painavu"}, {Name: "Kottayam"}},
			expected:   "Idukki",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "names are tried before headquarters",
			story:      Story{Headline: "Kollam boat race"},
			districts:  []DistrictCandidate{{Name: "Pathanamthitta", Headquarters: "Kollam"}, {Name: "Kollam"}},
			expected:   "Kollam",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "equal lengths keep input order",
			story:      Story{Headline: "Kannur and Kollam share rainfall alerts"},
			districts:  []DistrictCandidate{{Name: "Kollam"}, {Name: "Kannur"}},
			expected:   "Kollam",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "summary and city are searched",
			story:      Story{Headline: "Heavy rain", Summary: "Schools shut", City: "Udupi"},
			districts:  karnataka(),
			expected:   "Udupi",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "original headline is searched",
			story:      Story{Headline: "ಮಳೆ", OriginalHeadline: "Rain lashes Mysuru"},
			districts:  karnataka(),
			expected:   "Mysuru",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "alias",
			story:      Story{Headline: "Bombay police report a fire"},
			districts:  []DistrictCandidate{{Name: "Mumbai"}},
			expected:   "Mumbai",
			confidence: ConfidenceHigh,
			matchType:  MatchAlias,
		},
		{
			name:       "alias of the candidate's canonical",
			story:      Story{Headline: "Mangalore port handles record cargo"},
			districts:  karnataka(),
			expected:   "Dakshina Kannada",
			confidence: ConfidenceHigh,
			matchType:  MatchAlias,
		},
		{
			name:       "candidate named by alias matches canonical",
			story:      Story{Headline: "Bengaluru Urban civic polls"},
			districts:  []DistrictCandidate{{Name: "Bangalore"}},
			expected:   "Bangalore",
			confidence: ConfidenceHigh,
			matchType:  MatchAlias,
		},
		{
			name:       "exact beats fuzzy",
			story:      Story{Headline: "Kozhikod traders meet Thrissur officials"},
			districts:  []DistrictCandidate{{Name: "Kozhikode"}, {Name: "Thrissur"}},
			expected:   "Thrissur",
			confidence: ConfidenceHigh,
			matchType:  MatchExact,
		},
		{
			name:       "alias beats fuzzy",
			story:      Story{Headline: "Kozhikod traders meet Trivandrum officials"},
			districts:  []DistrictCandidate{{Name: "Kozhikode"}, {Name: "Thiruvananthapuram"}},
			expected:   "Thiruvananthapuram",
			confidence: ConfidenceHigh,
			matchType:  MatchAlias,
		},
		{
			name:       "fuzzy low",
			story:      Story{Headline: "Kozhikod beach cleanup drive"},
			districts:  []DistrictCandidate{{Name: "Kozhikode"}, {Name: "Kannur"}},
			expected:   "Kozhikode",
			confidence: ConfidenceLow,
			matchType:  MatchFuzzy,
		},
		{
			name:       "fuzzy on headquarters",
			story:      Story{Headline: "Painvu landslide"},
			districts:  []DistrictCandidate{{Name: "Idukki", Headquarters: "Painavu"}},
			expected:   "Idukki",
			confidence: ConfidenceLow,
			matchType:  MatchFuzzy,
		},
		{
			name:       "fuzzy accepts exactly 0.85",
			story:      Story{Headline: "news from abcdefghijklmnopqxyz today"},
			districts:  []DistrictCandidate{{Name: "Abcdefghijklmnopqrst"}},
			expected:   "Abcdefghijklmnopqrst",
			confidence: ConfidenceLow,
			matchType:  MatchFuzzy,
		},
		{
			name:       "fuzzy medium at exactly 0.95",
			story:      Story{Headline: "news from abcdefghijklmnopqrsz today"},
			districts:  []DistrictCandidate{{Name: "Abcdefghijklmnopqrst"}},
			expected:   "Abcdefghijklmnopqrst",
			confidence: ConfidenceMedium,
			matchType:  MatchFuzzy,
		},
		{
			name:       "fuzzy low just under 0.95",
			story:      Story{Headline: "news from abcdefghijklmnopqryz today"},
			districts:  []DistrictCandidate{{Name: "Abcdefghijklmnopqrst"}},
			expected:   "Abcdefghijklmnopqrst",
			confidence: ConfidenceLow,
			matchType:  MatchFuzzy,
		},
		{
			name:  "fuzzy keeps the best score",
			story: Story{Headline: "abcdefghijklmnopqrsz"},
			districts: []DistrictCandidate{
				{Name: "Abcdefghijklmnopqxyz"},
				{Name: "Abcdefghijklmnopqrst"},
			},
			expected:   "Abcdefghijklmnopqrst",
			confidence: ConfidenceMedium,
			matchType:  MatchFuzzy,
		},
	}

	m := NewMatcher()
	defer m.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Infer(tt.story, tt.districts)
			require.NotNil(t, res, spew.Sdump(tt.story, tt.districts))

			assert.Equal(t, tt.expected, res.District)
			assert.Equal(t, tt.confidence, res.Confidence)
			assert.Equal(t, tt.matchType, res.MatchType)
		})
	}
}

func TestMatcher_InferNoMatch(t *testing.T) {
	tests := []struct {
		name      string
		story     Story
		districts []DistrictCandidate
	}{
		{
			name:      "no candidates",
			story:     Story{Headline: "Mysuru Dasara begins"},
			districts: nil,
		},
		{
			name:      "empty haystack",
			story:     Story{},
			districts: karnataka(),
		},
		{
			name:      "whitespace haystack",
			story:     Story{Headline: "   ", Summary: "\t"},
			districts: karnataka(),
		},
		{
			name:      "whitespace ground truth is ignored",
			story:     Story{Headline: "Nothing relevant here", District: "  "},
			districts: karnataka(),
		},
		{
			name:      "word boundary",
			story:     Story{Headline: "Indianapolis police investigate"},
			districts: []DistrictCandidate{{Name: "India"}},
		},
		{
			name:      "fuzzy rejects 0.84",
			story:     Story{Headline: "news from abcdefghijklmnopqrstu0000"},
			districts: []DistrictCandidate{{Name: "Abcdefghijklmnopqrstuvwxy"}},
		},
		{
			name:      "nameless candidates are ignored",
			story:     Story{Headline: "Something happened"},
			districts: []DistrictCandidate{{Name: ""}, {Name: "  ", Headquarters: "Something"}},
		},
		{
			name:      "unrelated text",
			story:     Story{Headline: "Stock markets close higher"},
			districts: karnataka(),
		},
	}

	m := NewMatcher()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Infer(tt.story, tt.districts)
			assert.Nil(t, res, spew.Sdump(res))

			name, ok := m.InferName(tt.story, tt.districts)
			assert.False(t, ok)
			assert.Empty(t, name)
		})
	}
}

func TestMatcher_ShortTokensExcluded(t *testing.T) {
	story := Story{Headline: "the uma temple"}
	districts := []DistrictCandidate{{Name: "Una"}}

	// "uma" is 2/3 similar to "una"; a loose threshold would accept it
	loose := NewMatcher(WithFuzzyThreshold(0.5))
	assert.Nil(t, loose.Infer(story, districts))

	withShort := NewMatcher(WithFuzzyThreshold(0.5), WithMinTokenLength(3))
	res := withShort.Infer(story, districts)
	require.NotNil(t, res)
	assert.Equal(t, "Una", res.District)
	assert.Equal(t, MatchFuzzy, res.MatchType)
	assert.InDelta(t, 2.0/3.0, res.Score, 1e-9)
}

func TestMatcher_ShortNamesStillMatchExactly(t *testing.T) {
	res := NewMatcher().Infer(Story{Headline: "Nuh police seize cattle"}, []DistrictCandidate{{Name: "Nuh"}})
	require.NotNil(t, res)
	assert.Equal(t, MatchExact, res.MatchType)
}

func TestMatcher_DoesNotMutateInput(t *testing.T) {
	districts := []DistrictCandidate{
		{Name: "Udupi"},
		{Name: "Bengaluru Rural"},
		{Name: "Mysuru", Headquarters: "Mysuru"},
	}
	original := slices.Clone(districts)
	story := Story{Headline: "Bangalore Rural farmers", Summary: "Protest"}
	storyCopy := story

	res := NewMatcher().Infer(story, districts)
	require.NotNil(t, res)
	assert.Equal(t, "Bengaluru Rural", res.District)
	assert.Equal(t, MatchAlias, res.MatchType)

	assert.Equal(t, original, districts)
	assert.Equal(t, storyCopy, story)
}

func TestMatcher_Deterministic(t *testing.T) {
	m := NewMatcher()
	story := Story{Headline: "Kozhikod and Kannur brace for monsoon"}
	districts := []DistrictCandidate{{Name: "Kozhikode"}, {Name: "Kasaragod"}, {Name: "Kannur"}}

	first := m.Infer(story, districts)
	require.NotNil(t, first)

	for i := 0; i < 20; i++ {
		assert.Equal(t, first, m.Infer(story, districts))
	}
}

func TestMatcher_Concurrent(t *testing.T) {
	m := NewMatcher()
	districts := karnataka()
	stories := []Story{
		{Headline: "Mysuru palace lit up"},
		{Headline: "Mangalore port strike"},
		{Headline: "Bengaluru Rural silk farmers"},
		{Headline: "Nothing to see"},
	}

	want := make([]*Result, len(stories))
	for i, s := range stories {
		want[i] = NewMatcher(WithPatternCacheSize(0)).Infer(s, districts)
	}

	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i, s := range stories {
				assert.Equal(t, want[i], m.Infer(s, districts))
			}
		}()
	}

	wg.Wait()
}

func TestMatcher_PerfectMatchExit(t *testing.T) {
	// \b only sees ASCII word characters, so Kannada names never match in the
	// exact phase and a verbatim mention scores 1.0 in the fuzzy phase.
	story := Story{Headline: "ಮೈಸೂರು ದಸರಾ"}
	districts := []DistrictCandidate{{Name: "ಮೈಸೂರ"}, {Name: "ಮೈಸೂರು"}}

	full := NewMatcher().Infer(story, districts)
	early := NewMatcher(WithPerfectMatchExit(true)).Infer(story, districts)

	require.NotNil(t, full)
	assert.Equal(t, full, early)
	assert.Equal(t, "ಮೈಸೂರು", full.District)
	assert.Equal(t, MatchFuzzy, full.MatchType)
	assert.Equal(t, ConfidenceMedium, full.Confidence)
	assert.InDelta(t, 1.0, full.Score, 1e-9)
}

func TestMatcher_CustomAliases(t *testing.T) {
	table := NewAliasTable(map[string][]string{"Puducherry": {"Pondy Town"}})
	m := NewMatcher(WithAliases(table))

	res := m.Infer(Story{Headline: "Pondy Town beach"}, []DistrictCandidate{{Name: "Puducherry"}})
	require.NotNil(t, res)
	assert.Equal(t, MatchAlias, res.MatchType)

	// Built-in aliases are gone
	assert.Nil(t, m.Infer(Story{Headline: "Bombay rains"}, []DistrictCandidate{{Name: "Mumbai"}}))
	assert.Same(t, table, m.Aliases())
}

func TestMatcher_CacheDisabled(t *testing.T) {
	cached := NewMatcher()
	defer cached.Close()

	uncached := NewMatcher(WithPatternCacheSize(0))
	defer uncached.Close()

	stories := []Story{
		{Headline: "Mangaluru port expands"},
		{Headline: "Old Bombay buildings restored"},
		{Headline: "Floods hit Mysoore"},
		{Headline: "Nothing relevant"},
	}

	for _, s := range stories {
		assert.Equal(t, cached.Infer(s, karnataka()), uncached.Infer(s, karnataka()), s.Headline)
	}
}

func TestMatcher_Close(t *testing.T) {
	m := NewMatcher()
	m.Close()

	res := m.Infer(Story{Headline: "Udupi temple"}, karnataka())
	require.NotNil(t, res)
	assert.Equal(t, "Udupi", res.District)
}

func TestMatcher_Logger(t *testing.T) {
	var buf bytes.Buffer

	m := NewMatcher(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	defer m.Close()

	m.Infer(Story{Headline: "Rain in Mangaluru"}, karnataka())
	m.Infer(Story{Headline: "Nothing relevant"}, karnataka())

	out := buf.String()
	assert.Contains(t, out, "exact headquarters match")
	assert.Contains(t, out, `"district":"Dakshina Kannada"`)
	assert.Contains(t, out, "no fuzzy match")
}

func TestInferDistrict(t *testing.T) {
	res := InferDistrict(Story{Headline: "Calcutta tram turns 150"}, []DistrictCandidate{{Name: "Kolkata"}, {Name: "Howrah"}})
	require.NotNil(t, res)
	assert.Equal(t, "Kolkata", res.District)
	assert.Equal(t, MatchAlias, res.MatchType)

	name, ok := InferDistrictName(Story{Headline: "Howrah bridge repairs"}, []DistrictCandidate{{Name: "Kolkata"}, {Name: "Howrah"}})
	assert.True(t, ok)
	assert.Equal(t, "Howrah", name)
}

func BenchmarkMatcher_Fuzzy(b *testing.B) {
	m := NewMatcher()
	story := Story{
		Headline: "Heavy rainfall lashes coastal towns as fishermen are warned",
		Summary:  "The meteorological department issued an orange alert for Kozhikod and nearby areas",
	}
	districts := []DistrictCandidate{
		{Name: "Thiruvananthapuram"}, {Name: "Kollam"}, {Name: "Pathanamthitta"},
		{Name: "Alappuzha"}, {Name: "Kottayam"}, {Name: "Idukki", Headquarters: "Painavu"},
		{Name: "Ernakulam"}, {Name: "Thrissur"}, {Name: "Palakkad"}, {Name: "Malappuram"},
		{Name: "Kozhikode"}, {Name: "Wayanad", Headquarters: "Kalpetta"}, {Name: "Kannur"},
		{Name: "Kasaragod"},
	}

	for i := 0; i < b.N; i++ {
		m.Infer(story, districts)
	}
}
