package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsgeo/internal/geo"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := LoadFiles(
		filepath.Join("testdata", "karnataka.yaml"),
		filepath.Join("testdata", "maharashtra.yaml"),
	)
	require.NoError(t, err)

	return c
}

func names(cands []geo.DistrictCandidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Name
	}

	return out
}

func TestCatalog_Candidates(t *testing.T) {
	c := loadTestCatalog(t)

	got := c.Candidates()
	assert.Equal(t, []string{
		"Bengaluru Urban", "Bengaluru Rural", "Mysuru", "Dakshina Kannada",
		"Udupi", "Kasaragod", "Mumbai", "Pune",
	}, names(got))
	assert.Equal(t, "Mangaluru", got[3].Headquarters)

	empty := &Catalog{}
	assert.Empty(t, empty.Candidates())
}

func TestCatalog_Filter(t *testing.T) {
	c := loadTestCatalog(t)

	tests := []struct {
		region string
		want   []string
		found  bool
	}{
		{"Karnataka", []string{"Bengaluru Urban", "Bengaluru Rural", "Mysuru", "Dakshina Kannada", "Udupi"}, true},
		{"  karnataka ", []string{"Bengaluru Urban", "Bengaluru Rural", "Mysuru", "Dakshina Kannada", "Udupi"}, true},
		{"Kerala", []string{"Kasaragod"}, true},
		{"MAHARASHTRA", []string{"Mumbai", "Pune"}, true},
		{"Goa", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			got, ok := c.Filter(tt.region)
			assert.Equal(t, tt.found, ok)

			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, names(got))
			}
		})
	}

	all, ok := c.Filter("")
	assert.True(t, ok)
	assert.Len(t, all, 8)
}

func TestCatalog_Regions(t *testing.T) {
	c := loadTestCatalog(t)
	assert.Equal(t, []string{"Karnataka", "Kerala", "Maharashtra"}, c.Regions())
}

func TestCatalog_AliasEntries(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Equal(t, map[string][]string{
		"Bengaluru Urban": {"Bangalore Urban"},
		"Mysuru":          {"Mysore"},
	}, c.AliasEntries())
}

func TestCatalog_AliasTable(t *testing.T) {
	c := &Catalog{Files: []*File{{
		Version:   CurrentVersion,
		Districts: []District{{Name: "Chikkamagaluru", Aliases: []string{"Chikmagalur"}}},
		Aliases:   map[string][]string{"Shivamogga": {"Shimoga Town"}},
	}}}

	base := geo.NewAliasTable(map[string][]string{"Mumbai": {"Bombay"}})
	table := c.AliasTable(base)

	canon, ok := table.Canonical("chikmagalur")
	require.True(t, ok)
	assert.Equal(t, "Chikkamagaluru", canon)

	canon, ok = table.Canonical("Shimoga Town")
	require.True(t, ok)
	assert.Equal(t, "Shivamogga", canon)

	canon, ok = table.Canonical("Bombay")
	require.True(t, ok)
	assert.Equal(t, "Mumbai", canon)

	_, ok = base.Canonical("Chikmagalur")
	assert.False(t, ok, "base table is not modified")
}

func TestCatalog_AliasTable_EndToEnd(t *testing.T) {
	c := &Catalog{Files: []*File{{
		Version:   CurrentVersion,
		Districts: []District{{Name: "Kodagu", Headquarters: "Madikeri", Aliases: []string{"Coorg Hills"}}},
	}}}

	m := geo.NewMatcher(geo.WithAliases(c.AliasTable(nil)))
	defer m.Close()

	res := m.Infer(geo.Story{Headline: "Rain lashes Coorg Hills again"}, c.Candidates())
	require.NotNil(t, res)
	assert.Equal(t, "Kodagu", res.District)
	assert.Equal(t, geo.MatchAlias, res.MatchType)
}
