package catalog

import (
	"errors"
	"slices"
	"sort"

	"newsgeo/internal/geo"
)

// ErrNoDistricts is returned when a catalog yields no candidates at all.
var ErrNoDistricts = errors.New("catalog has no districts")

// Catalog is an ordered set of catalog files.
type Catalog struct {
	Files []*File
}

// Len returns the total number of districts.
func (c *Catalog) Len() int {
	n := 0
	for _, f := range c.Files {
		n += len(f.Districts)
	}

	return n
}

// Candidates returns every district in file order.
func (c *Catalog) Candidates() []geo.DistrictCandidate {
	out := make([]geo.DistrictCandidate, 0, c.Len())

	c.each(func(f *File, d *District) {
		out = append(out, geo.DistrictCandidate{Name: d.Name, Headquarters: d.Headquarters})
	})

	return out
}

// Filter returns the districts of region (compared case-insensitively) and
// whether any were found. An empty region selects everything.
func (c *Catalog) Filter(region string) ([]geo.DistrictCandidate, bool) {
	if region == "" {
		out := c.Candidates()
		return out, len(out) > 0
	}

	want := geo.Normalize(region)

	var out []geo.DistrictCandidate

	c.each(func(f *File, d *District) {
		if geo.Normalize(effectiveRegion(f, d)) == want {
			out = append(out, geo.DistrictCandidate{Name: d.Name, Headquarters: d.Headquarters})
		}
	})

	return out, len(out) > 0
}

// Regions returns the distinct effective regions, sorted.
func (c *Catalog) Regions() []string {
	seen := map[string]struct{}{}

	var out []string

	c.each(func(f *File, d *District) {
		r := effectiveRegion(f, d)
		if r == "" {
			return
		}

		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			out = append(out, r)
		}
	})

	sort.Strings(out)

	return out
}

// AliasEntries returns canonical -> aliases from district entries and the
// top-level aliases maps of every file.
func (c *Catalog) AliasEntries() map[string][]string {
	out := map[string][]string{}

	for _, f := range c.Files {
		for i := range f.Districts {
			d := &f.Districts[i]
			if d.Name != "" && len(d.Aliases) > 0 {
				out[d.Name] = append(out[d.Name], d.Aliases...)
			}
		}

		for canon, aliases := range f.Aliases {
			out[canon] = append(out[canon], aliases...)
		}
	}

	for canon := range out {
		out[canon] = slices.Compact(out[canon])
	}

	return out
}

// AliasTable returns base extended with the catalog's alias entries.
func (c *Catalog) AliasTable(base *geo.AliasTable) *geo.AliasTable {
	return base.Merge(c.AliasEntries())
}

func (c *Catalog) each(fn func(*File, *District)) {
	for _, f := range c.Files {
		for i := range f.Districts {
			fn(f, &f.Districts[i])
		}
	}
}

func effectiveRegion(f *File, d *District) string {
	if d.Region != "" {
		return d.Region
	}

	return f.Region
}
