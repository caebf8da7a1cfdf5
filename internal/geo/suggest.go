package geo

import "sort"

// Suggestion is a known place name ranked against a query.
type Suggestion struct {
	// Name is the known name that was compared.
	Name string
	// Canonical is the district Name refers to.
	Canonical string
	// Score is the Similarity between the normalized query and Name.
	Score float64
}

// SuggestionList is a list of suggestions with ranking helpers.
type SuggestionList []Suggestion

// Suggest ranks every name in table and districts against query and returns
// those scoring at least minScore, best first. Each canonical appears once,
// under its best-scoring name.
func Suggest(query string, table *AliasTable, districts []DistrictCandidate, minScore float64) SuggestionList {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	best := make(map[string]Suggestion)

	consider := func(name, canonical string) {
		n := Normalize(name)
		if n == "" {
			return
		}

		s := Similarity(q, n)
		if s+scoreEpsilon < minScore {
			return
		}

		key := Normalize(canonical)
		if cur, ok := best[key]; !ok || s > cur.Score || (s == cur.Score && name < cur.Name) {
			best[key] = Suggestion{Name: name, Canonical: canonical, Score: s}
		}
	}

	for canon, aliases := range table.Entries() {
		consider(canon, canon)

		for _, a := range aliases {
			consider(a, canon)
		}
	}

	for _, d := range districts {
		consider(d.Name, d.Name)

		if d.Headquarters != "" {
			consider(d.Headquarters, d.Name)
		}
	}

	out := make(SuggestionList, 0, len(best))
	for _, s := range best {
		out = append(out, s)
	}

	sort.Sort(out)

	return out
}

// Len implements sort.Interface.
func (l SuggestionList) Len() int { return len(l) }

// Swap implements sort.Interface.
func (l SuggestionList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

// Less orders by score descending, then canonical name for determinism.
func (l SuggestionList) Less(i, j int) bool {
	if l[i].Score != l[j].Score {
		return l[i].Score > l[j].Score
	}

	return l[i].Canonical < l[j].Canonical
}

// Top returns the first n suggestions.
func (l SuggestionList) Top(n int) SuggestionList {
	if n >= len(l) {
		return l
	}

	return l[:n]
}

// Best returns the best suggestion, or nil.
func (l SuggestionList) Best() *Suggestion {
	if len(l) == 0 {
		return nil
	}

	return &l[0]
}

// IsAmbiguous reports whether the top two scores are closer than gap.
func (l SuggestionList) IsAmbiguous(gap float64) bool {
	if len(l) < 2 {
		return false
	}

	return l[0].Score-l[1].Score < gap
}
