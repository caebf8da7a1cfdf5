package geo

import (
	"slices"
	"sort"
	"strings"
	"sync"
)

// AliasTable maps canonical district names to their alternate names and keeps a
// reverse index from every known name to its canonical form.
//
// A table is immutable once built; Merge returns a new table.
type AliasTable struct {
	// canonical display name keyed by normalized canonical
	canonical map[string]string
	// aliases keyed by normalized canonical, in declaration order
	aliases map[string][]string
	// normalized alias or canonical -> canonical display name
	reverse map[string]string
}

// DefaultAliases returns the built-in alias table. It is built on first use.
var DefaultAliases = sync.OnceValue(func() *AliasTable {
	return NewAliasTable(builtinAliases)
})

// NewAliasTable builds a table from canonical -> aliases entries.
//
// Canonicals are indexed in sorted order, so when two canonicals claim the same
// alias the alphabetically first one owns it in the reverse index. Aliases are
// de-duplicated case-insensitively.
func NewAliasTable(entries map[string][]string) *AliasTable {
	t := &AliasTable{
		canonical: make(map[string]string, len(entries)),
		aliases:   make(map[string][]string, len(entries)),
		reverse:   make(map[string]string, len(entries)*3),
	}

	t.add(entries)

	return t
}

func (t *AliasTable) add(entries map[string][]string) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		canon := strings.TrimSpace(name)
		key := Normalize(canon)
		if key == "" {
			continue
		}

		if existing, ok := t.canonical[key]; ok {
			canon = existing
		} else {
			t.canonical[key] = canon
		}

		if _, ok := t.reverse[key]; !ok {
			t.reverse[key] = canon
		}

		for _, alias := range entries[name] {
			alias = strings.TrimSpace(alias)
			akey := Normalize(alias)
			if akey == "" || akey == key {
				continue
			}

			if slices.ContainsFunc(t.aliases[key], func(a string) bool { return Normalize(a) == akey }) {
				continue
			}

			t.aliases[key] = append(t.aliases[key], alias)

			if _, ok := t.reverse[akey]; !ok {
				t.reverse[akey] = canon
			}
		}
	}
}

// Merge returns a new table holding t's entries followed by extra.
// Names already indexed in t keep their canonical.
func (t *AliasTable) Merge(extra map[string][]string) *AliasTable {
	merged := NewAliasTable(nil)

	if t != nil {
		merged.add(t.Entries())
	}

	merged.add(extra)

	return merged
}

// Canonical returns the canonical name for any known name or alias.
func (t *AliasTable) Canonical(name string) (string, bool) {
	if t == nil {
		return "", false
	}

	canon, ok := t.reverse[Normalize(name)]

	return canon, ok
}

// Aliases returns a copy of the aliases declared for canonical.
func (t *AliasTable) Aliases(canonical string) []string {
	if t == nil {
		return nil
	}

	return slices.Clone(t.aliases[Normalize(canonical)])
}

// Names returns every matchable name related to name: the canonical form first
// (when it differs from name) followed by the canonical's aliases.
// Unknown names fall back to themselves and yield no aliases.
func (t *AliasTable) Names(name string) []string {
	canon, ok := t.Canonical(name)
	if !ok {
		canon = name
	}

	names := t.Aliases(canon)
	if ok && Normalize(canon) != Normalize(name) {
		names = append([]string{canon}, names...)
	}

	return names
}

// Entries returns a copy of the table as canonical -> aliases.
func (t *AliasTable) Entries() map[string][]string {
	if t == nil {
		return nil
	}

	out := make(map[string][]string, len(t.canonical))
	for key, canon := range t.canonical {
		out[canon] = slices.Clone(t.aliases[key])
	}

	return out
}

// Len returns the number of canonical names in the table.
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.canonical)
}
