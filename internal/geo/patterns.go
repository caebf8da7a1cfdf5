package geo

import (
	"regexp"

	"github.com/dgraph-io/ristretto/v2"
)

// patternCache holds compiled whole-word patterns keyed by the normalized word.
// A nil cache compiles on every call.
type patternCache struct {
	cache *ristretto.Cache[string, *regexp.Regexp]
}

func newPatternCache(size int64) (*patternCache, error) {
	if size <= 0 {
		return nil, nil
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, *regexp.Regexp]{
		NumCounters: size * 10,
		MaxCost:     size,
		BufferItems: 64,
		// every pattern costs 1, so MaxCost is a pattern count
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &patternCache{cache: c}, nil
}

// wholeWord returns a case-insensitive pattern matching word between word boundaries.
func (p *patternCache) wholeWord(word string) *regexp.Regexp {
	if p == nil {
		return compileWholeWord(word)
	}

	if re, ok := p.cache.Get(word); ok {
		return re
	}

	re := compileWholeWord(word)
	p.cache.Set(word, re, 1)

	return re
}

func (p *patternCache) close() {
	if p != nil {
		p.cache.Close()
	}
}

func compileWholeWord(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}
