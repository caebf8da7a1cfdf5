package geo

// Levenshtein computes the edit distance between two strings: the minimum number of
// single-rune insertions, deletions or substitutions turning one into the other.
//
// The full (len(a)+1) x (len(b)+1) matrix is filled; inputs here are single words
// and district names, so the quadratic memory is irrelevant.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}

	for j := range d[0] {
		d[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[len(ra)][len(rb)]
}

// Similarity returns 1 - Levenshtein(a, b) / max(len(a), len(b)), measured in runes.
// Identical strings (including two empty ones) score 1.0.
func Similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))

	if la == 0 && lb == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(la, lb))
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}
