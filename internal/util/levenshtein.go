package util

// Levenshtein returns the rune-aware edit distance between a and b.
// A single rolling row keeps it to one allocation per call.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// row[j] = distance(ra[:i], rb[:j])
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			up := row[j]
			cost := diag
			if ra[i-1] != rb[j-1] {
				cost = 1 + min(diag, up, row[j-1])
			}
			row[j] = cost
			diag = up
		}
	}
	return row[len(rb)]
}
