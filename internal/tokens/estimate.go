package tokens

import "strings"

// Estimator gives a rough token count using a words-based heuristic.
// Roughly 1.33 tokens per word for English text; exact tokenization is not
// required when the caller only needs approximate budgeting, and this
// needs no encoding data at runtime.
type Estimator struct{}

func (Estimator) Count(s string) int {
	if s == "" {
		return 0
	}
	words := len(strings.Fields(s))
	n := int(float64(words) * 1.33)
	if n < 1 {
		n = 1
	}
	return n
}
