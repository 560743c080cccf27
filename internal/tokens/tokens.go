// Package tokens counts atomic tokens in text the way a downstream LLM
// consumer will. Counting must be deterministic and pure: the pruning
// engine calls it repeatedly on serialized subtrees and relies on stable
// answers.
package tokens

// Counter maps a string to its token count.
type Counter interface {
	Count(s string) int
}
