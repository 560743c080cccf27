package prune

import (
	"fmt"
	"regexp"

	"github.com/dgallion1/pagetrim/internal/dom"
)

// ApplyTrimRules removes every element whose structural address fully
// matches any of the given regular expressions. Addresses are computed on
// the unmutated tree per rule before any node is detached, so one rule's
// removals cannot skew the addresses another match was made against.
// The root itself is never removed.
func ApplyTrimRules(root *dom.Node, base string, rules []string) error {
	for _, rule := range rules {
		re, err := regexp.Compile("^(?:" + rule + ")$")
		if err != nil {
			return fmt.Errorf("trim rule %q: %w", rule, err)
		}
		RemoveMatching(root, base, re)
	}
	return nil
}

// RemoveMatching detaches every element whose address matches re.
func RemoveMatching(root *dom.Node, base string, re *regexp.Regexp) {
	var matched []*dom.Node
	Walk(root, base, func(n *dom.Node, addr string) {
		if re.MatchString(addr) {
			matched = append(matched, n)
		}
	})
	for _, n := range matched {
		n.Detach()
	}
}
