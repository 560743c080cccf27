package prune

import (
	"strings"
	"testing"

	"github.com/dgallion1/pagetrim/internal/dom"
)

// byteCounter counts one token per byte of serialized form: deterministic,
// pure, and additive across concatenated markup, which keeps the budget
// arithmetic in these tests exact.
type byteCounter struct{}

func (byteCounter) Count(s string) int { return len(s) }

func fiveParagraphDiv() *dom.Node {
	return el("div",
		el("p", txt("aaaa")),
		el("p", txt("bbbb")),
		el("p", txt("cccc")),
		el("p", txt("dddd")),
		el("p", txt("eeee")),
	)
}

func TestByTokensFittingTreeUntouched(t *testing.T) {
	root := fiveParagraphDiv()
	before := dom.Render(root)
	ByTokens(byteCounter{}, root, len(before), false)
	if got := dom.Render(root); got != before {
		t.Errorf("fitting tree was mutated: %q vs %q", before, got)
	}
}

func TestByTokensBoundaryChildScenario(t *testing.T) {
	// Shell <div></div> is 11 tokens, each <p>xxxx</p> child is 11.
	// Budget 47 leaves 36 for children: three fit whole (33), the fourth is
	// the boundary child and is trimmed recursively with the leftover 3
	// (not even its shell fits, so it ends up empty), the fifth is dropped
	// outright.
	root := fiveParagraphDiv()
	ByTokens(byteCounter{}, root, 47, false)

	want := "<div><p>aaaa</p><p>bbbb</p><p>cccc</p><p></p></div>"
	if got := dom.Render(root); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestByTokensFavorRightKeepsSuffixInDocumentOrder(t *testing.T) {
	// Same 36 of child budget, selecting from the right: eeee, dddd and
	// cccc fit whole, bbbb is the boundary and empties, aaaa is dropped.
	// The kept slice is re-reversed so output stays in document order.
	root := fiveParagraphDiv()
	ByTokens(byteCounter{}, root, 47, true)

	want := "<div><p></p><p>cccc</p><p>dddd</p><p>eeee</p></div>"
	if got := dom.Render(root); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestByTokensShellOverBudget(t *testing.T) {
	// Budget below the childless shell: children are gone, the shell stays,
	// and the result is over budget by design.
	root := fiveParagraphDiv()
	ByTokens(byteCounter{}, root, 5, false)

	if got := dom.Render(root); got != "<div></div>" {
		t.Errorf("expected bare shell, got %q", got)
	}
}

func TestByTokensTextOnlyLeaf(t *testing.T) {
	// A text fragment is atomic: when it is the boundary child it is kept
	// whole, so a text-only element either keeps its text or, when not
	// even the shell fits the leftover, loses it entirely.
	whole := el("p", txt(strings.Repeat("x", 100)))
	ByTokens(byteCounter{}, whole, 20, false)
	if got := dom.Render(whole); got != "<p>"+strings.Repeat("x", 100)+"</p>" {
		t.Errorf("atomic text should be kept whole, got %q", got)
	}

	emptied := el("p", txt(strings.Repeat("x", 100)))
	ByTokens(byteCounter{}, emptied, 5, false)
	if got := dom.Render(emptied); got != "<p></p>" {
		t.Errorf("expected emptied leaf, got %q", got)
	}
}

func TestByTokensRecursesDepthFirstAlongOnePath(t *testing.T) {
	// Only one child per level is ever recursively trimmed: the second
	// section is dropped at the top level, and inside the first section the
	// recursion narrows again to the third paragraph.
	root := el("div",
		el("section",
			el("p", txt("aaaa")),
			el("p", txt("bbbb")),
			el("p", txt("cccc")),
		),
		el("section",
			el("p", txt("dddd")),
		),
	)
	ByTokens(byteCounter{}, root, 58, false)

	want := "<div><section><p>aaaa</p><p>bbbb</p><p></p></section></div>"
	if got := dom.Render(root); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestByTokensBudgetProperty(t *testing.T) {
	// With a budget that admits the shell, the accepted children and the
	// boundary child's trimmed form, the output fits.
	root := fiveParagraphDiv()
	max := 62
	ByTokens(byteCounter{}, root, max, false)
	if got := len(dom.Render(root)); got > max {
		t.Errorf("output %d tokens exceeds budget %d: %q", got, max, dom.Render(root))
	}
}

func TestByTokensTextChildrenBudgeted(t *testing.T) {
	// Text fragments are children like any other and are kept or dropped
	// by the same greedy rule.
	root := el("div", txt("aaaa"), el("p", txt("bbbb")), txt("cccc"))
	// Shell 11, budget 17: the leading text (4) fits, the paragraph is the
	// boundary and empties, the trailing text is dropped.
	ByTokens(byteCounter{}, root, 17, false)

	want := "<div>aaaa<p></p></div>"
	if got := dom.Render(root); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtractHeadDoesNotMutateOriginal(t *testing.T) {
	root := fiveParagraphDiv()
	before := dom.Render(root)

	got := ExtractHead(byteCounter{}, root, 47)

	if dom.Render(root) != before {
		t.Errorf("original mutated by ExtractHead")
	}
	want := "<div><p>aaaa</p><p>bbbb</p><p>cccc</p><p></p></div>"
	if dom.Render(got) != want {
		t.Errorf("expected %q, got %q", want, dom.Render(got))
	}
}

func TestExtractTail(t *testing.T) {
	root := fiveParagraphDiv()
	got := ExtractTail(byteCounter{}, root, 47)
	want := "<div><p></p><p>cccc</p><p>dddd</p><p>eeee</p></div>"
	if dom.Render(got) != want {
		t.Errorf("expected %q, got %q", want, dom.Render(got))
	}
}
