package prune

import (
	"testing"

	"github.com/dgallion1/pagetrim/internal/dom"
)

func TestApplyTrimRulesRemovesMatches(t *testing.T) {
	root := el("html",
		el("div",
			el("p", txt("keep")),
			el("nav", txt("chrome")),
		),
		el("footer", txt("chrome")),
	)
	err := ApplyTrimRules(root, "/html", []string{`/html/div/nav`, `/html/footer`})
	if err != nil {
		t.Fatalf("apply trim rules: %v", err)
	}

	want := "<html><div><p>keep</p></div></html>"
	if got := dom.Render(root); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestApplyTrimRulesRegex(t *testing.T) {
	root := el("html",
		el("div",
			el("p", txt("1")),
			el("p", txt("2")),
			el("span", txt("s")),
		),
	)
	if err := ApplyTrimRules(root, "/html", []string{`/html/div/p\[\d+\]`}); err != nil {
		t.Fatalf("apply trim rules: %v", err)
	}

	want := "<html><div><span>s</span></div></html>"
	if got := dom.Render(root); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestApplyTrimRulesFullMatchOnly(t *testing.T) {
	// A rule matching a prefix of an address must not remove the deeper node.
	root := el("html", el("div", el("p", txt("x"))))
	if err := ApplyTrimRules(root, "/html", []string{`/html/di`}); err != nil {
		t.Fatalf("apply trim rules: %v", err)
	}
	want := "<html><div><p>x</p></div></html>"
	if got := dom.Render(root); got != want {
		t.Errorf("partial-address rule removed nodes: %q", got)
	}
}

func TestApplyTrimRulesInvalidPattern(t *testing.T) {
	root := el("html", el("div"))
	if err := ApplyTrimRules(root, "/html", []string{`(`}); err == nil {
		t.Errorf("expected error for invalid pattern")
	}
}

func TestApplyTrimRulesNeverRemovesRoot(t *testing.T) {
	root := el("html", el("div"))
	if err := ApplyTrimRules(root, "/html", []string{`/html`}); err != nil {
		t.Fatalf("apply trim rules: %v", err)
	}
	if root.Tag != "html" {
		t.Errorf("root altered")
	}
	// The root has no parent, so detaching it is a no-op; the rule still
	// removed nothing else.
	if got := dom.Render(root); got != "<html><div></div></html>" {
		t.Errorf("unexpected tree: %q", got)
	}
}
