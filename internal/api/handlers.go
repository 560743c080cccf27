package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/dgallion1/pagetrim/internal/dom"
	"github.com/dgallion1/pagetrim/internal/prune"
	"github.com/dgallion1/pagetrim/internal/sanitize"
	"github.com/yuin/goldmark"
)

// extractRequest drives the full extraction pipeline. Exactly one of HTML
// and Markdown must be set; markdown input is rendered to HTML first and
// then treated identically.
type extractRequest struct {
	HTML     string `json:"html"`
	Markdown string `json:"markdown"`

	MaxTokens int    `json:"max_tokens"`
	Direction string `json:"direction"` // "left" (default) or "right"

	Includes  []string `json:"includes"`
	TrimRules []string `json:"trim_rules"`
	Collapse  []string `json:"collapse"`

	Format string `json:"format"` // "html" (default) or "markdown"
	Pretty bool   `json:"pretty"`
}

type sanitizeRequest struct {
	HTML   string `json:"html"`
	Pretty bool   `json:"pretty"`
}

type addressesRequest struct {
	HTML string `json:"html"`
}

func (s *Server) handleSanitize(w http.ResponseWriter, r *http.Request) {
	var req sanitizeRequest
	if !s.decode(w, r, &req) {
		return
	}
	root, err := dom.Parse(req.HTML)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	sanitize.Clean(root)
	sanitize.DecodeURLs(root)

	out := dom.Render(root)
	resp := map[string]any{
		"html":   out,
		"tokens": s.counter.Count(out),
	}
	if req.Pretty {
		resp["html"] = dom.RenderPretty(root)
	}
	writeJSON(w, resp)
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if !s.decode(w, r, &req) {
		return
	}

	raw := req.HTML
	if req.Markdown != "" {
		if raw != "" {
			jsonError(w, "provide html or markdown, not both", http.StatusBadRequest)
			return
		}
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(req.Markdown), &buf); err != nil {
			jsonError(w, "render markdown: "+err.Error(), http.StatusBadRequest)
			return
		}
		raw = buf.String()
	}
	if raw == "" {
		jsonError(w, "html or markdown is required", http.StatusBadRequest)
		return
	}

	root, err := dom.Parse(raw)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sanitize.Clean(root)
	sanitize.DecodeURLs(root)

	if err := prune.ApplyTrimRules(root, "/html", req.TrimRules); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Inclusion pruning computes addresses on the fly, so it runs against
	// the tree exactly as it stands after the passes above.
	if len(req.Includes) > 0 {
		prune.ByInclusion(root, "/html", req.Includes)
	}

	if len(req.Collapse) > 0 {
		collapseAddresses(root, req.Collapse)
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = s.cfg.DefaultMaxTokens
	}
	before := dom.Render(root)
	prune.ByTokens(s.counter, root, maxTokens, req.Direction == "right")
	out := dom.Render(root)
	count := s.counter.Count(out)

	resp := map[string]any{
		"tokens":    count,
		"truncated": out != before,
	}
	if count > maxTokens {
		// Shell alone over budget: best effort, reported rather than failed.
		resp["over_budget"] = true
	}

	switch req.Format {
	case "", "html":
		if req.Pretty {
			resp["html"] = dom.RenderPretty(root)
		} else {
			resp["html"] = out
		}
	case "markdown":
		md, err := htmltomarkdown.ConvertString(out)
		if err != nil {
			jsonError(w, "convert to markdown: "+err.Error(), http.StatusInternalServerError)
			return
		}
		resp["markdown"] = md
	default:
		jsonError(w, fmt.Sprintf("unknown format %q", req.Format), http.StatusBadRequest)
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleAddresses(w http.ResponseWriter, r *http.Request) {
	var req addressesRequest
	if !s.decode(w, r, &req) {
		return
	}
	root, err := dom.Parse(req.HTML)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	sanitize.Clean(root)
	writeJSON(w, map[string]any{
		"addresses": prune.Addresses(root, "/html"),
	})
}

// collapseAddresses resolves the requested addresses against the current
// tree in one pass, then collapses each match. Resolution happens before
// any collapsing so earlier mutations cannot shift later addresses.
func collapseAddresses(root *dom.Node, addrs []string) {
	want := make(map[string]bool, len(addrs))
	for _, a := range addrs {
		want[a] = true
	}
	var matched []*dom.Node
	prune.Walk(root, "/html", func(n *dom.Node, addr string) {
		if want[addr] {
			matched = append(matched, n)
		}
	})
	for _, n := range matched {
		prune.ToText(n)
	}
}

// decode parses a JSON body, enforcing the configured size limit. It writes
// the error response itself and reports whether the caller should proceed.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", s.cfg.MaxBodyBytes), http.StatusRequestEntityTooLarge)
			return false
		}
		jsonError(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
