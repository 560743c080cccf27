package sanitize

import (
	"net/url"

	"github.com/dgallion1/pagetrim/internal/dom"
)

// DecodeURLs percent-decodes href and src attribute values throughout the
// tree. Values that fail to decode are kept verbatim.
func DecodeURLs(root *dom.Node) {
	for _, c := range root.Children {
		DecodeURLs(c)
	}
	for _, key := range [...]string{"href", "src"} {
		if v, ok := root.Attrs[key]; ok {
			if dec, err := url.PathUnescape(v); err == nil {
				root.Attrs[key] = dec
			}
		}
	}
}
