package classify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/scottidler/obsidian-bookmark/internal/apperr"
)

// NormalizeURL strips every utm_source query parameter from raw, preserving all
// other query parameters and their relative order, and the fragment. When no
// parameters remain the query separator is dropped entirely.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", apperr.ErrURLParse, raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q: not an absolute URL", apperr.ErrURLParse, raw)
	}
	if u.RawQuery == "" {
		return u.String(), nil
	}

	// url.Values is a map and would reorder keys, so filter the raw query
	// pair-by-pair instead.
	pairs := strings.Split(u.RawQuery, "&")
	kept := pairs[:0]
	for _, p := range pairs {
		key := p
		if i := strings.Index(p, "="); i >= 0 {
			key = p[:i]
		}
		if key == "utm_source" {
			continue
		}
		kept = append(kept, p)
	}
	u.RawQuery = strings.Join(kept, "&")
	return u.String(), nil
}
