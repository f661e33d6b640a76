// Package classify routes normalized URLs through the configured rule table.
package classify

import (
	"fmt"
	"regexp"

	"github.com/scottidler/obsidian-bookmark/internal/apperr"
)

// Rule is one compiled classification rule. Rules are compiled at
// configuration-load time and shared read-only across requests.
type Rule struct {
	Name       string
	Pattern    *regexp.Regexp
	Resolution string
	Folder     string
}

// Route is the outcome of classifying a URL.
type Route struct {
	Kind   Kind
	URL    string
	Folder string
	Width  int
	Height int
}

var videoIDRe = regexp.MustCompile(`(youtu\.be/|youtube\.com/(watch\?(.*&)?v=|(embed|v|shorts)/))([^?&">]+)`)

// Classify scans rules in configured order. The first matching non-default rule
// wins immediately. A matching rule named "default" is remembered as a fallback
// but never short-circuits, so more specific rules later in the list still take
// precedence. A matched rule whose resolution preset is unknown fails hard.
func Classify(url string, rules []Rule) (Route, error) {
	var fallback *Route
	for _, rule := range rules {
		if !rule.Pattern.MatchString(url) {
			continue
		}
		width, height, err := lookupResolution(rule.Name, rule.Resolution)
		if err != nil {
			return Route{}, err
		}
		route := Route{
			Kind:   kindFor(rule.Name),
			URL:    url,
			Folder: rule.Folder,
			Width:  width,
			Height: height,
		}
		if rule.Name == "default" {
			if fallback == nil {
				fallback = &route
			}
			continue
		}
		return route, nil
	}
	if fallback != nil {
		return *fallback, nil
	}
	return Route{}, fmt.Errorf("%w: %s", apperr.ErrNoRouteMatched, url)
}

func kindFor(name string) Kind {
	switch name {
	case "shorts":
		return KindShorts
	case "youtube":
		return KindYouTube
	default:
		return KindWebLink
	}
}

// ExtractVideoID pulls the video identifier out of a YouTube watch, embed,
// shorts, or youtu.be URL.
func ExtractVideoID(url string) (string, error) {
	m := videoIDRe.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("%w: no video id in %q", apperr.ErrURLParse, url)
	}
	return m[5], nil
}
