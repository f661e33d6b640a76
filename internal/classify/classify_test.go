package classify

import (
	"errors"
	"regexp"
	"testing"

	"github.com/scottidler/obsidian-bookmark/internal/apperr"
)

func testRules() []Rule {
	return []Rule{
		{Name: "shorts", Pattern: regexp.MustCompile(`youtube\.com/shorts/`), Resolution: "720p", Folder: "shorts"},
		{Name: "youtube", Pattern: regexp.MustCompile(`(youtube\.com/watch\?|youtu\.be/)`), Resolution: "SD", Folder: "youtube"},
		{Name: "default", Pattern: regexp.MustCompile(`^https?://`), Resolution: "SD", Folder: "links"},
	}
}

func TestClassify_Shorts(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/shorts/gGrqPbb6fuM",
		"https://www.youtube.com/shorts/FjkS5rjNq-A",
	}
	for _, url := range urls {
		route, err := Classify(url, testRules())
		if err != nil {
			t.Fatalf("Classify(%q): %v", url, err)
		}
		if route.Kind != KindShorts {
			t.Errorf("Classify(%q) kind = %v, want shorts", url, route.Kind)
		}
		if route.Width != 720 || route.Height != 1280 {
			t.Errorf("Classify(%q) resolution = %dx%d, want 720x1280", url, route.Width, route.Height)
		}
		if route.Folder != "shorts" {
			t.Errorf("Classify(%q) folder = %q", url, route.Folder)
		}
	}
}

func TestClassify_YouTube(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/watch?v=y4evLICF8kk",
		"https://www.youtube.com/watch?v=U3HndX2QnSo",
		"https://youtu.be/EkDxsQRbIwoA",
		"https://youtu.be/m7lnIdudEy8?si=VE-14Y1Sk93RdA5u",
	}
	for _, url := range urls {
		route, err := Classify(url, testRules())
		if err != nil {
			t.Fatalf("Classify(%q): %v", url, err)
		}
		if route.Kind != KindYouTube {
			t.Errorf("Classify(%q) kind = %v, want youtube", url, route.Kind)
		}
		if route.Width != 1280 || route.Height != 720 {
			t.Errorf("Classify(%q) resolution = %dx%d, want 1280x720", url, route.Width, route.Height)
		}
	}
}

func TestClassify_FallsThroughToDefault(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/notshorts/gGrqPbb6fuM",
		"https://www.notyoutube.com/watch?v=y4evLICF8kk",
		"https://parrot.ai/",
	}
	for _, url := range urls {
		route, err := Classify(url, testRules())
		if err != nil {
			t.Fatalf("Classify(%q): %v", url, err)
		}
		if route.Kind != KindWebLink {
			t.Errorf("Classify(%q) kind = %v, want weblink", url, route.Kind)
		}
		if route.Folder != "links" {
			t.Errorf("Classify(%q) folder = %q, want links", url, route.Folder)
		}
	}
}

func TestClassify_DefaultNeverShortCircuits(t *testing.T) {
	// Default listed first; the more specific shorts rule later in the list
	// must still win.
	rules := []Rule{
		{Name: "default", Pattern: regexp.MustCompile(`^https?://`), Resolution: "SD", Folder: "links"},
		{Name: "shorts", Pattern: regexp.MustCompile(`youtube\.com/shorts/`), Resolution: "720p", Folder: "shorts"},
	}
	route, err := Classify("https://www.youtube.com/shorts/gGrqPbb6fuM", rules)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if route.Kind != KindShorts {
		t.Errorf("kind = %v, want shorts despite default listed first", route.Kind)
	}
}

func TestClassify_NoRouteMatched(t *testing.T) {
	rules := testRules()[:2] // no default
	_, err := Classify("https://example.com/article", rules)
	if !errors.Is(err, apperr.ErrNoRouteMatched) {
		t.Errorf("error = %v, want ErrNoRouteMatched", err)
	}
}

func TestClassify_UnknownResolution(t *testing.T) {
	rules := []Rule{
		{Name: "shorts", Pattern: regexp.MustCompile(`youtube\.com/shorts/`), Resolution: "999p", Folder: "shorts"},
	}
	_, err := Classify("https://www.youtube.com/shorts/gGrqPbb6fuM", rules)
	if !errors.Is(err, apperr.ErrResolutionNotFound) {
		t.Errorf("error = %v, want ErrResolutionNotFound", err)
	}
}

func TestClassify_ShortsPresetUsesVerticalTable(t *testing.T) {
	// "720p" only exists in the vertical table; a non-shorts rule naming it
	// must fail even though the pattern matched.
	rules := []Rule{
		{Name: "youtube", Pattern: regexp.MustCompile(`youtube\.com/watch\?`), Resolution: "720p", Folder: "youtube"},
	}
	_, err := Classify("https://www.youtube.com/watch?v=y4evLICF8kk", rules)
	if !errors.Is(err, apperr.ErrResolutionNotFound) {
		t.Errorf("error = %v, want ErrResolutionNotFound", err)
	}
}

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=y4evLICF8kk", "y4evLICF8kk"},
		{"https://www.youtube.com/watch?v=7sgCH4U7rjU&t=32s", "7sgCH4U7rjU"},
		{"https://www.youtube.com/watch?list=PL123&v=abcDEF456gh", "abcDEF456gh"},
		{"https://youtu.be/m7lnIdudEy8?si=VE-14Y1Sk93RdA5u", "m7lnIdudEy8"},
		{"https://www.youtube.com/shorts/gGrqPbb6fuM", "gGrqPbb6fuM"},
		{"https://www.youtube.com/embed/EkDxsQRbIwoA", "EkDxsQRbIwoA"},
	}
	for _, tc := range cases {
		got, err := ExtractVideoID(tc.url)
		if err != nil {
			t.Fatalf("ExtractVideoID(%q): %v", tc.url, err)
		}
		if got != tc.want {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestExtractVideoID_NoMatch(t *testing.T) {
	if _, err := ExtractVideoID("https://example.com/watch"); err == nil {
		t.Error("expected error for non-video URL")
	}
}
