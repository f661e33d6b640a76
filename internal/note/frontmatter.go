// Package note builds and renders bookmark notes: frontmatter merging, embed
// snippets, and the final Markdown content.
package note

import (
	"fmt"
	"time"

	"github.com/scottidler/obsidian-bookmark/internal/parser"
)

// Frontmatter is the structured metadata block prefixed to a note. Two
// instances interact per request: the configured default (process-wide,
// read-only) and the computed one built from the request and fetched metadata.
type Frontmatter struct {
	Date      string   `yaml:"date"`
	Day       string   `yaml:"day"`
	Time      string   `yaml:"time"`
	Tags      []string `yaml:"tags"`
	URL       string   `yaml:"url"`
	Author    string   `yaml:"author"`
	Published string   `yaml:"published"`
}

// Clock supplies the date/day/time stamps used as merge fallbacks, pinned to a
// fixed reference time zone. Now is a field so tests can freeze it.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

// NewClock builds a Clock for the given IANA time zone name.
func NewClock(tz string) (*Clock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return &Clock{Location: loc, Now: time.Now}, nil
}

// Today returns the current date (2006-01-02), weekday (Mon), and time (15:04)
// in the clock's zone.
func (c *Clock) Today() (date, day, tm string) {
	now := c.Now().In(c.Location)
	return now.Format("2006-01-02"), now.Format("Mon"), now.Format("15:04")
}

// Merge resolves each scalar field independently: the computed value wins if
// non-empty, else the configured default, else the fallback. The fallback for
// date/day/time is the current clock reading; url/author/published fall back to
// the computed value itself and may legitimately stay empty. Tags are never a
// precedence choice: the result is the sanitized, sorted union of both sets.
func Merge(computed, def Frontmatter, clock *Clock) Frontmatter {
	date, day, tm := clock.Today()
	return Frontmatter{
		Date:      firstNonEmpty(computed.Date, def.Date, date),
		Day:       firstNonEmpty(computed.Day, def.Day, day),
		Time:      firstNonEmpty(computed.Time, def.Time, tm),
		Tags:      parser.ConsolidateTags(computed.Tags, def.Tags),
		URL:       firstNonEmpty(computed.URL, def.URL),
		Author:    firstNonEmpty(computed.Author, def.Author),
		Published: firstNonEmpty(computed.Published, def.Published),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
