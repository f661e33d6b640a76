// Package parser implements the title/tag extraction grammar and tag sanitization.
package parser

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	// Matches a case-insensitive "(1)" marker (plus trailing whitespace) or a
	// #hashtag token; the hashtag word is captured without the #.
	markerRe     = regexp.MustCompile(`(?i)\(1\)\s*|#(\w+)`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// ExtractTitleTags parses raw title text (user- or provider-supplied) into a
// cleaned title and the hashtag words found in it, in order of appearance.
// The tags are neither deduplicated nor sanitized here.
func ExtractTitleTags(text string) (string, []string) {
	if strings.HasPrefix(text, "(2) ") {
		text = text[4:]
	}
	if i := strings.LastIndex(text, " - YouTube"); i >= 0 {
		text = text[:i]
	}

	var tags []string
	for _, m := range markerRe.FindAllStringSubmatch(text, -1) {
		if m[1] != "" {
			tags = append(tags, m[1])
		}
	}
	title := markerRe.ReplaceAllString(text, "")
	title = strings.Join(strings.Fields(title), " ")
	return title, tags
}

// SanitizeTag makes a tag filesystem- and YAML-safe: apostrophes are dropped,
// every character that is neither alphanumeric nor whitespace becomes a hyphen,
// whitespace becomes hyphens, and the result is lower-cased. Idempotent.
func SanitizeTag(tag string) string {
	tag = strings.ReplaceAll(tag, "'", "")
	var b strings.Builder
	b.Grow(len(tag))
	for _, r := range tag {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.ToLower(b.String())
}

// ConsolidateTags unions tag groups as a set (case-sensitive, before
// sanitization), sanitizes each survivor, and sorts the result. Tags that are
// distinct before sanitization but collide after are kept as duplicates.
func ConsolidateTags(groups ...[]string) []string {
	seen := make(map[string]struct{})
	var raw []string
	for _, group := range groups {
		for _, tag := range group {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			raw = append(raw, tag)
		}
	}
	out := make([]string, len(raw))
	for i, tag := range raw {
		out[i] = SanitizeTag(tag)
	}
	sort.Strings(out)
	return out
}

// SanitizeFilename reduces a title to a filename-safe form: only alphanumeric
// characters, whitespace, and hyphens are kept, and runs of two or more
// whitespace characters collapse to a single space.
func SanitizeFilename(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return multiSpaceRe.ReplaceAllString(b.String(), " ")
}
