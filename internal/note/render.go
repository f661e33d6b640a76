package note

import (
	"fmt"
	"path"
	"strings"

	"github.com/scottidler/obsidian-bookmark/internal/parser"
)

// Note is a rendered bookmark note ready to be written. Path is relative to
// the vault root.
type Note struct {
	Path    string
	Content string
}

// Render derives the note path from the sanitized title and assembles the
// frontmatter block, embed snippet, and description into the note content.
func Render(title, description, embed, folder string, fm Frontmatter) Note {
	name := parser.SanitizeFilename(title) + ".md"

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "date: %s\n", fm.Date)
	fmt.Fprintf(&b, "day: %s\n", fm.Day)
	fmt.Fprintf(&b, "time: %s\n", fm.Time)
	b.WriteString("tags:\n")
	for _, tag := range fm.Tags {
		fmt.Fprintf(&b, "  - %s\n", parser.SanitizeTag(tag))
	}
	fmt.Fprintf(&b, "url: %s\n", fm.URL)
	fmt.Fprintf(&b, "author: %s\n", fm.Author)
	fmt.Fprintf(&b, "published: %s\n", fm.Published)
	b.WriteString("type: link\n")
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "%s\n\n## Description\n%s", embed, description)

	return Note{
		Path:    path.Join(folder, name),
		Content: b.String(),
	}
}
