package urlinfo

import (
	"fmt"
	"strings"
)

// FormatReport renders the plain-text report file contents: a source URL
// header followed by counted sections for links, titles, paragraphs and
// list items. Sections are separated by blank lines.
func FormatReport(r *Report) string {
	links := make([]string, 0, len(r.Links))
	for _, l := range r.Links {
		links = append(links, l.URL+" ("+l.Text+")")
	}

	sections := []string{
		"--- SOURCE URL ---\n" + r.SourceURL,
		formatSection("LINKS", links),
		formatSection("TITLES", r.Titles),
		formatSection("PARAGRAPHS", r.Paragraphs),
		formatSection("LIST ITEMS", r.ListItems),
	}

	return strings.Join(sections, "\n\n") + "\n"
}

func formatSection(label string, lines []string) string {
	header := fmt.Sprintf("--- %s (%d) ---", label, len(lines))
	if len(lines) == 0 {
		return header
	}
	return header + "\n" + strings.Join(lines, "\n")
}
