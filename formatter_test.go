package urlinfo_test

import (
	"testing"

	"github.com/fwojciec/urlinfo"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	t.Run("renders every section with counts", func(t *testing.T) {
		t.Parallel()

		report := &urlinfo.Report{
			SourceURL: "https://example.com/page",
			Links: []urlinfo.Link{
				{URL: "https://example.com/about", Text: "About"},
				{URL: "http://a.com", Text: "A", IsExternal: true},
			},
			Titles:     []string{"Title"},
			Paragraphs: []string{"1234567890a"},
			ListItems:  []string{"x", "y"},
		}

		result := urlinfo.FormatReport(report)

		expected := "--- SOURCE URL ---\n" +
			"https://example.com/page\n" +
			"\n" +
			"--- LINKS (2) ---\n" +
			"https://example.com/about (About)\n" +
			"http://a.com (A)\n" +
			"\n" +
			"--- TITLES (1) ---\n" +
			"Title\n" +
			"\n" +
			"--- PARAGRAPHS (1) ---\n" +
			"1234567890a\n" +
			"\n" +
			"--- LIST ITEMS (2) ---\n" +
			"x\n" +
			"y\n"
		assert.Equal(t, expected, result)
	})

	t.Run("renders empty sections with zero counts", func(t *testing.T) {
		t.Parallel()

		result := urlinfo.FormatReport(&urlinfo.Report{SourceURL: "https://example.com"})

		expected := "--- SOURCE URL ---\n" +
			"https://example.com\n" +
			"\n" +
			"--- LINKS (0) ---\n" +
			"\n" +
			"--- TITLES (0) ---\n" +
			"\n" +
			"--- PARAGRAPHS (0) ---\n" +
			"\n" +
			"--- LIST ITEMS (0) ---\n"
		assert.Equal(t, expected, result)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		report := &urlinfo.Report{
			SourceURL:  "https://example.com",
			Titles:     []string{"A", "B"},
			Paragraphs: []string{"first paragraph", "second paragraph"},
		}

		assert.Equal(t, urlinfo.FormatReport(report), urlinfo.FormatReport(report))
	})
}
