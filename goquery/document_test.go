package goquery_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/urlinfo"
	"github.com/fwojciec/urlinfo/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, sourceURL, html string) urlinfo.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse(&urlinfo.RawDocument{URL: sourceURL, HTML: html})
	require.NoError(t, err)
	return doc
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().Parse(&urlinfo.RawDocument{URL: "https://example.com", HTML: ""})

		require.Error(t, err)
		assert.Equal(t, urlinfo.EPARSE, urlinfo.ErrorCode(err))
	})

	t.Run("rejects whitespace-only input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().Parse(&urlinfo.RawDocument{URL: "https://example.com", HTML: " \n\t "})

		assert.Equal(t, urlinfo.EPARSE, urlinfo.ErrorCode(err))
	})

	t.Run("rejects source url without origin", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().Parse(&urlinfo.RawDocument{URL: "/relative", HTML: "<p>hi</p>"})

		assert.Equal(t, urlinfo.EINVALID, urlinfo.ErrorCode(err))
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<div><p>Unclosed paragraph text<ul><li>one<li>two</ul><h2>Heading <b>bold</h2><unknown-tag>x</div></span>`

		doc := parse(t, "https://example.com", html)

		assert.Equal(t, []string{"Unclosed paragraph text"}, doc.Paragraphs())
		assert.Equal(t, []string{"one", "two"}, doc.ListItems())
		assert.Equal(t, []urlinfo.Heading{{Level: 2, Text: "Heading bold"}}, doc.Headings())
	})

	t.Run("keeps only the origin of the source url", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(&urlinfo.RawDocument{URL: "https://example.com:8443/a/b?q=1#x", HTML: "<p>x</p>"})
		require.NoError(t, err)

		assert.Equal(t, "https://example.com:8443", doc.(*goquery.Document).Origin())
	})
}

func TestDocument_Links(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative href against origin", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://example.com/page", `<a href="/about">About</a>`)

		assert.Equal(t, []urlinfo.Link{
			{URL: "https://example.com/about", Text: "About", IsExternal: false},
		}, doc.Links())
	})

	t.Run("ignores the source path when resolving", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://example.com/docs/guide/intro", `<a href="next">Next</a>`)

		links := doc.Links()
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/next", links[0].URL)
	})

	t.Run("deduplicates by absolute url keeping first occurrence", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<a href="/same">First</a>
			<a href="https://example.com/same">Second</a>
			<a href="/same">Third</a>
			<a href="https://EXAMPLE.com/same">Upper host</a>
			<a href="/other">Other</a>
			<a href="https://external.org/">External</a>
			<a href="HTTPS://External.ORG/">External again</a>
		</body>`

		doc := parse(t, "https://example.com/page", html)

		assert.Equal(t, []urlinfo.Link{
			{URL: "https://example.com/same", Text: "First"},
			{URL: "https://example.com/other", Text: "Other"},
			{URL: "https://external.org/", Text: "External", IsExternal: true},
		}, doc.Links())
	})

	t.Run("classifies external links by explicit scheme", func(t *testing.T) {
		t.Parallel()

		html := `<a href="http://a.com">A</a>
			<a href="mailto:team@example.com">Mail</a>
			<a href="//cdn.example.net/x">Protocol relative</a>
			<a href="relative/path">Relative</a>`

		doc := parse(t, "https://example.com", html)

		links := doc.Links()
		require.Len(t, links, 4)
		assert.Equal(t, urlinfo.Link{URL: "http://a.com", Text: "A", IsExternal: true}, links[0])
		assert.Equal(t, urlinfo.Link{URL: "mailto:team@example.com", Text: "Mail", IsExternal: true}, links[1])
		assert.Equal(t, urlinfo.Link{URL: "https://cdn.example.net/x", Text: "Protocol relative"}, links[2])
		assert.Equal(t, urlinfo.Link{URL: "https://example.com/relative/path", Text: "Relative"}, links[3])
	})

	t.Run("substitutes placeholder for empty anchor text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://example.com", `<a href="/img"><img src="x.png"></a><a href="/blank">   </a>`)

		links := doc.Links()
		require.Len(t, links, 2)
		assert.Equal(t, urlinfo.NoLinkText, links[0].Text)
		assert.Equal(t, urlinfo.NoLinkText, links[1].Text)
	})

	t.Run("trims anchor text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://example.com", "<a href=\"/x\">\n   Spaced out \t</a>")

		assert.Equal(t, "Spaced out", doc.Links()[0].Text)
	})

	t.Run("skips anchors without href and unparseable hrefs", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://example.com", `<a name="top">Top</a><a href="http://[::1">Broken</a><a href="/ok">OK</a>`)

		assert.Equal(t, []urlinfo.Link{{URL: "https://example.com/ok", Text: "OK"}}, doc.Links())
	})

	t.Run("returns empty slice when page has no links", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://example.com", `<p>No links here at all.</p>`)

		links := doc.Links()
		assert.NotNil(t, links)
		assert.Empty(t, links)
	})
}

func TestDocument_Headings(t *testing.T) {
	t.Parallel()

	t.Run("returns all levels in document order", func(t *testing.T) {
		t.Parallel()

		html := `<h3>Three</h3><h1>One</h1><h6>Six</h6><h2> Two </h2><h4>Four</h4><h5>Five</h5>`

		doc := parse(t, "https://example.com", html)

		assert.Equal(t, []urlinfo.Heading{
			{Level: 3, Text: "Three"},
			{Level: 1, Text: "One"},
			{Level: 6, Text: "Six"},
			{Level: 2, Text: "Two"},
			{Level: 4, Text: "Four"},
			{Level: 5, Text: "Five"},
		}, doc.Headings())
	})

	t.Run("skips empty headings", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "https://example.com", `<h1>  </h1><h2></h2><h2>Kept</h2>`)

		assert.Equal(t, []urlinfo.Heading{{Level: 2, Text: "Kept"}}, doc.Headings())
	})
}

func TestDocument_Paragraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "five characters are dropped", text: "12345", want: false},
		{name: "exactly ten characters are dropped", text: "1234567890", want: false},
		{name: "eleven characters are kept", text: "1234567890a", want: true},
		{name: "surrounding whitespace does not count", text: "   1234567890   ", want: false},
		{name: "characters are counted not bytes", text: "ééééééééééé", want: true},
		{name: "ten multibyte characters are dropped", text: "éééééééééé", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, "https://example.com", "<p>"+tt.text+"</p>")

			paragraphs := doc.Paragraphs()
			if tt.want {
				require.Len(t, paragraphs, 1)
				assert.Equal(t, tt.text, paragraphs[0])
			} else {
				assert.Empty(t, paragraphs)
			}
		})
	}
}

func TestDocument_ListItems(t *testing.T) {
	t.Parallel()

	t.Run("collects items from ordered and unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>alpha</li><li> </li></ul><ol><li>beta</li></ol><li>gamma</li>`

		doc := parse(t, "https://example.com", html)

		assert.Equal(t, []string{"alpha", "beta", "gamma"}, doc.ListItems())
	})
}

func TestDocument_ConcurrentExtraction(t *testing.T) {
	t.Parallel()

	html := `<h1>Title</h1><p>1234567890a</p><ul><li>x</li></ul><a href="http://a.com">A</a>`
	doc := parse(t, "https://example.com", html)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, doc.Links(), 1)
			assert.Len(t, doc.Headings(), 1)
			assert.Len(t, doc.Paragraphs(), 1)
			assert.Len(t, doc.ListItems(), 1)
		}()
	}
	wg.Wait()
}
