package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/urlinfo"
)

// Ensure Document implements urlinfo.Document at compile time.
var _ urlinfo.Document = (*Document)(nil)

// schemePrefix matches hrefs that start with an explicit scheme.
var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// Document is a parsed page. Extractors only read the tree.
type Document struct {
	doc    *goquery.Document
	origin *url.URL
}

// Origin returns the scheme and host that relative links resolve against.
func (d *Document) Origin() string {
	return d.origin.String()
}

// Links returns every anchor with an href, resolved against the origin and
// deduplicated by absolute URL. The first occurrence wins.
func (d *Document) Links() []urlinfo.Link {
	seen := make(map[string]struct{})
	links := []urlinfo.Link{}

	d.doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)

		resolved, ok := d.resolve(href)
		if !ok {
			return
		}
		if _, dup := seen[resolved]; dup {
			return
		}
		seen[resolved] = struct{}{}

		text := strings.TrimSpace(sel.Text())
		if text == "" {
			text = urlinfo.NoLinkText
		}

		links = append(links, urlinfo.Link{
			URL:        resolved,
			Text:       text,
			IsExternal: schemePrefix.MatchString(href),
		})
	})

	return links
}

// resolve resolves href against the document origin. Unparseable hrefs
// are reported as not ok. Hosts are case-insensitive, so they are lowered
// to give one key per absolute URL.
func (d *Document) resolve(href string) (string, bool) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	u := d.origin.ResolveReference(ref)
	u.Host = strings.ToLower(u.Host)
	return u.String(), true
}

// Headings returns non-empty h1-h6 elements in document order.
func (d *Document) Headings() []urlinfo.Heading {
	headings := []urlinfo.Heading{}

	d.doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		name := goquery.NodeName(sel)
		headings = append(headings, urlinfo.Heading{
			Level: int(name[1] - '0'),
			Text:  text,
		})
	})

	return headings
}

// Paragraphs returns p elements longer than urlinfo.MinParagraphLength
// characters after trimming.
func (d *Document) Paragraphs() []string {
	paragraphs := []string{}

	d.doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) <= urlinfo.MinParagraphLength {
			return
		}
		paragraphs = append(paragraphs, text)
	})

	return paragraphs
}

// ListItems returns non-empty li elements of ordered and unordered lists.
func (d *Document) ListItems() []string {
	items := []string{}

	d.doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		items = append(items, text)
	})

	return items
}
