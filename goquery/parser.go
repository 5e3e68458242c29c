// Package goquery implements urlinfo.Parser and urlinfo.Document on top of
// goquery. Parsing follows the HTML5 tree construction rules, so malformed
// markup never fails.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/urlinfo"
)

// Ensure Parser implements urlinfo.Parser at compile time.
var _ urlinfo.Parser = (*Parser)(nil)

// Parser builds goquery-backed documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a Document from raw. Only empty input is rejected.
func (p *Parser) Parse(raw *urlinfo.RawDocument) (urlinfo.Document, error) {
	if raw == nil || strings.TrimSpace(raw.HTML) == "" {
		return nil, urlinfo.Errorf(urlinfo.EPARSE, "empty document")
	}

	origin, err := originOf(raw.URL)
	if err != nil {
		return nil, urlinfo.Errorf(urlinfo.EINVALID, "invalid source URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw.HTML))
	if err != nil {
		return nil, urlinfo.Errorf(urlinfo.EPARSE, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc, origin: origin}, nil
}

// originOf returns scheme://host[:port] of rawURL.
func originOf(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, urlinfo.Errorf(urlinfo.EINVALID, "url %q has no origin", rawURL)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}
