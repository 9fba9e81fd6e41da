package schemaorg

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/kaptinlin/jsonrepair"
	"golang.org/x/net/html"

	"github.com/reoring/recipeld"
)

var ldJSONSelector = cascadia.MustCompile(`script[type="application/ld+json"]`)

// ScrapeOption configures an HTMLScraper.
type ScrapeOption func(*HTMLScraper)

// WithRepair retries blocks that fail to parse after running them through
// jsonrepair (trailing commas, single quotes, unquoted keys). Blocks that
// parse but match no envelope shape are not repaired.
func WithRepair() ScrapeOption {
	return func(s *HTMLScraper) { s.repair = true }
}

// WithParseOpt applies parse limits to every block.
func WithParseOpt(opt recipeld.ParseOpt) ScrapeOption {
	return func(s *HTMLScraper) { s.parse = opt }
}

// HTMLScraper extracts JSON-LD envelopes from HTML documents.
type HTMLScraper struct {
	repair bool
	parse  recipeld.ParseOpt
}

func NewHTMLScraper(opts ...ScrapeOption) HTMLScraper {
	var s HTMLScraper
	for _, o := range opts {
		o(&s)
	}
	return s
}

var _ recipeld.Scraper[SchemaEntry] = HTMLScraper{}

// ScrapeHTML decodes every application/ld+json script block in document
// order. Blocks that fail to decode are dropped; the result may be empty.
func (s HTMLScraper) ScrapeHTML(doc string) []SchemaEntry {
	out, _ := s.ScrapeReader(strings.NewReader(doc))
	return out
}

// ScrapeReader is ScrapeHTML over a reader. The error reports only failures
// to read r.
func (s HTMLScraper) ScrapeReader(r io.Reader) ([]SchemaEntry, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	var out []SchemaEntry
	goquery.NewDocumentFromNode(root).FindMatcher(ldJSONSelector).Each(func(_ int, sel *goquery.Selection) {
		if e, ok := s.decodeBlock(sel.Text()); ok {
			out = append(out, e)
		}
	})
	return out, nil
}

func (s HTMLScraper) decodeBlock(text string) (SchemaEntry, bool) {
	e, err := FromJSONString(text, s.parse)
	if err == nil {
		return e, true
	}
	if !s.repair {
		return SchemaEntry{}, false
	}
	if iss, ok := recipeld.AsIssues(err); !ok || !iss.HasCode(recipeld.CodeParseError) {
		return SchemaEntry{}, false
	}
	fixed, rerr := jsonrepair.JSONRepair(text)
	if rerr != nil {
		return SchemaEntry{}, false
	}
	e, err = FromJSONString(fixed, s.parse)
	return e, err == nil
}

// ScrapeHTML scrapes doc with a scraper built from opts.
func ScrapeHTML(doc string, opts ...ScrapeOption) []SchemaEntry {
	return NewHTMLScraper(opts...).ScrapeHTML(doc)
}

// ScrapeHTMLReader scrapes an HTML document read from r.
func ScrapeHTMLReader(r io.Reader, opts ...ScrapeOption) ([]SchemaEntry, error) {
	return NewHTMLScraper(opts...).ScrapeReader(r)
}
