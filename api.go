package recipeld

import "context"

// Extractor pulls normalized records out of an already decoded envelope.
type Extractor[T any] interface {
	ExtractRecipes() []T
}

// Scraper pulls decoded envelopes out of an HTML document. Blocks that fail to
// decode are dropped; implementations do not report which block failed.
type Scraper[T any] interface {
	ScrapeHTML(html string) []T
}

// ExtractAll flattens the records of several envelopes, preserving order.
func ExtractAll[T any, E Extractor[T]](entries []E) []T {
	var out []T
	for _, e := range entries {
		out = append(out, e.ExtractRecipes()...)
	}
	return out
}

// Codec performs bidirectional transformation between the wire representation
// A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // wire -> domain.
	Encode(ctx context.Context, b B) (A, error) // domain -> wire, re-validated.
}
