// Package recipeld decodes schema.org Recipe metadata published as JSON-LD.
//
// The root package holds the plumbing shared by every decoder:
//
// - Issues: the structured error model (JSON Pointer, code, message, hint)
// - Source/JSONDriver: pluggable token sources (encoding/json by default,
// goccy/go-json after importing recipeld/source, YAML via source/yaml)
// - DecodeAny: one JSON value into a generic tree with optional depth, size,
// and duplicate-key enforcement
// - Extractor/Scraper: the capability interfaces implemented by schemaorg
//
// The schema.org model and its tolerant decoders live in schemaorg; the ISO-8601
// duration codec lives in codec.
//
// Typical usage:
//
//	entries := schemaorg.ScrapeHTML(page)
//	recipes := recipeld.ExtractAll[schemaorg.Recipe](entries)
//
//	entry, err := schemaorg.FromJSONBytes(data)
//	if iss, ok := recipeld.AsIssues(err); ok { ... }
package recipeld
