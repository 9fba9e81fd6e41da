package schemaorg

import "github.com/reoring/recipeld"

// GraphEntry is one member of an @graph array: a recipe, or a placeholder for
// any other object (WebPage, BreadcrumbList, Organization, ...). ID carries
// the placeholder's @id when it has one.
type GraphEntry struct {
	recipe *Recipe
	id     string
}

// Recipe returns the decoded recipe, or false for a placeholder.
func (g GraphEntry) Recipe() (Recipe, bool) { return deref(g.recipe) }

// ID returns the placeholder's @id ("" for recipes or when absent).
func (g GraphEntry) ID() string { return g.id }

var graphEntryCandidates = []candidate[GraphEntry]{
	{name: "recipe", decode: func(v any, at recipeld.PathRef) (GraphEntry, bool) {
		r, iss := decodeRecipe(v, at)
		return GraphEntry{recipe: &r}, len(iss) == 0
	}},
	{name: "placeholder", decode: func(v any, _ recipeld.PathRef) (GraphEntry, bool) {
		m, ok := asObject(v)
		if !ok {
			return GraphEntry{}, false
		}
		id, _ := asString(m["@id"])
		return GraphEntry{id: id}, true
	}},
}

// SchemaItem is a top-level JSON-LD object: a recipe, or a placeholder
// carrying the object's @context when it is a string.
type SchemaItem struct {
	recipe  *Recipe
	context string
}

// Recipe returns the decoded recipe, or false for a placeholder.
func (s SchemaItem) Recipe() (Recipe, bool) { return deref(s.recipe) }

// Context returns the placeholder's @context ("" for recipes or when absent
// or not a string).
func (s SchemaItem) Context() string { return s.context }

var schemaItemCandidates = []candidate[SchemaItem]{
	{name: "recipe", decode: func(v any, at recipeld.PathRef) (SchemaItem, bool) {
		r, iss := decodeRecipe(v, at)
		return SchemaItem{recipe: &r}, len(iss) == 0
	}},
	{name: "placeholder", decode: func(v any, _ recipeld.PathRef) (SchemaItem, bool) {
		m, ok := asObject(v)
		if !ok {
			return SchemaItem{}, false
		}
		ctx, _ := asString(m["@context"])
		return SchemaItem{context: ctx}, true
	}},
}

func decodeSchemaItem(v any, at recipeld.PathRef) (SchemaItem, bool) {
	item, err := firstMatch(v, at, schemaItemCandidates)
	return item, err == nil
}

// EnvelopeKind identifies the document-level shape.
type EnvelopeKind int

const (
	EnvelopeGraph  EnvelopeKind = iota // {"@graph": [...]}
	EnvelopeSingle                     // one object
	EnvelopeMulti                      // an array of objects
)

// SchemaEntry is one decoded JSON-LD document.
type SchemaEntry struct {
	kind   EnvelopeKind
	graph  []GraphEntry
	single SchemaItem
	multi  []SchemaItem
}

func (e SchemaEntry) Kind() EnvelopeKind { return e.kind }

// Graph returns the @graph members when the document was graph-wrapped.
func (e SchemaEntry) Graph() ([]GraphEntry, bool) {
	if e.kind != EnvelopeGraph {
		return nil, false
	}
	return append([]GraphEntry{}, e.graph...), true
}

// Item returns the lone item of a single-object document.
func (e SchemaEntry) Item() (SchemaItem, bool) {
	return e.single, e.kind == EnvelopeSingle
}

// Items returns the items of an array document.
func (e SchemaEntry) Items() ([]SchemaItem, bool) {
	if e.kind != EnvelopeMulti {
		return nil, false
	}
	return append([]SchemaItem{}, e.multi...), true
}

// ExtractRecipes returns every recipe in source order, dropping placeholders.
// Duplicates are kept.
func (e SchemaEntry) ExtractRecipes() []Recipe {
	var out []Recipe
	switch e.kind {
	case EnvelopeGraph:
		for _, g := range e.graph {
			if r, ok := g.Recipe(); ok {
				out = append(out, r)
			}
		}
	case EnvelopeSingle:
		if r, ok := e.single.Recipe(); ok {
			out = append(out, r)
		}
	case EnvelopeMulti:
		for _, it := range e.multi {
			if r, ok := it.Recipe(); ok {
				out = append(out, r)
			}
		}
	}
	return out
}

var _ recipeld.Extractor[Recipe] = SchemaEntry{}

var envelopeCandidates = []candidate[SchemaEntry]{
	{name: "@graph container", decode: func(v any, at recipeld.PathRef) (SchemaEntry, bool) {
		m, ok := asObject(v)
		if !ok {
			return SchemaEntry{}, false
		}
		raw, ok := m["@graph"]
		if !ok {
			return SchemaEntry{}, false
		}
		entries, ok := eachOf(raw, at.Field("@graph"), func(e any, p recipeld.PathRef) (GraphEntry, bool) {
			g, err := firstMatch(e, p, graphEntryCandidates)
			return g, err == nil
		})
		return SchemaEntry{kind: EnvelopeGraph, graph: entries}, ok
	}},
	{name: "single item", decode: func(v any, at recipeld.PathRef) (SchemaEntry, bool) {
		item, ok := decodeSchemaItem(v, at)
		return SchemaEntry{kind: EnvelopeSingle, single: item}, ok
	}},
	{name: "sequence of items", decode: func(v any, at recipeld.PathRef) (SchemaEntry, bool) {
		items, ok := eachOf(v, at, decodeSchemaItem)
		return SchemaEntry{kind: EnvelopeMulti, multi: items}, ok
	}},
}

// SchemaEntryCandidates lists the document shapes tried, in order.
func SchemaEntryCandidates() []string { return candidateNames(envelopeCandidates) }

// DecodeSchemaEntry resolves an already-parsed generic JSON value.
func DecodeSchemaEntry(v any) (SchemaEntry, error) {
	return firstMatch(v, recipeld.Root(), envelopeCandidates)
}
