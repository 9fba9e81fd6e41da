package schemaorg_test

import (
	"testing"

	"github.com/reoring/recipeld"
	"github.com/reoring/recipeld/schemaorg"
)

func recipeJSON(name string) string {
	return `{"@type":"Recipe","name":"` + name + `","description":"d","recipeIngredient":["x"]}`
}

func names(rs []schemaorg.Recipe) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name()
	}
	return out
}

func TestEnvelope_GraphSkipsPlaceholders(t *testing.T) {
	js := `{"@context":"https://schema.org","@graph":[` +
		`{"@type":"WebPage","@id":"https://example.com/#webpage"},` +
		recipeJSON("First") + `,` +
		`{"@id":"https://example.com/#org"},` +
		recipeJSON("Second") + `]}`
	e, err := schemaorg.DecodeSchemaEntry(mustValue(t, js))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if e.Kind() != schemaorg.EnvelopeGraph {
		t.Fatalf("expected graph, got %v", e.Kind())
	}
	graph, _ := e.Graph()
	if len(graph) != 4 || graph[0].ID() != "https://example.com/#webpage" {
		t.Fatalf("graph: %+v", graph)
	}
	got := names(e.ExtractRecipes())
	if len(got) != 2 || got[0] != "First" || got[1] != "Second" {
		t.Fatalf("recipes out of order: %v", got)
	}
}

func TestEnvelope_GraphRecipeAndIDOnly(t *testing.T) {
	js := `{"@graph":[` + recipeJSON("Only") + `,{"@id":"#x"}]}`
	e, err := schemaorg.DecodeSchemaEntry(mustValue(t, js))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rs := e.ExtractRecipes(); len(rs) != 1 || rs[0].Name() != "Only" {
		t.Fatalf("expected one recipe, got %v", names(rs))
	}
}

func TestEnvelope_BrokenRecipeInGraphIsPlaceholder(t *testing.T) {
	js := `{"@graph":[{"@type":"Recipe","name":"no ingredients","description":"d"},` + recipeJSON("ok") + `]}`
	e, err := schemaorg.DecodeSchemaEntry(mustValue(t, js))
	if err != nil {
		t.Fatalf("a sibling must not fail the envelope: %v", err)
	}
	if got := names(e.ExtractRecipes()); len(got) != 1 || got[0] != "ok" {
		t.Fatalf("recipes: %v", got)
	}
}

func TestEnvelope_SingleAndMulti(t *testing.T) {
	e, err := schemaorg.DecodeSchemaEntry(mustValue(t, recipeJSON("Solo")))
	if err != nil || e.Kind() != schemaorg.EnvelopeSingle {
		t.Fatalf("single: %v %v", e.Kind(), err)
	}
	if got := names(e.ExtractRecipes()); len(got) != 1 || got[0] != "Solo" {
		t.Fatalf("single recipes: %v", got)
	}

	e, err = schemaorg.DecodeSchemaEntry(mustValue(t, `[{"@context":"https://schema.org","@type":"Organization"},`+recipeJSON("A")+`,`+recipeJSON("A")+`]`))
	if err != nil || e.Kind() != schemaorg.EnvelopeMulti {
		t.Fatalf("multi: %v %v", e.Kind(), err)
	}
	items, _ := e.Items()
	if items[0].Context() != "https://schema.org" {
		t.Fatalf("context: %q", items[0].Context())
	}
	if got := names(e.ExtractRecipes()); len(got) != 2 {
		t.Fatalf("duplicates must be kept: %v", got)
	}
}

func TestEnvelope_NonRecipeObjectIsPlaceholder(t *testing.T) {
	e, err := schemaorg.DecodeSchemaEntry(mustValue(t, `{"@context":"https://schema.org","@type":"BreadcrumbList"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	item, ok := e.Item()
	if !ok || item.Context() != "https://schema.org" {
		t.Fatalf("item: %+v", item)
	}
	if len(e.ExtractRecipes()) != 0 {
		t.Fatalf("expected no recipes")
	}
}

func TestEnvelope_GraphMustBeArray(t *testing.T) {
	e, err := schemaorg.DecodeSchemaEntry(mustValue(t, `{"@graph":{"@type":"Recipe"}}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if e.Kind() != schemaorg.EnvelopeSingle {
		t.Fatalf("non-array @graph should fall through to single item, got %v", e.Kind())
	}
}

func TestEnvelope_ScalarNoMatch(t *testing.T) {
	_, err := schemaorg.DecodeSchemaEntry(mustValue(t, `42`))
	iss, ok := recipeld.AsIssues(err)
	if !ok || iss[0].Code != recipeld.CodeUnionNoMatch {
		t.Fatalf("expected union_no_match, got %v", err)
	}
}

func TestExtractAll(t *testing.T) {
	a, _ := schemaorg.DecodeSchemaEntry(mustValue(t, recipeJSON("A")))
	b, _ := schemaorg.DecodeSchemaEntry(mustValue(t, `[`+recipeJSON("B")+`,`+recipeJSON("C")+`]`))
	got := names(recipeld.ExtractAll[schemaorg.Recipe]([]schemaorg.SchemaEntry{a, b}))
	if len(got) != 3 || got[0] != "A" || got[2] != "C" {
		t.Fatalf("ExtractAll: %v", got)
	}
}
