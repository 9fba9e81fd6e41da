package yaml_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/reoring/recipeld"
	yamlsrc "github.com/reoring/recipeld/source/yaml"
)

func TestYAMLSource_Scalars(t *testing.T) {
	doc := `
name: Soup
servings: 4
ratio: 0.5
vegan: true
note: ~
steps: [boil, "serve"]
quoted: "12"
`
	v, err := recipeld.DecodeAny(yamlsrc.NewBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{
		"name":     "Soup",
		"servings": json.Number("4"),
		"ratio":    json.Number("0.5"),
		"vegan":    true,
		"note":     nil,
		"steps":    []any{"boil", "serve"},
		"quoted":   "12",
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v\nwant %#v", v, want)
	}
}

func TestYAMLSource_Aliases(t *testing.T) {
	doc := `
base: &b {text: Stir}
steps: [*b, *b]
`
	v, err := recipeld.DecodeAny(yamlsrc.NewBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	steps := v.(map[string]any)["steps"].([]any)
	if len(steps) != 2 || !reflect.DeepEqual(steps[0], map[string]any{"text": "Stir"}) {
		t.Fatalf("steps: %#v", steps)
	}
}

func TestYAMLSource_Errors(t *testing.T) {
	_, err := recipeld.DecodeAny(yamlsrc.NewBytes(nil))
	iss, ok := recipeld.AsIssues(err)
	if !ok || iss[0].Code != recipeld.CodeParseError {
		t.Fatalf("expected parse_error for empty document, got %v", err)
	}
	_, err = recipeld.DecodeAny(yamlsrc.NewBytes([]byte("a: [1, 2")))
	if iss, ok := recipeld.AsIssues(err); !ok || iss[0].Code != recipeld.CodeParseError {
		t.Fatalf("expected parse_error for bad yaml, got %v", err)
	}
}

func TestYAMLSource_DuplicateKeysFollowPolicy(t *testing.T) {
	doc := []byte("a: 1\na: 2\n")
	v, err := recipeld.DecodeAny(yamlsrc.NewBytes(doc))
	if err != nil {
		t.Fatalf("default policy must keep the last value: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"a": json.Number("2")}) {
		t.Fatalf("unexpected tree %#v", v)
	}

	opt := recipeld.ParseOpt{Strictness: recipeld.Strictness{OnDuplicateKey: recipeld.Error}}
	_, err = recipeld.DecodeAny(yamlsrc.NewBytes(doc), opt)
	iss, ok := recipeld.AsIssues(err)
	if !ok || iss[0].Code != recipeld.CodeDuplicateKey || iss[0].Path != "/a" {
		t.Fatalf("expected duplicate_key at /a, got %v", err)
	}
}
