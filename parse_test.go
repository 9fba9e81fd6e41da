package recipeld_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/recipeld"
	drvgojson "github.com/reoring/recipeld/source/gojson"
)

func TestDecodeAny_GenericTree(t *testing.T) {
	v, err := recipeld.DecodeAny(recipeld.JSONString(`{"a":[1,"x",true,null],"b":{}}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{
		"a": []any{json.Number("1"), "x", true, nil},
		"b": map[string]any{},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v want %#v", v, want)
	}
}

func TestDecodeAny_Float64Mode(t *testing.T) {
	src := recipeld.WithNumberMode(recipeld.JSONString(`[2.5]`), recipeld.NumberFloat64)
	v, err := recipeld.DecodeAny(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(v, []any{2.5}) {
		t.Fatalf("got %#v", v)
	}
}

func TestDecodeAny_TrailingData(t *testing.T) {
	_, err := recipeld.DecodeAny(recipeld.JSONString(`{"a":1} {"b":2}`))
	iss, ok := recipeld.AsIssues(err)
	if !ok || iss[0].Code != recipeld.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
	if !strings.Contains(iss[0].Hint, "trailing data") {
		t.Fatalf("hint: %q", iss[0].Hint)
	}
}

func TestDecodeAny_EmptyInput(t *testing.T) {
	_, err := recipeld.DecodeAny(recipeld.JSONString(""))
	iss, ok := recipeld.AsIssues(err)
	if !ok || iss[0].Code != recipeld.CodeParseError || iss[0].Hint != "unexpected end of input" {
		t.Fatalf("expected parse_error for empty input, got %v", err)
	}
}

func TestDecodeAny_NilSource(t *testing.T) {
	if _, err := recipeld.DecodeAny(nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestDecodeAny_DuplicateKey(t *testing.T) {
	opt := recipeld.ParseOpt{Strictness: recipeld.Strictness{OnDuplicateKey: recipeld.Error}}
	_, err := recipeld.DecodeAny(recipeld.JSONString(`[{"a":1,"a":2}]`), opt)
	iss, ok := recipeld.AsIssues(err)
	if !ok || iss[0].Code != recipeld.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %v", err)
	}
	if iss[0].Path != "/0/a" {
		t.Fatalf("expected path=/0/a, got %s", iss[0].Path)
	}
}

func TestDecodeAny_DuplicateKeyWarn(t *testing.T) {
	var seen []recipeld.Issue
	opt := recipeld.ParseOpt{
		Strictness: recipeld.Strictness{OnDuplicateKey: recipeld.Warn},
		OnIssue:    func(is recipeld.Issue) { seen = append(seen, is) },
	}
	if _, err := recipeld.DecodeAny(recipeld.JSONString(`{"a":1,"a":2}`), opt); err != nil {
		t.Fatalf("warn must not fail: %v", err)
	}
	if len(seen) != 1 || seen[0].Code != recipeld.CodeDuplicateKey || seen[0].Path != "/a" {
		t.Fatalf("expected one duplicate_key warning, got %+v", seen)
	}
}

func TestDecodeAny_MaxDepth(t *testing.T) {
	// depth = 3 for { a: { b: { c: 1 } } }
	js := `{"a":{"b":{"c":1}}}`
	if _, err := recipeld.DecodeAny(recipeld.JSONString(js), recipeld.ParseOpt{MaxDepth: 3}); err != nil {
		t.Fatalf("depth 3 should pass: %v", err)
	}
	_, err := recipeld.DecodeAny(recipeld.JSONString(js), recipeld.ParseOpt{MaxDepth: 2})
	iss, ok := recipeld.AsIssues(err)
	if !ok || iss[0].Code != recipeld.CodeParseError || iss[0].Hint != "max depth exceeded" {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestDecodeAny_MaxBytes(t *testing.T) {
	js := `{"name":"` + strings.Repeat("x", 64) + `"}`
	_, err := recipeld.DecodeAny(recipeld.JSONString(js), recipeld.ParseOpt{MaxBytes: 16})
	iss, ok := recipeld.AsIssues(err)
	if !ok || iss[0].Code != recipeld.CodeTruncated {
		t.Fatalf("expected truncated, got %v", err)
	}
}

func TestJSONDriver_Swap(t *testing.T) {
	if got := recipeld.CurrentJSONDriver().Name(); got != "encoding/json" {
		t.Fatalf("default driver: %s", got)
	}
	recipeld.SetJSONDriver(drvgojson.Driver())
	defer recipeld.UseDefaultJSONDriver()
	if got := recipeld.CurrentJSONDriver().Name(); got != "go-json" {
		t.Fatalf("driver after swap: %s", got)
	}
	v, err := recipeld.DecodeAny(recipeld.JSONString(`{"k":["v",2]}`))
	if err != nil {
		t.Fatalf("go-json decode: %v", err)
	}
	want := map[string]any{"k": []any{"v", json.Number("2")}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v", v)
	}
}

func TestIssues_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	iss := recipeld.Issues{
		{Code: recipeld.CodeRequired, Path: "/name"},
		{Code: recipeld.CodeParseError, Path: "/", Cause: cause},
		{Code: recipeld.CodeInvalidType, Path: "/a"},
		{Code: recipeld.CodeInvalidType, Path: "/b"},
	}
	if got := iss.Error(); got != "required at /name; parse_error at /; invalid_type at /a; ... (total 4)" {
		t.Fatalf("Error(): %q", got)
	}
	if !errors.Is(iss, cause) {
		t.Fatalf("errors.Is should see the cause")
	}
	if !iss.HasCode(recipeld.CodeParseError) || iss.HasCode(recipeld.CodeTruncated) {
		t.Fatalf("HasCode mismatch")
	}
	wrapped := errors.Join(errors.New("ctx"), iss)
	if got, ok := recipeld.AsIssues(wrapped); !ok || len(got) != 4 {
		t.Fatalf("AsIssues through wrap: %v", got)
	}
}

func TestPathRef(t *testing.T) {
	p := recipeld.Root().Field("recipeInstructions").Index(2).Field("a/b~c")
	if got := p.Pointer(); got != "/recipeInstructions/2/a~1b~0c" {
		t.Fatalf("pointer: %s", got)
	}
	if recipeld.Root().Pointer() != "/" {
		t.Fatalf("root pointer")
	}
	if recipeld.At("/x/0").Field("y").String() != "/x/0/y" {
		t.Fatalf("At roundtrip")
	}
}
