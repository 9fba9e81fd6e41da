package gojson_test

import (
	"errors"
	"io"
	"testing"

	eng "github.com/reoring/recipeld/internal/engine"
	"github.com/reoring/recipeld/source/gojson"
)

func TestGoJSON_TokenKinds(t *testing.T) {
	src := gojson.NewBytes([]byte(`{"k":"v","n":[1,true,null],"o":{"k2":"s"}}`))
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindString,
		eng.KindKey, eng.KindBeginArray, eng.KindNumber, eng.KindBool, eng.KindNull, eng.KindEndArray,
		eng.KindKey, eng.KindBeginObject, eng.KindKey, eng.KindString, eng.KindEndObject,
		eng.KindEndObject,
	}
	for i, k := range want {
		tok, err := src.NextToken()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Kind != k {
			t.Fatalf("token %d: got kind %v want %v", i, tok.Kind, k)
		}
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if src.Location() != -1 {
		t.Fatalf("go-json source has no offsets")
	}
}

func TestGoJSON_DriverName(t *testing.T) {
	if gojson.Driver().Name() != "go-json" {
		t.Fatalf("unexpected name %q", gojson.Driver().Name())
	}
}
