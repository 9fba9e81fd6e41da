package json_test

import (
	"errors"
	"io"
	"testing"

	eng "github.com/reoring/recipeld/internal/engine"
	jsonsrc "github.com/reoring/recipeld/source/json"
)

func TestJSON_TokensAndOffsets(t *testing.T) {
	src := jsonsrc.NewBytes([]byte(`{"k":["v",1.5,false]}`))
	want := []eng.Token{
		{Kind: eng.KindBeginObject},
		{Kind: eng.KindKey, String: "k"},
		{Kind: eng.KindBeginArray},
		{Kind: eng.KindString, String: "v"},
		{Kind: eng.KindNumber, Number: "1.5"},
		{Kind: eng.KindBool},
		{Kind: eng.KindEndArray},
		{Kind: eng.KindEndObject},
	}
	last := int64(-1)
	for i, w := range want {
		tok, err := src.NextToken()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Kind != w.Kind || tok.String != w.String || tok.Number != w.Number || tok.Bool != w.Bool {
			t.Fatalf("token %d: got %+v want %+v", i, tok, w)
		}
		if tok.Offset < last || src.Location() != tok.Offset {
			t.Fatalf("token %d: offset %d not monotonic (prev %d)", i, tok.Offset, last)
		}
		last = tok.Offset
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if src.Location() != 21 {
		t.Fatalf("expected final offset 21, got %d", src.Location())
	}
}

func TestJSON_SyntaxError(t *testing.T) {
	src := jsonsrc.NewBytes([]byte(`{"a" 1}`))
	var err error
	for i := 0; i < 4 && err == nil; i++ {
		_, err = src.NextToken()
	}
	if err == nil {
		t.Fatalf("expected syntax error")
	}
}
