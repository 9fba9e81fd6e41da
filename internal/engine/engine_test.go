package engine

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

type sliceSource struct {
	toks []Token
	pos  int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *sliceSource) Location() int64 { return int64(s.pos * 10) }

func toks(ts ...Token) *sliceSource { return &sliceSource{toks: ts} }

var (
	bo = Token{Kind: KindBeginObject}
	eo = Token{Kind: KindEndObject}
	ba = Token{Kind: KindBeginArray}
	ea = Token{Kind: KindEndArray}
)

func key(s string) Token { return Token{Kind: KindKey, String: s} }
func str(s string) Token { return Token{Kind: KindString, String: s} }
func num(s string) Token { return Token{Kind: KindNumber, Number: s} }

func TestDecodeValue_Tree(t *testing.T) {
	src := toks(bo, key("a"), ba, num("1"), str("x"), Token{Kind: KindBool, Bool: true}, Token{Kind: KindNull}, ea, key("b"), ba, ea, eo)
	got, err := DecodeAnyFromSource(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"a": []any{json.Number("1"), "x", true, nil},
		"b": []any{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestDecodeValue_Float64(t *testing.T) {
	got, err := DecodeAnyFromSourceAsFloat64(toks(ba, num("2.5"), ea))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []any{2.5}) {
		t.Fatalf("got %#v", got)
	}
	if _, err := DecodeAnyFromSourceAsFloat64(toks(num("x"))); err == nil {
		t.Fatalf("expected number parse error")
	}
}

func TestDecodeValue_Truncated(t *testing.T) {
	_, err := DecodeAnyFromSource(toks(bo, key("a")))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
	if _, err := DecodeAnyFromSource(toks()); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF on empty input, got %v", err)
	}
}

func TestDecodeValue_MisplacedToken(t *testing.T) {
	_, err := DecodeAnyFromSource(toks(bo, str("a"), eo))
	if err == nil || !strings.Contains(err.Error(), "unexpected token string") {
		t.Fatalf("expected misplaced token error, got %v", err)
	}
	_, err = DecodeAnyFromSource(toks(ea))
	if err == nil || !strings.Contains(err.Error(), "unexpected token ]") {
		t.Fatalf("expected misplaced token error, got %v", err)
	}
}

func TestKind_String(t *testing.T) {
	if KindKey.String() != "key" || Kind(99).String() != "kind(99)" {
		t.Fatalf("unexpected kind names")
	}
}
