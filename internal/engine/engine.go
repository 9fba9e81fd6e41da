// Package engine turns a stream of JSON-shaped tokens into a generic value
// tree and enforces input limits while doing so. Token producers (the JSON
// drivers and the YAML source) live outside this package.
package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

var kindNames = [...]string{"{", "}", "[", "]", "key", "string", "number", "bool", "null"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string // literal text; the decoder picks the Go representation
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// NumberConv converts a number literal into its tree representation.
type NumberConv func(literal string) (any, error)

// AsJSONNumber keeps number literals as json.Number.
func AsJSONNumber(s string) (any, error) { return json.Number(s), nil }

// AsFloat64 parses number literals as float64.
func AsFloat64(s string) (any, error) { return strconv.ParseFloat(s, 64) }

// DecodeAnyFromSource reads one value with numbers kept as json.Number.
func DecodeAnyFromSource(src TokenSource) (any, error) {
	return DecodeValue(src, AsJSONNumber)
}

// DecodeAnyFromSourceAsFloat64 reads one value with numbers as float64.
func DecodeAnyFromSourceAsFloat64(src TokenSource) (any, error) {
	return DecodeValue(src, AsFloat64)
}

// DecodeValue reads exactly one value from src into map[string]any, []any,
// string, bool, nil or whatever conv returns for numbers. Empty arrays decode
// to a non-nil empty slice. It does not look past the value.
func DecodeValue(src TokenSource, conv NumberConv) (any, error) {
	d := treeDecoder{src: src, conv: conv}
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	return d.value(tok)
}

type treeDecoder struct {
	src  TokenSource
	conv NumberConv
}

func (d treeDecoder) value(tok Token) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return d.object()
	case KindBeginArray:
		return d.array()
	case KindString:
		return tok.String, nil
	case KindNumber:
		return d.conv(tok.Number)
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, unexpected(tok)
	}
}

func (d treeDecoder) object() (map[string]any, error) {
	m := make(map[string]any)
	for {
		key, err := d.src.NextToken()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		switch key.Kind {
		case KindEndObject:
			return m, nil
		case KindKey:
		default:
			return nil, unexpected(key)
		}
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		v, err := d.value(tok)
		if err != nil {
			return nil, err
		}
		m[key.String] = v
	}
}

func (d treeDecoder) array() ([]any, error) {
	arr := []any{}
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := d.value(tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func eofIsUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func unexpected(tok Token) error {
	return fmt.Errorf("unexpected token %s at offset %d", tok.Kind, tok.Offset)
}
