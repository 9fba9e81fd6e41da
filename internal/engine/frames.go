package engine

import "strconv"

// Frames tracks object/array nesting for delimiter-based tokenizers (such as
// encoding/json and go-json Decoder.Token) that do not distinguish object keys
// from string values.
type Frames struct {
	stack []frameState
}

type frameState struct {
	object       bool
	expectingKey bool
}

// Open records the start of an object ('{') or array ('[').
func (f *Frames) Open(object bool) {
	f.stack = append(f.stack, frameState{object: object, expectingKey: object})
}

// Close records the end of the innermost container; the container itself
// counts as a completed value for its parent.
func (f *Frames) Close() {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.valueDone()
}

// Scalar records a non-string scalar value.
func (f *Frames) Scalar() { f.valueDone() }

// String classifies a string token as KindKey or KindString.
func (f *Frames) String() Kind {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return KindKey
		}
	}
	f.valueDone()
	return KindString
}

func (f *Frames) valueDone() {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

// Dialect describes how a delimiter-based decoder represents delimiters and
// numbers in its token stream.
type Dialect struct {
	Delim  func(raw any) (rune, bool)
	Number func(raw any) (string, bool)
}

// Classify turns one decoder token into a Token at offset and updates the
// nesting state. Values the dialect does not recognise besides string, bool
// and float64 are reported as null.
func (f *Frames) Classify(raw any, d Dialect, offset int64) Token {
	if r, ok := d.Delim(raw); ok {
		switch r {
		case '{':
			f.Open(true)
			return Token{Kind: KindBeginObject, Offset: offset}
		case '[':
			f.Open(false)
			return Token{Kind: KindBeginArray, Offset: offset}
		case '}':
			f.Close()
			return Token{Kind: KindEndObject, Offset: offset}
		default:
			f.Close()
			return Token{Kind: KindEndArray, Offset: offset}
		}
	}
	if lit, ok := d.Number(raw); ok {
		f.Scalar()
		return Token{Kind: KindNumber, Number: lit, Offset: offset}
	}
	switch v := raw.(type) {
	case string:
		return Token{Kind: f.String(), String: v, Offset: offset}
	case bool:
		f.Scalar()
		return Token{Kind: KindBool, Bool: v, Offset: offset}
	case float64:
		f.Scalar()
		return Token{Kind: KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: offset}
	}
	f.Scalar()
	return Token{Kind: KindNull, Offset: offset}
}
