// Package json adapts encoding/json's streaming Decoder into an engine.TokenSource.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	eng "github.com/reoring/recipeld/internal/engine"
)

var dialect = eng.Dialect{
	Delim: func(raw any) (rune, bool) {
		d, ok := raw.(json.Delim)
		return rune(d), ok
	},
	Number: func(raw any) (string, bool) {
		n, ok := raw.(json.Number)
		return string(n), ok
	},
}

type source struct {
	dec    *json.Decoder
	frames eng.Frames
	offset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON. Numbers
// keep their literal text.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, offset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	raw, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.offset = s.dec.InputOffset()
	return s.frames.Classify(raw, dialect, s.offset), nil
}

// Location reports the decoder offset after the last token.
func (s *source) Location() int64 { return s.offset }
