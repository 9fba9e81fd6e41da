// Package gojson provides a recipeld.JSONDriver backed by goccy/go-json.
package gojson

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"

	"github.com/reoring/recipeld"
	eng "github.com/reoring/recipeld/internal/engine"
)

// Driver returns a recipeld.JSONDriver backed by goccy/go-json.
func Driver() recipeld.JSONDriver { return driver{} }

type driver struct{}

func (driver) NewReader(r io.Reader) recipeld.Source {
	return recipeld.SourceFromEngine(NewReader(r), recipeld.NumberJSONNumber)
}

func (driver) NewBytes(b []byte) recipeld.Source {
	return recipeld.SourceFromEngine(NewBytes(b), recipeld.NumberJSONNumber)
}

func (driver) Name() string { return "go-json" }

var dialect = eng.Dialect{
	Delim: func(raw any) (rune, bool) {
		d, ok := raw.(j.Delim)
		return rune(d), ok
	},
	Number: func(raw any) (string, bool) {
		n, ok := raw.(j.Number)
		return string(n), ok
	},
}

type source struct {
	dec    *j.Decoder
	frames eng.Frames
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	raw, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	return s.frames.Classify(raw, dialect, -1), nil
}

// go-json's Decoder does not expose an input offset.
func (s *source) Location() int64 { return -1 }
