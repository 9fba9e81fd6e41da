package recipeld

import (
	"io"
	"strings"
	"sync"

	eng "github.com/reoring/recipeld/internal/engine"
	jsonsrc "github.com/reoring/recipeld/source/json"
)

// Token is one item of the token stream shared by every input format. Number
// tokens carry their literal text; Offset is -1 when the producer cannot
// report byte positions.
type Token = eng.Token

// TokenKind classifies a Token.
type TokenKind = eng.Kind

const (
	TokenBeginObject = eng.KindBeginObject
	TokenEndObject   = eng.KindEndObject
	TokenBeginArray  = eng.KindBeginArray
	TokenEndArray    = eng.KindEndArray
	TokenKey         = eng.KindKey
	TokenString      = eng.KindString
	TokenNumber      = eng.KindNumber
	TokenBool        = eng.KindBool
	TokenNull        = eng.KindNull
)

// Source yields the tokens of exactly one document. NextToken returns io.EOF
// once the document is exhausted.
type Source interface {
	NextToken() (Token, error)
	NumberMode() NumberMode
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver builds JSON Sources. The default is backed by encoding/json;
// importing recipeld/source for side effects switches to go-json.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	driverMu sync.RWMutex
	driver   JSONDriver = stdDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil is ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	driver = d
	driverMu.Unlock()
}

// UseDefaultJSONDriver restores the encoding/json driver.
func UseDefaultJSONDriver() { SetJSONDriver(stdDriver{}) }

// CurrentJSONDriver returns the driver used by JSONReader, JSONBytes and JSONString.
func CurrentJSONDriver() JSONDriver {
	driverMu.RLock()
	defer driverMu.RUnlock()
	return driver
}

type stdDriver struct{}

func (stdDriver) NewReader(r io.Reader) Source {
	return SourceFromEngine(jsonsrc.NewReader(r), NumberJSONNumber)
}

func (stdDriver) NewBytes(b []byte) Source {
	return SourceFromEngine(jsonsrc.NewBytes(b), NumberJSONNumber)
}

func (stdDriver) Name() string { return "encoding/json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return CurrentJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return CurrentJSONDriver().NewBytes(b) }

// JSONString wraps a string as a JSON Source.
func JSONString(s string) Source { return JSONReader(strings.NewReader(s)) }

// SourceFromEngine attaches a NumberMode to a bare token stream.
func SourceFromEngine(ts eng.TokenSource, mode NumberMode) Source {
	return moded{TokenSource: ts, mode: mode}
}

// WithNumberMode returns s with its NumberMode replaced.
func WithNumberMode(s Source, m NumberMode) Source {
	if md, ok := s.(moded); ok {
		md.mode = m
		return md
	}
	return moded{TokenSource: s, mode: m}
}

type moded struct {
	eng.TokenSource
	mode NumberMode
}

func (m moded) NumberMode() NumberMode { return m.mode }
