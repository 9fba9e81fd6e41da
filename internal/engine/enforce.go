package engine

import (
	"strconv"
	"strings"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by the engine.
type SimpleIssue struct {
	Code    string
	Path    string // JSON Pointer, "/" for the root
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// EnforceOptions controls runtime enforcement behavior. Zero limits disable
// the corresponding check.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink receives every issue, fatal or not. May be nil.
	IssueSink func(SimpleIssue)
}

// WrapWithEnforcement returns a TokenSource that applies the duplicate key
// policy, the nesting limit and the byte limit while tokens stream through.
// The byte limit needs a source that reports Location; sources returning -1
// are not limited.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcer{inner: inner, opt: opt}
}

type container struct {
	object    bool
	path      string
	keys      map[string]struct{}
	pending   string // key whose value comes next
	nextIndex int
}

type enforcer struct {
	inner TokenSource
	opt   EnforceOptions
	stack []container
}

func (e *enforcer) Location() int64 { return e.inner.Location() }

func (e *enforcer) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	switch tok.Kind {
	case KindKey:
		if err := e.key(tok.String); err != nil {
			return Token{}, err
		}
	case KindBeginObject, KindBeginArray:
		path := e.valuePath()
		c := container{object: tok.Kind == KindBeginObject, path: path}
		if c.object && e.opt.OnDuplicate != DupIgnore {
			c.keys = make(map[string]struct{})
		}
		e.stack = append(e.stack, c)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, e.fail("parse_error", path, "max depth exceeded")
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
	default:
		e.valuePath()
	}

	if e.opt.MaxBytes > 0 {
		if off := e.inner.Location(); off > e.opt.MaxBytes {
			return Token{}, e.fail("truncated", e.currentPath(), "max bytes exceeded")
		}
	}
	return tok, nil
}

func (e *enforcer) key(name string) error {
	n := len(e.stack)
	if n == 0 {
		return nil
	}
	top := &e.stack[n-1]
	top.pending = name
	if top.keys == nil {
		return nil
	}
	if _, dup := top.keys[name]; dup {
		si := SimpleIssue{Code: "duplicate_key", Path: pointer(top.path, name), Message: "key '" + name + "' duplicated"}
		if e.opt.IssueSink != nil {
			e.opt.IssueSink(si)
		}
		if e.opt.OnDuplicate == DupError {
			return IssueError{si}
		}
	}
	top.keys[name] = struct{}{}
	return nil
}

// valuePath returns the pointer of the value that starts at the current token
// and advances the parent's position.
func (e *enforcer) valuePath() string {
	n := len(e.stack)
	if n == 0 {
		return ""
	}
	top := &e.stack[n-1]
	if top.object {
		p := pointer(top.path, top.pending)
		top.pending = ""
		return p
	}
	p := pointer(top.path, strconv.Itoa(top.nextIndex))
	top.nextIndex++
	return p
}

func (e *enforcer) currentPath() string {
	if n := len(e.stack); n > 0 {
		return e.stack[n-1].path
	}
	return ""
}

func (e *enforcer) fail(code, path, msg string) error {
	if path == "" {
		path = "/"
	}
	si := SimpleIssue{Code: code, Path: path, Message: msg}
	if e.opt.IssueSink != nil {
		e.opt.IssueSink(si)
	}
	return IssueError{si}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func pointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
