package recipeld

import (
	"errors"
	"io"

	eng "github.com/reoring/recipeld/internal/engine"
	"github.com/reoring/recipeld/i18n"
)

// DecodeAny consumes exactly one JSON value from the Source and returns it as a
// generic tree (map[string]any, []any, string, bool, nil, and json.Number or
// float64 depending on the Source's NumberMode). Malformed syntax, an empty
// input, trailing data, and enforcement violations are reported as Issues.
func DecodeAny(src Source, opts ...ParseOpt) (any, error) {
	if src == nil {
		return nil, SingleIssue(Root(), CodeParseError, "nil source")
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	enforced := wrapEnforcement(src, opt)

	var (
		v   any
		err error
	)
	switch src.NumberMode() {
	case NumberFloat64:
		v, err = eng.DecodeAnyFromSourceAsFloat64(enforced)
	default:
		v, err = eng.DecodeAnyFromSource(enforced)
	}
	if err != nil {
		return nil, toIssues(err, src.Location())
	}
	if _, err := enforced.NextToken(); !errors.Is(err, io.EOF) {
		iss := IssueAt(Root(), CodeParseError, "trailing data after top-level value")
		iss.Cause = err
		iss.Offset = src.Location()
		return nil, Issues{iss}
	}
	return v, nil
}

func wrapEnforcement(src Source, opt ParseOpt) eng.TokenSource {
	var sink func(eng.SimpleIssue)
	if opt.OnIssue != nil {
		sink = func(si eng.SimpleIssue) {
			opt.OnIssue(Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: src.Location()})
		}
	}
	return eng.WrapWithEnforcement(src, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink:   sink,
	})
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func toIssues(err error, offset int64) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Code: ie.Code, Path: ie.Path, Message: i18n.T(ie.Code, nil), Hint: ie.Message, Offset: offset}}
	}
	hint := err.Error()
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		hint = "unexpected end of input"
	}
	return Issues{{Code: CodeParseError, Path: "/", Message: i18n.T(CodeParseError, nil), Hint: hint, Cause: err, Offset: offset}}
}
