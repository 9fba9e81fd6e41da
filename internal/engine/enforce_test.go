package engine

import (
	"errors"
	"testing"
)

func drain(src TokenSource) error {
	_, err := DecodeAnyFromSource(src)
	return err
}

func TestEnforce_DuplicateKeyPaths(t *testing.T) {
	var seen []SimpleIssue
	src := WrapWithEnforcement(
		toks(ba, bo, key("a"), num("1"), key("a/b"), bo, key("x"), num("1"), key("x"), num("2"), eo, eo, ea),
		EnforceOptions{OnDuplicate: DupWarn, IssueSink: func(si SimpleIssue) { seen = append(seen, si) }},
	)
	if err := drain(src); err != nil {
		t.Fatalf("warn policy must not fail: %v", err)
	}
	if len(seen) != 1 || seen[0].Code != "duplicate_key" || seen[0].Path != "/0/a~1b/x" {
		t.Fatalf("unexpected issues: %+v", seen)
	}
}

func TestEnforce_DuplicateKeyError(t *testing.T) {
	src := WrapWithEnforcement(
		toks(ba, num("0"), bo, key("a"), num("1"), key("a"), num("2"), eo, ea),
		EnforceOptions{OnDuplicate: DupError},
	)
	var ie IssueError
	if err := drain(src); !errors.As(err, &ie) || ie.Path != "/1/a" {
		t.Fatalf("expected duplicate at /1/a, got %v", err)
	}
}

func TestEnforce_DuplicateIgnoredByDefault(t *testing.T) {
	src := WrapWithEnforcement(toks(bo, key("a"), num("1"), key("a"), num("2"), eo), EnforceOptions{})
	if err := drain(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	src := WrapWithEnforcement(toks(bo, key("a"), ba, ba, ea, ea, eo), EnforceOptions{MaxDepth: 2})
	var ie IssueError
	if err := drain(src); !errors.As(err, &ie) {
		t.Fatalf("expected issue error, got %v", err)
	}
	if ie.Code != "parse_error" || ie.Path != "/a/0" || ie.Message != "max depth exceeded" {
		t.Fatalf("unexpected issue %+v", ie.SimpleIssue)
	}
}

func TestEnforce_MaxBytes(t *testing.T) {
	// sliceSource reports ten bytes per token.
	src := WrapWithEnforcement(toks(ba, num("1"), num("2"), num("3"), ea), EnforceOptions{MaxBytes: 25})
	var ie IssueError
	if err := drain(src); !errors.As(err, &ie) || ie.Code != "truncated" || ie.Path != "/" {
		t.Fatalf("expected truncated at root container, got %v", err)
	}
}
