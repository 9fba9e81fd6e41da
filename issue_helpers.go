package recipeld

import "github.com/reoring/recipeld/i18n"

// IssueAt creates an Issue at the given path with the catalog message for code.
func IssueAt(p PathRef, code, hint string) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, nil), Hint: hint, Offset: -1}
}

// SingleIssue wraps IssueAt into an Issues error.
func SingleIssue(p PathRef, code, hint string) Issues {
	return Issues{IssueAt(p, code, hint)}
}
