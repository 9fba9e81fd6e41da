package schemaorg

import (
	"strings"

	"github.com/reoring/recipeld"
)

// candidate is one shape of an ordered-alternative decoder.
type candidate[T any] struct {
	name   string
	decode func(v any, at recipeld.PathRef) (T, bool)
}

// firstMatch tries each candidate in declared order and commits to the first
// structural match. It fails only when no candidate matches.
func firstMatch[T any](v any, at recipeld.PathRef, cands []candidate[T]) (T, error) {
	for _, c := range cands {
		if out, ok := c.decode(v, at); ok {
			return out, nil
		}
	}
	var zero T
	return zero, recipeld.SingleIssue(at, recipeld.CodeUnionNoMatch, "tried: "+strings.Join(candidateNames(cands), ", "))
}

func candidateNames[T any](cands []candidate[T]) []string {
	names := make([]string, len(cands))
	for i, c := range cands {
		names[i] = c.name
	}
	return names
}

// matches adapts a decoder with an error return into a candidate body.
func matches[T any](decode func(any, recipeld.PathRef) (T, error)) func(any, recipeld.PathRef) (T, bool) {
	return func(v any, at recipeld.PathRef) (T, bool) {
		out, err := decode(v, at)
		return out, err == nil
	}
}

// eachOf decodes every element of an array with elem, rejecting the whole
// array as soon as one element fails.
func eachOf[T any](v any, at recipeld.PathRef, elem func(any, recipeld.PathRef) (T, bool)) ([]T, bool) {
	arr, ok := asArray(v)
	if !ok {
		return nil, false
	}
	out := make([]T, 0, len(arr))
	for i, e := range arr {
		d, ok := elem(e, at.Index(i))
		if !ok {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}
