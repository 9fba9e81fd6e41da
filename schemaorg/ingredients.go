package schemaorg

import (
	"iter"
	"slices"

	"github.com/reoring/recipeld"
)

// IngredientKind identifies which shape an IngredientList was decoded from.
type IngredientKind int

const (
	IngredientsSingle IngredientKind = iota
	IngredientsMulti
)

// IngredientList is one ingredient string (some publishers pack every
// ingredient into one newline-separated string) or a sequence of strings.
// Either way it iterates as a sequence.
type IngredientList struct {
	kind  IngredientKind
	items []string
}

// SingleIngredient builds a one-string ingredient list.
func SingleIngredient(s string) IngredientList {
	return IngredientList{kind: IngredientsSingle, items: []string{s}}
}

// MultiIngredients builds a sequence ingredient list.
func MultiIngredients(items ...string) IngredientList {
	return IngredientList{kind: IngredientsMulti, items: append([]string{}, items...)}
}

func (l IngredientList) Kind() IngredientKind { return l.kind }

func (l IngredientList) Len() int { return len(l.items) }

// All returns a copy of the ingredients in source order.
func (l IngredientList) All() []string { return append([]string{}, l.items...) }

// Seq iterates the ingredients in source order.
func (l IngredientList) Seq() iter.Seq[string] { return slices.Values(l.items) }

func (l IngredientList) wire() any {
	if l.kind == IngredientsSingle && len(l.items) == 1 {
		return l.items[0]
	}
	return l.All()
}

var ingredientCandidates = []candidate[IngredientList]{
	{name: "single string", decode: func(v any, _ recipeld.PathRef) (IngredientList, bool) {
		s, ok := asString(v)
		return SingleIngredient(s), ok
	}},
	{name: "sequence of strings", decode: func(v any, at recipeld.PathRef) (IngredientList, bool) {
		items, ok := eachOf(v, at, func(e any, _ recipeld.PathRef) (string, bool) { return asString(e) })
		return IngredientList{kind: IngredientsMulti, items: items}, ok
	}},
}

// IngredientListCandidates lists the shapes DecodeIngredientList tries, in order.
func IngredientListCandidates() []string { return candidateNames(ingredientCandidates) }

// DecodeIngredientList decodes a generic JSON value as an IngredientList.
func DecodeIngredientList(v any) (IngredientList, error) {
	return decodeIngredientList(v, recipeld.Root())
}

func decodeIngredientList(v any, at recipeld.PathRef) (IngredientList, error) {
	return firstMatch(v, at, ingredientCandidates)
}
