package schemaorg

import "github.com/reoring/recipeld"

// JSON-LD member names read from a Recipe object.
const (
	keyName         = "name"
	keyDescription  = "description"
	keyCookTime     = "cookTime"
	keyPrepTime     = "prepTime"
	keyTotalTime    = "totalTime"
	keyYield        = "recipeYield"
	keyIngredients  = "recipeIngredient"
	keyInstructions = "recipeInstructions"
)

// Recipe is the normalized schema.org Recipe. Values are immutable once
// decoded; accessors return copies.
type Recipe struct {
	name         string
	description  string
	cookTime     *MaybeDuration
	prepTime     *MaybeDuration
	totalTime    *MaybeDuration
	yield        *Yield
	ingredients  IngredientList
	instructions *InstructionList
}

// NewRecipe builds a recipe from its mandatory members. Optional members are
// added with the With* methods, each returning a modified copy.
func NewRecipe(name, description string, ingredients IngredientList) Recipe {
	return Recipe{name: name, description: description, ingredients: ingredients}
}

func (r Recipe) WithCookTime(d MaybeDuration) Recipe  { r.cookTime = &d; return r }
func (r Recipe) WithPrepTime(d MaybeDuration) Recipe  { r.prepTime = &d; return r }
func (r Recipe) WithTotalTime(d MaybeDuration) Recipe { r.totalTime = &d; return r }
func (r Recipe) WithYield(y Yield) Recipe             { r.yield = &y; return r }

func (r Recipe) WithInstructions(l InstructionList) Recipe { r.instructions = &l; return r }

func (r Recipe) Name() string                { return r.name }
func (r Recipe) Description() string         { return r.description }
func (r Recipe) Ingredients() IngredientList { return r.ingredients }

// CookTime reports false when cookTime was absent or null. A present but
// unparsable value yields an absent MaybeDuration with true.
func (r Recipe) CookTime() (MaybeDuration, bool)  { return deref(r.cookTime) }
func (r Recipe) PrepTime() (MaybeDuration, bool)  { return deref(r.prepTime) }
func (r Recipe) TotalTime() (MaybeDuration, bool) { return deref(r.totalTime) }

// Yield reports false when recipeYield was absent or matched no shape.
func (r Recipe) Yield() (Yield, bool) { return deref(r.yield) }

// Instructions reports false when recipeInstructions was absent or matched no shape.
func (r Recipe) Instructions() (InstructionList, bool) { return deref(r.instructions) }

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// DecodeRecipe decodes a generic JSON object as a Recipe. Missing or
// malformed mandatory members are reported together.
func DecodeRecipe(v any) (Recipe, error) {
	r, iss := decodeRecipe(v, recipeld.Root())
	if len(iss) > 0 {
		return Recipe{}, iss
	}
	return r, nil
}

func decodeRecipe(v any, at recipeld.PathRef) (Recipe, recipeld.Issues) {
	m, ok := asObject(v)
	if !ok {
		return Recipe{}, recipeld.SingleIssue(at, recipeld.CodeInvalidType, "expected object")
	}

	var iss recipeld.Issues
	r := Recipe{}

	name, nameIss := requiredString(m, keyName, at)
	iss = append(iss, nameIss...)
	r.name = name

	desc, descIss := requiredString(m, keyDescription, at)
	iss = append(iss, descIss...)
	r.description = desc

	if raw, present := m[keyIngredients]; !present {
		iss = append(iss, recipeld.IssueAt(at.Field(keyIngredients), recipeld.CodeRequired, ""))
	} else if l, err := decodeIngredientList(raw, at.Field(keyIngredients)); err != nil {
		ii, _ := recipeld.AsIssues(err)
		iss = append(iss, ii...)
	} else {
		r.ingredients = l
	}

	if len(iss) > 0 {
		return Recipe{}, iss
	}

	r.cookTime = optionalDuration(m, keyCookTime)
	r.prepTime = optionalDuration(m, keyPrepTime)
	r.totalTime = optionalDuration(m, keyTotalTime)
	r.yield = optional(m, keyYield, at, decodeYield)
	r.instructions = optional(m, keyInstructions, at, decodeInstructionList)
	return r, nil
}

func requiredString(m map[string]any, key string, at recipeld.PathRef) (string, recipeld.Issues) {
	raw, present := m[key]
	if !present {
		return "", recipeld.SingleIssue(at.Field(key), recipeld.CodeRequired, "")
	}
	s, ok := asString(raw)
	if !ok {
		return "", recipeld.SingleIssue(at.Field(key), recipeld.CodeInvalidType, "expected string")
	}
	return s, nil
}

// optional is the attempt-or-none adapter for optional members: absent,
// null, or unmatched values all become nil.
func optional[T any](m map[string]any, key string, at recipeld.PathRef, decode func(any, recipeld.PathRef) (T, error)) *T {
	raw, ok := member(m, key)
	if !ok {
		return nil
	}
	out, err := decode(raw, at.Field(key))
	if err != nil {
		return nil
	}
	return &out
}

func optionalDuration(m map[string]any, key string) *MaybeDuration {
	raw, ok := member(m, key)
	if !ok {
		return nil
	}
	d := DecodeMaybeDuration(raw)
	return &d
}
