package schemaorg

import (
	json "github.com/goccy/go-json"

	"github.com/reoring/recipeld"
)

// recipeWire is the schema.org JSON-LD rendering of a Recipe. Polymorphic
// members keep the shape they were decoded from; durations that failed to
// parse are written back as they were read.
type recipeWire struct {
	Type         string `json:"@type" yaml:"@type"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	CookTime     any    `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	PrepTime     any    `json:"prepTime,omitempty" yaml:"prepTime,omitempty"`
	TotalTime    any    `json:"totalTime,omitempty" yaml:"totalTime,omitempty"`
	Yield        any    `json:"recipeYield,omitempty" yaml:"recipeYield,omitempty"`
	Ingredients  any    `json:"recipeIngredient" yaml:"recipeIngredient"`
	Instructions any    `json:"recipeInstructions,omitempty" yaml:"recipeInstructions,omitempty"`
}

func (r Recipe) wire() recipeWire {
	w := recipeWire{
		Type:        "Recipe",
		Name:        r.name,
		Description: r.description,
		Ingredients: r.ingredients.wire(),
	}
	if r.cookTime != nil {
		w.CookTime = r.cookTime.wire()
	}
	if r.prepTime != nil {
		w.PrepTime = r.prepTime.wire()
	}
	if r.totalTime != nil {
		w.TotalTime = r.totalTime.wire()
	}
	if r.yield != nil {
		w.Yield = r.yield.wire()
	}
	if r.instructions != nil {
		w.Instructions = r.instructions.wire()
	}
	return w
}

// MarshalJSON renders the recipe as a schema.org Recipe object.
func (r Recipe) MarshalJSON() ([]byte, error) { return json.Marshal(r.wire()) }

// MarshalYAML renders the recipe with the same members as MarshalJSON.
func (r Recipe) MarshalYAML() (any, error) { return r.wire(), nil }

// UnmarshalJSON decodes a single Recipe object.
func (r *Recipe) UnmarshalJSON(b []byte) error {
	return unmarshalWith(b, r, DecodeRecipe)
}

// UnmarshalJSON decodes a JSON-LD document with the envelope resolver.
func (e *SchemaEntry) UnmarshalJSON(b []byte) error {
	return unmarshalWith(b, e, DecodeSchemaEntry)
}

func (q Quantity) MarshalJSON() ([]byte, error)        { return json.Marshal(q.wire()) }
func (y Yield) MarshalJSON() ([]byte, error)           { return json.Marshal(y.wire()) }
func (l IngredientList) MarshalJSON() ([]byte, error)  { return json.Marshal(l.wire()) }
func (i Instruction) MarshalJSON() ([]byte, error)     { return json.Marshal(i.wire()) }
func (l InstructionList) MarshalJSON() ([]byte, error) { return json.Marshal(l.wire()) }
func (m MaybeDuration) MarshalJSON() ([]byte, error)   { return json.Marshal(m.wire()) }

func (q *Quantity) UnmarshalJSON(b []byte) error       { return unmarshalWith(b, q, DecodeQuantity) }
func (y *Yield) UnmarshalJSON(b []byte) error          { return unmarshalWith(b, y, DecodeYield) }
func (l *IngredientList) UnmarshalJSON(b []byte) error { return unmarshalWith(b, l, DecodeIngredientList) }
func (i *Instruction) UnmarshalJSON(b []byte) error    { return unmarshalWith(b, i, DecodeInstruction) }

func (l *InstructionList) UnmarshalJSON(b []byte) error {
	return unmarshalWith(b, l, DecodeInstructionList)
}

// UnmarshalJSON never fails on well-formed JSON; see DecodeMaybeDuration.
func (m *MaybeDuration) UnmarshalJSON(b []byte) error {
	return unmarshalWith(b, m, func(v any) (MaybeDuration, error) { return DecodeMaybeDuration(v), nil })
}

func unmarshalWith[T any](b []byte, dst *T, decode func(any) (T, error)) error {
	v, err := recipeld.DecodeAny(recipeld.JSONBytes(b))
	if err != nil {
		return err
	}
	out, err := decode(v)
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// MarshalJSON renders the document in the shape it was decoded from.
// Placeholders keep only their @id or @context.
func (e SchemaEntry) MarshalJSON() ([]byte, error) { return json.Marshal(e.wire()) }

func (e SchemaEntry) wire() any {
	switch e.kind {
	case EnvelopeGraph:
		graph := make([]any, 0, len(e.graph))
		for _, g := range e.graph {
			graph = append(graph, g.wire())
		}
		return map[string]any{"@graph": graph}
	case EnvelopeMulti:
		items := make([]any, 0, len(e.multi))
		for _, it := range e.multi {
			items = append(items, it.wire())
		}
		return items
	default:
		return e.single.wire()
	}
}

func (g GraphEntry) wire() any {
	if g.recipe != nil {
		return g.recipe.wire()
	}
	m := map[string]any{}
	if g.id != "" {
		m["@id"] = g.id
	}
	return m
}

func (s SchemaItem) wire() any {
	if s.recipe != nil {
		return s.recipe.wire()
	}
	m := map[string]any{}
	if s.context != "" {
		m["@context"] = s.context
	}
	return m
}
