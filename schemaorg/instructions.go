package schemaorg

import (
	"iter"
	"slices"

	"github.com/reoring/recipeld"
)

// InstructionKind identifies which shape an Instruction was decoded from.
type InstructionKind int

const (
	InstructionSimple     InstructionKind = iota // bare string
	InstructionStructured                        // object with a text member (HowToStep)
)

// Instruction is a single step. Structured steps keep only their text; name,
// url, image and other members are ignored.
type Instruction struct {
	kind InstructionKind
	text string
}

// SimpleInstruction builds a bare-string step.
func SimpleInstruction(text string) Instruction {
	return Instruction{kind: InstructionSimple, text: text}
}

// StructuredInstruction builds a HowToStep-style step.
func StructuredInstruction(text string) Instruction {
	return Instruction{kind: InstructionStructured, text: text}
}

func (i Instruction) Kind() InstructionKind { return i.kind }
func (i Instruction) Text() string          { return i.text }
func (i Instruction) String() string        { return i.text }

func (i Instruction) wire() any {
	if i.kind == InstructionSimple {
		return i.text
	}
	return map[string]any{"@type": "HowToStep", "text": i.text}
}

var instructionCandidates = []candidate[Instruction]{
	{name: "bare string", decode: func(v any, _ recipeld.PathRef) (Instruction, bool) {
		s, ok := asString(v)
		return SimpleInstruction(s), ok
	}},
	{name: "structured object with text", decode: func(v any, _ recipeld.PathRef) (Instruction, bool) {
		m, ok := asObject(v)
		if !ok {
			return Instruction{}, false
		}
		text, ok := asString(m["text"])
		return StructuredInstruction(text), ok
	}},
}

// InstructionCandidates lists the shapes DecodeInstruction tries, in order.
func InstructionCandidates() []string { return candidateNames(instructionCandidates) }

// DecodeInstruction decodes a generic JSON value as an Instruction.
func DecodeInstruction(v any) (Instruction, error) { return decodeInstruction(v, recipeld.Root()) }

func decodeInstruction(v any, at recipeld.PathRef) (Instruction, error) {
	return firstMatch(v, at, instructionCandidates)
}

// InstructionSection is a named group of steps (HowToSection).
type InstructionSection struct {
	name       string
	directions []Instruction
}

// NewInstructionSection builds a section from its name and steps.
func NewInstructionSection(name string, directions ...Instruction) InstructionSection {
	return InstructionSection{name: name, directions: append([]Instruction{}, directions...)}
}

func (s InstructionSection) Name() string { return s.name }

// Instructions returns a copy of the section's steps.
func (s InstructionSection) Instructions() []Instruction {
	return append([]Instruction{}, s.directions...)
}

// All iterates the section's steps, discarding the section name.
func (s InstructionSection) All() iter.Seq[Instruction] { return slices.Values(s.directions) }

func (s InstructionSection) wire() any {
	items := make([]any, len(s.directions))
	for i, d := range s.directions {
		items[i] = d.wire()
	}
	return map[string]any{"@type": "HowToSection", "name": s.name, "itemListElement": items}
}

// DecodeInstructionSection decodes a generic JSON value as an InstructionSection.
// Both name and itemListElement are required.
func DecodeInstructionSection(v any) (InstructionSection, error) {
	return decodeInstructionSection(v, recipeld.Root())
}

func decodeInstructionSection(v any, at recipeld.PathRef) (InstructionSection, error) {
	m, ok := asObject(v)
	if !ok {
		return InstructionSection{}, recipeld.SingleIssue(at, recipeld.CodeInvalidType, "expected object")
	}
	var iss recipeld.Issues
	name, nameIss := requiredString(m, "name", at)
	iss = append(iss, nameIss...)
	var directions []Instruction
	raw, present := m["itemListElement"]
	switch {
	case !present:
		iss = append(iss, recipeld.IssueAt(at.Field("itemListElement"), recipeld.CodeRequired, ""))
	default:
		var ok bool
		directions, ok = eachOf(raw, at.Field("itemListElement"), matches(decodeInstruction))
		if !ok {
			iss = append(iss, recipeld.IssueAt(at.Field("itemListElement"), recipeld.CodeInvalidType, "expected array of instructions"))
		}
	}
	if len(iss) > 0 {
		return InstructionSection{}, iss
	}
	return InstructionSection{name: name, directions: directions}, nil
}

// InstructionListKind identifies which shape an InstructionList was decoded from.
type InstructionListKind int

const (
	InstructionsSingle   InstructionListKind = iota // one step
	InstructionsMulti                               // a flat sequence of steps
	InstructionsSections                            // a sequence of named sections
)

// InstructionList is the recipeInstructions value.
type InstructionList struct {
	kind       InstructionListKind
	directions []Instruction
	sections   []InstructionSection
}

// SingleInstructionList builds a one-step list.
func SingleInstructionList(i Instruction) InstructionList {
	return InstructionList{kind: InstructionsSingle, directions: []Instruction{i}}
}

// MultiInstructionList builds a flat list of steps.
func MultiInstructionList(is ...Instruction) InstructionList {
	return InstructionList{kind: InstructionsMulti, directions: append([]Instruction{}, is...)}
}

// SectionedInstructionList builds a list of named sections.
func SectionedInstructionList(ss ...InstructionSection) InstructionList {
	return InstructionList{kind: InstructionsSections, sections: append([]InstructionSection{}, ss...)}
}

func (l InstructionList) Kind() InstructionListKind { return l.kind }

// Directions is the flat view. It is absent for the sectioned shape.
func (l InstructionList) Directions() ([]Instruction, bool) {
	if l.kind == InstructionsSections {
		return nil, false
	}
	return append([]Instruction{}, l.directions...), true
}

// Sections is the grouped view. It is absent unless the list was sectioned.
func (l InstructionList) Sections() ([]InstructionSection, bool) {
	if l.kind != InstructionsSections {
		return nil, false
	}
	return append([]InstructionSection{}, l.sections...), true
}

// Steps flattens every shape into display text, sections in order.
func (l InstructionList) Steps() []string {
	var out []string
	if l.kind != InstructionsSections {
		for _, d := range l.directions {
			out = append(out, d.Text())
		}
		return out
	}
	for _, s := range l.sections {
		for _, d := range s.directions {
			out = append(out, d.Text())
		}
	}
	return out
}

func (l InstructionList) wire() any {
	switch l.kind {
	case InstructionsSingle:
		if len(l.directions) == 1 {
			return l.directions[0].wire()
		}
		fallthrough
	case InstructionsMulti:
		out := make([]any, len(l.directions))
		for i, d := range l.directions {
			out[i] = d.wire()
		}
		return out
	default:
		out := make([]any, len(l.sections))
		for i, s := range l.sections {
			out[i] = s.wire()
		}
		return out
	}
}

// Order matters: a lone step is tried before arrays, and a flat array of
// steps before sections. A HowToSection has no text member, so it never
// matches as a step and the flat candidate is rejected as a whole.
var instructionListCandidates = []candidate[InstructionList]{
	{name: "single instruction", decode: func(v any, at recipeld.PathRef) (InstructionList, bool) {
		i, err := decodeInstruction(v, at)
		return SingleInstructionList(i), err == nil
	}},
	{name: "sequence of instructions", decode: func(v any, at recipeld.PathRef) (InstructionList, bool) {
		is, ok := eachOf(v, at, matches(decodeInstruction))
		return InstructionList{kind: InstructionsMulti, directions: is}, ok
	}},
	{name: "sequence of sections", decode: func(v any, at recipeld.PathRef) (InstructionList, bool) {
		ss, ok := eachOf(v, at, matches(decodeInstructionSection))
		return InstructionList{kind: InstructionsSections, sections: ss}, ok
	}},
}

// InstructionListCandidates lists the shapes DecodeInstructionList tries, in order.
func InstructionListCandidates() []string { return candidateNames(instructionListCandidates) }

// DecodeInstructionList decodes a generic JSON value as an InstructionList.
func DecodeInstructionList(v any) (InstructionList, error) {
	return decodeInstructionList(v, recipeld.Root())
}

func decodeInstructionList(v any, at recipeld.PathRef) (InstructionList, error) {
	return firstMatch(v, at, instructionListCandidates)
}
