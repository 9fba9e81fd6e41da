package schemaorg

import (
	"strconv"

	"github.com/reoring/recipeld"
)

// QuantityKind identifies which shape a Quantity was decoded from.
type QuantityKind int

const (
	QuantityText   QuantityKind = iota // free text such as "2 cups"
	QuantityNumber                     // a JSON number
)

// defaultQuantityText is what an absent quantity renders as.
const defaultQuantityText = "N/A"

// Quantity is a number or a free-text string. The zero value is the default
// quantity, the text "N/A".
type Quantity struct {
	kind QuantityKind
	num  float64
	text string
	set  bool
}

// DefaultQuantity returns the quantity used when none is present.
func DefaultQuantity() Quantity { return TextQuantity(defaultQuantityText) }

// NumberQuantity builds a numeric quantity.
func NumberQuantity(n float64) Quantity { return Quantity{kind: QuantityNumber, num: n, set: true} }

// TextQuantity builds a free-text quantity.
func TextQuantity(s string) Quantity { return Quantity{kind: QuantityText, text: s, set: true} }

func (q Quantity) Kind() QuantityKind { return q.kind }

// Number returns the numeric value when the quantity is numeric.
func (q Quantity) Number() (float64, bool) {
	return q.num, q.kind == QuantityNumber
}

// Text returns the text when the quantity is textual.
func (q Quantity) Text() (string, bool) {
	if q.kind != QuantityText {
		return "", false
	}
	if !q.set {
		return defaultQuantityText, true
	}
	return q.text, true
}

func (q Quantity) String() string {
	if q.kind == QuantityNumber {
		return strconv.FormatFloat(q.num, 'f', -1, 64)
	}
	s, _ := q.Text()
	return s
}

func (q Quantity) wire() any {
	if q.kind == QuantityNumber {
		return q.num
	}
	s, _ := q.Text()
	return s
}

var quantityCandidates = []candidate[Quantity]{
	{name: "number", decode: func(v any, _ recipeld.PathRef) (Quantity, bool) {
		n, ok := asNumber(v)
		return NumberQuantity(n), ok
	}},
	{name: "string", decode: func(v any, _ recipeld.PathRef) (Quantity, bool) {
		s, ok := asString(v)
		return TextQuantity(s), ok
	}},
}

// QuantityCandidates lists the shapes DecodeQuantity tries, in order.
func QuantityCandidates() []string { return candidateNames(quantityCandidates) }

// DecodeQuantity decodes a generic JSON value as a Quantity.
func DecodeQuantity(v any) (Quantity, error) { return decodeQuantity(v, recipeld.Root()) }

func decodeQuantity(v any, at recipeld.PathRef) (Quantity, error) {
	return firstMatch(v, at, quantityCandidates)
}
