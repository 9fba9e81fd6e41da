package schemaorg

import "github.com/reoring/recipeld"

// YieldKind identifies which shape a Yield was decoded from.
type YieldKind int

const (
	YieldSingle YieldKind = iota
	YieldMulti
)

// Yield is one Quantity or an ordered sequence of them. Publishers commonly
// send ["4", "4 servings"]; the first element is the display value.
type Yield struct {
	kind   YieldKind
	single Quantity
	multi  []Quantity
}

// SingleYield builds a one-quantity yield.
func SingleYield(q Quantity) Yield { return Yield{kind: YieldSingle, single: q} }

// MultiYield builds a sequence yield.
func MultiYield(qs ...Quantity) Yield {
	return Yield{kind: YieldMulti, multi: append([]Quantity{}, qs...)}
}

func (y Yield) Kind() YieldKind { return y.kind }

// Quantities returns every quantity; a single yield returns one element.
func (y Yield) Quantities() []Quantity {
	if y.kind == YieldSingle {
		return []Quantity{y.single}
	}
	return append([]Quantity{}, y.multi...)
}

// Display resolves the quantity to show: the single value, the first of
// several, or the default quantity for an empty sequence.
func (y Yield) Display() Quantity {
	if y.kind == YieldSingle {
		return y.single
	}
	if len(y.multi) > 0 {
		return y.multi[0]
	}
	return DefaultQuantity()
}

func (y Yield) String() string { return y.Display().String() }

func (y Yield) wire() any {
	if y.kind == YieldSingle {
		return y.single.wire()
	}
	out := make([]any, len(y.multi))
	for i, q := range y.multi {
		out[i] = q.wire()
	}
	return out
}

var yieldCandidates = []candidate[Yield]{
	{name: "single quantity", decode: func(v any, at recipeld.PathRef) (Yield, bool) {
		q, err := decodeQuantity(v, at)
		return SingleYield(q), err == nil
	}},
	{name: "sequence of quantity", decode: func(v any, at recipeld.PathRef) (Yield, bool) {
		qs, ok := eachOf(v, at, matches(decodeQuantity))
		return Yield{kind: YieldMulti, multi: qs}, ok
	}},
}

// YieldCandidates lists the shapes DecodeYield tries, in order.
func YieldCandidates() []string { return candidateNames(yieldCandidates) }

// DecodeYield decodes a generic JSON value as a Yield.
func DecodeYield(v any) (Yield, error) { return decodeYield(v, recipeld.Root()) }

func decodeYield(v any, at recipeld.PathRef) (Yield, error) {
	return firstMatch(v, at, yieldCandidates)
}
