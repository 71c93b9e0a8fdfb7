package cost

// Sum is the joint objective of several costs. Its parameter list is
// the first-occurrence-ordered union of the item lists; a name shared
// by several items binds to a single slot, which couples those
// parameters across data sets in a joint fit.
type Sum struct {
	base
	items []Cost
	index [][]int // per item, positions of its parameters in the union
}

// Combine flattens the given costs into a single Sum. A Sum operand
// contributes its items in place rather than nesting, so combining is
// associative: Combine(Combine(a, b), c), Combine(a, Combine(b, c))
// and Combine(a, b, c) produce the same item order and signature.
func Combine(costs ...Cost) *Sum {
	var items []Cost
	for _, c := range costs {
		if s, ok := c.(*Sum); ok {
			items = append(items, s.items...)
			continue
		}
		items = append(items, c)
	}
	lists := make([][]string, len(items))
	for i, it := range items {
		lists[i] = it.Parameters()
	}
	sig := Union(lists...)
	index := make([][]int, len(items))
	for i, names := range lists {
		index[i] = make([]int, len(names))
		for k, name := range names {
			index[i][k] = sig.Index(name)
		}
	}
	return &Sum{base: base{sig: sig}, items: items, index: index}
}

// Eval projects the full parameter vector onto each item's own
// signature by name, evaluates the items and returns the sum of their
// values.
func (s *Sum) Eval(params []float64) float64 {
	total := 0.0
	for i, it := range s.items {
		sub := make([]float64, len(s.index[i]))
		for k, j := range s.index[i] {
			sub[k] = params[j]
		}
		total += it.Eval(sub)
	}
	s.trace("Sum", params, total)
	return total
}

// Items returns the flattened components in combination order.
func (s *Sum) Items() []Cost {
	return append([]Cost(nil), s.items...)
}

// Len returns the number of components.
func (s *Sum) Len() int { return len(s.items) }
