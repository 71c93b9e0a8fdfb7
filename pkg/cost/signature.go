package cost

import "fmt"

// Signature is the ordered list of free-parameter names of a cost.
// Names are distinct; the position of a name is the position of its
// value in the vector passed to Eval. Model functions declare their
// parameter names explicitly at construction, so the binding between
// name and role is fixed and deterministic.
type Signature struct {
	names []string
	index map[string]int
}

// NewSignature builds a signature from explicitly declared names.
// Empty or duplicate names are rejected.
func NewSignature(names ...string) (Signature, error) {
	s := Signature{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return Signature{}, fmt.Errorf("parameter %d has an empty name: %w", i, ErrSignature)
		}
		if _, ok := s.index[name]; ok {
			return Signature{}, fmt.Errorf("parameter %q declared twice: %w", name, ErrSignature)
		}
		s.names[i] = name
		s.index[name] = i
	}
	return s, nil
}

// Union merges name lists in first-occurrence order: scanning left to
// right, each not-yet-seen name is appended; later reuse of a name
// keeps its first slot. The inputs must each be internally distinct.
func Union(lists ...[]string) Signature {
	u := Signature{index: make(map[string]int)}
	for _, names := range lists {
		for _, name := range names {
			if _, ok := u.index[name]; !ok {
				u.index[name] = len(u.names)
				u.names = append(u.names, name)
			}
		}
	}
	return u
}

// Names returns a copy of the parameter names in order.
func (s Signature) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of parameters.
func (s Signature) Len() int { return len(s.names) }

// Index returns the position of name, or -1 if the signature does not
// contain it.
func (s Signature) Index(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}
