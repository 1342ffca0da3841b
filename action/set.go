package action

// Set is a fixed-width bitset over the ten canonical actions: bit i
// corresponds to ByIndex(i). It is the compact representation spec.md
// §9 calls for in place of an opaque integer enumeration plus ad hoc
// bitmask arithmetic.
type Set uint16

// NewSet builds a Set containing exactly the given actions.
func NewSet(actions ...Action) Set {
	var s Set
	for _, a := range actions {
		s = s.Add(a)
	}
	return s
}

// Add returns s with a included.
func (s Set) Add(a Action) Set { return s | (1 << a.Index()) }

// Has reports whether a is a member of s.
func (s Set) Has(a Action) bool { return s&(1<<a.Index()) != 0 }

// Each calls fn for every action in s, in canonical index order.
func (s Set) Each(fn func(Action)) {
	for _, a := range canonical {
		if s.Has(a) {
			fn(a)
		}
	}
}

// Len reports the number of actions in s.
func (s Set) Len() int {
	n := 0
	for i := 0; i < NumActions; i++ {
		if s&(1<<i) != 0 {
			n++
		}
	}
	return n
}
