package llvm

import "fmt"

// enumTable is a total, bidirectional mapping between one of the package's
// enumerations and the corresponding native LLVM enumeration.  Every Go value
// maps to exactly one native value and vice versa: construction panics if two
// Go values share a native value.
type enumTable[E ~int, N comparable] struct {
	name     string
	toNative []N
	toGo     map[N]E
	names    []string
}

// entry describes one member of an enumeration.
type entry[N comparable] struct {
	name   string
	native N
}

// newEnumTable builds a table from entries listed in the order of the Go
// enumeration's values.
func newEnumTable[E ~int, N comparable](name string, entries ...entry[N]) *enumTable[E, N] {
	t := &enumTable[E, N]{
		name:     name,
		toNative: make([]N, len(entries)),
		toGo:     make(map[N]E, len(entries)),
		names:    make([]string, len(entries)),
	}

	for i, e := range entries {
		if _, dup := t.toGo[e.native]; dup {
			panic(fmt.Sprintf("llvm: duplicate native value for %s %s", name, e.name))
		}

		t.toNative[i] = e.native
		t.toGo[e.native] = E(i)
		t.names[i] = e.name
	}

	return t
}

// native returns the native value of e.
func (t *enumTable[E, N]) native(e E) N {
	if e < 0 || int(e) >= len(t.toNative) {
		panic(fmt.Sprintf("llvm: invalid %s %d", t.name, int(e)))
	}

	return t.toNative[e]
}

// fromNative returns the Go value of n.
func (t *enumTable[E, N]) fromNative(n N) E {
	if e, ok := t.toGo[n]; ok {
		return e
	}

	panic(fmt.Sprintf("llvm: unknown native %s %v", t.name, n))
}

// str returns the name of e.
func (t *enumTable[E, N]) str(e E) string {
	if e < 0 || int(e) >= len(t.names) {
		return fmt.Sprintf("%s(%d)", t.name, int(e))
	}

	return t.names[e]
}

// parse finds the member of the enumeration named s.
func (t *enumTable[E, N]) parse(s string) (E, error) {
	for i, name := range t.names {
		if name == s {
			return E(i), nil
		}
	}

	return 0, fmt.Errorf("unknown %s `%s`", t.name, s)
}
