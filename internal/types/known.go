package types

// KnownTypes is the set of qualified user type names visible while one
// header's classes are scanned. Values are immutable: With returns a new
// set, so a batch's set can never leak into another batch by aliasing.
type KnownTypes struct {
	names map[string]struct{}
}

// NewKnownTypes creates a set holding the given qualified names
func NewKnownTypes(names ...string) KnownTypes {
	k := KnownTypes{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		k.names[name] = struct{}{}
	}
	return k
}

// Contains reports whether name is a known user type
func (k KnownTypes) Contains(name string) bool {
	_, ok := k.names[name]
	return ok
}

// With returns a copy of the set that also contains name
func (k KnownTypes) With(name string) KnownTypes {
	next := KnownTypes{names: make(map[string]struct{}, len(k.names)+1)}
	for existing := range k.names {
		next.names[existing] = struct{}{}
	}
	next.names[name] = struct{}{}
	return next
}

// Len returns the number of known types
func (k KnownTypes) Len() int {
	return len(k.names)
}
