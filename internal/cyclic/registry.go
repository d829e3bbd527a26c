// Package cyclic provides fixed-size, read-only registries whose entries are
// addressed modulo their length.
package cyclic

// Mod returns n modulo m in the range [0, m), for negative n as well.
func Mod(n, m int) int {
	return ((n % m) + m) % m
}

// Entity is an entry of a cyclic registry.
type Entity interface {
	comparable
	Index() int
	DisplayName() string
}

// Registry is an immutable ordered list of entities.
// The zero value is not usable; build one with New.
type Registry[T Entity] struct {
	items []T
}

// New builds a registry from items. The slice is copied, so later writes
// to items do not reach the registry.
//
// New panics if items is empty or if an entity's Index does not match its
// position; registries are built from static tables at package init.
func New[T Entity](items ...T) Registry[T] {
	if len(items) == 0 {
		panic("cyclic: empty registry")
	}
	for i, item := range items {
		if item.Index() != i {
			panic("cyclic: entity index does not match its position")
		}
	}
	return Registry[T]{items: append([]T(nil), items...)}
}

// Len returns the number of entities.
func (r Registry[T]) Len() int {
	return len(r.items)
}

// ByIndex returns the entity at n modulo Len. It never fails.
func (r Registry[T]) ByIndex(n int) T {
	return r.items[Mod(n, len(r.items))]
}

// ByName returns the entity whose display name equals name exactly.
// The second result is false when no entity matches.
func (r Registry[T]) ByName(name string) (T, bool) {
	for _, item := range r.items {
		if item.DisplayName() == name {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Shift returns the entity i positions after e (before it when i < 0).
func (r Registry[T]) Shift(e T, i int) T {
	return r.ByIndex(e.Index() + i)
}

// All returns the entities in index order.
func (r Registry[T]) All() []T {
	return append([]T(nil), r.items...)
}
