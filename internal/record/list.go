// Package record holds the uniqueness-enforcing collections of the league
// and the League aggregate that owns them.
package record

import (
	"iter"
	"slices"
)

// uniqueList is an ordered slice whose elements never share an identity
// according to same.
type uniqueList[T any] struct {
	items []T
	same  func(a, b T) bool
}

func newUniqueList[T any](same func(a, b T) bool) uniqueList[T] {
	return uniqueList[T]{same: same}
}

func (l *uniqueList[T]) indexOf(item T) int {
	return slices.IndexFunc(l.items, func(x T) bool { return l.same(x, item) })
}

func (l *uniqueList[T]) contains(item T) bool {
	return l.indexOf(item) >= 0
}

func (l *uniqueList[T]) add(item T, dup error) error {
	if l.contains(item) {
		return dup
	}
	l.items = append(l.items, item)
	return nil
}

// removeFunc drops the first element for which match reports true.
func (l *uniqueList[T]) removeFunc(match func(T) bool, missing error) error {
	i := slices.IndexFunc(l.items, match)
	if i < 0 {
		return missing
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

func (l *uniqueList[T]) clear() {
	l.items = nil
}

type keyed[T, K any] struct {
	item T
	key  K
}

// sortByKey orders l stably by cmp over keys computed once per element.
func sortByKey[T, K any](l *uniqueList[T], key func(T) K, cmp func(a, b K) int) {
	ks := make([]keyed[T, K], len(l.items))
	for i, item := range l.items {
		ks[i] = keyed[T, K]{item: item, key: key(item)}
	}
	slices.SortStableFunc(ks, func(a, b keyed[T, K]) int { return cmp(a.key, b.key) })
	for i, k := range ks {
		l.items[i] = k.item
	}
}

func (l *uniqueList[T]) snapshot() []T {
	return slices.Clone(l.items)
}

func (l *uniqueList[T]) all() iter.Seq[T] {
	return slices.Values(l.items)
}

func (l *uniqueList[T]) len() int {
	return len(l.items)
}

func (l *uniqueList[T]) clone() uniqueList[T] {
	return uniqueList[T]{items: slices.Clone(l.items), same: l.same}
}
