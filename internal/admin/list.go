package admin

import "slices"

// List holds records in server order and addresses them by id.
type List[T any] struct {
	id    func(T) string
	items []T
}

func NewList[T any](id func(T) string) *List[T] {
	return &List[T]{id: id}
}

// Replace discards the current records in favour of items.
func (l *List[T]) Replace(items []T) {
	l.items = slices.Clone(items)
}

// Upsert replaces the record with the same id in place or appends it.
func (l *List[T]) Upsert(item T) {
	id := l.id(item)

	i := slices.IndexFunc(l.items, func(x T) bool { return l.id(x) == id })
	if i < 0 {
		l.items = append(l.items, item)
		return
	}

	l.items[i] = item
}

func (l *List[T]) Remove(id string) bool {
	n := len(l.items)
	l.items = slices.DeleteFunc(l.items, func(x T) bool { return l.id(x) == id })
	return len(l.items) != n
}

func (l *List[T]) All() []T {
	return slices.Clone(l.items)
}

func (l *List[T]) Len() int {
	return len(l.items)
}
