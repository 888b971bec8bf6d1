package collection

import (
	"container/list"

	"github.com/viant/traversal"
)

// List is a removable collection backed by container/list.
// Elements holding a value that is not an E are visited as the zero E.
type List[E any] struct {
	data *list.List
}

// ListOf creates a List over data
func ListOf[E any](data *list.List) *List[E] {
	return &List[E]{data: data}
}

// Iterator implements traversal.Collection
func (l *List[E]) Iterator() traversal.Iterator[E] {
	return &listIterator[E]{data: l.data}
}

type listIterator[E any] struct {
	data    *list.List
	current *list.Element
	next    *list.Element
	started bool
}

func (i *listIterator[E]) Next() bool {
	if !i.started {
		i.started = true
		i.next = i.data.Front()
	}
	i.current = i.next
	if i.current == nil {
		return false
	}
	i.next = i.current.Next()
	return true
}

func (i *listIterator[E]) Value() E {
	if i.current == nil {
		var zero E
		return zero
	}
	value, _ := i.current.Value.(E)
	return value
}

func (i *listIterator[E]) Remove() error {
	if i.current == nil {
		return errNoCurrent
	}
	i.data.Remove(i.current)
	i.current = nil
	return nil
}
