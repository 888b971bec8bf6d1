package collection

import (
	"errors"
	"slices"

	"github.com/viant/traversal"
)

var errNoCurrent = errors.New("iterator has no current element")

// Slice is a removable collection backed by the caller's slice.
// Removal compacts the slice in place and updates the caller's slice header.
type Slice[E any] struct {
	data *[]E
}

// SliceOf creates a Slice over *data
func SliceOf[E any](data *[]E) *Slice[E] {
	return &Slice[E]{data: data}
}

// Iterator implements traversal.Collection
func (s *Slice[E]) Iterator() traversal.Iterator[E] {
	return &sliceIterator[E]{data: s.data, pos: -1}
}

type sliceIterator[E any] struct {
	data    *[]E
	pos     int
	removed bool
}

func (i *sliceIterator[E]) Next() bool {
	i.removed = false
	if i.pos < len(*i.data) {
		i.pos++
	}
	return i.pos < len(*i.data)
}

func (i *sliceIterator[E]) Value() E {
	if i.removed || i.pos < 0 || i.pos >= len(*i.data) {
		var zero E
		return zero
	}
	return (*i.data)[i.pos]
}

func (i *sliceIterator[E]) Remove() error {
	if i.removed || i.pos < 0 || i.pos >= len(*i.data) {
		return errNoCurrent
	}
	*i.data = slices.Delete(*i.data, i.pos, i.pos+1)
	i.pos--
	i.removed = true
	return nil
}

// Array is a fixed size collection; Remove is not supported
type Array[E any] struct {
	data []E
}

// ArrayOf creates an Array over values
func ArrayOf[E any](values []E) *Array[E] {
	return &Array[E]{data: values}
}

// Iterator implements traversal.Collection
func (a *Array[E]) Iterator() traversal.Iterator[E] {
	return &arrayIterator[E]{data: a.data, pos: -1}
}

type arrayIterator[E any] struct {
	data []E
	pos  int
}

func (i *arrayIterator[E]) Next() bool {
	if i.pos < len(i.data) {
		i.pos++
	}
	return i.pos < len(i.data)
}

func (i *arrayIterator[E]) Value() E {
	if i.pos < 0 || i.pos >= len(i.data) {
		var zero E
		return zero
	}
	return i.data[i.pos]
}

func (i *arrayIterator[E]) Remove() error {
	return traversal.ErrRemoveUnsupported
}
