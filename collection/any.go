package collection

import (
	"fmt"
	"reflect"

	"github.com/viant/traversal"
)

// Any exposes a typed collection as a collection of any
func Any[E any](c traversal.Collection[E]) traversal.Collection[any] {
	return anyCollection[E]{c}
}

type anyCollection[E any] struct {
	c traversal.Collection[E]
}

func (a anyCollection[E]) Iterator() traversal.Iterator[any] {
	return anyIterator[E]{a.c.Iterator()}
}

type anyIterator[E any] struct {
	traversal.Iterator[E]
}

func (i anyIterator[E]) Value() any {
	return i.Iterator.Value()
}

// AnyOf dynamically creates a collection from a slice, array, map or pointer to slice.
// A pointer to slice is removable, maps delete visited keys on removal, plain slices and arrays are read only.
// Map elements are visited as Entry[any, any].
func AnyOf(value interface{}) (traversal.Collection[any], error) {
	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Ptr && val.IsNil() {
		return nil, fmt.Errorf("expected slice, array or map, got nil %T", value)
	}
	switch actual := value.(type) {
	case []string:
		return Any[string](ArrayOf(actual)), nil
	case []int:
		return Any[int](ArrayOf(actual)), nil
	case []int64:
		return Any[int64](ArrayOf(actual)), nil
	case []float64:
		return Any[float64](ArrayOf(actual)), nil
	case []bool:
		return Any[bool](ArrayOf(actual)), nil
	case []interface{}:
		return ArrayOf(actual), nil
	case *[]string:
		return Any[string](SliceOf(actual)), nil
	case *[]int:
		return Any[int](SliceOf(actual)), nil
	case *[]interface{}:
		return SliceOf(actual), nil
	}
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		return &reflectSlice{data: val}, nil
	case reflect.Map:
		return &reflectMap{data: val}, nil
	case reflect.Ptr:
		if val.Elem().Kind() == reflect.Slice {
			return &reflectSlice{data: val.Elem(), removable: true}, nil
		}
	}
	return nil, fmt.Errorf("expected slice, array or map, got %T", value)
}

type reflectSlice struct {
	data      reflect.Value
	removable bool
}

func (s *reflectSlice) Iterator() traversal.Iterator[any] {
	return &reflectSliceIterator{reflectSlice: s, pos: -1}
}

type reflectSliceIterator struct {
	*reflectSlice
	pos     int
	removed bool
}

func (i *reflectSliceIterator) Next() bool {
	i.removed = false
	if i.pos < i.data.Len() {
		i.pos++
	}
	return i.pos < i.data.Len()
}

func (i *reflectSliceIterator) Value() any {
	if i.removed || i.pos < 0 || i.pos >= i.data.Len() {
		return nil
	}
	return i.data.Index(i.pos).Interface()
}

func (i *reflectSliceIterator) Remove() error {
	if !i.removable {
		return traversal.ErrRemoveUnsupported
	}
	if i.removed || i.pos < 0 || i.pos >= i.data.Len() {
		return errNoCurrent
	}
	size := i.data.Len()
	reflect.Copy(i.data.Slice(i.pos, size), i.data.Slice(i.pos+1, size))
	i.data.Index(size - 1).SetZero()
	i.data.SetLen(size - 1)
	i.pos--
	i.removed = true
	return nil
}

type reflectMap struct {
	data reflect.Value
}

func (m *reflectMap) Iterator() traversal.Iterator[any] {
	return &reflectMapIterator{data: m.data, keys: m.data.MapKeys(), pos: -1}
}

type reflectMapIterator struct {
	data    reflect.Value
	keys    []reflect.Value
	pos     int
	removed bool
}

func (i *reflectMapIterator) Next() bool {
	i.removed = false
	for i.pos < len(i.keys) {
		i.pos++
		if i.pos == len(i.keys) {
			return false
		}
		if i.data.MapIndex(i.keys[i.pos]).IsValid() {
			return true
		}
	}
	return false
}

func (i *reflectMapIterator) Value() any {
	if i.pos < 0 || i.pos >= len(i.keys) {
		return nil
	}
	key := i.keys[i.pos]
	value := i.data.MapIndex(key)
	if !value.IsValid() {
		return Entry[any, any]{Key: key.Interface()}
	}
	return Entry[any, any]{Key: key.Interface(), Value: value.Interface()}
}

func (i *reflectMapIterator) Remove() error {
	if i.removed || i.pos < 0 || i.pos >= len(i.keys) {
		return errNoCurrent
	}
	i.data.SetMapIndex(i.keys[i.pos], reflect.Value{})
	i.removed = true
	return nil
}
