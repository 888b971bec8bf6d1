package traversal

// removeUnsupported is defined to serve as type for ErrRemoveUnsupported, so that the sentinel can be a constant.
type removeUnsupported int

// Error implements error
func (removeUnsupported) Error() string {
	return "removal not supported"
}

var _ error = removeUnsupported(0)

// ErrRemoveUnsupported is returned by Iterator.Remove when the underlying collection cannot shrink,
// i.e. fixed size arrays or read only views.
const ErrRemoveUnsupported removeUnsupported = 0

// Iterator is a cursor over a collection.
//
//   - Next advances to the next element, returning false past the end.
//   - Value returns the element the cursor is at.
//   - Remove deletes the element the cursor is at; the following Next continues with the element
//     that came after it, so nothing is skipped or visited twice.
type Iterator[E any] interface {
	Next() bool
	Value() E
	Remove() error
}

// Collection provides iteration over its elements
type Collection[E any] interface {
	// Iterator returns a fresh cursor positioned before the first element
	Iterator() Iterator[E]
}
