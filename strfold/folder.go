package strfold

import (
	"strings"

	"github.com/viant/tagly/format/text"
	"github.com/viant/traversal"
	"github.com/viant/traversal/collection"
	"github.com/viant/traversal/conv"
)

// Folder is a traversal.Accumulator building a delimited string
type Folder[E any] struct {
	builder   strings.Builder
	closing   string
	separator string
	first     bool
	count     int
	format    func(element interface{}) (string, error)
	tokenCase text.CaseFormat
}

// New creates a Folder
func New[E any](opts ...Option) *Folder[E] {
	o := &options{format: conv.Text}
	for _, opt := range opts {
		opt(o)
	}
	ret := &Folder[E]{
		closing:   o.closing,
		separator: o.separator,
		first:     true,
		format:    o.format,
		tokenCase: o.caseFormat,
	}
	ret.builder.WriteString(o.initial)
	return ret
}

// Visit appends the textual form of element. A conversion error is returned as is and leaves the folder unchanged.
func (f *Folder[E]) Visit(element E) (traversal.Signal, error) {
	token, err := f.format(element)
	if err != nil {
		return traversal.Continue, err
	}
	f.Append(token)
	return traversal.Continue, nil
}

// Append adds token, preceded by the separator unless it is the first one
func (f *Folder[E]) Append(token string) {
	if f.tokenCase.IsDefined() {
		token = caseFormatted(token, f.tokenCase)
	}
	if !f.first {
		f.builder.WriteString(f.separator)
	}
	f.builder.WriteString(token)
	f.first = false
	f.count++
}

// Len returns the number of appended tokens
func (f *Folder[E]) Len() int {
	return f.count
}

// Result returns the accumulated text followed by the closing text
func (f *Folder[E]) Result() string {
	return f.builder.String() + f.closing
}

func caseFormatted(token string, to text.CaseFormat) string {
	from := text.DetectCaseFormat(token)
	if !from.IsDefined() {
		from = text.CaseFormatLower
	}
	return from.Format(token, to)
}

// Fold folds collection into a string with the Tolerant policy and returns the accumulator result
func Fold[E any](c traversal.Collection[E], accumulator traversal.Accumulator[E, string]) (string, error) {
	result, _, err := traversal.Fold[E, string](traversal.Tolerant, c, accumulator)
	return result, err
}

// FoldSlice folds values, treated as a fixed size array, into a string with the Tolerant policy
func FoldSlice[E any](values []E, accumulator traversal.Accumulator[E, string]) (string, error) {
	return Fold[E](collection.ArrayOf(values), accumulator)
}

// Join folds values with a new Folder configured with opts
func Join[E any](values []E, opts ...Option) (string, error) {
	return FoldSlice[E](values, New[E](opts...))
}
