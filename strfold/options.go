package strfold

import (
	"github.com/viant/tagly/format/text"
	"github.com/viant/traversal/conv"
)

// Option configures a Folder
type Option func(o *options)

type options struct {
	initial    string
	closing    string
	separator  string
	format     func(element interface{}) (string, error)
	caseFormat text.CaseFormat
}

// WithInitial sets the text the folded string starts with
func WithInitial(initial string) Option {
	return func(o *options) {
		o.initial = initial
	}
}

// WithClosing sets the text appended to the result
func WithClosing(closing string) Option {
	return func(o *options) {
		o.closing = closing
	}
}

// WithSeparator sets the text put between tokens
func WithSeparator(separator string) Option {
	return func(o *options) {
		o.separator = separator
	}
}

// WithWrap sets both the initial and the closing text
func WithWrap(initial, closing string) Option {
	return func(o *options) {
		o.initial = initial
		o.closing = closing
	}
}

// WithFormat sets the function rendering an element to text
func WithFormat(format func(element interface{}) (string, error)) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithConverter renders elements with converter
func WithConverter(converter *conv.Converter) Option {
	return func(o *options) {
		o.format = converter.Text
	}
}

// WithCaseFormat converts every token to caseFormat, i.e. text.CaseFormatLowerUnderscore
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}
