package conv

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"
)

// DefaultTimeLayout is the default layout used to render time.Time values
const DefaultTimeLayout = "2006-01-02 15:04:05.000"

// Options contains configuration for the converter
type Options struct {
	// TimeLayout specifies the layout for time rendering
	TimeLayout string
	// NilText is rendered for nil values and nil pointers, "<nil>" when empty
	NilText string
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		TimeLayout: DefaultTimeLayout,
		NilText:    "<nil>",
	}
}

// Formatter renders a value of a registered type
type Formatter func(value interface{}, opts Options) (string, error)

// Converter renders values to text
type Converter struct {
	options    Options
	formatters sync.Map // map[reflect.Type]Formatter
}

var timeType = reflect.TypeOf(time.Time{})

// NewConverter creates a new text converter with the provided options
func NewConverter(options Options) *Converter {
	if options.TimeLayout == "" {
		options.TimeLayout = DefaultTimeLayout
	}
	if options.NilText == "" {
		options.NilText = DefaultOptions().NilText
	}
	return &Converter{options: options}
}

// RegisterFormatter registers a custom formatter for values of type t; it takes precedence over built-in rules
func (c *Converter) RegisterFormatter(t reflect.Type, fn Formatter) {
	c.formatters.Store(t, fn)
}

// Text returns the textual form of value
func (c *Converter) Text(value interface{}) (string, error) {
	if value == nil {
		return c.options.NilText, nil
	}
	return c.text(reflect.ValueOf(value))
}

func (c *Converter) text(value reflect.Value) (string, error) {
	valueType := value.Type()
	if fn, ok := c.formatters.Load(valueType); ok {
		return fn.(Formatter)(value.Interface(), c.options)
	}
	if valueType == timeType {
		return value.Interface().(time.Time).Format(c.options.TimeLayout), nil
	}

	switch value.Kind() {
	case reflect.Ptr, reflect.Interface:
		if value.IsNil() {
			return c.options.NilText, nil
		}
	}

	if value.CanInterface() {
		switch actual := value.Interface().(type) {
		case fmt.Stringer:
			return actual.String(), nil
		case error:
			return actual.Error(), nil
		}
	}

	switch value.Kind() {
	case reflect.String:
		return value.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(value.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(value.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(value.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(value.Float(), 'f', -1, 64), nil
	case reflect.Ptr, reflect.Interface:
		return c.text(value.Elem())
	case reflect.Slice:
		if valueType.Elem().Kind() == reflect.Uint8 { // []byte
			return string(value.Bytes()), nil
		}
	}
	return "", fmt.Errorf("cannot convert %v to string", valueType)
}

var defaultConverter = NewConverter(DefaultOptions())

// Text renders value with the default converter
func Text(value interface{}) (string, error) {
	return defaultConverter.Text(value)
}
