// Package conv renders values to their textual form.
// It supports primitives, byte slices, time values, fmt.Stringer and error implementations,
// pointers to any of these, and custom formatters registered per type.
package conv
