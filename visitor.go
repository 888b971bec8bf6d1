package traversal

// Visitor processes one element at a time.
// Visit is called once per element in iteration order. The returned Signal directs the driver,
// a non nil error is a failure of the visitor itself and ends the traversal.
type Visitor[E any] interface {
	Visit(element E) (Signal, error)
}

// VisitorFunc adapts a function to Visitor
type VisitorFunc[E any] func(element E) (Signal, error)

// Visit calls f(element)
func (f VisitorFunc[E]) Visit(element E) (Signal, error) {
	return f(element)
}

// Accumulator is a Visitor that folds visited elements into a result.
// Result can be called at any time and must not change the visitor state.
type Accumulator[E, V any] interface {
	Visitor[E]
	Result() V
}
