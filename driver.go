package traversal

// Policy decides what the driver reports when a visitor returns Stop
type Policy int

const (
	// Strict reports a stop as StoppedEarly
	Strict Policy = iota
	// Tolerant absorbs a stop and reports Completed, leaving the partial result with the visitor
	Tolerant
)

func (p Policy) String() string {
	if p == Tolerant {
		return "tolerant"
	}
	return "strict"
}

func (p Policy) stopped() Outcome {
	if p == Tolerant {
		return Completed
	}
	return StoppedEarly
}

// Run visits every element of collection with visitor, following policy on Stop.
// Errors returned by the visitor or by a removal are passed through unchanged; the collection
// keeps whatever removals happened before.
func Run[E any](policy Policy, collection Collection[E], visitor Visitor[E]) (Outcome, error) {
	iter := collection.Iterator()
	for iter.Next() {
		signal, err := visitor.Visit(iter.Value())
		if err != nil {
			return Completed, err
		}
		if signal.IsRemove() {
			if err = iter.Remove(); err != nil {
				return Completed, err
			}
		}
		if signal.IsStop() {
			return policy.stopped(), nil
		}
	}
	return Completed, nil
}

// RunStrict runs the traversal with the Strict policy
func RunStrict[E any](collection Collection[E], visitor Visitor[E]) (Outcome, error) {
	return Run(Strict, collection, visitor)
}

// RunTolerant runs the traversal with the Tolerant policy; the outcome is always Completed
func RunTolerant[E any](collection Collection[E], visitor Visitor[E]) (Outcome, error) {
	return Run(Tolerant, collection, visitor)
}

// Fold runs the traversal and returns the accumulator result, which holds the partial fold
// when the traversal stopped or failed.
func Fold[E, V any](policy Policy, collection Collection[E], accumulator Accumulator[E, V]) (V, Outcome, error) {
	outcome, err := Run[E](policy, collection, accumulator)
	return accumulator.Result(), outcome, err
}
