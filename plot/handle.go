// Package plot associates a plot with the grapher displaying it.
package plot

// Plot is a plot description that can be bound to a grapher
type Plot interface {
	SetGrapher(grapher Grapher)
}

// Grapher displays plots in numbered windows
type Grapher interface {
	// WriteEPS exports the plot of handle to an EPS file
	WriteEPS(handle *Handle, filename string) error
}

// Handle is the visual representation of a plot: the plot, its grapher and the grapher window
type Handle struct {
	plot    Plot
	grapher Grapher
	window  int
}

// NewHandle creates a handle and registers grapher with plot
func NewHandle(plot Plot, grapher Grapher, window int) *Handle {
	plot.SetGrapher(grapher)
	return &Handle{plot: plot, grapher: grapher, window: window}
}

// Plot returns the plot
func (h *Handle) Plot() Plot {
	return h.plot
}

// Grapher returns the grapher
func (h *Handle) Grapher() Grapher {
	return h.grapher
}

// Window returns the grapher window number
func (h *Handle) Window() int {
	return h.window
}

// WriteEPS asks the grapher to export this plot to filename
func (h *Handle) WriteEPS(filename string) error {
	return h.grapher.WriteEPS(h, filename)
}
