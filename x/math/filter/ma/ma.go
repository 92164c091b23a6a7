// Package ma implements a simple moving-average filter: a fixed-size
// window that averages by the count of samples actually seen so far, so
// the first window-1 outputs are a partial average rather than zero-padded.
// That partial-window behavior is exactly the boxcar transient shape the
// envelope synthesizer in x/nfc relies on.
package ma

// Filter implements a simple moving average over a fixed-size window.
type Filter struct {
	buffer []float64
	index  int
	sum    float64
	size   int
	count  int // number of samples added so far, capped at size
}

// New creates a moving-average filter with the given window size.
func New(size int) *Filter {
	if size <= 0 {
		panic("ma.New: window size must be > 0")
	}
	return &Filter{
		buffer: make([]float64, size),
		size:   size,
	}
}

// Reset clears the filter back to its zero state.
func (f *Filter) Reset() {
	f.index = 0
	f.sum = 0
	f.count = 0
	for i := range f.buffer {
		f.buffer[i] = 0
	}
}

// Process adds a sample and returns the current moving average, dividing
// by the number of samples seen so far while the window is still filling.
func (f *Filter) Process(sample float64) float64 {
	f.sum -= f.buffer[f.index]
	f.buffer[f.index] = sample
	f.sum += sample
	f.index = (f.index + 1) % f.size

	if f.count < f.size {
		f.count++
	}
	return f.sum / float64(f.count)
}
