package metrics

import "github.com/rusenback/zephyria/internal/model"

// Window is a fixed-capacity FIFO of samples, oldest first.
// It is not safe for concurrent use; each view owns its own window.
type Window struct {
	samples []model.Sample
	start   int
	count   int
}

// NewWindow creates an empty window. Capacity is at least 1.
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}
	return &Window{samples: make([]model.Sample, capacity)}
}

func (w *Window) Capacity() int {
	return len(w.samples)
}

func (w *Window) Len() int {
	return w.count
}

// Full reports whether the next Push will evict
func (w *Window) Full() bool {
	return w.count == len(w.samples)
}

// Push appends s as the newest sample. When the window is full the oldest
// sample is evicted and returned with ok=true.
func (w *Window) Push(s model.Sample) (evicted model.Sample, ok bool) {
	idx := (w.start + w.count) % len(w.samples)
	if w.count < len(w.samples) {
		w.samples[idx] = s
		w.count++
		return model.Sample{}, false
	}
	evicted = w.samples[w.start]
	w.samples[w.start] = s
	w.start = (w.start + 1) % len(w.samples)
	return evicted, true
}

// Latest returns the newest sample
func (w *Window) Latest() (model.Sample, bool) {
	if w.count == 0 {
		return model.Sample{}, false
	}
	return w.samples[(w.start+w.count-1)%len(w.samples)], true
}

// Oldest returns the sample that the next Push would evict
func (w *Window) Oldest() (model.Sample, bool) {
	if w.count == 0 {
		return model.Sample{}, false
	}
	return w.samples[w.start], true
}

// Samples returns a copy of the window contents, oldest to newest.
func (w *Window) Samples() []model.Sample {
	out := make([]model.Sample, w.count)
	for i := 0; i < w.count; i++ {
		out[i] = w.samples[(w.start+i)%len(w.samples)]
	}
	return out
}

// Primary returns the primary values, oldest to newest
func (w *Window) Primary() []float64 {
	out := make([]float64, w.count)
	for i := 0; i < w.count; i++ {
		out[i] = w.samples[(w.start+i)%len(w.samples)].Primary
	}
	return out
}

// Reset drops every sample but keeps the capacity
func (w *Window) Reset() {
	w.start = 0
	w.count = 0
}
