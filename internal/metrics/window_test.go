package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/zephyria/internal/model"
)

func TestNewWindow_MinimumCapacity(t *testing.T) {
	w := NewWindow(0)
	assert.Equal(t, 1, w.Capacity())
	assert.Equal(t, 0, w.Len())
}

func TestWindow_PushEvictsOldest(t *testing.T) {
	w := NewWindow(3)

	for i := 0; i < 3; i++ {
		_, evicted := w.Push(model.Sample{Index: i})
		assert.False(t, evicted)
	}
	require.True(t, w.Full())

	old, evicted := w.Push(model.Sample{Index: 3})
	require.True(t, evicted)
	assert.Equal(t, 0, old.Index)
	assert.Equal(t, 3, w.Len())

	indices := []int{}
	for _, s := range w.Samples() {
		indices = append(indices, s.Index)
	}
	assert.Equal(t, []int{1, 2, 3}, indices)
}

func TestWindow_LatestAndOldest(t *testing.T) {
	w := NewWindow(2)

	_, ok := w.Latest()
	assert.False(t, ok)
	_, ok = w.Oldest()
	assert.False(t, ok)

	w.Push(model.Sample{Index: 1, Primary: 10})
	w.Push(model.Sample{Index: 2, Primary: 20})
	w.Push(model.Sample{Index: 3, Primary: 30})

	latest, ok := w.Latest()
	require.True(t, ok)
	assert.Equal(t, 3, latest.Index)

	oldest, ok := w.Oldest()
	require.True(t, ok)
	assert.Equal(t, 2, oldest.Index)

	assert.Equal(t, []float64{20, 30}, w.Primary())
}

func TestWindow_SamplesIsACopy(t *testing.T) {
	w := NewWindow(2)
	w.Push(model.Sample{Index: 1})

	got := w.Samples()
	got[0].Index = 99

	latest, _ := w.Latest()
	assert.Equal(t, 1, latest.Index)
}

func TestWindow_Reset(t *testing.T) {
	w := NewWindow(4)
	w.Push(model.Sample{Index: 1})
	w.Push(model.Sample{Index: 2})

	w.Reset()

	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 4, w.Capacity())
	assert.Empty(t, w.Samples())
}
