package evaluator

import (
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// statsWindow is the number of recent runs summarized
const statsWindow = 256

// DurationStats summarizes recent run durations in milliseconds
type DurationStats struct {
	Count  int     `json:"count"`
	MeanMs float64 `json:"meanMs"`
	P50Ms  float64 `json:"p50Ms"`
	P95Ms  float64 `json:"p95Ms"`
	MaxMs  float64 `json:"maxMs"`
}

// window is a fixed-size ring of durations
type window struct {
	mu      sync.Mutex
	samples []float64
	next    int
	full    bool
}

func newWindow(size int) *window {
	return &window{samples: make([]float64, size)}
}

func (w *window) add(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.samples[w.next] = float64(d) / float64(time.Millisecond)
	w.next++
	if w.next == len(w.samples) {
		w.next = 0
		w.full = true
	}
}

func (w *window) values() []float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := w.next
	if w.full {
		n = len(w.samples)
	}
	out := make([]float64, n)
	copy(out, w.samples[:n])
	return out
}

func (w *window) summary() DurationStats {
	values := w.values()
	if len(values) == 0 {
		return DurationStats{}
	}

	sort.Float64s(values)
	return DurationStats{
		Count:  len(values),
		MeanMs: stat.Mean(values, nil),
		P50Ms:  stat.Quantile(0.5, stat.Empirical, values, nil),
		P95Ms:  stat.Quantile(0.95, stat.Empirical, values, nil),
		MaxMs:  values[len(values)-1],
	}
}
