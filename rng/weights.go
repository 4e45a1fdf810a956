package rng

// Weight pairs a selectable result with its relative weight
type Weight[R any] struct {
	Weight int
	Result R
}

// WeightList picks results with probability proportional to their weight
// Entries with non-positive weight are never selected
type WeightList[R any] struct {
	entries []Weight[R]
	total   int
}

// NewWeightList builds a list from weight/result pairs
func NewWeightList[R any](entries ...Weight[R]) WeightList[R] {
	var w WeightList[R]
	for _, e := range entries {
		w.Add(e.Weight, e.Result)
	}
	return w
}

// Add appends a result with the given weight
func (w *WeightList[R]) Add(weight int, result R) {
	if weight <= 0 {
		return
	}
	w.entries = append(w.entries, Weight[R]{Weight: weight, Result: result})
	w.total += weight
}

// Len returns the number of selectable entries
func (w WeightList[R]) Len() int { return len(w.entries) }

// Total returns the sum of all weights
func (w WeightList[R]) Total() int { return w.total }

// Entries returns the selectable entries in insertion order
func (w WeightList[R]) Entries() []Weight[R] { return w.entries }

// Roll maps n in [0, Total) to a result
// Panics on an empty list or out-of-range n
func (w WeightList[R]) Roll(n int) R {
	if n < 0 || n >= w.total {
		panic("rng: weight roll out of range")
	}
	for _, e := range w.entries {
		if n < e.Weight {
			return e.Result
		}
		n -= e.Weight
	}
	panic("unreachable")
}

// Pick draws one result from src; ok is false for an empty list
func (w WeightList[R]) Pick(src Source) (result R, ok bool) {
	if w.total == 0 {
		return result, false
	}
	return w.Roll(src.UniformInt(0, w.total-1)), true
}
