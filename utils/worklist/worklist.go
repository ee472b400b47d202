// Package worklist provides a minimal FIFO worklist driving fixpoint
// iteration loops.
package worklist

type Worklist[T any] struct {
	list []T
}

func Empty[T any]() Worklist[T] {
	return Worklist[T]{}
}

// Start worklist execution with the provided `start` element and an iteration
// function. The iteration function exposes the next element and a function
// with which to add more elements to the worklist.
func Start[T any](start T, do func(next T, add func(el T))) {
	StartV([]T{start}, do)
}

// StartV starts worklist execution with a preloaded queue.
func StartV[T any](start []T, do func(next T, add func(el T))) {
	W := Empty[T]()
	for _, e := range start {
		W.Add(e)
	}

	W.Process(do)
}

func (w *Worklist[T]) Add(el T) {
	w.list = append(w.list, el)
}

func (w *Worklist[T]) IsEmpty() bool {
	return len(w.list) == 0
}

func (w *Worklist[T]) GetNext() (ret T) {
	if len(w.list) == 0 {
		return
	}
	next := w.list[0]
	w.list = w.list[1:]
	return next
}

// Process drains the worklist, exposing each element in turn to `do`,
// along with a function for enqueueing further elements.
func (w *Worklist[T]) Process(do func(next T, add func(el T))) {
	for !w.IsEmpty() {
		do(w.GetNext(), w.Add)
	}
}
