package scrawl

// worklist is a LIFO stack of pending items. It replaces call stack recursion
// for traversals whose depth is only bounded by the board size
type worklist[T any] struct {
	items []T
}

// newWorklist returns a worklist with room for hint items. The hint is capped
// so that small fills on large boards don't allocate the worst case up front
func newWorklist[T any](hint int) *worklist[T] {
	if hint > 4096 {
		hint = 4096
	}
	if hint < 0 {
		hint = 0
	}
	return &worklist[T]{
		items: make([]T, 0, hint),
	}
}

func (w *worklist[T]) push(item T) {
	w.items = append(w.items, item)
}

func (w *worklist[T]) pop() (T, bool) {
	var item T
	n := len(w.items)
	if n == 0 {
		return item, false
	}
	item = w.items[n-1]
	w.items = w.items[:n-1]
	return item, true
}

func (w *worklist[T]) len() int {
	return len(w.items)
}
