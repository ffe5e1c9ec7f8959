package tableau

// Task runs work on a goroutine and exposes the outcome through a
// write-once slot the UI polls once per tick. The worker communicates by
// closing the done channel after filling the slot, so Poll never blocks and
// the result is read only after completion. This is the only concurrency
// the engine participates in; everything else runs on the tick thread.
type Task[T any] struct {
	done   chan struct{}
	result T
	err    error
}

// Go starts fn on its own goroutine and returns the handle to poll.
func Go[T any](fn func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.result, t.err = fn()
	}()
	return t
}

// Poll reports whether the task has finished and, once it has, yields the
// result. Before completion the returned values are zero and false.
func (t *Task[T]) Poll() (result T, err error, done bool) {
	select {
	case <-t.done:
		return t.result, t.err, true
	default:
		var zero T
		return zero, nil, false
	}
}

// Wait blocks until the task completes and returns its outcome. Intended
// for tests and shutdown paths, not the tick loop.
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.result, t.err
}
