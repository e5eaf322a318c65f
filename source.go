package printerator

import "iter"

// FromChan adapts a channel to a sequence that ends when ch is closed.
func FromChan[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// FromNext adapts a pull-style producer to a sequence. next reports false
// once the producer is exhausted.
func FromNext[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
