package printerator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
)

// render drains the sequence into w. It holds exactly one pending item: the
// pending item is written with a separator only after a successor has been
// drawn, and written as the last item once the draw fails.
func (p *Printer[T]) render(w io.Writer, directive string) error {
	item, err := itemRenderer[T](p.opts.Item, p.flavor, directive)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.opts.Pretty {
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
	}

	next := p.pull()
	cur, ok := next()
	if ok && p.opts.Pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			p.release()
			return err
		}
	}
	for index := 0; ok; index++ {
		succ, more := next()
		if err := p.writeItem(w, index, cur, item, !more); err != nil {
			p.release()
			return err
		}
		cur, ok = succ, more
	}
	p.release()

	if !p.opts.Pretty {
		return nil
	}
	closing := "]"
	if p.flavor == FlavorDebug {
		closing = "]\n"
	}
	_, err = io.WriteString(w, closing)
	return err
}

func (p *Printer[T]) writeItem(w io.Writer, index int, v T, item func(io.Writer, T) error, last bool) error {
	if p.opts.Pretty {
		if _, err := io.WriteString(w, p.opts.Indent); err != nil {
			return err
		}
	}
	if p.opts.Indices {
		if _, err := io.WriteString(w, strconv.Itoa(index)+": "); err != nil {
			return err
		}
	}
	if err := item(w, v); err != nil {
		if errors.Is(err, ErrItem) {
			return fmt.Errorf("index %d: %w", index, err)
		}
		return err
	}
	var sep string
	switch {
	case p.opts.Pretty && last:
		sep = "\n"
	case p.opts.Pretty:
		sep = ",\n"
	case !last:
		sep = ", "
	}
	if sep == "" {
		return nil
	}
	_, err := io.WriteString(w, sep)
	return err
}

// pull returns the draw function, starting the pull coroutine on first use.
// Must be called with p.mu held.
func (p *Printer[T]) pull() func() (T, bool) {
	if p.next == nil && p.seq != nil {
		p.next, p.stop = iter.Pull(p.seq)
		p.seq = nil
	}
	if p.next == nil {
		return exhausted[T]
	}
	return p.next
}

// release stops the pull coroutine and drops the source. Must be called
// with p.mu held.
func (p *Printer[T]) release() {
	if p.stop != nil {
		p.stop()
	}
	p.next, p.stop = nil, nil
}

func exhausted[T any]() (zero T, _ bool) { return zero, false }
