package wallee

import (
	"errors"
	"iter"
)

// Chain iterates over an error and its causes, starting with the error itself. It follows the Unwrap() error method,
// so errors that are not Errors are traversed as well.
//
// A Chain is single-use: once Next returned false, the chain is exhausted.
type Chain struct {
	next error
}

// Chain returns an iterator over this Error and its causes. The chain of the zero Error is empty.
func (e Error) Chain() *Chain {
	if e.IsZero() {
		return &Chain{}
	}
	return &Chain{next: e}
}

func newChain(err error) *Chain {
	if e, ok := asError(err); ok {
		return e.Chain()
	}
	return &Chain{next: err}
}

// Next returns the next error of the chain and true, or nil and false if the chain is exhausted.
func (c *Chain) Next() (error, bool) {
	if c.next == nil {
		return nil, false
	}
	cur := c.next
	c.next = unwrap(cur)
	return cur, true
}

// Len returns the number of errors remaining in the chain without advancing it.
func (c *Chain) Len() int {
	n := 0
	for err := c.next; err != nil; err = unwrap(err) {
		n++
	}
	return n
}

// All returns an iterator over the remaining errors of the chain. Iterating advances the chain.
func (c *Chain) All() iter.Seq[error] {
	return func(yield func(error) bool) {
		for {
			err, ok := c.Next()
			if !ok || !yield(err) {
				return
			}
		}
	}
}

// unwrap is errors.Unwrap that maps zero Errors to nil.
func unwrap(err error) error {
	next := errors.Unwrap(err)
	if e, ok := next.(Error); ok && e.IsZero() {
		return nil
	}
	return next
}
