// Package strategy encapsulates interchangeable sorting algorithms behind a
// common interface, selectable and swappable at runtime.
package strategy

import (
	"errors"
	"sort"
)

// Strategy is one interchangeable algorithm. Implementations operate on a
// private copy of the input; the caller's slice is never mutated.
type Strategy interface {
	Sort(data []int) []int
}

// ErrNoStrategy is returned when a context executes before SetStrategy was
// called.
var ErrNoStrategy = errors.New("no strategy configured")

// Ascending sorts the input in increasing order.
type Ascending struct{}

func (Ascending) Sort(data []int) []int {
	out := make([]int, len(data))
	copy(out, data)
	sort.Ints(out)
	return out
}

// Descending sorts the input in increasing order and then reverses it.
type Descending struct{}

func (Descending) Sort(data []int) []int {
	out := Ascending{}.Sort(data)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Context holds the currently selected strategy.
type Context struct {
	strategy Strategy
}

// NewContext returns a context with no strategy selected.
func NewContext() *Context {
	return &Context{}
}

// SetStrategy replaces the current strategy. It may be called at any time;
// only subsequent Execute calls are affected.
func (c *Context) SetStrategy(s Strategy) {
	c.strategy = s
}

// Execute applies the current strategy to the given data and returns the
// result. The input slice is left untouched.
func (c *Context) Execute(data []int) ([]int, error) {
	if c.strategy == nil {
		return nil, ErrNoStrategy
	}
	return c.strategy.Sort(data), nil
}
