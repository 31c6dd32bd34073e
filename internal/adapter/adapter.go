// Package adapter translates an existing incompatible operation into the
// signature callers expect.
package adapter

import "fmt"

// Target is the capability callers program against.
type Target interface {
	Request() string
}

// Adaptee carries the legacy operation with the incompatible name.
type Adaptee struct{}

// GetRequest is the legacy operation the adapter wraps.
func (Adaptee) GetRequest() string {
	return "Request from the client"
}

// Adapter exposes Target by delegating to an injected adaptee and reformatting
// its result.
type Adapter struct {
	adaptee Adaptee
}

var _ Target = (*Adapter)(nil)

// New builds an adapter around the given adaptee.
func New(a Adaptee) *Adapter {
	return &Adapter{adaptee: a}
}

// Request satisfies Target by quoting the adaptee's result.
func (a *Adapter) Request() string {
	return fmt.Sprintf("This is the '%s'", a.adaptee.GetRequest())
}
