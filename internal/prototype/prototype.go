// Package prototype demonstrates object creation by copying an existing
// instance instead of constructing from scratch.
package prototype

// Person is the prototype subject. Both fields are value types, so a shallow
// copy yields a fully independent record.
type Person struct {
	Name string
	Age  int
}

// Clone returns a new Person carrying the source's field values at the moment
// of cloning. Later mutation of either record does not affect the other.
func (p *Person) Clone() *Person {
	copied := *p
	return &copied
}
