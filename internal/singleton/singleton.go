// Package singleton provides a process-wide shared holder behind a single
// accessor. The instance is created lazily on first access and never reset.
package singleton

import "sync"

// Holder is the single shared record. Name starts empty and may be mutated
// through any reference returned by Instance; all callers see the same object.
type Holder struct {
	Name string
}

var (
	once     sync.Once
	instance *Holder
)

// Instance returns the shared holder, constructing it on first call.
// Initialization is guarded so that concurrent first access is safe.
func Instance() *Holder {
	once.Do(func() {
		instance = &Holder{}
	})
	return instance
}
