package steam

import (
	"sync"

	"github.com/steamkit/enums/enum"
)

var registry = sync.OnceValue(func() *enum.Registry {
	return enum.MustRegistry(Families()...)
})

// Registry returns the name-keyed registry of every family in this package.
// It is built on first use and shared afterwards.
func Registry() *enum.Registry {
	return registry()
}
