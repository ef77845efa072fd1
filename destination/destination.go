package destination

import (
	"reflect"

	"github.com/philipp01105/fanlog/core"
)

// Destination receives every broadcast entry as rendered text plus its kind
// and performs an output side effect.
//
// Implementations must not panic on ordinary output failures; a destination
// that cannot write should drop the line or report it internally. A
// destination owning a resource exposes Close separately: the Broadcaster
// only closes destinations when Broadcaster.Close is called explicitly.
type Destination interface {
	Log(text string, kind core.Kind)
}

// Func adapts an ordinary function to the Destination interface
type Func func(text string, kind core.Kind)

// Log calls f(text, kind)
func (f Func) Log(text string, kind core.Kind) {
	f(text, kind)
}

// isNil reports whether d is nil or an interface holding a nil pointer, func, map, slice or chan
func isNil(d Destination) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
