package core

// Context names the logical source of an entry, e.g. "AuthModule".
// Two contexts are equal when their names are equal, so Context values
// can be compared with ==.
type Context struct {
	name string
}

// System is the default context used when the caller does not pick one.
var System = NewContext("System")

// NewContext creates a context with the given name
func NewContext(name string) Context {
	return Context{name: name}
}

// Name returns the bare context name
func (c Context) Name() string {
	return c.name
}

// String renders the context as its name wrapped in brackets
func (c Context) String() string {
	return "[" + c.name + "]"
}
