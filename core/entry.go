package core

import "strings"

// Entry represents one log occurrence before it is rendered
type Entry struct {
	Context Context
	Kind    Kind
	Message string
	// Err is the attached error, if any
	Err error
	// Trace is the multi-line trace text printed after the error line
	Trace string
}

// Render produces the display string handed to destinations:
//
//	[Context] message
//	[Context] message | TypeName: error text
//	<trace>
func (e *Entry) Render() string {
	var sb strings.Builder
	sb.Grow(len(e.Context.name) + len(e.Message) + 3)

	sb.WriteString(e.Context.String())
	sb.WriteByte(' ')
	sb.WriteString(e.Message)

	if e.Err != nil {
		sb.WriteString(" | ")
		sb.WriteString(ErrorTypeName(e.Err))
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
		sb.WriteByte('\n')
		sb.WriteString(e.Trace)
	}

	return sb.String()
}
