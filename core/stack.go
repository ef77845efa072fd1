package core

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"golang.org/x/xerrors"
)

// maxStackDepth bounds the number of frames captured for an exception entry
const maxStackDepth = 32

// CaptureStack returns the calling goroutine's stack, skipping skip frames
// above the caller of CaptureStack. Each frame is rendered on its own line
// as "\tat <function> (<file>:<line>)".
func CaptureStack(skip int) string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString("\tat ")
		sb.WriteString(frame.Function)
		sb.WriteString(" (")
		sb.WriteString(frame.File)
		sb.WriteByte(':')
		fmt.Fprint(&sb, frame.Line)
		sb.WriteString(")\n")
		if !more {
			break
		}
	}
	return sb.String()
}

// TraceOf returns the trace text for err. Errors that carry their own
// frames (xerrors.Formatter) render them via "%+v"; for anything else the
// captured stack is used.
func TraceOf(err error, captured string) string {
	if err == nil {
		return ""
	}
	if _, ok := err.(xerrors.Formatter); ok {
		detail := fmt.Sprintf("%+v", err)
		if !strings.HasSuffix(detail, "\n") {
			detail += "\n"
		}
		return detail
	}
	return captured
}

// ErrorTypeName returns the bare type name of err, without package path or
// pointer marker: *fs.PathError renders as "PathError".
func ErrorTypeName(err error) string {
	if err == nil {
		return ""
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
