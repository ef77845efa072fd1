package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// fmtMarker prefixes every complaint fmt embeds in its output
// ("%!d(string=x)", "%!(EXTRA ...)", "%!v(MISSING)", "%!s(BADINDEX)").
const fmtMarker = "%!"

// Sprintf formats template with args the way fmt.Sprintf does, but reports
// a mismatch between verbs and arguments as an ErrFormat error.
//
// Without args the template is returned verbatim, so literal '%'
// characters survive untouched.
func Sprintf(template string, args ...any) (string, error) {
	if len(args) == 0 {
		return template, nil
	}

	out := fmt.Sprintf(template, args...)
	if !strings.Contains(out, fmtMarker) {
		return out, nil
	}

	// An argument may itself render to text shaped like a complaint; only
	// complaints beyond those come from fmt.
	if complaints(out) > argComplaints(args) {
		return out, fmt.Errorf("%w: template %q produced %q", ErrFormat, template, out)
	}
	return out, nil
}

func argComplaints(args []any) int {
	n := 0
	for _, a := range args {
		n += complaints(fmt.Sprint(a))
	}
	return n
}

// complaints counts the fmt error annotations in s. A bare "%!" is not one.
func complaints(s string) int {
	n := 0
	for {
		i := strings.Index(s, fmtMarker)
		if i < 0 {
			return n
		}
		s = s[i+len(fmtMarker):]
		if isComplaint(s) {
			n++
		}
	}
}

// isComplaint reports whether s, the text right after "%!", is one of
//
//	(EXTRA ...)  (BADWIDTH)  (BADPREC)  (NOVERB)
//	<verb>(MISSING)  <verb>(BADINDEX)  <verb>(<nil>)  <verb>(<type>=<value>)
func isComplaint(s string) bool {
	if rest, ok := strings.CutPrefix(s, "("); ok {
		for _, p := range []string{"EXTRA ", "BADWIDTH)", "BADPREC)", "NOVERB)"} {
			if strings.HasPrefix(rest, p) {
				return true
			}
		}
		return false
	}

	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return false
	}
	rest, ok := strings.CutPrefix(s[size:], "(")
	if !ok {
		return false
	}
	for _, p := range []string{"MISSING)", "BADINDEX)", "<nil>)"} {
		if strings.HasPrefix(rest, p) {
			return true
		}
	}

	// Wrong type: a type name such as string, *pkg.T or map[string]int
	// followed by '='.
	eq := strings.IndexByte(rest, '=')
	if eq <= 0 {
		return false
	}
	return !strings.ContainsAny(rest[:eq], " ()\n")
}
