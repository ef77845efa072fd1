package formatter

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/philipp01105/fanlog/core"
)

// ANSI SGR sequences used by the console formatter
const (
	Reset       = "\033[0m"
	Bold        = "\033[1m"
	Red         = "\033[31m"
	Green       = "\033[32m"
	Yellow      = "\033[33m"
	Cyan        = "\033[36m"
	Black       = "\033[30m"
	BrightBlue  = "\033[94m"
	BrightWhite = "\033[97m"
	RedBack     = "\033[41m"
)

// Colorize wraps text in the given SGR sequences followed by a reset
func Colorize(text string, codes ...string) string {
	if len(codes) == 0 {
		return text
	}
	n := len(text) + len(Reset)
	for _, c := range codes {
		n += len(c)
	}
	b := make([]byte, 0, n)
	for _, c := range codes {
		b = append(b, c...)
	}
	b = append(b, text...)
	b = append(b, Reset...)
	return string(b)
}

// StripColors removes every ANSI escape sequence from text
func StripColors(text string) string {
	return ansi.Strip(text)
}

// kindLabels holds the plain console label per kind. ERROR and EXCEPTION
// share a label; CUSTOM and FATAL are padded so their colored block stands out.
var kindLabels = [...]string{
	core.KindInfo:      "INFO",
	core.KindError:     "ERROR",
	core.KindDebug:     "DEBUG",
	core.KindException: "ERROR",
	core.KindWarn:      "WARN",
	core.KindChat:      "CHAT",
	core.KindCustom:    " CUSTOM ",
	core.KindFatal:     " FATAL ",
}

var kindStyles = [...][]string{
	core.KindInfo:      {Cyan},
	core.KindError:     {Red},
	core.KindDebug:     {BrightWhite},
	core.KindException: {Red},
	core.KindWarn:      {Yellow},
	core.KindChat:      {Green},
	core.KindCustom:    {BrightBlue},
	core.KindFatal:     {RedBack, Black, Bold},
}

// pre-colored labels, built once
var coloredLabels [len(kindLabels)]string

func init() {
	for k := range kindLabels {
		coloredLabels[k] = Colorize(kindLabels[k], kindStyles[k]...)
	}
}

// Label returns the console label for kind, colored when color is true
func Label(kind core.Kind, color bool) string {
	if int(kind) >= len(kindLabels) {
		return "UNKNOWN"
	}
	if color {
		return coloredLabels[kind]
	}
	return kindLabels[kind]
}
