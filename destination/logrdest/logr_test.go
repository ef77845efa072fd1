package logrdest

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/philipp01105/fanlog/core"
)

func capture(verbosity int) (*[]string, logr.Logger) {
	var lines []string
	l := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: verbosity})
	return &lines, l
}

func Test(t *testing.T) {
	tcs := map[string]struct {
		kind      core.Kind
		verbosity int
		want      []string
		notWant   []string
	}{
		"info": {
			kind: core.KindInfo,
			want: []string{`"level"=0`, `"msg"="[System] hello"`, `"kind"="INFO"`},
		},
		"warn is info at V(0)": {
			kind: core.KindWarn,
			want: []string{`"level"=0`, `"kind"="WARN"`},
		},
		"debug at V(1)": {
			kind:      core.KindDebug,
			verbosity: 1,
			want:      []string{`"level"=1`, `"kind"="DEBUG"`},
		},
		"error through Error": {
			kind:    core.KindError,
			want:    []string{`"msg"="[System] hello"`, `"kind"="ERROR"`},
			notWant: []string{`"level"=`},
		},
		"fatal through Error": {
			kind:    core.KindFatal,
			want:    []string{`"kind"="FATAL"`},
			notWant: []string{`"level"=`},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lines, l := capture(tc.verbosity)
			New(l).Log("[System] hello", tc.kind)

			if len(*lines) != 1 {
				t.Fatalf("expected 1 line, got %d: %v", len(*lines), *lines)
			}
			line := (*lines)[0]
			for _, w := range tc.want {
				if !strings.Contains(line, w) {
					t.Errorf("line %q does not contain %q", line, w)
				}
			}
			for _, w := range tc.notWant {
				if strings.Contains(line, w) {
					t.Errorf("line %q should not contain %q", line, w)
				}
			}
		})
	}
}

func TestDebugSuppressed(t *testing.T) {
	lines, l := capture(0)
	New(l).Log("[System] verbose", core.KindDebug)
	if len(*lines) != 0 {
		t.Errorf("debug should be suppressed at verbosity 0, got %v", *lines)
	}
}

func TestZeroLogger(t *testing.T) {
	// Discarding logger; must not panic.
	New(logr.Logger{}).Log("[System] hello", core.KindError)
}
