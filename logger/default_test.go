package logger

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/logtest"
)

// useDefault installs a fresh default logger with a recorder for the
// duration of the test.
func useDefault(t *testing.T) *logtest.Recorder {
	t.Helper()

	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(New())
	rec := logtest.NewRecorder()
	if err := AddDestination(rec); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestDefault_StartsEmpty(t *testing.T) {
	if n := Default().Broadcaster().Len(); n != 0 {
		t.Errorf("default logger has %d destinations, want 0", n)
	}
}

func TestDefault_SetDefaultNil(t *testing.T) {
	before := Default()
	SetDefault(nil)
	if Default() != before {
		t.Error("SetDefault(nil) must keep the current logger")
	}
}

func TestDefault_PackageFunctions(t *testing.T) {
	rec := useDefault(t)
	SetDebugEnabled(true)
	if !DebugEnabled() {
		t.Fatal("DebugEnabled() = false")
	}

	net := core.NewContext("Network")
	boom := errors.New("boom")

	for i, err := range []error{
		Info("a %d", 1),
		Warn("b"),
		Error("c"),
		Custom("d"),
		Debug("e"),
		Chat(net, "alice", "hi"),
		With(net).Info("f"),
		Create().Kind(core.KindWarn).Message("g").Send(),
	} {
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	want := []logtest.Call{
		{Text: "[System] a 1", Kind: core.KindInfo},
		{Text: "[System] b", Kind: core.KindWarn},
		{Text: "[System] c", Kind: core.KindError},
		{Text: "[System] d", Kind: core.KindCustom},
		{Text: "[System] e", Kind: core.KindDebug},
		{Text: "[Network] [alice]: hi", Kind: core.KindChat},
		{Text: "[Network] f", Kind: core.KindInfo},
		{Text: "[System] g", Kind: core.KindWarn},
	}
	if diff := cmp.Diff(want, rec.Calls()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	rec.Reset()
	if err := Exception(boom); err != nil {
		t.Fatal(err)
	}
	if err := ExceptionMessage("failed", boom); err != nil {
		t.Fatal(err)
	}
	calls := rec.Calls()
	if len(calls) != 2 || calls[0].Kind != core.KindException || calls[1].Kind != core.KindException {
		t.Fatalf("unexpected exception calls %v", calls)
	}
}

func TestDefault_Fatal(t *testing.T) {
	rec := useDefault(t)

	var code int
	oldExit := osExit
	osExit = func(c int) { code = c }
	defer func() { osExit = oldExit }()

	Fatal(core.NewContext("OS"), "unsupported OS: %s", "plan9")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	want := []logtest.Call{{Text: "[OS] unsupported OS: plan9", Kind: core.KindFatal}}
	if diff := cmp.Diff(want, rec.Calls()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
