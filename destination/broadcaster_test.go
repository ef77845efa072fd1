package destination_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
	"github.com/philipp01105/fanlog/logtest"
)

func TestBroadcaster_RegistrationOrder(t *testing.T) {
	b := destination.NewBroadcaster()

	var order []string
	recs := make([]*logtest.Recorder, 3)
	for i := range recs {
		recs[i] = logtest.NewRecorder()
		recs[i].OnLog = func(logtest.Call) { order = append(order, fmt.Sprint(i)) }
		if err := b.Add(recs[i]); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	b.Log("[System] hello", core.KindWarn)

	want := []logtest.Call{{Text: "[System] hello", Kind: core.KindWarn}}
	for i, rec := range recs {
		if diff := cmp.Diff(want, rec.Calls()); diff != "" {
			t.Errorf("destination %d mismatch (-want, +got):\n%s", i, diff)
		}
	}
	if diff := cmp.Diff([]string{"0", "1", "2"}, order); diff != "" {
		t.Errorf("delivery order mismatch (-want, +got):\n%s", diff)
	}
}

func TestBroadcaster_DebugFilter(t *testing.T) {
	b := destination.NewBroadcaster()
	rec := logtest.NewRecorder()
	if err := b.Add(rec); err != nil {
		t.Fatal(err)
	}

	b.Log("[System] hidden", core.KindDebug)
	if rec.Len() != 0 {
		t.Fatalf("debug entry delivered while disabled: %v", rec.Calls())
	}

	b.SetDebugEnabled(true)
	if !b.DebugEnabled() {
		t.Fatal("DebugEnabled() = false after SetDebugEnabled(true)")
	}
	b.Log("[System] shown", core.KindDebug)
	if rec.Len() != 1 {
		t.Fatalf("expected 1 debug entry, got %d", rec.Len())
	}

	b.SetDebugEnabled(false)
	b.Log("[System] hidden again", core.KindDebug)
	b.Log("[System] info still flows", core.KindInfo)

	want := []logtest.Call{
		{Text: "[System] shown", Kind: core.KindDebug},
		{Text: "[System] info still flows", Kind: core.KindInfo},
	}
	if diff := cmp.Diff(want, rec.Calls()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	snap := b.Stats()
	if snap.DebugDropped != 2 {
		t.Errorf("DebugDropped = %d, want 2", snap.DebugDropped)
	}
	if snap.Delivered[core.KindDebug] != 1 || snap.Delivered[core.KindInfo] != 1 {
		t.Errorf("unexpected delivered counts: %v", snap.Delivered)
	}
}

func TestBroadcaster_WithDebugEnabled(t *testing.T) {
	b := destination.NewBroadcaster(destination.WithDebugEnabled(true))
	if !b.DebugEnabled() {
		t.Error("expected debug enabled from option")
	}
}

func TestBroadcaster_AddNil(t *testing.T) {
	b := destination.NewBroadcaster()
	if err := b.Add(logtest.NewRecorder()); err != nil {
		t.Fatal(err)
	}

	var nilRecorder *logtest.Recorder
	var nilFunc destination.Func

	for name, d := range map[string]destination.Destination{
		"untyped nil":  nil,
		"typed nil":    nilRecorder,
		"nil func":     nilFunc,
		"self as dest": b,
	} {
		t.Run(name, func(t *testing.T) {
			err := b.Add(d)
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Add() error = %v, want ErrInvalidArgument", err)
			}
			if b.Len() != 1 {
				t.Errorf("Len() = %d after failed Add, want 1", b.Len())
			}
		})
	}
}

func TestBroadcaster_PanicIsolation(t *testing.T) {
	obsCore, logs := observer.New(zap.ErrorLevel)
	b := destination.NewBroadcaster(destination.WithDiagnostics(zap.New(obsCore)))

	first := logtest.NewRecorder()
	second := logtest.NewRecorder()
	for _, d := range []destination.Destination{first, logtest.Panicking{Value: "connection refused"}, second} {
		if err := b.Add(d); err != nil {
			t.Fatal(err)
		}
	}

	b.Log("[System] survive", core.KindError)

	if first.Len() != 1 || second.Len() != 1 {
		t.Fatalf("expected both healthy destinations to receive the entry, got %d and %d", first.Len(), second.Len())
	}
	if got := b.Stats().Panics; got != 1 {
		t.Errorf("Panics = %d, want 1", got)
	}
	if logs.FilterMessage("destination panicked").Len() != 1 {
		t.Errorf("expected diagnostics entry, got %v", logs.All())
	}
}

func TestBroadcaster_Func(t *testing.T) {
	b := destination.NewBroadcaster()

	var got []string
	err := b.Add(destination.Func(func(text string, kind core.Kind) {
		got = append(got, kind.String()+" "+text)
	}))
	if err != nil {
		t.Fatal(err)
	}

	b.Log("[Chat] [User123]: hello", core.KindChat)
	if diff := cmp.Diff([]string{"CHAT [Chat] [User123]: hello"}, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestBroadcaster_Nested(t *testing.T) {
	outer := destination.NewBroadcaster()
	inner := destination.NewBroadcaster()
	rec := logtest.NewRecorder()

	if err := inner.Add(rec); err != nil {
		t.Fatal(err)
	}
	if err := outer.Add(inner); err != nil {
		t.Fatal(err)
	}

	outer.Log("[System] nested", core.KindInfo)
	if rec.Len() != 1 {
		t.Errorf("nested destination got %d calls, want 1", rec.Len())
	}
}

func TestBroadcaster_AddCycle(t *testing.T) {
	a := destination.NewBroadcaster()
	b := destination.NewBroadcaster()
	c := destination.NewBroadcaster()

	if err := a.Add(b); err != nil {
		t.Fatal(err)
	}
	if err := b.Add(a); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("b.Add(a) error = %v, want ErrInvalidArgument", err)
	}
	if b.Len() != 0 {
		t.Errorf("b.Len() = %d after rejected Add, want 0", b.Len())
	}

	if err := b.Add(c); err != nil {
		t.Fatal(err)
	}
	if err := c.Add(a); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("c.Add(a) error = %v, want ErrInvalidArgument", err)
	}
	if c.Len() != 0 {
		t.Errorf("c.Len() = %d after rejected Add, want 0", c.Len())
	}

	// Shared children are fine as long as nothing loops back.
	shared := destination.NewBroadcaster()
	rec := logtest.NewRecorder()
	if err := shared.Add(rec); err != nil {
		t.Fatal(err)
	}
	if err := a.Add(shared); err != nil {
		t.Fatal(err)
	}
	if err := c.Add(shared); err != nil {
		t.Fatal(err)
	}

	a.Log("[System] no loop", core.KindInfo)
	if rec.Len() != 2 {
		t.Errorf("shared destination got %d calls, want 2", rec.Len())
	}
}

func TestBroadcaster_Close(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	a := &logtest.Closer{Err: errA}
	plain := logtest.NewRecorder()
	ok := &logtest.Closer{}
	bc := &logtest.Closer{Err: errB}

	b := destination.NewBroadcaster()
	for _, d := range []destination.Destination{a, plain, ok, bc} {
		if err := b.Add(d); err != nil {
			t.Fatal(err)
		}
	}

	err := b.Close()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Close() error = %v, want both errors", err)
	}
	for i, c := range []*logtest.Closer{a, ok, bc} {
		if c.Closed() != 1 {
			t.Errorf("closer %d closed %d times, want 1", i, c.Closed())
		}
	}
	if b.Len() != 4 {
		t.Errorf("Close() must not change the registry, Len() = %d", b.Len())
	}
}

func TestBroadcaster_Destinations(t *testing.T) {
	b := destination.NewBroadcaster()
	rec := logtest.NewRecorder()
	if err := b.Add(rec); err != nil {
		t.Fatal(err)
	}

	ds := b.Destinations()
	ds[0] = nil
	if b.Destinations()[0] == nil {
		t.Error("Destinations() must return a copy")
	}
}

func TestBroadcaster_ConcurrentAddAndLog(t *testing.T) {
	b := destination.NewBroadcaster()
	base := logtest.NewRecorder()
	if err := b.Add(base); err != nil {
		t.Fatal(err)
	}

	const writers = 8
	const msgs = 200

	var wg sync.WaitGroup
	for g := 0; g < writers; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < msgs; i++ {
				b.Log("[System] concurrent", core.KindInfo)
			}
		}()
	}
	for g := 0; g < writers; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Add(logtest.NewRecorder())
			b.SetDebugEnabled(g%2 == 0)
		}()
	}
	wg.Wait()

	if base.Len() != writers*msgs {
		t.Errorf("base destination got %d calls, want %d", base.Len(), writers*msgs)
	}
	if b.Len() != writers+1 {
		t.Errorf("Len() = %d, want %d", b.Len(), writers+1)
	}
}

func BenchmarkBroadcaster_Log(b *testing.B) {
	br := destination.NewBroadcaster()
	for i := 0; i < 3; i++ {
		_ = br.Add(destination.Func(func(string, core.Kind) {}))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		br.Log("[System] bench", core.KindInfo)
	}
}
