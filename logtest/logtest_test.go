package logtest_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/logtest"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	rec := logtest.NewRecorder()

	_, ok := rec.Last()
	assert.False(t, ok)

	var seen []logtest.Call
	rec.OnLog = func(c logtest.Call) { seen = append(seen, c) }

	rec.Log("[System] a", core.KindInfo)
	rec.Log("[System] b", core.KindWarn)

	want := []logtest.Call{
		{Text: "[System] a", Kind: core.KindInfo},
		{Text: "[System] b", Kind: core.KindWarn},
	}
	assert.Equal(t, want, rec.Calls())
	assert.Equal(t, want, seen)
	assert.Equal(t, 2, rec.Len())

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, want[1], last)

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
}

func TestPanicking(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "disk full", func() {
		logtest.Panicking{Value: "disk full"}.Log("x", core.KindInfo)
	})
}

func TestCloser(t *testing.T) {
	t.Parallel()

	errClose := errors.New("close failed")
	c := &logtest.Closer{Err: errClose}

	require.ErrorIs(t, c.Close(), errClose)
	require.ErrorIs(t, c.Close(), errClose)
	assert.Equal(t, 2, c.Closed())
}
