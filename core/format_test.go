package core

import (
	"errors"
	"testing"
)

func TestSprintf(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"substitution", "%s had %d errors", []any{"build", 3}, "build had 3 errors"},
		{"no args verbatim", "100% done", nil, "100% done"},
		{"no args keeps verbs", "%s %d", nil, "%s %d"},
		{"escaped percent", "%d%% done", []any{50}, "50% done"},
		{"explicit index", "%[2]s %[1]s", []any{"a", "b"}, "b a"},
		{"arg containing marker", "value: %s", []any{"%!odd"}, "value: %!odd"},
		{"arg containing complaint", "got %s", []any{"%!d(string=x)"}, "got %!d(string=x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sprintf(tt.template, tt.args...)
			if err != nil {
				t.Fatalf("Sprintf() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Sprintf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSprintf_Mismatch(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
	}{
		{"missing", "%s had %d errors", []any{"build"}},
		{"extra", "%s", []any{"a", "b"}},
		{"wrong type", "%d", []any{"three"}},
		{"bad index", "%[3]s", []any{"a"}},
		{"no verb", "50%", []any{1}},
		{"bare marker argument", "%x %d", []any{"%!"}},
		{"complaint-shaped argument", "%s %d", []any{"%!d(MISSING)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sprintf(tt.template, tt.args...)
			if !errors.Is(err, ErrFormat) {
				t.Errorf("Sprintf(%q) error = %v, want ErrFormat", tt.template, err)
			}
		})
	}
}
