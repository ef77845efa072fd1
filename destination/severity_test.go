package destination

import (
	"testing"

	"github.com/philipp01105/fanlog/core"
)

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		kind core.Kind
		want Severity
	}{
		{core.KindDebug, SeverityDebug},
		{core.KindInfo, SeverityInfo},
		{core.KindChat, SeverityInfo},
		{core.KindCustom, SeverityInfo},
		{core.KindWarn, SeverityWarn},
		{core.KindError, SeverityError},
		{core.KindException, SeverityError},
		{core.KindFatal, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := SeverityOf(tt.kind); got != tt.want {
				t.Errorf("SeverityOf(%v) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}
