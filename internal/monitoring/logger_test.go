package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("assessed %d frames", 3)
	if got != "assessed 3 frames" {
		t.Errorf("captured %q", got)
	}

	// nil installs a no-op, not a panic.
	SetLogger(nil)
	Logf("dropped")
}
