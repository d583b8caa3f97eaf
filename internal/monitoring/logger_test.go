package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("stage %s done", "terrain")
	if got != "stage terrain done" {
		t.Fatalf("custom logger received %q", got)
	}

	got = ""
	SetLogger(nil)
	Logf("muted")
	if got != "" {
		t.Fatal("nil logger must not forward to the previous logger")
	}
}

func TestLogfDefault(t *testing.T) {
	if Logf == nil {
		t.Fatal("Logf should not be nil by default")
	}
}
