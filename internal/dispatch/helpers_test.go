package dispatch

import (
	"testing"

	"github.com/conn-castle/langshim/internal/lang"
)

func goDescriptor(t *testing.T) *lang.Descriptor {
	t.Helper()
	d := lang.Find("go")
	if d == nil {
		t.Fatal("go descriptor missing")
	}
	return d
}
