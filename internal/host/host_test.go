package host_test

import (
	"testing"

	"github.com/hyperifyio/cehta/internal/host"
	"github.com/hyperifyio/cehta/internal/host/hosttest"
)

func TestTopLevel_WalksParents(t *testing.T) {
	top := &hosttest.Window{}
	mid := &hosttest.Window{Up: top}
	leaf := &hosttest.Window{Up: mid}
	if got := host.TopLevel(leaf); got != host.Window(top) {
		t.Fatalf("expected top-level window")
	}
	if host.TopLevel(nil) != nil {
		t.Fatalf("nil window should stay nil")
	}
}

func TestFindStatusLine_IgnoresCase(t *testing.T) {
	status := &hosttest.StatusLine{Class: "MSCTLS_STATUSBAR32"}
	w := &hosttest.Window{Kids: []host.Control{
		&hosttest.Control{Class: "Internet Explorer_Server"},
		status,
	}}
	if got := host.FindStatusLine(w); got != host.StatusLine(status) {
		t.Fatalf("status line not found")
	}
}

func TestFindStatusLine_NoneOrWrongType(t *testing.T) {
	w := &hosttest.Window{Kids: []host.Control{
		// right class, but cannot show text
		&hosttest.Control{Class: host.StatusBarClass},
		nil,
	}}
	if got := host.FindStatusLine(w); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
	if host.FindStatusLine(nil) != nil {
		t.Fatalf("expected nil for nil window")
	}
}
