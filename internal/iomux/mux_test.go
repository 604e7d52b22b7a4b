package iomux

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// drip yields at most n bytes per Read to exercise chunk boundaries.
type drip struct {
	r io.Reader
	n int
}

func (d *drip) Read(p []byte) (int, error) {
	if len(p) > d.n {
		p = p[:d.n]
	}
	return d.r.Read(p)
}

func newTestMux(t *testing.T, r io.Reader, sink io.Writer, hide bool) *Mux {
	t.Helper()
	dec, err := NewDecoder("")
	if err != nil {
		t.Fatal(err)
	}
	return &Mux{R: r, Sink: sink, Hide: hide, Dec: dec}
}

func TestDrain_EchoesAndCaptures(t *testing.T) {
	var sink bytes.Buffer
	m := newTestMux(t, strings.NewReader("hello world\n"), &sink, false)
	m.Drain()
	if got := m.Output(); got != "hello world\n" {
		t.Errorf("Output = %q, want %q", got, "hello world\n")
	}
	if got := sink.String(); got != "hello world\n" {
		t.Errorf("sink = %q, want %q", got, "hello world\n")
	}
}

func TestDrain_HideSuppressesEchoNotCapture(t *testing.T) {
	var sink bytes.Buffer
	m := newTestMux(t, strings.NewReader("secret"), &sink, true)
	m.Drain()
	if got := m.Output(); got != "secret" {
		t.Errorf("Output = %q, want %q", got, "secret")
	}
	if sink.Len() != 0 {
		t.Errorf("sink = %q, want empty", sink.String())
	}
}

func TestDrain_RuneSplitAcrossReads(t *testing.T) {
	// One byte per read forces every multi-byte rune across a boundary.
	m := newTestMux(t, &drip{r: strings.NewReader("héllo wörld"), n: 1}, nil, false)
	m.Drain()
	if got := m.Output(); got != "héllo wörld" {
		t.Errorf("Output = %q, want %q", got, "héllo wörld")
	}
}

func TestDrain_NilSink(t *testing.T) {
	m := newTestMux(t, strings.NewReader("x"), nil, false)
	m.Drain() // must not panic
	if got := m.Output(); got != "x" {
		t.Errorf("Output = %q, want %q", got, "x")
	}
}
