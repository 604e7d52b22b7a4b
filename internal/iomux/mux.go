package iomux

import (
	"io"
	"strings"
)

// chunkSize bounds each blocking read from the child stream.
const chunkSize = 1000

// Mux drains one output stream of a child process. Each decoded chunk is
// written to Sink (unless Hide is set) and always appended to the capture
// buffer: hiding suppresses the live echo, never the capture.
//
// One Mux owns one stream and its buffer exclusively; Drain is the body of
// a single worker goroutine and Output must only be called after Drain
// returns.
type Mux struct {
	R    io.Reader
	Sink io.Writer
	Hide bool
	Dec  *Decoder

	buf strings.Builder
}

type flusher interface {
	Flush() error
}

// Drain reads fixed-size chunks until EOF, decoding and fanning out each
// one as it arrives. Echoed output is flushed per chunk so it is visible
// while the process is still running.
func (m *Mux) Drain() {
	chunk := make([]byte, chunkSize)
	for {
		n, err := m.R.Read(chunk)
		if n > 0 {
			m.emit(m.Dec.Decode(chunk[:n]))
		}
		if err != nil {
			break
		}
	}
	m.emit(m.Dec.Flush())
}

func (m *Mux) emit(text string) {
	if text == "" {
		return
	}
	if !m.Hide && m.Sink != nil {
		_, _ = io.WriteString(m.Sink, text)
		if f, ok := m.Sink.(flusher); ok {
			_ = f.Flush()
		}
	}
	m.buf.WriteString(text)
}

// Output returns the captured text accumulated by Drain.
func (m *Mux) Output() string {
	return m.buf.String()
}
