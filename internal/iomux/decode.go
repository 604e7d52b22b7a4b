// Package iomux drains child process output streams: it reads raw bytes in
// bounded chunks, decodes them incrementally with a named text encoding, and
// fans each decoded chunk out to a live echo sink and a capture buffer.
package iomux

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is assumed when no codec name is configured.
const DefaultEncoding = "utf-8"

// Decoder incrementally decodes a byte stream to UTF-8 text. Bytes that form
// an incomplete multi-byte sequence at the end of a chunk are held back and
// prepended to the next chunk, so a rune split across two reads decodes
// intact. Malformed input never fails: the underlying x/text decoders
// substitute U+FFFD and continue.
type Decoder struct {
	tr  transform.Transformer
	rem []byte
}

// NewDecoder resolves name against the IANA character set registry and
// returns a decoder for it. An empty name selects DefaultEncoding. Unknown
// or unsupported names are an error; this is the only way a Decoder fails,
// and it happens before any bytes are read.
func NewDecoder(name string) (*Decoder, error) {
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return &Decoder{tr: enc.NewDecoder()}, nil
}

// CheckEncoding reports whether name resolves to a usable codec.
func CheckEncoding(name string) error {
	_, err := lookup(name)
	return err
}

func lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		// The index resolves some names without carrying an implementation.
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// Decode feeds one chunk of raw bytes and returns the text decoded so far.
// Trailing bytes of an incomplete sequence are retained for the next call.
func (d *Decoder) Decode(p []byte) string {
	return d.decode(p, false)
}

// Flush drains any retained bytes after the stream reaches EOF. A dangling
// partial sequence decodes to replacement characters.
func (d *Decoder) Flush() string {
	return d.decode(nil, true)
}

func (d *Decoder) decode(p []byte, atEOF bool) string {
	src := p
	if len(d.rem) > 0 {
		src = append(d.rem, p...)
		d.rem = nil
	}
	if len(src) == 0 && !atEOF {
		return ""
	}

	var out strings.Builder
	buf := make([]byte, 4*len(src)+utfMax)
	for {
		nDst, nSrc, err := d.tr.Transform(buf, src, atEOF)
		out.Write(buf[:nDst])
		src = src[nSrc:]
		switch err {
		case transform.ErrShortDst:
			continue
		case transform.ErrShortSrc:
			// Incomplete multi-byte sequence at the chunk boundary.
			d.rem = append([]byte(nil), src...)
			return out.String()
		default:
			// Decoders replace malformed input rather than erroring, so
			// anything else means the chunk is fully consumed.
			return out.String()
		}
	}
}

// utfMax leaves room for a replacement character even on empty input.
const utfMax = 4
