// Package memfill copies a short literal into a fixed-capacity,
// zero-initialized buffer and renders the filled prefix as text.
package memfill

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

// Capacity is the size of a Buffer in bytes.
const Capacity = 32

// Buffer is the fixed-capacity write target. Its zero value is ready to use.
type Buffer [Capacity]byte

// ErrBufferOverflow is returned when a literal does not fit the buffer it is
// copied into.
var ErrBufferOverflow = errors.New("buffer overflow")

// Literal returns the bytes rendered by the memfill command.
func Literal() []byte {
	return []byte("Hello")
}

// Fill copies lit into the prefix of dst and returns the number of bytes
// copied. If lit is longer than dst nothing is written and the returned
// error wraps ErrBufferOverflow.
func Fill(dst, lit []byte) (int, error) {
	if len(lit) > len(dst) {
		return 0, errors.Wrapf(ErrBufferOverflow, "copying %d bytes into %d", len(lit), len(dst))
	}
	return copy(dst[:len(lit)], lit), nil
}

// Lossy decodes b as UTF-8. Each invalid byte is replaced with U+FFFD.
func Lossy(b []byte) string {
	s, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		// the UTF-8 decoder replaces instead of failing
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(s)
}

// Render fills a fresh Buffer with lit and writes its decoded prefix to w as
// a single "Mem: " line. On overflow nothing is written.
func Render(w io.Writer, lit []byte) error {
	var buf Buffer
	n, err := Fill(buf[:], lit)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Mem: %s\n", Lossy(buf[:n]))
	return err
}
