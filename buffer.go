package ftoa

import (
	"math"
	"unsafe"
)

// Buffer is a reusable, fixed-size scratch area for FormatFinite. Its
// zero value is ready to use. A Buffer must not be used concurrently
// from multiple goroutines; distinct Buffers may be used concurrently
// without coordination.
type Buffer struct {
	bytes [24]byte
}

// New returns a fresh, ready-to-use Buffer.
func New() Buffer {
	return Buffer{}
}

// FormatFinite writes the shortest round-trip decimal representation
// of f into the buffer and returns it as a string borrowing from the
// buffer's storage. The returned string is valid until the next call
// to FormatFinite on the same Buffer.
//
// f must be finite (not NaN, not ±Inf); see the special package for a
// formatter that handles the full float64 domain.
func (buf *Buffer) FormatFinite(f float64) string {
	buf.bytes[0] = '-'
	begin := 0
	if math.Signbit(f) {
		begin = 1
	}

	var n int
	if f == 0 {
		copy(buf.bytes[begin:begin+3], "0.0")
		n = 3
	} else {
		d, p := short(math.Float64bits(f))
		n = render(buf.bytes[begin:], d, p, digits(d))
	}
	return unsafe.String(&buf.bytes[0], begin+n)
}
