// ABOUTME: Bounded capture buffer for the child's stderr
// ABOUTME: Excess bytes are dropped but still acknowledged so the child never blocks

package fzf

import "bytes"

// maxStderr caps how much warning text is kept from one call.
const maxStderr = 64 * 1024

// limitedBuffer keeps the first limit bytes written to it.
type limitedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func (lb *limitedBuffer) Write(p []byte) (int, error) {
	remaining := lb.limit - lb.buf.Len()
	if remaining <= 0 {
		if len(p) > 0 {
			lb.truncated = true
		}
		return len(p), nil
	}
	if len(p) > remaining {
		lb.buf.Write(p[:remaining])
		lb.truncated = true
		return len(p), nil
	}
	return lb.buf.Write(p)
}

// Bytes returns the captured prefix.
func (lb *limitedBuffer) Bytes() []byte {
	return lb.buf.Bytes()
}
