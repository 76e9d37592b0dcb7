package system

import "bytes"

// MaxOutputSize caps each captured stream of a single run.
const MaxOutputSize = 10 * 1024 * 1024

const truncatedNotice = "\n[OUTPUT TRUNCATED: exceeded 10MB limit]\n"

// limitedBuffer keeps the first limit bytes written to it and silently drops
// the rest, so a chatty command cannot exhaust memory.
type limitedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newLimitedBuffer(limit int) *limitedBuffer {
	return &limitedBuffer{limit: limit}
}

// Write never fails; it reports len(p) so the child's pipe keeps draining.
func (lb *limitedBuffer) Write(p []byte) (int, error) {
	available := lb.limit - lb.buf.Len()
	if available <= 0 {
		lb.truncated = lb.truncated || len(p) > 0
		return len(p), nil
	}
	if len(p) > available {
		lb.buf.Write(p[:available])
		lb.truncated = true
		return len(p), nil
	}
	return lb.buf.Write(p)
}

// String returns the captured text, with a notice appended when output was dropped.
func (lb *limitedBuffer) String() string {
	if lb.truncated {
		return lb.buf.String() + truncatedNotice
	}
	return lb.buf.String()
}
