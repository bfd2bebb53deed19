package backend

import (
	"bufio"
	"errors"
	"io"
)

// lineReader only ever hands out complete newline-terminated lines, so a CSV
// parser reading a file that is still being written never sees half a row.
// Bytes of an unterminated line are held back until its newline arrives.
type lineReader struct {
	r *bufio.Reader
	// ready holds the unread remainder of the current complete line.
	ready []byte
	// partial accumulates a line whose newline has not been read yet.
	partial []byte
}

var _ io.Reader = (*lineReader)(nil)

func NewLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r: bufio.NewReader(r),
	}
}

// Read returns io.EOF whenever no complete line is available. Reading again
// after the underlying source has grown picks up where it left off.
func (l *lineReader) Read(b []byte) (int, error) {
	if len(l.ready) == 0 {
		data, err := l.r.ReadBytes('\n')
		l.partial = append(l.partial, data...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, err
		}
		l.ready, l.partial = l.partial, nil
	}
	n := copy(b, l.ready)
	l.ready = l.ready[n:]
	return n, nil
}
