package backend

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestLineReader(t *testing.T) {
	type step struct {
		write  string
		expect string
	}
	for _, tc := range []struct {
		name  string
		steps []step
	}{
		{
			name: "whole lines",
			steps: []step{
				{write: "hello\nthere\n", expect: "hello\n"},
				{expect: "there\n"},
				{expect: ""},
			},
		},
		{
			name: "unterminated line is held back",
			steps: []step{
				{write: "unterminated", expect: ""},
				{write: "line\n", expect: "unterminatedline\n"},
			},
		},
		{
			name: "several partial writes",
			steps: []step{
				{write: "foo", expect: ""},
				{write: "bar", expect: ""},
				{write: "bin\nbaz", expect: "foobarbin\n"},
				{expect: ""},
				{write: "\n", expect: "baz\n"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			l := NewLineReader(buf)
			for i, s := range tc.steps {
				buf.WriteString(s.write)
				var scratch [1024]byte
				n, err := l.Read(scratch[:])
				if s.expect == "" {
					if !errors.Is(err, io.EOF) || n != 0 {
						t.Errorf("step %d: expected EOF with nothing read, got %q, %v", i, scratch[:n], err)
					}
					continue
				}
				if err != nil {
					t.Errorf("step %d: expected read to succeed, got: %v", i, err)
				} else if got := string(scratch[:n]); got != s.expect {
					t.Errorf("step %d: expected %q, got %q", i, s.expect, got)
				}
			}
		})
	}
}

func TestLineReaderSmallBuffer(t *testing.T) {
	l := NewLineReader(bytes.NewBufferString("abcdef\n"))
	var got []byte
	var scratch [4]byte
	for {
		n, err := l.Read(scratch[:])
		got = append(got, scratch[:n]...)
		if err != nil {
			break
		}
	}
	if string(got) != "abcdef\n" {
		t.Errorf("expected the line to be split across reads, got %q", got)
	}
}
