// SPDX-License-Identifier: EPL-2.0

package seekable

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReader_PassesThroughSeeker(t *testing.T) {
	t.Parallel()

	in := bytes.NewReader([]byte("abc"))
	rs, err := Reader(in)
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	if rs != io.ReadSeeker(in) {
		t.Error("Reader() should return the original ReadSeeker")
	}
}

func TestReader_BuffersPlainReader(t *testing.T) {
	t.Parallel()

	rs, err := Reader(io.MultiReader(strings.NewReader("hello "), strings.NewReader("world")))
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}

	if _, err := rs.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "world" {
		t.Errorf("after Seek got %q, want %q", rest, "world")
	}
}

func TestReader_PropagatesReadError(t *testing.T) {
	t.Parallel()

	if _, err := Reader(failingReader{}); err == nil {
		t.Error("Reader() error = nil, want error")
	}
}
