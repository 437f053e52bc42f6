// SPDX-License-Identifier: EPL-2.0

package bitwave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestReadHeader_Valid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeHeader(&buf); err != nil {
		t.Fatalf("writeHeader() error = %v", err)
	}
	if buf.Len() != headerSize {
		t.Fatalf("writeHeader() wrote %d bytes, want %d", buf.Len(), headerSize)
	}

	v, err := readHeader(&buf)
	if err != nil {
		t.Fatalf("readHeader() error = %v", err)
	}
	if v != Version {
		t.Errorf("readHeader() = %d, want %d", v, Version)
	}
}

func TestReadHeader_InvalidMagic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		magic string
	}{
		{name: "riff", magic: "RIFF"},
		{name: "lowercase", magic: "bwx\x00"},
		{name: "missing nul", magic: "BWX "},
		{name: "wrong terminator", magic: "BWX\x01"},
		{name: "zeros", magic: "\x00\x00\x00\x00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := append([]byte(tt.magic), 1, 0, 0, 0, 0xff, 0xff)
			r := bytes.NewReader(data)

			_, err := readHeader(r)
			if !errors.Is(err, ErrInvalidMagicBytes) {
				t.Fatalf("readHeader() error = %v, want ErrInvalidMagicBytes", err)
			}
			if consumed := len(data) - r.Len(); consumed != 4 {
				t.Errorf("readHeader() consumed %d bytes, want 4", consumed)
			}

			if _, err := ReadFrom(bytes.NewReader(data)); !errors.Is(err, ErrInvalidMagicBytes) {
				t.Errorf("ReadFrom() error = %v, want ErrInvalidMagicBytes", err)
			}
		})
	}
}

func TestReadHeader_UnsupportedVersion(t *testing.T) {
	t.Parallel()

	for _, v := range []uint32{0, 2, 7, 0x01000000, 0xffffffff} {
		data := binary.LittleEndian.AppendUint32(append([]byte(nil), Magic[:]...), v)

		_, err := ReadFrom(bytes.NewReader(data))

		var uv *UnsupportedVersionError
		if !errors.As(err, &uv) {
			t.Errorf("version %d: error = %v, want *UnsupportedVersionError", v, err)
			continue
		}
		if uv.Version != v {
			t.Errorf("UnsupportedVersionError.Version = %d, want %d", uv.Version, v)
		}
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("version %d: error should match ErrUnsupportedVersion", v)
		}
	}
}

func TestUnsupportedVersionError_Message(t *testing.T) {
	t.Parallel()

	err := &UnsupportedVersionError{Version: 3}
	if err.Error() != "unsupported version: 3" {
		t.Errorf("Error() = %q, want %q", err.Error(), "unsupported version: 3")
	}
}

func TestSupportedVersion(t *testing.T) {
	t.Parallel()

	if !SupportedVersion(1) {
		t.Error("SupportedVersion(1) = false, want true")
	}
	if SupportedVersion(2) {
		t.Error("SupportedVersion(2) = true, want false")
	}
}
