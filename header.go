// SPDX-License-Identifier: EPL-2.0

package bitwave

import (
	"encoding/binary"
	"io"
)

// Version is the format version written by this package.
const Version uint32 = 1

// Magic is the tag every Bitwave stream starts with ("BWX\0").
var Magic = [4]byte{0x42, 0x57, 0x58, 0x00}

const headerSize = 8

// SupportedVersion reports whether files of version v can be decoded.
func SupportedVersion(v uint32) bool {
	return v == Version
}

func appendHeader(buf []byte) []byte {
	buf = append(buf, Magic[:]...)
	return binary.LittleEndian.AppendUint32(buf, Version)
}

func writeHeader(w io.Writer) error {
	_, err := w.Write(appendHeader(make([]byte, 0, headerSize)))
	return ioErr("write header", err)
}

// readHeader consumes the magic tag and the version. A foreign tag is
// rejected before the version bytes are read.
func readHeader(r io.Reader) (uint32, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return 0, ioErr("read magic", err)
	}
	if magic != Magic {
		return 0, ErrInvalidMagicBytes
	}

	var v [4]byte
	if _, err := io.ReadFull(r, v[:]); err != nil {
		return 0, ioErr("read version", err)
	}

	version := binary.LittleEndian.Uint32(v[:])
	if !SupportedVersion(version) {
		return 0, &UnsupportedVersionError{Version: version}
	}

	return version, nil
}
