// SPDX-License-Identifier: EPL-2.0

package bitwave

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Metadata describes the audio stored in a File.
type Metadata struct {
	SampleRate uint32   // Hz, must be > 0
	Channels   uint16   // must be > 0
	Duration   float64  // seconds
	BPM        *float32 // tempo, nil when not applicable
}

// metadataSize is the fixed part: rate, channels, duration and the BPM flag.
const metadataSize = 4 + 2 + 8 + 1

// HasBPM reports whether a tempo is set.
func (m Metadata) HasBPM() bool { return m.BPM != nil }

// Validate checks the invariants a writer must honour.
func (m Metadata) Validate() error {
	if m.SampleRate == 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidMetadata)
	}
	if m.Channels == 0 {
		return fmt.Errorf("%w: channel count must be positive", ErrInvalidMetadata)
	}
	if m.Duration < 0 || math.IsNaN(m.Duration) {
		return fmt.Errorf("%w: duration must be >= 0, got %v", ErrInvalidMetadata, m.Duration)
	}
	return nil
}

func (m Metadata) encodedSize() int {
	if m.BPM != nil {
		return metadataSize + 4
	}
	return metadataSize
}

func appendMetadata(buf []byte, m Metadata) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, m.SampleRate)
	buf = binary.LittleEndian.AppendUint16(buf, m.Channels)
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(m.Duration))
	if m.BPM == nil {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(*m.BPM))
}

func writeMetadata(w io.Writer, m Metadata) error {
	_, err := w.Write(appendMetadata(make([]byte, 0, m.encodedSize()), m))
	return ioErr("write metadata", err)
}

func readMetadata(r io.Reader) (Metadata, error) {
	var buf [metadataSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Metadata{}, ioErr("read metadata", err)
	}

	m := Metadata{
		SampleRate: binary.LittleEndian.Uint32(buf[0:4]),
		Channels:   binary.LittleEndian.Uint16(buf[4:6]),
		Duration:   math.Float64frombits(binary.LittleEndian.Uint64(buf[6:14])),
	}
	if m.SampleRate == 0 {
		return Metadata{}, fmt.Errorf("%w: sample rate is zero", ErrInvalidMetadata)
	}
	if m.Channels == 0 {
		return Metadata{}, fmt.Errorf("%w: channel count is zero", ErrInvalidMetadata)
	}

	switch flag := buf[14]; flag {
	case 0:
	case 1:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return Metadata{}, ioErr("read bpm", err)
		}
		bpm := math.Float32frombits(binary.LittleEndian.Uint32(b[:]))
		m.BPM = &bpm
	default:
		return Metadata{}, fmt.Errorf("%w: bpm flag %d", ErrInvalidMetadata, flag)
	}

	return m, nil
}
