// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/bitwave/audio"
	"github.com/ik5/bitwave/utils"
)

// go-mp3 always emits 16-bit little-endian stereo.
const channels = 2

// mp3Reader is the part of gomp3.Decoder the source needs; tests mock it.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// odd byte left over from a read that split a sample
	carry    byte
	hasCarry bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	off := 0
	if s.hasCarry {
		s.buf[0] = s.carry
		s.hasCarry = false
		off = 1
	}

	n, err := s.dec.Read(s.buf[off:])
	n += off
	if n%2 == 1 {
		s.carry = s.buf[n-1]
		s.hasCarry = true
		n--
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
