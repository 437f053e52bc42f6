// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/bitwave/audio"
	"github.com/ik5/bitwave/internal/seekable"
)

// aiffReader is the part of aiff.Decoder the source needs; tests mock it.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

// fullScale is the magnitude of the most negative sample at bitDepth.
func fullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float32(uint64(1) << (bitDepth - 1))
	default:
		return 32768.0
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	// a short read without an error means the sound chunk is drained
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := seekable.Reader(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      fullScale(int(dec.BitDepth)),
	}, nil
}
