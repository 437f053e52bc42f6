// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/bitwave/audio"
	"github.com/ik5/bitwave/internal/seekable"
	"github.com/ik5/bitwave/utils"
)

const pcmFormat = 1

// pcmReader is the part of wav.Decoder the source needs; tests mock it.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
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
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: 16,
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
		dst[i] = utils.Int16ToFloat32(int16(v))
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

type Decoder struct{}

// Decode parses the RIFF headers; PCM data is located lazily on the first
// read. Readers that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := seekable.Reader(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != pcmFormat || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
	}, nil
}
