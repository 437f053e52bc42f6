// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/bitwave/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source needs; tests mock it.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst, trimmed to whole frames.
// oggvorbis counts in samples and already yields floats in [-1, 1].
func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	if frames == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:frames*s.channels])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
