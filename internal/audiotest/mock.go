// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory sources for tests. It mirrors
// audio.Source without importing it so any package can use it.
package audiotest

import (
	"io"
	"math"
)

// Source serves a fixed slice of interleaved samples. The last chunk is
// returned together with io.EOF, the way most decoders behave.
type Source struct {
	sampleRate int
	channels   int
	data       []float32
	pos        int
	err        error
	limit      int
	stall      bool
	closed     bool
}

// NewSource wraps interleaved samples; len(data) should be a multiple of
// channels.
func NewSource(sampleRate, channels int, data []float32) *Source {
	return &Source{sampleRate: sampleRate, channels: channels, data: data}
}

// NewGenerated builds frames*channels samples from fn.
func NewGenerated(sampleRate, channels, frames int, fn func(frame, channel int) float32) *Source {
	data := make([]float32, frames*channels)
	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			data[f*channels+c] = fn(f, c)
		}
	}
	return NewSource(sampleRate, channels, data)
}

func NewSilentSource(sampleRate, channels, frames int) *Source {
	return NewGenerated(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *Source {
	return NewGenerated(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *Source {
	return NewGenerated(sampleRate, channels, frames, func(f, _ int) float32 {
		t := float64(f) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// FailAfter makes the source return err instead of io.EOF once drained.
func (s *Source) FailAfter(err error) *Source {
	s.err = err
	return s
}

// ReadLimit caps every read at n samples, even when that splits a frame.
func (s *Source) ReadLimit(n int) *Source {
	s.limit = n
	return s
}

// Stall makes the drained source keep returning 0, nil instead of ending.
func (s *Source) Stall() *Source {
	s.stall = true
	return s
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Closed() bool    { return s.closed }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Remaining is the number of samples not yet read.
func (s *Source) Remaining() int { return len(s.data) - s.pos }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	end := s.err
	if end == nil {
		end = io.EOF
	}
	if s.pos >= len(s.data) {
		if s.stall {
			return 0, nil
		}
		return 0, end
	}

	n := len(dst) - len(dst)%s.channels
	if s.limit > 0 {
		n = min(len(dst), s.limit)
	}
	n = copy(dst[:n], s.data[s.pos:])
	s.pos += n

	if s.pos >= len(s.data) && !s.stall {
		return n, end
	}
	return n, nil
}
