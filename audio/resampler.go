// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/bitwave/utils"
)

// Resampler converts src to another sample rate with cubic interpolation.
// Channel count is preserved. When downsampling, input frames go through
// a one-pole low-pass first.
//
// A source of N frames yields ceil(N/ratio) output frames, where ratio is
// srcRate/dstRate: one for every output position before the end of the
// source.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// win[1] and win[2] bracket the output position; win[0] and win[3]
	// are the outer taps. Padding frames repeat the last real frame.
	win    [4][]float32
	filled [4]bool
	pos    float64

	frames  *FrameReader
	in      []float32
	inPos   int
	inLen   int
	srcDone bool
	primed  bool

	lowPass bool
	alpha   float32
	lpState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	bufFrames := max(src.BufSize()/max(channels, 1), 256)

	r := &Resampler{
		src:      src,
		frames:   NewFrameReader(src),
		dstRate:  dstRate,
		ratio:    ratio,
		channels: channels,
		in:       make([]float32, bufFrames*channels),
		lowPass:  ratio > 1.0,
		alpha:    0.5,
		lpState:  make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next source frame into dst. It returns false once
// the source is drained.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for r.inPos+r.channels > r.inLen {
		if r.srcDone {
			return false, nil
		}

		n, err := r.frames.Read(r.in)
		r.inPos = 0
		r.inLen = n

		if err == io.EOF {
			r.srcDone = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowPass {
		if !r.primed {
			copy(r.lpState, dst)
		}
		for c := range dst {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.lpState[c]
			r.lpState[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	ok, err := r.nextFrame(r.win[1])
	r.primed = true
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	r.filled[1] = true
	copy(r.win[0], r.win[1])

	for i := 2; i < 4; i++ {
		ok, err := r.nextFrame(r.win[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.win[i], r.win[i-1])
		}
		r.filled[i] = ok
	}

	return nil
}

// advance slides the window by one source frame.
func (r *Resampler) advance() error {
	first := r.win[0]
	copy(r.win[:3], r.win[1:])
	copy(r.filled[:3], r.filled[1:])
	r.win[3] = first

	ok, err := r.nextFrame(r.win[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.win[3], r.win[2])
	}
	r.filled[3] = ok

	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.filled[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
