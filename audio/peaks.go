// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Peak is the sample range seen in one bucket of a waveform summary.
type Peak struct {
	Min float32
	Max float32
}

// Peaks drains src and folds it into width buckets of min/max values,
// taken across all channels. A silent or empty source gives zero peaks.
func Peaks(src Source, width int) ([]Peak, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}

	channels := max(src.Channels(), 1)
	bufFrames := max(src.BufSize()/channels, 256)
	buf := make([]float32, bufFrames*channels)

	frames := NewFrameReader(src)

	// per-frame extremes across channels
	var lo, hi []float32

	for {
		n, err := frames.Read(buf)
		for f := 0; f < n/channels; f++ {
			frame := buf[f*channels : (f+1)*channels]
			fmin, fmax := frame[0], frame[0]
			for _, v := range frame[1:] {
				fmin = min(fmin, v)
				fmax = max(fmax, v)
			}
			lo = append(lo, fmin)
			hi = append(hi, fmax)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}

	peaks := make([]Peak, width)
	total := len(lo)
	if total == 0 {
		return peaks, nil
	}

	for i := range peaks {
		start := i * total / width
		end := (i + 1) * total / width
		if start >= total {
			break
		}
		if end <= start {
			end = start + 1
		}

		p := Peak{Min: lo[start], Max: hi[start]}
		for j := start + 1; j < end; j++ {
			p.Min = min(p.Min, lo[j])
			p.Max = max(p.Max, hi[j])
		}
		peaks[i] = p
	}

	return peaks, nil
}
