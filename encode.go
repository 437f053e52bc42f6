// SPDX-License-Identifier: EPL-2.0

package bitwave

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/bitwave/audio"
	"github.com/ik5/bitwave/utils"
)

// EncodeOptions controls how Encode turns a decoded stream into a File.
type EncodeOptions struct {
	// SampleRate resamples the source when non-zero and different from
	// the source rate.
	SampleRate int
	// Mono downmixes to a single channel before resampling.
	Mono bool
	// BPM is stored as-is in the metadata.
	BPM *float32
	// Spatial holds one position per output channel, or nil.
	Spatial []SpatialData
	// BufferSize is the read size in samples. Defaults to 4096.
	BufferSize int
}

// Encode drains src into a File with an interleaved PCM16 little-endian
// payload. The duration is derived from the number of frames read. src is
// not closed.
func Encode(src audio.Source, opts EncodeOptions) (*File, error) {
	var pipeline audio.Source = src
	if opts.Mono && pipeline.Channels() > 1 {
		pipeline = audio.NewMonoMixer(pipeline)
	}
	if opts.SampleRate > 0 && opts.SampleRate != pipeline.SampleRate() {
		pipeline = audio.NewResampler(pipeline, opts.SampleRate)
	}

	channels := pipeline.Channels()
	rate := pipeline.SampleRate()
	if channels <= 0 || channels > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidMetadata, channels)
	}
	if rate <= 0 || uint64(rate) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidMetadata, rate)
	}
	if err := checkSpatial(opts.Spatial, uint16(channels)); err != nil {
		return nil, err
	}

	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = 4096
	}
	bufSize = max(bufSize-bufSize%channels, channels)
	buf := make([]float32, bufSize)

	frames := audio.NewFrameReader(pipeline)

	var payload []byte
	for {
		n, err := frames.Read(buf)
		for _, v := range buf[:n] {
			payload = binary.LittleEndian.AppendUint16(payload, uint16(utils.Float32ToInt16(v)))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("encoding source: %w", err)
		}
	}

	count := len(payload) / (2 * channels)
	meta := Metadata{
		SampleRate: uint32(rate),
		Channels:   uint16(channels),
		Duration:   float64(count) / float64(rate),
		BPM:        opts.BPM,
	}

	return New(meta, opts.Spatial, payload), nil
}
