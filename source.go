// SPDX-License-Identifier: EPL-2.0

package bitwave

import (
	"encoding/binary"
	"io"

	"github.com/ik5/bitwave/audio"
	"github.com/ik5/bitwave/utils"
)

// PCM16Source plays back a File whose payload is interleaved 16-bit
// little-endian PCM, the layout Encode produces. The container does not
// record the sample format; reading any other payload through it yields
// noise, not an error.
type PCM16Source struct {
	data       []byte
	pos        int
	sampleRate int
	channels   int
}

// NewPCM16Source wraps f's payload. A trailing partial frame is ignored.
func NewPCM16Source(f *File) *PCM16Source {
	channels := max(int(f.metadata.Channels), 1)
	frameBytes := channels * 2
	data := f.audio[:len(f.audio)-len(f.audio)%frameBytes]

	return &PCM16Source{
		data:       data,
		sampleRate: int(f.metadata.SampleRate),
		channels:   channels,
	}
}

func (s *PCM16Source) SampleRate() int { return s.sampleRate }
func (s *PCM16Source) Channels() int   { return s.channels }
func (s *PCM16Source) BufSize() int    { return 4096 }
func (s *PCM16Source) Close() error    { return nil }

// Frames is the number of whole frames in the payload.
func (s *PCM16Source) Frames() int { return len(s.data) / (s.channels * 2) }

func (s *PCM16Source) ReadSamples(dst []float32) (int, error) {
	remaining := (len(s.data) - s.pos) / 2
	if remaining == 0 {
		return 0, io.EOF
	}

	n := min(len(dst), remaining)
	for i := 0; i < n; i++ {
		v := int16(binary.LittleEndian.Uint16(s.data[s.pos+2*i:]))
		dst[i] = utils.Int16ToFloat32(v)
	}
	s.pos += 2 * n

	return n, nil
}

// Decoder decodes a Bitwave stream into an audio.Source, assuming a
// PCM16 payload. It lets .bwx files sit in an audio.Registry next to the
// other formats.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	f, err := ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return NewPCM16Source(f), nil
}
