// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WritePCM16 writes interleaved 16-bit PCM as a WAV file. The RIFF sizes
// are patched on close, hence the io.WriteSeeker.
func WritePCM16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels < 1 || len(samples)%channels != 0 {
		return ErrMisalignedSamples
	}

	enc := wav.NewEncoder(w, sampleRate, 16, channels, pcmFormat)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	// Write also emits the header, so it runs even with no samples.
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
