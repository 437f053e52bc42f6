// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes 16-bit PCM WAV files using
// github.com/go-audio/wav.
//
//	src, err := wav.Decoder{}.Decode(file)
//	...
//	err = wav.WritePCM16(out, 44100, 2, samples)
//
// Decode returns ErrNotWavFile for foreign input and
// ErrOnlyPCM16bitSupported for anything other than integer 16-bit PCM.
package wav
