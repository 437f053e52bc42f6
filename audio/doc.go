// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming pieces shared by the format decoders
// and the Bitwave encoder.
//
// A Source yields interleaved float32 samples in [-1, 1]. Sources chain:
//
//	dec, _ := reg.ForPath("in.mp3") // pick a Decoder by extension
//	src, _ := dec.Decode(file)
//	mono := audio.NewMonoMixer(src) // average channels
//	res := audio.NewResampler(mono, 48000)
//
// Peaks summarizes a Source into min/max buckets for waveform display.
package audio
