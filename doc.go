// SPDX-License-Identifier: EPL-2.0

// Package bitwave reads and writes Bitwave (.bwx) files: an audio payload
// stored with sample rate, channel count, duration, an optional tempo and
// optional per-channel 3D positions for spatial audio.
//
// # Layout
//
// Every field is little-endian and sections follow each other without
// padding:
//
//	offset  size        field
//	0       4           magic "BWX\0"
//	4       4 (u32)     version, currently 1
//	8       4 (u32)     sample rate, > 0
//	12      2 (u16)     channels, > 0
//	14      8 (f64)     duration in seconds
//	22      1           bpm present (0 or 1)
//	23      0 or 4      bpm (f32)
//	next    1           spatial present (0 or 1)
//	next    12*channels x, y, z (f32) per channel
//	next    remainder   audio payload
//
// The payload is opaque to the container. Encode and PCM16Source agree on
// interleaved 16-bit little-endian PCM, but any producer/consumer pair may
// use their own convention.
//
// # Reading and Writing
//
//	f, err := bitwave.Read("song.bwx")
//	if err != nil {
//	    // errors.Is(err, bitwave.ErrInvalidMagicBytes), ...
//	}
//	meta := f.Metadata()
//
//	bpm := float32(120)
//	out := bitwave.New(bitwave.Metadata{
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BPM:        &bpm,
//	}, nil, payload)
//	err = out.Write("out.bwx")
//
// ReadFrom and WriteTo do the same over any io.Reader / io.Writer.
//
// # Errors
//
//   - ErrInvalidMagicBytes: the stream does not start with "BWX\0"
//   - *UnsupportedVersionError (matches ErrUnsupportedVersion): unknown version
//   - ErrInvalidMetadata: zero rate or channels, bad presence flag,
//     truncated spatial block, or invalid input to a write
//   - *IOError: the underlying stream or file failed, including short reads
//
// Decoding stops at the first error and never returns a partial File.
// Writing validates the whole File before the first byte is written.
//
// # Converting
//
// Encode drains any audio.Source (see the formats packages) into a File:
//
//	src, _ := wav.Decoder{}.Decode(in)
//	f, err := bitwave.Encode(src, bitwave.EncodeOptions{SampleRate: 48000})
//
// Decoder plays a .bwx stream back as an audio.Source.
//
// # Limitations
//
// The payload runs to end of stream, so a Bitwave file cannot be
// concatenated with another or embedded without an outer length. There is
// no checksum.
package bitwave
