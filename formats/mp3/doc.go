// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files using github.com/hajimehoshi/go-mp3.
// Output is always stereo; mono files are duplicated by the decoder.
package mp3
