// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// maxEmptyReads bounds consecutive (0, nil) reads before a source is
// treated as stuck.
const maxEmptyReads = 100

// FrameReader reads whole frames from a Source whose reads may stop in
// the middle of a frame. The samples of a split frame are held back and
// placed at the front of the next read, so channel order never shifts.
// A partial frame still pending when the source ends is dropped.
type FrameReader struct {
	src      Source
	channels int
	tail     []float32
}

func NewFrameReader(src Source) *FrameReader {
	channels := max(src.Channels(), 1)
	return &FrameReader{
		src:      src,
		channels: channels,
		tail:     make([]float32, 0, channels),
	}
}

// Read fills dst with whole interleaved frames and returns the number of
// samples written. len(dst) must be a non-zero multiple of the channel
// count. A nil error always comes with at least one frame; a source that
// keeps returning nothing yields io.ErrNoProgress.
func (fr *FrameReader) Read(dst []float32) (int, error) {
	if len(dst) == 0 || len(dst)%fr.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	n := copy(dst, fr.tail)
	fr.tail = fr.tail[:0]

	for empty := 0; n < fr.channels; {
		got, err := fr.src.ReadSamples(dst[n:])
		n += got
		if err != nil {
			return fr.keepTail(dst, n), err
		}

		if got > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			return fr.keepTail(dst, n), io.ErrNoProgress
		}
	}

	return fr.keepTail(dst, n), nil
}

// keepTail moves the trailing partial frame of dst[:n] into fr.tail.
func (fr *FrameReader) keepTail(dst []float32, n int) int {
	rem := n % fr.channels
	fr.tail = append(fr.tail, dst[n-rem:n]...)
	return n - rem
}
