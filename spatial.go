// SPDX-License-Identifier: EPL-2.0

package bitwave

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// SpatialData is the position of one channel's virtual sound source.
type SpatialData struct {
	X, Y, Z float32
}

const spatialEntrySize = 12

func spatialSize(spatial []SpatialData) int {
	return 1 + len(spatial)*spatialEntrySize
}

func checkSpatial(spatial []SpatialData, channels uint16) error {
	if spatial != nil && len(spatial) != int(channels) {
		return fmt.Errorf("%w: got %d positions for %d channels",
			ErrSpatialChannelMismatch, len(spatial), channels)
	}
	return nil
}

func appendSpatial(buf []byte, spatial []SpatialData) []byte {
	if spatial == nil {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	for _, p := range spatial {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(p.X))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(p.Y))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(p.Z))
	}
	return buf
}

// writeSpatial writes the presence flag and, when set, one triple per
// channel. Nothing is written if the positions don't match channels.
func writeSpatial(w io.Writer, spatial []SpatialData, channels uint16) error {
	if err := checkSpatial(spatial, channels); err != nil {
		return err
	}
	_, err := w.Write(appendSpatial(make([]byte, 0, spatialSize(spatial)), spatial))
	return ioErr("write spatial", err)
}

// readSpatial returns nil when the block is absent. The block carries no
// length of its own, so channels must come from validated metadata.
func readSpatial(r io.Reader, channels uint16) ([]SpatialData, error) {
	var flag [1]byte
	if _, err := io.ReadFull(r, flag[:]); err != nil {
		return nil, ioErr("read spatial flag", err)
	}

	switch flag[0] {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: spatial flag %d", ErrInvalidMetadata, flag[0])
	}

	buf := make([]byte, int(channels)*spatialEntrySize)
	if n, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: spatial block truncated after %d of %d bytes",
				ErrInvalidMetadata, n, len(buf))
		}
		return nil, ioErr("read spatial", err)
	}

	spatial := make([]SpatialData, channels)
	for i := range spatial {
		b := buf[i*spatialEntrySize:]
		spatial[i] = SpatialData{
			X: math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
			Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
			Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
		}
	}

	return spatial, nil
}
