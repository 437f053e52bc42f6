// SPDX-License-Identifier: EPL-2.0

package bitwave

import "io"

// The payload has no length field: it runs from the end of the spatial
// block to end of stream, so a Bitwave stream cannot be followed by
// anything else.

func writeAudio(w io.Writer, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	_, err := w.Write(data)
	return ioErr("write audio", err)
}

func readAudio(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioErr("read audio", err)
	}
	return data, nil
}
