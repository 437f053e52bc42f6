// SPDX-License-Identifier: EPL-2.0

package bitwave

import (
	"bytes"
	"errors"
	"io"
	"os"
	"slices"
)

// File is a decoded Bitwave stream: metadata, optional per-channel
// positions and the opaque audio payload. A File is never modified after
// it is built; accessors hand out copies.
type File struct {
	version  uint32
	metadata Metadata
	spatial  []SpatialData
	audio    []byte
}

// New builds a File. spatial may be nil; when it is not, its length must
// equal meta.Channels by the time the file is written.
func New(meta Metadata, spatial []SpatialData, audio []byte) *File {
	if meta.BPM != nil {
		bpm := *meta.BPM
		meta.BPM = &bpm
	}
	return &File{
		version:  Version,
		metadata: meta,
		spatial:  slices.Clone(spatial),
		audio:    slices.Clone(audio),
	}
}

// Version is the format version the file was decoded from, or Version
// for files built with New.
func (f *File) Version() uint32 { return f.version }

// Metadata returns a copy of the file's metadata.
func (f *File) Metadata() Metadata {
	m := f.metadata
	if m.BPM != nil {
		bpm := *m.BPM
		m.BPM = &bpm
	}
	return m
}

func (f *File) HasSpatial() bool { return f.spatial != nil }

// SpatialData returns the per-channel positions and whether they exist.
func (f *File) SpatialData() ([]SpatialData, bool) {
	if f.spatial == nil {
		return nil, false
	}
	return slices.Clone(f.spatial), true
}

// AudioData returns a copy of the payload.
func (f *File) AudioData() []byte {
	return slices.Clone(f.audio)
}

// EncodedSize is the number of bytes WriteTo produces for f.
func (f *File) EncodedSize() int {
	return headerSize + f.metadata.encodedSize() + spatialSize(f.spatial) + len(f.audio)
}

// Validate reports whether f can be written.
func (f *File) Validate() error {
	if err := f.metadata.Validate(); err != nil {
		return err
	}
	return checkSpatial(f.spatial, f.metadata.Channels)
}

// ReadFrom decodes a whole Bitwave stream from r. Sections are read in
// order and the first failure is returned as is.
func ReadFrom(r io.Reader) (*File, error) {
	version, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	meta, err := readMetadata(r)
	if err != nil {
		return nil, err
	}

	spatial, err := readSpatial(r, meta.Channels)
	if err != nil {
		return nil, err
	}

	audio, err := readAudio(r)
	if err != nil {
		return nil, err
	}

	return &File{version: version, metadata: meta, spatial: spatial, audio: audio}, nil
}

// WriteTo encodes f to w. Invalid metadata or a spatial/channel mismatch
// is reported before anything reaches w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	if err := writeHeader(cw); err != nil {
		return cw.n, err
	}
	if err := writeMetadata(cw, f.metadata); err != nil {
		return cw.n, err
	}
	if err := writeSpatial(cw, f.spatial, f.metadata.Channels); err != nil {
		return cw.n, err
	}
	if err := writeAudio(cw, f.audio); err != nil {
		return cw.n, err
	}

	return cw.n, nil
}

// Read decodes the Bitwave file at path.
func Read(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, ioErr("open", err)
	}
	defer fh.Close()

	return ReadFrom(fh)
}

// Write encodes f into a file at path, truncating it if it exists. The
// file is not created when f fails validation.
func (f *File) Write(path string) (err error) {
	if err := f.Validate(); err != nil {
		return err
	}

	fh, err := os.Create(path)
	if err != nil {
		return ioErr("create", err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = ioErr("close", cerr)
		}
	}()

	_, err = f.WriteTo(fh)
	return err
}

// MarshalBinary returns the encoded form of f.
func (f *File) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(f.EncodedSize())
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces f with the file decoded from data.
func (f *File) UnmarshalBinary(data []byte) error {
	if f == nil {
		return errors.New("bitwave: UnmarshalBinary on nil *File")
	}
	decoded, err := ReadFrom(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*f = *decoded
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
