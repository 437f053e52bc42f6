// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Source is a stream of interleaved float32 PCM.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys ("wav", "mp3", "ogg", "bwx") to decoders.
// It is safe for concurrent use.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register stores d under format. Keys are case-insensitive.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ForPath picks a decoder by the extension of path.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	d, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, ext)
	}
	return d, nil
}
