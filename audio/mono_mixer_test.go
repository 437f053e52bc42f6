// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"

	"github.com/ik5/bitwave/internal/audiotest"
)

func TestMonoMixer_Average(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		frame    func(c int) float32
		want     float32
	}{
		{name: "stereo", channels: 2, frame: func(c int) float32 { return []float32{1, 0}[c] }, want: 0.5},
		{name: "opposite phase", channels: 2, frame: func(c int) float32 { return []float32{0.8, -0.8}[c] }, want: 0},
		{name: "5.1", channels: 6, frame: func(c int) float32 { return float32(c) / 10 }, want: 0.25},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewGenerated(8000, tt.channels, 20, func(_, c int) float32 { return tt.frame(c) })
			m := NewMonoMixer(src)

			if m.Channels() != 1 || m.SampleRate() != 8000 {
				t.Errorf("MonoMixer = %d Hz, %d channels", m.SampleRate(), m.Channels())
			}

			out := drain(t, m, 7)
			if len(out) != 20 {
				t.Fatalf("got %d samples, want 20", len(out))
			}
			for i, v := range out {
				if math.Abs(float64(v-tt.want)) > 1e-6 {
					t.Fatalf("sample %d = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_SplitFrames(t *testing.T) {
	t.Parallel()

	src := audiotest.NewGenerated(8000, 2, 10, func(_, c int) float32 { return []float32{1, 0}[c] })
	out := drain(t, NewMonoMixer(src.ReadLimit(3)), 4)

	if len(out) != 10 {
		t.Fatalf("got %d samples, want 10", len(out))
	}
	for i, v := range out {
		if v != 0.5 {
			t.Fatalf("sample %d = %v, want 0.5", i, v)
		}
	}
}

func TestMonoMixer_MonoPassThrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSource(8000, 1, []float32{0.1, 0.2, 0.3})
	out := drain(t, NewMonoMixer(src), 2)

	want := []float32{0.1, 0.2, 0.3}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))
	if n, err := m.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestMonoMixer_LargeRead(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewConstantSource(8000, 4, 10000, 0.5))
	out := drain(t, m, 9000)
	if len(out) != 10000 {
		t.Errorf("got %d samples, want 10000", len(out))
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 1)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}
