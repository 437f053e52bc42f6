// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/bitwave/internal/audiotest"
)

func TestPeaks_Buckets(t *testing.T) {
	t.Parallel()

	// ramp 0..7 in one channel, negated in the other
	src := audiotest.NewGenerated(8000, 2, 8, func(f, c int) float32 {
		v := float32(f) / 10
		if c == 1 {
			return -v
		}
		return v
	})

	peaks, err := Peaks(src, 4)
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}

	want := []Peak{
		{Min: -0.1, Max: 0.1},
		{Min: -0.3, Max: 0.3},
		{Min: -0.5, Max: 0.5},
		{Min: -0.7, Max: 0.7},
	}
	if len(peaks) != len(want) {
		t.Fatalf("len(Peaks()) = %d, want %d", len(peaks), len(want))
	}
	for i := range want {
		if peaks[i] != want[i] {
			t.Errorf("peak %d = %+v, want %+v", i, peaks[i], want[i])
		}
	}
}

func TestPeaks_WiderThanSource(t *testing.T) {
	t.Parallel()

	peaks, err := Peaks(audiotest.NewSource(8000, 1, []float32{0.5, -0.5}), 4)
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}

	want := []Peak{{0.5, 0.5}, {0.5, 0.5}, {-0.5, -0.5}, {-0.5, -0.5}}
	for i := range want {
		if peaks[i] != want[i] {
			t.Errorf("peak %d = %+v, want %+v", i, peaks[i], want[i])
		}
	}
}

func TestPeaks_EmptySource(t *testing.T) {
	t.Parallel()

	peaks, err := Peaks(audiotest.NewSource(8000, 2, nil), 3)
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}
	for i, p := range peaks {
		if p != (Peak{}) {
			t.Errorf("peak %d = %+v, want zero", i, p)
		}
	}
}

func TestPeaks_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Peaks(audiotest.NewSilentSource(8000, 1, 1), 0); !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("Peaks(width 0) error = %v, want ErrInvalidWidth", err)
	}

	boom := errors.New("read failed")
	if _, err := Peaks(audiotest.NewSilentSource(8000, 1, 4).FailAfter(boom), 2); !errors.Is(err, boom) {
		t.Errorf("Peaks() error = %v, want %v", err, boom)
	}

	if _, err := Peaks(audiotest.NewSilentSource(8000, 2, 4).Stall(), 2); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("Peaks() on stalled source error = %v, want io.ErrNoProgress", err)
	}
}

func TestPeaks_SplitFrames(t *testing.T) {
	t.Parallel()

	src := audiotest.NewGenerated(8000, 2, 8, func(f, c int) float32 {
		if c == 0 {
			return float32(f) / 10
		}
		return 0
	})

	peaks, err := Peaks(src.ReadLimit(3), 2)
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}

	want := []Peak{{Min: 0, Max: 0.3}, {Min: 0, Max: 0.7}}
	for i := range want {
		if math.Abs(float64(peaks[i].Max-want[i].Max)) > 1e-6 || peaks[i].Min != want[i].Min {
			t.Errorf("peak %d = %+v, want %+v", i, peaks[i], want[i])
		}
	}
}
