package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-dungeon/rng"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total <= limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return 0, 0
}

func TestShapesInRange(t *testing.T) {
	src := rng.New(9)
	shapes := map[string]shape{"sine": sine, "square": square, "saw": saw, "hiss": hiss}
	for name, fn := range shapes {
		for i := 0; i < 1000; i++ {
			v := fn(float64(i)/1000, src)
			if v < -1 || v > 1 {
				t.Fatalf("%s(%d/1000) = %f", name, i, v)
			}
		}
	}
}

func TestVoiceLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	want := rate.N(10 * time.Millisecond)
	v := note{shape: sine, hz: 440, length: 10 * time.Millisecond, gain: 1}.voice(rate, nil)

	samples := make([][2]float64, want*2)
	n, ok := v.Stream(samples)
	if n != want || !ok {
		t.Errorf("first stream = (%d, %v), want (%d, true)", n, ok, want)
	}
	n, ok = v.Stream(samples[:10])
	if n != 0 || ok {
		t.Errorf("drained stream = (%d, %v), want (0, false)", n, ok)
	}
}

func TestVoiceGainWithoutRamp(t *testing.T) {
	rate := beep.SampleRate(44100)
	v := note{shape: square, hz: 100, length: 20 * time.Millisecond, gain: 0.25}.voice(rate, nil)
	samples := make([][2]float64, 256)
	n, _ := v.Stream(samples)
	for i := 0; i < n; i++ {
		if math.Abs(samples[i][0]) != 0.25 || samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d = %v", i, samples[i])
		}
	}
}

func TestVoiceFades(t *testing.T) {
	rate := beep.SampleRate(44100)
	nt := note{
		shape:   square,
		hz:      100,
		length:  100 * time.Millisecond,
		attack:  50 * time.Millisecond,
		release: 10 * time.Millisecond,
		gain:    1,
	}
	samples := make([][2]float64, rate.N(nt.length))
	n, ok := nt.voice(rate, nil).Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("stream = (%d, %v)", n, ok)
	}

	rise := rate.N(nt.attack)
	if first, top := math.Abs(samples[0][0]), math.Abs(samples[rise-1][0]); first >= top {
		t.Errorf("attack should ramp up: first=%f top=%f", first, top)
	}
	if mid := math.Abs(samples[n/2][0]); mid != 1 {
		t.Errorf("sustain = %f, want 1", mid)
	}
	if last := math.Abs(samples[n-1][0]); last >= 0.01 {
		t.Errorf("release should end near silence, got %f", last)
	}
}

func TestHissVaries(t *testing.T) {
	rate := beep.SampleRate(44100)
	v := note{shape: hiss, length: 10 * time.Millisecond, gain: 1}.voice(rate, rng.New(3))
	samples := make([][2]float64, 64)
	n, _ := v.Stream(samples)

	distinct := map[float64]bool{}
	for i := 0; i < n; i++ {
		distinct[samples[i][0]] = true
	}
	if len(distinct) < 2 {
		t.Error("expected noise samples to vary")
	}
}

func TestSoundForEveryCue(t *testing.T) {
	src := rng.New(1)
	for c := Cue(0); c < cueCount; c++ {
		s := Sound(c, sampleRate, src)
		if s == nil {
			t.Fatalf("cue %s has no sound", c)
		}
		n, peak := drain(t, s, sampleRate.N(time.Second))
		if n == 0 {
			t.Errorf("cue %s is empty", c)
		}
		if peak > 1 {
			t.Errorf("cue %s clips: peak %f", c, peak)
		}
	}
	if Sound(cueCount, sampleRate, src) != nil {
		t.Error("unknown cue should have no sound")
	}
	if Sound(-1, sampleRate, src) != nil {
		t.Error("negative cue should have no sound")
	}
}

func TestStairsPlaysNotesInOrder(t *testing.T) {
	n, peak := drain(t, Sound(CueStairs, sampleRate, nil), sampleRate.N(time.Second))
	if want := sampleRate.N(80*time.Millisecond) + sampleRate.N(220*time.Millisecond); n != want {
		t.Errorf("stairs length = %d, want %d", n, want)
	}
	if peak > 0.25 {
		t.Errorf("stairs peak %f above note gain", peak)
	}
}

func TestCueString(t *testing.T) {
	if CueStairs.String() != "stairs" {
		t.Errorf("got %q", CueStairs.String())
	}
	if Cue(-1).String() != "unknown" {
		t.Errorf("got %q", Cue(-1).String())
	}
}
