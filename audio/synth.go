package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-dungeon/rng"
)

// shape maps a phase in [0,1) to an amplitude in [-1,1]
type shape func(phase float64, noise rng.Source) float64

func sine(phase float64, _ rng.Source) float64 { return math.Sin(2 * math.Pi * phase) }

func square(phase float64, _ rng.Source) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func saw(phase float64, _ rng.Source) float64 { return 2*phase - 1 }

// hiss ignores phase; noise is clipped gaussian
func hiss(_ float64, noise rng.Source) float64 {
	return min(max(noise.Normal(0, 0.4), -1), 1)
}

// note is one tone with a linear fade in and fade out
type note struct {
	shape   shape
	hz      float64
	length  time.Duration
	attack  time.Duration
	release time.Duration
	gain    float64
}

// voice renders a single note
type voice struct {
	note
	noise      rng.Source
	step       float64
	phase      float64
	at, end    int
	rise, fall int
}

func (nt note) voice(rate beep.SampleRate, noise rng.Source) *voice {
	return &voice{
		note:  nt,
		noise: noise,
		step:  nt.hz / float64(rate),
		end:   rate.N(nt.length),
		rise:  rate.N(nt.attack),
		fall:  rate.N(nt.release),
	}
}

func (v *voice) level() float64 {
	g := v.gain
	if v.at < v.rise {
		g *= float64(v.at) / float64(v.rise)
	}
	if left := v.end - v.at; left < v.fall {
		g *= float64(left) / float64(v.fall)
	}
	return g
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if v.at >= v.end {
			return i, i > 0
		}
		s := v.shape(v.phase, v.noise) * v.level()
		samples[i] = [2]float64{s, s}
		v.phase += v.step
		v.phase -= math.Floor(v.phase)
		v.at++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// patches lists the layers of each cue; notes in a layer play in order and
// layers sound together
var patches = [cueCount][][]note{
	CueBump: {
		{{saw, 100, 120 * time.Millisecond, 5 * time.Millisecond, 60 * time.Millisecond, 0.4}},
	},
	CuePickup: {
		{{sine, 880, 180 * time.Millisecond, 2 * time.Millisecond, 150 * time.Millisecond, 0.35}},
		{{sine, 1760, 180 * time.Millisecond, 2 * time.Millisecond, 80 * time.Millisecond, 0.15}},
	},
	CueDrop: {
		{{sine, 330, 90 * time.Millisecond, 2 * time.Millisecond, 70 * time.Millisecond, 0.4}},
	},
	CueDoor: {
		{{hiss, 0, 150 * time.Millisecond, 10 * time.Millisecond, 120 * time.Millisecond, 0.3}},
	},
	// B5 then E6
	CueStairs: {
		{
			{square, 987.77, 80 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.25},
			{square, 1318.51, 220 * time.Millisecond, time.Millisecond, 180 * time.Millisecond, 0.25},
		},
	},
}

// Sound builds the streamer for one cue
// Returns nil for an unknown cue
func Sound(c Cue, rate beep.SampleRate, noise rng.Source) beep.Streamer {
	if c < 0 || c >= cueCount {
		return nil
	}
	layers := make([]beep.Streamer, 0, len(patches[c]))
	for _, seq := range patches[c] {
		parts := make([]beep.Streamer, len(seq))
		for i, nt := range seq {
			parts[i] = nt.voice(rate, noise)
		}
		layers = append(layers, beep.Seq(parts...))
	}
	if len(layers) == 1 {
		return layers[0]
	}
	return beep.Mix(layers...)
}
