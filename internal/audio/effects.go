package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// sweep is an oscillator whose frequency moves linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	wave     waveform
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, wave waveform, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(d), wave: wave, rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case waveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case waveSaw:
			val = 2 * (s.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fade applies a linear release over the last quarter of a stream.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= start && f.release > 0 {
			vol := math.Max(float64(f.total-f.position)/float64(f.release), 0)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// shaped fades s out and scales it to vol (0..1].
func shaped(s beep.Streamer, d time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &effects.Volume{
		Streamer: &fade{streamer: s, total: total, release: total / 4},
		Base:     2,
		Volume:   math.Log2(vol),
	}
}
