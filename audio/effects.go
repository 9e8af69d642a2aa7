package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/rocket-range/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveFuncs maps a phase in [0, 1) to a sample in [-1, 1]
var waveFuncs = [...]func(phase float64) float64{
	WaveSine: func(p float64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64) float64 {
		if p < 0.5 {
			return 1.0
		}
		return -1.0
	},
	WaveSaw:   func(p float64) float64 { return 2.0*p - 1.0 },
	WaveNoise: func(float64) float64 { return rand.Float64()*2 - 1 },
}

// oscillator renders a fixed number of samples of one wave, gliding
// linearly from its start to its end frequency
type oscillator struct {
	wave     func(float64) float64
	from, to float64
	rate     float64
	phase    float64
	pos, end int
}

// NewOscillator creates a steady tone of freq for duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a tone gliding from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	fn := waveFuncs[WaveSine]
	if wave >= 0 && int(wave) < len(waveFuncs) {
		fn = waveFuncs[wave]
	}
	return &oscillator{
		wave: fn,
		from: from,
		to:   to,
		rate: float64(rate),
		end:  rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && o.pos < o.end {
		v := o.wave(o.phase)
		samples[n][0], samples[n][1] = v, v

		freq := o.from + (o.to-o.from)*float64(o.pos)/float64(o.end)
		_, o.phase = math.Modf(o.phase + freq/o.rate)
		o.pos++
		n++
	}
	return n, n > 0
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

// NewEnvelope wraps s in a linear attack/sustain/release gain, cutting it at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer: s,
		total:    total,
		attack:   min(rate.N(attack), total),
		release:  min(rate.N(release), total),
	}
}

// gain returns the envelope level at sample pos
func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if left := e.total - pos; e.release > 0 && left < e.release {
		g = min(g, float64(left)/float64(e.release))
	}
	return max(g, 0)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if left := e.total - e.pos; left < len(samples) {
		samples = samples[:max(left, 0)]
	}
	if len(samples) == 0 {
		return 0, false
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok && n > 0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSound builds the streamer for st
func CreateSound(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundLaunch:
		return CreateLaunchSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	case SoundCollision:
		return CreateCollisionSound(cfg)
	case SoundGrab:
		return CreateGrabSound(cfg)
	}
	return beep.Silence(0)
}

// CreateLaunchSound generates a swelling noise rush for lift-off
func CreateLaunchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.LaunchSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.LaunchSoundDuration, constants.LaunchSoundAttack, constants.LaunchSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundLaunch))
}

// CreateCrashSound generates a low saw rumble under a noise burst
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	rumble := NewSweep(80.0, 40.0, constants.CrashSoundDuration, WaveSaw, rate)
	rumbleShaped := NewEnvelope(rumble, constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)

	burst := NewOscillator(0, constants.CrashSoundDuration, WaveNoise, rate)
	burstShaped := NewEnvelope(burst, constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(rumbleShaped, 0.6),
		newVolume(burstShaped, 0.4),
	)
	return newVolume(mixed, cfg.volume(SoundCrash))
}

// CreateCollisionSound generates a two-note blip for a missile hit, the second note dropping
func CreateCollisionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (E5)
	n1 := NewOscillator(659.25, constants.CollisionSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.CollisionSoundNote1Duration, constants.CollisionSoundAttack, constants.CollisionSoundNote1Release, rate)

	// Second note falls from A4 to E4
	n2 := NewSweep(440.0, 329.63, constants.CollisionSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.CollisionSoundNote2Duration, constants.CollisionSoundAttack, constants.CollisionSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(SoundCollision))
}

// CreateGrabSound generates a short bell when a drone latches on
func CreateGrabSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5)
	fund := NewOscillator(880.0, constants.GrabSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.GrabSoundDuration, constants.GrabSoundAttack, constants.GrabSoundFundamentalRelease, rate)

	// Harmonic (Octave up)
	over := NewOscillator(1760.0, constants.GrabSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.GrabSoundDuration, constants.GrabSoundAttack, constants.GrabSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.volume(SoundGrab))
}
