// Package tones synthesizes key tones as 16-bit little-endian stereo PCM,
// the layout ebiten's audio players consume.
package tones

import (
	"encoding/binary"
	"math"

	"github.com/milk9111/keyboard/common"
)

const (
	SampleRate     = 44100
	bytesPerFrame  = 4
	attackSeconds  = 0.005
	releaseSeconds = 0.05
	amplitude      = 0.55
	overtone       = 0.25
	decayRate      = 2.5
)

// FrameCount returns the number of stereo frames in seconds of audio.
func FrameCount(seconds float64, sampleRate int) int {
	if seconds <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(math.Round(seconds * float64(sampleRate)))
}

// Synthesize renders a plucked sine at freq Hz with one octave overtone, an
// exponential decay and short attack/release ramps so the clip never clicks.
func Synthesize(freq, seconds float64, sampleRate int) []byte {
	frames := FrameCount(seconds, sampleRate)
	if frames == 0 || freq <= 0 {
		return nil
	}

	buf := make([]byte, frames*bytesPerFrame)
	sr := float64(sampleRate)
	for i := 0; i < frames; i++ {
		t := float64(i) / sr
		env := math.Exp(-decayRate * t)
		if t < attackSeconds {
			env *= t / attackSeconds
		}
		if left := seconds - t; left < releaseSeconds {
			env *= left / releaseSeconds
		}
		s := amplitude * env * (math.Sin(2*math.Pi*freq*t) + overtone*math.Sin(4*math.Pi*freq*t))
		putStereoS16(buf, i, s)
	}
	return buf
}

// putStereoS16 writes a [-1,1] sample to both channels of frame i.
func putStereoS16(buf []byte, i int, sample float64) {
	sample = common.Clamp(sample, -1, 1)
	v := uint16(int16(sample * math.MaxInt16))
	binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], v)
	binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], v)
}
