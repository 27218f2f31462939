package tones

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// Format describes the PCM Synthesize produces.
func Format(sampleRate int) beep.Format {
	return beep.Format{SampleRate: beep.SampleRate(sampleRate), NumChannels: 2, Precision: 2}
}

// Streamer reads 16-bit stereo PCM back as beep samples.
func Streamer(pcm []byte) beep.Streamer {
	return &pcmStreamer{pcm: pcm}
}

// WriteWAV encodes pcm as a WAV file.
func WriteWAV(w io.WriteSeeker, pcm []byte, sampleRate int) error {
	if err := wav.Encode(w, Streamer(pcm), Format(sampleRate)); err != nil {
		return fmt.Errorf("tones: encode wav: %w", err)
	}
	return nil
}

type pcmStreamer struct {
	pcm []byte
	pos int
}

func (s *pcmStreamer) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for n < len(samples) && s.pos+bytesPerFrame <= len(s.pcm) {
		l := int16(binary.LittleEndian.Uint16(s.pcm[s.pos:]))
		r := int16(binary.LittleEndian.Uint16(s.pcm[s.pos+2:]))
		samples[n][0] = float64(l) / math.MaxInt16
		samples[n][1] = float64(r) / math.MaxInt16
		s.pos += bytesPerFrame
		n++
	}
	return n, n > 0
}

func (s *pcmStreamer) Err() error { return nil }
