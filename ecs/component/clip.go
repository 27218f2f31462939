package component

// ToneClip is an immutable decoded audio resource: 16-bit little-endian
// stereo PCM at the audio context sample rate.
type ToneClip struct {
	Name   string
	Source string
	PCM    []byte
}
