package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/keyboard/assets/tones"
	"github.com/milk9111/keyboard/ecs/component"
)

//go:embed clips/*
var assetsFS embed.FS

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// Context returns the shared audio context, creating it on first use.
func Context() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(tones.SampleRate)
	})
	return audioContext
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// LoadClip decodes an embedded clip into 16-bit stereo PCM. WAV files are
// resampled to the context rate; anything else is taken as raw PCM.
func LoadClip(path string) (*component.ToneClip, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	clean := strings.ToLower(cleanAssetPath(path))
	name := strings.TrimSuffix(filepath.Base(clean), filepath.Ext(clean))
	if !strings.HasSuffix(clean, ".wav") {
		return &component.ToneClip{Name: name, Source: path, PCM: b}, nil
	}

	stream, err := wav.DecodeWithSampleRate(tones.SampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read wav %q: %w", path, err)
	}
	return &component.ToneClip{Name: name, Source: path, PCM: pcm}, nil
}

// NewVoice creates an audio player for clip on the shared context.
func NewVoice(clip *component.ToneClip) (component.Voice, error) {
	if clip == nil || len(clip.PCM) == 0 {
		return nil, fmt.Errorf("voice: clip has no audio")
	}
	return Context().NewPlayerFromBytes(clip.PCM), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); filepath.IsAbs(path) && idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	return strings.TrimPrefix(s, "assets/")
}
