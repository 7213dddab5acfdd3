package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/radialmenu/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Attack and release ramps keep the cues from clicking.
const toneRampMs = 5

// AudioLoader synthesizes and caches the menu's sound cues
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache PCM bytes per cue
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a cue without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for the cue each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if data, ok := l.sfxCache[id]; ok {
		return data, nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	data := SynthesizeTone(tone, l.context.SampleRate())
	l.sfxCache[id] = data
	return data, nil
}

// SynthesizeTone renders a sine tone as 16-bit little-endian stereo PCM, the
// format audio.Context players expect.
func SynthesizeTone(tone cfg.ToneConfig, sampleRate int) []byte {
	samples := sampleRate * tone.DurationMs / 1000
	ramp := max(sampleRate*toneRampMs/1000, 1)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		envelope := math.Min(1, math.Min(float64(i)/float64(ramp), float64(samples-1-i)/float64(ramp)))
		v := math.Sin(2*math.Pi*tone.Frequency*float64(i)/float64(sampleRate)) * tone.Volume * envelope
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(data[i*4:], s)
		binary.LittleEndian.PutUint16(data[i*4+2:], s)
	}
	return data
}
