package config

// SoundID represents a logical sound cue
type SoundID int

const (
	SoundNone SoundID = iota
	// SoundMenuOpen plays when a menu opens
	SoundMenuOpen
	// SoundMenuNavigate plays when the targeted item changes
	SoundMenuNavigate
	// SoundPageTurn plays when switching pages
	SoundPageTurn
	// SoundActivationArmed plays when a delayed activation starts waiting
	SoundActivationArmed
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Volume     float64
}

// ToneConfig describes a synthesized cue
type ToneConfig struct {
	Frequency  float64 // Hz
	DurationMs int
	Volume     float64 // multiplier on AudioConfig.Volume
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundMenuOpen:        {Frequency: 440, DurationMs: 60, Volume: 0.6},
			SoundMenuNavigate:    {Frequency: 880, DurationMs: 25, Volume: 0.4},
			SoundPageTurn:        {Frequency: 660, DurationMs: 40, Volume: 0.5},
			SoundActivationArmed: {Frequency: 990, DurationMs: 90, Volume: 0.7},
		},
	}
}
