package config

// AudioConfig contains music playback values
type AudioConfig struct {
	SampleRate int
	MusicVol   float64
	MusicDir   string // stage tracks are looked up as <MusicDir>/<stage>.ogg
	Extensions []string
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		MusicVol:   0.8,
		MusicDir:   "audio/music",
		Extensions: []string{".ogg", ".wav", ".mp3"},
	}
}
