package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"
	"time"

	"github.com/automoto/nightslash/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// bytesPerFrame is the size of one decoded sample frame: 16-bit stereo.
const bytesPerFrame = 4

// MusicPlayer plays one stage track at a time. Its playback position is the
// music clock the spawn scheduler follows.
type MusicPlayer struct {
	context *audio.Context
	fsys    fs.FS

	player *audio.Player
	length time.Duration
	path   string
}

// NewMusicPlayer creates a player reading tracks from fsys. The audio context
// is a process-wide singleton in ebiten, so callers share one.
func NewMusicPlayer(ctx *audio.Context, fsys fs.FS) *MusicPlayer {
	return &MusicPlayer{context: ctx, fsys: fsys}
}

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

func (m *MusicPlayer) decode(p string, data []byte) (lengthStream, error) {
	sr := m.context.SampleRate()
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		return vorbis.DecodeWithSampleRate(sr, bytes.NewReader(data))
	case ".wav":
		return wav.DecodeWithSampleRate(sr, bytes.NewReader(data))
	case ".mp3":
		return mp3.DecodeWithSampleRate(sr, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// Load decodes a track and makes it current. The previous track is closed.
func (m *MusicPlayer) Load(p string) error {
	if m.fsys == nil {
		return fmt.Errorf("failed to read music file %s: no asset directory", p)
	}
	data, err := fs.ReadFile(m.fsys, p)
	if err != nil {
		return fmt.Errorf("failed to read music file %s: %w", p, err)
	}
	stream, err := m.decode(p, data)
	if err != nil {
		return fmt.Errorf("failed to decode music %s: %w", p, err)
	}
	player, err := m.context.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("failed to create music player %s: %w", p, err)
	}

	m.close()
	frames := stream.Length() / bytesPerFrame
	m.length = time.Duration(frames) * time.Second / time.Duration(m.context.SampleRate())
	m.player = player
	m.path = p
	m.player.SetVolume(config.Audio.MusicVol)
	return nil
}

func (m *MusicPlayer) close() {
	if m.player == nil {
		return
	}
	if err := m.player.Close(); err != nil {
		log.Printf("Warning: failed to close music %s: %v", m.path, err)
	}
	m.player = nil
	m.length = 0
}

func (m *MusicPlayer) Play() {
	if m.player != nil && !m.player.IsPlaying() {
		m.player.Play()
	}
}

func (m *MusicPlayer) Pause() {
	if m.player != nil {
		m.player.Pause()
	}
}

// Stop pauses and rewinds to the start of the track.
func (m *MusicPlayer) Stop() {
	if m.player == nil {
		return
	}
	m.player.Pause()
	if err := m.player.SetPosition(0); err != nil {
		log.Printf("Warning: failed to rewind music %s: %v", m.path, err)
	}
}

func (m *MusicPlayer) CurrentTime() float64 {
	if m.player == nil {
		return 0
	}
	return m.player.Position().Seconds()
}

func (m *MusicPlayer) Duration() float64 {
	return m.length.Seconds()
}

// Loaded reports whether a track is ready to play.
func (m *MusicPlayer) Loaded() bool {
	return m.player != nil
}

// SetVolume sets the music volume (0.0 to 1.0).
func (m *MusicPlayer) SetVolume(v float64) {
	if m.player != nil {
		m.player.SetVolume(v)
	}
}

// FindTrack returns the first track for stage under the music directory, trying
// each supported extension in order.
func FindTrack(fsys fs.FS, stage string) (string, bool) {
	if fsys == nil {
		return "", false
	}
	for _, ext := range config.Audio.Extensions {
		p := path.Join(config.Audio.MusicDir, stage+ext)
		if _, err := fs.Stat(fsys, p); err == nil {
			return p, true
		}
	}
	return "", false
}
