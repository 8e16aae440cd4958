package term

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/loop"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 70 * time.Millisecond
	baseFreq   = 523.25
)

// Player plays the line clear chime.
type Player interface {
	Chime(rows int)
}

// Speaker plays chimes through the default audio device. Until Init succeeds
// it is silent.
type Speaker struct {
	log   zerolog.Logger
	ready bool
}

func NewSpeaker(logger zerolog.Logger) *Speaker {
	return &Speaker{log: logger}
}

func (s *Speaker) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.ready = true
	return nil
}

// Chime plays one rising note per cleared row.
func (s *Speaker) Chime(rows int) {
	if !s.ready || rows <= 0 {
		return
	}

	notes := make([]beep.Streamer, 0, rows)
	for i := range rows {
		freq := baseFreq * math.Pow(2, float64(4*i)/12)
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			s.log.Warn().Err(err).Float64("freq", freq).Msg("chime tone")
			return
		}
		notes = append(notes, beep.Take(sampleRate.N(noteLength), sine))
	}

	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   -3,
	})
}

func (s *Speaker) Close() {
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}

// ChimeSystem plays the chime whenever the engine's cleared line count grows.
type ChimeSystem struct {
	Player Player

	lines  int
	primed bool
}

func (s *ChimeSystem) Execute(frame *loop.UpdateFrame) {
	lines := frame.Engine.Stats().LinesCleared
	if s.primed && lines > s.lines && s.Player != nil {
		s.Player.Chime(lines - s.lines)
	}
	s.lines = lines
	s.primed = true
}
