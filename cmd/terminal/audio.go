package main

import (
	"math"
	"time"

	"tunnel-server/pkg/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone - короткий синус. Звуки игры различаются высотой и длиной.
type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[string]tone{
	"dig":                  {110, 30 * time.Millisecond},
	"squirt":               {660, 120 * time.Millisecond},
	"sonar":                {1320, 300 * time.Millisecond},
	"falling-rock":         {80, 400 * time.Millisecond},
	"found-oil":            {523, 250 * time.Millisecond},
	"got-goodie":           {784, 150 * time.Millisecond},
	"protester-yell":       {220, 200 * time.Millisecond},
	"protester-give-up":    {330, 300 * time.Millisecond},
	"protester-found-gold": {988, 200 * time.Millisecond},
	"player-give-up":       {147, 600 * time.Millisecond},
	"finished-level":       {1047, 500 * time.Millisecond},
	"theme":                {262, 800 * time.Millisecond},
}

// sine генерирует синус заданной длины.
type sine struct {
	step     float64
	phase    float64
	position int
	total    int
}

func newSine(t tone) *sine {
	return &sine{
		step:  t.freq / float64(sampleRate),
		total: sampleRate.N(t.duration),
	}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		// Линейное затухание убирает щелчок в конце
		fade := 1 - float64(s.position)/float64(s.total)
		v := math.Sin(2*math.Pi*s.phase) * fade
		samples[i][0], samples[i][1] = v, v

		s.phase += s.step
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// Audio проигрывает звуки снимков. Без звуковой карты молча ничего не делает.
type Audio struct {
	enabled bool
	volume  float64
}

func NewAudio(mute bool) *Audio {
	a := &Audio{volume: -1.5}
	if mute {
		return a
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		logger.Log.WithError(err).Warn("Audio disabled")
		return a
	}
	a.enabled = true
	return a
}

func (a *Audio) Play(names []string) {
	if !a.enabled {
		return
	}
	for _, name := range names {
		if s := a.streamer(name); s != nil {
			speaker.Play(s)
		}
	}
}

// streamer собирает поток для звука; nil для неизвестных имен.
func (a *Audio) streamer(name string) beep.Streamer {
	t, ok := tones[name]
	if !ok {
		return nil
	}
	return &effects.Volume{Streamer: newSine(t), Base: 2, Volume: a.volume}
}

func (a *Audio) Close() {
	if a.enabled {
		speaker.Close()
	}
}
