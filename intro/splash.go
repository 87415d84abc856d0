// Package intro runs the welcome splash of the memory gallery and owns the
// flag that gates user input until it is over.
package intro

import (
	"time"
)

const (
	TitleDuration = 3 * time.Second
	FadeDuration  = 2 * time.Second
	ImageDuration = 3 * time.Second
)

// Scheduler runs a callback after a delay. *loop.Loop implements it.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Stages are the visual side effects of the splash. Any of them may be nil.
type Stages struct {
	ShowTitle func()
	FadeTitle func()
	ShowImage func()
	FadeImage func()
	Hide      func()
}

type Splash struct {
	stages    Stages
	accepting bool
	running   bool
	onOpen    []func()
}

func NewSplash(stages Stages) *Splash {
	return &Splash{
		stages: stages,
	}
}

// Accepting reports whether user input should be processed.
func (s *Splash) Accepting() bool {
	return s.accepting
}

// Running reports whether the splash sequence is in progress.
func (s *Splash) Running() bool {
	return s.running
}

// OnOpen registers fn to be called once the gate opens.
func (s *Splash) OnOpen(fn func()) {
	if s.accepting {
		fn()
		return
	}
	s.onOpen = append(s.onOpen, fn)
}

// Open accepts input immediately, without showing the splash.
func (s *Splash) Open() {
	if s.accepting {
		return
	}
	s.running = false
	s.accepting = true
	callbacks := s.onOpen
	s.onOpen = nil
	for _, fn := range callbacks {
		fn()
	}
}

// Start shows the title, fades it out, shows the controls image, fades that
// out and finally hides the splash and opens the gate.
func (s *Splash) Start(scheduler Scheduler) {
	if s.running || s.accepting {
		return
	}
	s.running = true
	call(s.stages.ShowTitle)
	scheduler.After(TitleDuration, func() {
		call(s.stages.FadeTitle)
		scheduler.After(FadeDuration, func() {
			call(s.stages.ShowImage)
			scheduler.After(ImageDuration, func() {
				call(s.stages.FadeImage)
				scheduler.After(FadeDuration, func() {
					if !s.running {
						return
					}
					call(s.stages.Hide)
					s.Open()
				})
			})
		})
	})
}

// TotalDuration is how long Start takes to open the gate.
func TotalDuration() time.Duration {
	return TitleDuration + FadeDuration + ImageDuration + FadeDuration
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
