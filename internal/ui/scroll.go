package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// smoothScroll animates the rendered scroll offset toward a target
// using a spring, so keyboard and wheel scrolling glides instead of
// jumping row by row. Imperative jumps bypass the animation via Snap.
type smoothScroll struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newSmoothScroll() *smoothScroll {
	return &smoothScroll{spring: harmonica.NewSpring(harmonica.FPS(scrollFPS), 8.0, 1.0)}
}

func (s *smoothScroll) SetTarget(t float64) {
	if t < 0 {
		t = 0
	}
	s.target = t
}

func (s *smoothScroll) Target() float64 {
	return s.target
}

// Snap moves immediately to t, discarding any in-flight animation.
func (s *smoothScroll) Snap(t float64) {
	if t < 0 {
		t = 0
	}
	s.pos = t
	s.vel = 0
	s.target = t
}

// Step advances the animation one frame and returns the new offset.
func (s *smoothScroll) Step() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.01 && math.Abs(s.vel) < 0.01 {
		s.pos = s.target
		s.vel = 0
	}
	return s.pos
}

// Settled reports whether the animation has reached its target.
func (s *smoothScroll) Settled() bool {
	return s.pos == s.target && s.vel == 0
}
