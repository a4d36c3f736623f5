/*
Package animator drives the epicycle animation.

An Animator owns the epicycle list, the trail and the time parameter t. Every
frame it evaluates the tip of the chain at t, remembers it in the trail, has
the scene drawn and then sleeps for a fixed delay. The animation starts idle;
a Start event sets t in motion, a Quit event ends the loop.

Everything happens on the caller's goroutine. Polling for events never
blocks; the only blocking point is the sleep between frames.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package animator

import (
	"errors"
	"fmt"
	"time"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

// ErrFrameRate indicates a maximum frame rate below 1.
var ErrFrameRate = errors.New("frame rate must be at least 1")

// Event is an input event interpreted by the animator.
type Event int8

// Events understood by the animator. Anything else is ignored by event sources.
const (
	Start Event = iota // start moving t
	Quit               // leave the loop
)

func (ev Event) String() string {
	switch ev {
	case Start:
		return "Start"
	case Quit:
		return "Quit"
	}
	return fmt.Sprintf("Event(%d)", int8(ev))
}

// EventSource delivers the input events which arrived since the last poll.
// Poll must not block.
type EventSource interface {
	Poll() []Event
}

// Scene draws a frame: the epicycles at time t together with the trail
// points, oldest first. *render.Renderer is a Scene.
type Scene interface {
	Render(es []fourier.Epicycle, t float32, trail []epicycles.Pair)
}

// Trail is where tip positions go. *trail.Trail implements it.
type Trail interface {
	Push(v epicycles.Pair)
	Points() []epicycles.Pair
}

// State of an animator.
type State int8

// States of an animator.
const (
	Idle State = iota
	Animating
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Animating:
		return "Animating"
	case Terminated:
		return "Terminated"
	}
	return fmt.Sprintf("State(%d)", int8(s))
}

// Options configure an animator.
type Options struct {
	Dt     float32 // advance of t per frame
	MaxFPS int     // upper bound for frames per second
}

// Animator runs the frame loop.
type Animator struct {
	epicycles []fourier.Epicycle
	trail     Trail
	scene     Scene
	events    EventSource
	t         float32
	dt        float32
	state     State
	interval  time.Duration
	sleep     func(time.Duration)
}

// New creates an idle animator at t = 0.
func New(es []fourier.Epicycle, trail Trail, scene Scene, events EventSource, opts Options) (*Animator, error) {
	if opts.MaxFPS < 1 {
		return nil, fmt.Errorf("%w: %d", ErrFrameRate, opts.MaxFPS)
	}
	return &Animator{
		epicycles: es,
		trail:     trail,
		scene:     scene,
		events:    events,
		dt:        opts.Dt,
		state:     Idle,
		interval:  time.Duration(int64(time.Second) / int64(opts.MaxFPS)),
		sleep:     time.Sleep,
	}, nil
}

// T is the current time parameter.
func (a *Animator) T() float32 {
	return a.t
}

// State is the current state.
func (a *Animator) State() State {
	return a.state
}

// Interval is the fixed delay after each frame, ⌊10⁹/F⌋ ns.
func (a *Animator) Interval() time.Duration {
	return a.interval
}

// Handle feeds a single event into the state machine.
func (a *Animator) Handle(ev Event) {
	switch ev {
	case Start:
		if a.state == Idle {
			tracer().Infof("animation started")
			a.state = Animating
		}
	case Quit:
		if a.state != Terminated {
			tracer().Infof("animation terminated at t = %g", a.t)
			a.state = Terminated
		}
	}
}

// Step polls for events and, unless the animator has terminated, runs a
// frame. It returns false once the animator has terminated.
func (a *Animator) Step() bool {
	if a.events != nil {
		for _, ev := range a.events.Poll() {
			a.Handle(ev)
		}
	}
	if a.state == Terminated {
		return false
	}
	a.Frame()
	return true
}

// Frame runs one frame: evaluate the tip at t, push it to the trail, draw,
// sleep, and advance t if animating. While idle, t stays put and the trail
// is left alone.
func (a *Animator) Frame() {
	if a.state == Animating {
		a.trail.Push(fourier.Tip(a.epicycles, a.t))
	}
	a.scene.Render(a.epicycles, a.t, a.trail.Points())
	a.sleep(a.interval)
	if a.state == Animating {
		a.t += a.dt
	}
}

// Run loops over Step until a Quit event arrives.
func (a *Animator) Run() {
	frames := 0
	for a.Step() {
		frames++
	}
	tracer().Debugf("animation loop ended after %d frames", frames)
}
