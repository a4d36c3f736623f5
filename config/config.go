/*
Package config collects the settings of the epicycle visualizer.

Settings are read from any schuko.Configuration. Keys which are not set keep
their default values:

	dt          advance of t per frame            (1/900)
	trail       number of remembered tip points   (880)
	fps         maximum frames per second         (60)
	harmonics   exclusive bound of frequencies    (150)
	scale       world-to-screen scale             (0.8)
	pixelsize   size of a screen pixel            (1.0)
	fit         scale the drawing to the surface  (false)
	tracelevel  Error, Info or Debug              (Error)

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

// ErrInvalidSetting flags a configuration value which is unparsable or out of range.
var ErrInvalidSetting = errors.New("invalid setting")

// Configuration keys.
const (
	KeyDt         = "dt"
	KeyTrail      = "trail"
	KeyFPS        = "fps"
	KeyHarmonics  = "harmonics"
	KeyScale      = "scale"
	KeyPixelSize  = "pixelsize"
	KeyFit        = "fit"
	KeyTraceLevel = "tracelevel"
)

// Settings hold everything needed to set up an animation.
type Settings struct {
	Dt          float32 // advance of t per frame
	TrailLength int     // capacity of the trail
	MaxFPS      int     // upper bound for frames per second
	Harmonics   int     // frequencies 1…Harmonics-1 are used
	Scale       float32 // world units to pixels
	PixelSize   float32 // size of a surface pixel
	Fit         bool    // derive Scale from the path's extent
	TraceLevel  string
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Dt:          1.0 / 900,
		TrailLength: 880,
		MaxFPS:      60,
		Harmonics:   150,
		Scale:       0.8,
		PixelSize:   1,
		TraceLevel:  "Error",
	}
}

// Load reads settings from conf, falling back to defaults for keys which
// are not set, and validates the result.
func Load(conf schuko.Configuration) (Settings, error) {
	s := Default()
	if conf == nil {
		return s, nil
	}
	var err error
	if s.Dt, err = float32Value(conf, KeyDt, s.Dt); err != nil {
		return s, err
	}
	if s.Scale, err = float32Value(conf, KeyScale, s.Scale); err != nil {
		return s, err
	}
	if s.PixelSize, err = float32Value(conf, KeyPixelSize, s.PixelSize); err != nil {
		return s, err
	}
	if s.TrailLength, err = intValue(conf, KeyTrail, s.TrailLength); err != nil {
		return s, err
	}
	if s.MaxFPS, err = intValue(conf, KeyFPS, s.MaxFPS); err != nil {
		return s, err
	}
	if s.Harmonics, err = intValue(conf, KeyHarmonics, s.Harmonics); err != nil {
		return s, err
	}
	if conf.IsSet(KeyFit) {
		s.Fit = conf.GetBool(KeyFit)
	}
	if conf.IsSet(KeyTraceLevel) {
		s.TraceLevel = conf.GetString(KeyTraceLevel)
	}
	if err = s.Validate(); err != nil {
		return s, err
	}
	tracer().Debugf("settings: %+v", s)
	return s, nil
}

// Validate checks the ranges of all settings.
func (s Settings) Validate() error {
	switch {
	case s.TrailLength < 1:
		return fmt.Errorf("%w: %s = %d, must be at least 1", ErrInvalidSetting, KeyTrail, s.TrailLength)
	case s.MaxFPS < 1:
		return fmt.Errorf("%w: %s = %d, must be at least 1", ErrInvalidSetting, KeyFPS, s.MaxFPS)
	case s.Harmonics < 1:
		return fmt.Errorf("%w: %s = %d, must be at least 1", ErrInvalidSetting, KeyHarmonics, s.Harmonics)
	case !(s.Scale > 0):
		return fmt.Errorf("%w: %s = %g, must be positive", ErrInvalidSetting, KeyScale, s.Scale)
	case !(s.PixelSize > 0):
		return fmt.Errorf("%w: %s = %g, must be positive", ErrInvalidSetting, KeyPixelSize, s.PixelSize)
	case math.IsNaN(float64(s.Dt)) || math.IsInf(float64(s.Dt), 0):
		return fmt.Errorf("%w: %s = %g", ErrInvalidSetting, KeyDt, s.Dt)
	case s.Dt < 0:
		return fmt.Errorf("%w: %s = %g, t must not run backwards", ErrInvalidSetting, KeyDt, s.Dt)
	}
	switch strings.ToLower(s.TraceLevel) {
	case "error", "info", "debug":
		return nil
	}
	return fmt.Errorf("%w: %s = %q", ErrInvalidSetting, KeyTraceLevel, s.TraceLevel)
}

// Level converts the trace level setting for package tracing.
func (s Settings) Level() tracing.TraceLevel {
	return tracing.TraceLevelFromString(s.TraceLevel)
}

func float32Value(conf schuko.Configuration, key string, dflt float32) (float32, error) {
	if !conf.IsSet(key) {
		return dflt, nil
	}
	raw := strings.TrimSpace(conf.GetString(key))
	x, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return dflt, fmt.Errorf("%w: %s = %q", ErrInvalidSetting, key, raw)
	}
	return float32(x), nil
}

// intValue parses the string form of key, so that garbage is reported
// instead of read as 0.
func intValue(conf schuko.Configuration, key string, dflt int) (int, error) {
	if !conf.IsSet(key) {
		return dflt, nil
	}
	raw := strings.TrimSpace(conf.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return dflt, fmt.Errorf("%w: %s = %q", ErrInvalidSetting, key, raw)
	}
	return n, nil
}
