package config

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := Load(testconfig.Conf{})
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.InDelta(t, 1.0/900, float64(s.Dt), 1e-9)
	assert.Equal(t, 880, s.TrailLength)
	assert.Equal(t, 60, s.MaxFPS)
	assert.Equal(t, 150, s.Harmonics)
	assert.False(t, s.Fit)
	assert.Equal(t, tracing.LevelError, s.Level())
	s, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverrides(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := testconfig.Conf{
		KeyDt:         "0.01",
		KeyTrail:      "100",
		KeyFPS:        " 30 ",
		KeyHarmonics:  "20",
		KeyScale:      "2.5",
		KeyPixelSize:  "2",
		KeyFit:        "true",
		KeyTraceLevel: "debug",
	}
	s, err := Load(conf)
	require.NoError(t, err)
	assert.Equal(t, float32(0.01), s.Dt)
	assert.Equal(t, 100, s.TrailLength)
	assert.Equal(t, 30, s.MaxFPS)
	assert.Equal(t, 20, s.Harmonics)
	assert.Equal(t, float32(2.5), s.Scale)
	assert.Equal(t, float32(2), s.PixelSize)
	assert.True(t, s.Fit)
	assert.Equal(t, tracing.LevelDebug, s.Level())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, conf := range []testconfig.Conf{
		{KeyDt: "fast"},
		{KeyDt: "NaN"},
		{KeyTrail: "0"},
		{KeyTrail: "many"},
		{KeyFPS: "-1"},
		{KeyHarmonics: "0"},
		{KeyScale: "0"},
		{KeyPixelSize: "-1"},
		{KeyTraceLevel: "verbose"},
	} {
		_, err := Load(conf)
		assert.True(t, errors.Is(err, ErrInvalidSetting), "%v: got %v", conf, err)
	}
}

func TestNegativeDtIsRejected(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Load(testconfig.Conf{KeyDt: "-0.5"})
	assert.True(t, errors.Is(err, ErrInvalidSetting), "got %v", err)
	s := Default()
	s.Dt = -0.001
	assert.True(t, errors.Is(s.Validate(), ErrInvalidSetting))
	s.Dt = 0
	assert.NoError(t, s.Validate(), "a standing animation is allowed")
}
