package main

import (
	"flag"

	"github.com/npillmayer/epicycles/config"
	"github.com/npillmayer/schuko"
)

// flagConfig presents a parsed flag set as a schuko.Configuration. A key
// counts as set only if the flag was given on the command line.
type flagConfig struct {
	fs *flag.FlagSet
}

var _ schuko.Configuration = flagConfig{}

func (fc flagConfig) InitDefaults() {}

func (fc flagConfig) IsSet(key string) bool {
	set := false
	fc.fs.Visit(func(f *flag.Flag) {
		if f.Name == key {
			set = true
		}
	})
	return set
}

func (fc flagConfig) GetString(key string) string {
	if f := fc.fs.Lookup(key); f != nil {
		return f.Value.String()
	}
	return ""
}

func (fc flagConfig) GetInt(key string) int {
	if f := fc.fs.Lookup(key); f != nil {
		if g, ok := f.Value.(flag.Getter); ok {
			if n, ok := g.Get().(int); ok {
				return n
			}
		}
	}
	return 0
}

func (fc flagConfig) GetBool(key string) bool {
	if f := fc.fs.Lookup(key); f != nil {
		if g, ok := f.Value.(flag.Getter); ok {
			if b, ok := g.Get().(bool); ok {
				return b
			}
		}
	}
	return false
}

func (fc flagConfig) IsInteractive() bool { return true }

// options are the command line settings which are not part of config.Settings.
type options struct {
	dump      bool
	traceFile string
	path      string
}

const defaultPath = "paths/default.txt"

// newFlagSet declares the command line flags. Defaults are taken from
// config.Default, so that the usage message shows them.
func newFlagSet(opts *options) *flag.FlagSet {
	d := config.Default()
	fs := flag.NewFlagSet("epicycles", flag.ContinueOnError)
	fs.Float64(config.KeyDt, float64(d.Dt), "advance of t per frame")
	fs.Int(config.KeyTrail, d.TrailLength, "number of remembered tip points")
	fs.Int(config.KeyFPS, d.MaxFPS, "maximum frames per second")
	fs.Int(config.KeyHarmonics, d.Harmonics, "use frequencies 1…harmonics-1")
	fs.Float64(config.KeyScale, float64(d.Scale), "world units to pixels")
	fs.Float64(config.KeyPixelSize, float64(d.PixelSize), "size of a pixel")
	fs.Bool(config.KeyFit, d.Fit, "scale the drawing to the terminal")
	fs.String(config.KeyTraceLevel, d.TraceLevel, "trace level: Error, Info or Debug")
	fs.BoolVar(&opts.dump, "dump", false, "print the epicycles and exit")
	fs.StringVar(&opts.traceFile, "tracefile", "", "trace to this file while animating")
	fs.Usage = func() {
		out := fs.Output()
		_, _ = out.Write([]byte("usage: epicycles [flags] [path]\n"))
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses the command line and loads the settings from it.
func parseArgs(args []string, fs *flag.FlagSet, opts *options) (config.Settings, error) {
	if err := fs.Parse(args); err != nil {
		return config.Settings{}, err
	}
	opts.path = defaultPath
	if fs.NArg() > 0 {
		opts.path = fs.Arg(0)
	}
	return config.Load(flagConfig{fs: fs})
}
