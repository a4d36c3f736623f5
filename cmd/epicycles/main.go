/*
Command epicycles draws a closed path with a chain of rotating circles.

	epicycles [flags] [path]

The path file holds one sample "x y" per line. Its Fourier coefficients
become a chain of epicycles whose tip retraces the path in the terminal.
Press space to start the animation, Escape or 'q' to quit.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/epicycles/animator"
	"github.com/npillmayer/epicycles/config"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/epicycles/render"
	"github.com/npillmayer/epicycles/shape"
	"github.com/npillmayer/epicycles/termview"
	"github.com/npillmayer/epicycles/trail"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// fitMargin is the fraction of the terminal left blank around a fitted drawing.
const fitMargin = 0.1

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts)
	fs.SetOutput(stderr)
	settings, err := parseArgs(args, fs, &opts)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "epicycles: %v\n", err)
		return 1
	}
	setupTracing(settings, stderr)

	path, err := shape.Load(opts.path)
	if err != nil {
		fmt.Fprintf(stderr, "epicycles: %v\n", err)
		return 1
	}
	es, err := fourier.Compute(path, settings.Harmonics)
	if err != nil {
		fmt.Fprintf(stderr, "epicycles: %v\n", err)
		return 1
	}
	tracer().Infof("%d samples decomposed into %d epicycles", path.Len(), len(es))
	if opts.dump {
		for _, e := range es {
			fmt.Fprintln(stdout, e)
		}
		return 0
	}

	if err = animate(es, path, settings, opts.traceFile, stderr); err != nil {
		fmt.Fprintf(stderr, "epicycles: %v\n", err)
		return 1
	}
	return 0
}

// openView acquires the terminal.
var openView = termview.Open

// animate runs the animation on the terminal until the user quits. The
// terminal is released and tracing restored before it returns.
func animate(es []fourier.Epicycle, path shape.Path, settings config.Settings, traceFile string, stderr io.Writer) error {
	tr, err := trail.New(settings.TrailLength)
	if err != nil {
		return err
	}
	view, err := openView()
	if err != nil {
		return err
	}
	closeTrace := redirectTracing(traceFile, stderr)
	defer closeTrace()
	defer view.Close()

	scale := settings.Scale
	if settings.Fit {
		w, h := view.Size()
		scale = render.FitScale(path.Bounds().Extent(), w, h, settings.PixelSize, fitMargin)
		tracer().Infof("scale fitted to %g", scale)
	}
	renderer := render.New(view, scale, settings.PixelSize)
	anim, err := animator.New(es, tr, renderer, view, animator.Options{
		Dt:     settings.Dt,
		MaxFPS: settings.MaxFPS,
	})
	if err != nil {
		return fmt.Errorf("cannot set up animation: %w", err)
	}
	anim.Run()
	return nil
}

// setupTracing installs a Go-logger tracer for all trace keys.
func setupTracing(settings config.Settings, out io.Writer) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracer()
	t.SetOutput(out)
	t.SetTraceLevel(settings.Level())
}

// redirectTracing keeps traces off the terminal while the screen is active.
// Traces go to filename, or are discarded if filename is empty. The returned
// function restores tracing to out.
func redirectTracing(filename string, out io.Writer) func() {
	t := tracer()
	if filename == "" {
		t.SetOutput(io.Discard)
		return func() { t.SetOutput(out) }
	}
	f, err := os.Create(filename)
	if err != nil {
		t.Errorf("cannot open trace file: %v", err)
		t.SetOutput(io.Discard)
		return func() { t.SetOutput(out) }
	}
	t.SetOutput(f)
	return func() {
		t.SetOutput(out)
		_ = f.Close()
	}
}
