/*
Package shape reads sampled closed paths from plain text files.

A path file holds one sample per line, real part and imaginary part separated
by white space:

	-3.5 0.25
	-3.4 0.61
	…

There is no header and no comment syntax. Blank lines are skipped wherever
they appear, including at the end of the file. Coordinates are taken as they
are; the renderer applies the configured scale.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package shape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

var (
	// ErrInputNotFound indicates a path file which does not exist.
	ErrInputNotFound = errors.New("path file not found")
	// ErrInputUnreadable indicates a path file which could not be read.
	ErrInputUnreadable = errors.New("path file not readable")
	// ErrMalformedSample indicates a line not holding exactly two finite numbers.
	ErrMalformedSample = errors.New("malformed sample")
	// ErrEmptyPath indicates a path file without samples.
	ErrEmptyPath = errors.New("path has no samples")
)

// Path is a closed path, sampled at L points. Sample j belongs to the time
// parameter j/L; the last sample connects back to the first one implicitly.
type Path []epicycles.Pair

// Len is the number of samples L.
func (p Path) Len() int {
	return len(p)
}

// Mean is the average of all samples, which is the DC term c₀ of the
// path's Fourier series.
func (p Path) Mean() epicycles.Pair {
	if len(p) == 0 {
		return epicycles.Origin
	}
	var sum epicycles.Pair
	for _, s := range p {
		sum += s
	}
	return sum.Scaled(1 / float32(len(p)))
}

// IsCentered is a predicate: is the DC term of p (nearly) zero?
func (p Path) IsCentered() bool {
	return p.Mean().IsOrigin()
}

// Load reads a path from a text file.
func Load(filename string) (Path, error) {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	defer f.Close()
	path, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	tracer().Infof("loaded %d samples from %s", path.Len(), filename)
	if !path.IsCentered() {
		tracer().Infof("path is not centered, its mean %s will not be drawn", path.Mean())
	}
	return path, nil
}

// Read reads a path from r, one sample per line.
func Read(r io.Reader) (Path, error) {
	var path Path
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		sample, err := parseSample(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		path = append(path, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	return path, nil
}

func parseSample(fields []string) (epicycles.Pair, error) {
	if len(fields) != 2 {
		return epicycles.Origin, fmt.Errorf("%w: expected 2 numbers, found %d", ErrMalformedSample, len(fields))
	}
	var xy [2]float32
	for i, tok := range fields {
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return epicycles.Origin, fmt.Errorf("%w: %q is not a number", ErrMalformedSample, tok)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return epicycles.Origin, fmt.Errorf("%w: %q is not finite", ErrMalformedSample, tok)
		}
		xy[i] = float32(f)
	}
	return epicycles.P(xy[0], xy[1]), nil
}
