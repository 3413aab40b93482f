// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixture loads parameterized distribution test cases from
// properties-format key/value sources.
//
// One source describes one parameterization of a distribution under
// test: the construction parameters, the expected moments and support
// bounds, parallel point/value arrays for each function under test,
// equality tolerances, and flags that disable individual check
// categories. Sources for a family are numbered sequentially:
//
//	test.binomial.1.properties
//	test.binomial.2.properties
//
// Numeric values use standard floating point syntax plus the special
// literals NaN, Infinity and -Infinity. Any malformed source fails
// the whole batch; no partial fixture set is ever returned.
package fixture // import "github.com/statv/go-distcheck/fixture"

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
)

// Default equality tolerances applied when a source does not override
// them.
const (
	DefaultTol   = 1e-4
	DefaultTolHP = 1e-22
)

// A Fixture is one parameterized test case for a distribution:
// construction parameters plus expected values. Fields are populated
// once by the loader and never mutated afterwards.
type Fixture struct {
	// Name identifies the source for diagnostics, e.g. "binomial.1".
	Name string

	// Parameters construct the distribution instance under test.
	Parameters []float64

	// Mean and Variance are the expected moments. NaN means the
	// distribution is expected to report NaN.
	Mean, Variance float64

	// Lower and Upper are the expected support bounds, possibly
	// infinite.
	Lower, Upper float64

	// Connected is the expected support connectivity.
	Connected bool

	// Tol and TolHP are the plain and high-precision equality
	// tolerances.
	Tol, TolHP float64

	// CDFPoints and CDFValues are parallel input/expected pairs
	// for the cumulative function.
	CDFPoints, CDFValues []float64

	// PMFPoints, PMFValues and LogPMFValues are parallel arrays
	// for the mass and log-mass checks. PMFPoints defaults to
	// CDFPoints; LogPMFValues defaults to the elementwise log of
	// PMFValues. Continuous sources fill these from the pdf and
	// logpdf keys instead.
	PMFPoints, PMFValues, LogPMFValues []float64

	// SFPoints and SFValues are parallel arrays for the survival
	// checks, defaulting to CDFPoints and 1-CDFValues.
	SFPoints, SFValues []float64

	// High-precision regions for the cumulative and survival
	// functions, empty unless provided.
	CDFHPPoints, CDFHPValues []float64
	SFHPPoints, SFHPValues   []float64

	// InvP holds probability inputs and InvX the points they are
	// expected to invert to, for the inverse cumulative check.
	InvP, InvX []float64

	// Per-category disable flags.
	DisableSample, DisablePMF, DisableCDF, DisableCDFInverse bool
}

// A FormatError describes a malformed fixture source. Any FormatError
// invalidates the entire batch the source belongs to.
type FormatError struct {
	// Source names the offending source.
	Source string

	// Key is the offending property key, if any.
	Key string

	Err error
}

func (e *FormatError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("fixture %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("fixture %s: key %q: %v", e.Source, e.Key, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// A Loader parses fixture sources for one distribution family.
//
// The zero value is a usable loader.
type Loader struct {
	// ParamNames optionally names the fixture parameters by
	// position, for diagnostics only.
	ParamNames []string
}

// Parse converts one key/value source into a Fixture. It returns a
// *FormatError if a mandatory key is absent, a numeric token fails to
// parse, or a points/values pair has mismatched lengths.
func (l Loader) Parse(name string, src *properties.Properties) (*Fixture, error) {
	p := &parser{name: name, src: src}

	f := &Fixture{
		Name:       name,
		Parameters: p.parameters("parameters", l.ParamNames),
		Mean:       p.requiredFloat("mean"),
		Variance:   p.requiredFloat("variance"),
		Lower:      p.float("lower", math.Inf(-1)),
		Upper:      p.float("upper", math.Inf(1)),
		Connected:  p.bool("connected", true),
		Tol:        p.float("tolerance", DefaultTol),
		TolHP:      p.float("tolerance.hp", DefaultTolHP),

		CDFPoints: p.floats("cdf.points"),
		CDFValues: p.floats("cdf.values"),
		PMFPoints: p.anyFloats("pmf.points", "pdf.points"),
		PMFValues: p.anyFloats("pmf.values", "pdf.values"),

		LogPMFValues: p.anyFloats("logpmf.values", "logpdf.values"),
		SFPoints:     p.floats("sf.points"),
		SFValues:     p.floats("sf.values"),

		CDFHPPoints: p.floats("cdf.hp.points"),
		CDFHPValues: p.floats("cdf.hp.values"),
		SFHPPoints:  p.floats("sf.hp.points"),
		SFHPValues:  p.floats("sf.hp.values"),

		InvP: p.floats("icdf.values"),
		InvX: p.anyFloats("ipmf.values", "ipdf.values"),

		DisableSample:     p.bool("disable.sample", false),
		DisablePMF:        p.bool("disable.pmf", false),
		DisableCDF:        p.bool("disable.cdf", false),
		DisableCDFInverse: p.bool("disable.cdf.inverse", false),
	}
	if p.err != nil {
		return nil, p.err
	}

	// Apply derived defaults before length validation so every
	// pair checked below reflects what the battery will consume.
	if f.PMFPoints == nil && len(f.PMFValues) > 0 {
		f.PMFPoints = f.CDFPoints
	}
	if f.LogPMFValues == nil && len(f.PMFValues) > 0 {
		f.LogPMFValues = logAll(f.PMFValues)
	}
	if f.SFPoints == nil && f.SFValues == nil {
		f.SFPoints = f.CDFPoints
		f.SFValues = complementAll(f.CDFValues)
	} else if f.SFPoints == nil {
		f.SFPoints = f.CDFPoints
	}

	pairs := []struct {
		name           string
		points, values []float64
	}{
		{"cdf", f.CDFPoints, f.CDFValues},
		{"pmf", f.PMFPoints, f.PMFValues},
		{"logpmf", f.PMFPoints, f.LogPMFValues},
		{"sf", f.SFPoints, f.SFValues},
		{"cdf.hp", f.CDFHPPoints, f.CDFHPValues},
		{"sf.hp", f.SFHPPoints, f.SFHPValues},
		{"icdf", f.InvP, f.InvX},
	}
	for _, pair := range pairs {
		if len(pair.points) != len(pair.values) {
			return nil, &FormatError{
				Source: name,
				Key:    pair.name,
				Err: fmt.Errorf("points/values length mismatch: %d != %d",
					len(pair.points), len(pair.values)),
			}
		}
	}
	return f, nil
}

func logAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Log(x)
	}
	return out
}

func complementAll(xs []float64) []float64 {
	if xs == nil {
		return nil
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = 1 - x
	}
	return out
}

// parser reads typed values out of one source, recording the first
// failure.
type parser struct {
	name string
	src  *properties.Properties
	err  error
}

func (p *parser) fail(key string, err error) {
	if p.err == nil {
		p.err = &FormatError{Source: p.name, Key: key, Err: err}
	}
}

func (p *parser) parseFloat(key, tok string) float64 {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		p.fail(key, fmt.Errorf("malformed number %q", tok))
	}
	return v
}

// parameters reads the mandatory whitespace-separated parameter list.
func (p *parser) parameters(key string, names []string) []float64 {
	s, ok := p.src.Get(key)
	if !ok {
		p.fail(key, fmt.Errorf("missing mandatory key"))
		return nil
	}
	toks := strings.Fields(s)
	out := make([]float64, len(toks))
	for i, tok := range toks {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			label := fmt.Sprintf("parameter %d", i+1)
			if i < len(names) {
				label = fmt.Sprintf("parameter %s", names[i])
			}
			p.fail(key, fmt.Errorf("%s: malformed number %q", label, tok))
			return nil
		}
		out[i] = v
	}
	return out
}

func (p *parser) requiredFloat(key string) float64 {
	s, ok := p.src.Get(key)
	if !ok {
		p.fail(key, fmt.Errorf("missing mandatory key"))
		return 0
	}
	return p.parseFloat(key, strings.TrimSpace(s))
}

func (p *parser) float(key string, def float64) float64 {
	s, ok := p.src.Get(key)
	if !ok {
		return def
	}
	return p.parseFloat(key, strings.TrimSpace(s))
}

func (p *parser) bool(key string, def bool) bool {
	s, ok := p.src.Get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		p.fail(key, fmt.Errorf("malformed boolean %q", s))
	}
	return v
}

// floats reads an optional comma-separated array. A missing key
// yields nil, which signals "no data" to the scenario generator.
func (p *parser) floats(key string) []float64 {
	s, ok := p.src.Get(key)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	toks := strings.Split(s, ",")
	out := make([]float64, len(toks))
	for i, tok := range toks {
		out[i] = p.parseFloat(key, strings.TrimSpace(tok))
	}
	return out
}

// anyFloats reads the first of several alias keys that is present.
// Continuous sources spell the density keys pdf where discrete
// sources spell them pmf.
func (p *parser) anyFloats(keys ...string) []float64 {
	for _, key := range keys {
		if v := p.floats(key); v != nil {
			return v
		}
	}
	return nil
}
