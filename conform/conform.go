// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conform is a data-driven conformance battery for
// probability distribution implementations.
//
// A Suite binds a distribution family's constructor to the fixtures
// loaded for it by package fixture. Run then derives a set of named
// scenarios from each fixture and exercises the distribution's whole
// public contract against them: mass and log-mass values, cumulative
// and survival probabilities with a separate high-precision region,
// inverse-CDF values and the CDF/inverse-CDF round trip, complement
// and range-probability identities, behavior outside the support,
// expected invalid-argument failures, moments, support bounds, and a
// chi-square goodness-of-fit test of the sampler.
//
// A fixture with no data for a scenario, or with the scenario's
// disable flag set, is silently elided; a scenario with no fixtures
// left is skipped rather than failed. Check failures report the
// offending input with expected and actual values and never abort
// sibling checks.
package conform // import "github.com/statv/go-distcheck/conform"

import (
	"fmt"
	"testing"

	"github.com/statv/go-distcheck/dist"
	"github.com/statv/go-distcheck/fixture"
)

// defaultSeed seeds samplers when a suite does not choose its own.
const defaultSeed = 1234567890

// An Accessor pairs a parameter name with the function that reads the
// parameter back from a constructed distribution. Suites list
// accessors in fixture parameter order.
type Accessor struct {
	Name string
	Get  func(d dist.Discrete) float64
}

// A Suite runs the conformance battery for one family of discrete
// distributions.
type Suite struct {
	// Name identifies the family in diagnostics.
	Name string

	// New constructs the distribution under test from fixture
	// parameters. Each fixture gets its own instance whose
	// lifetime spans exactly the scenarios derived from it.
	New func(params []float64) dist.Discrete

	// Fixtures is the ordered fixture set for the family.
	Fixtures []*fixture.Fixture

	// Accessors optionally lists parameter accessors to verify
	// against the fixture parameters. Nil skips the check.
	Accessors []Accessor

	// Seed is the base sampler seed; zero selects a fixed
	// default. Each sampling invocation derives its own seed so
	// results are reproducible regardless of execution order.
	Seed uint64
}

// Run executes every check in the battery as a subtest of t.
func (s *Suite) Run(t *testing.T) {
	for _, c := range discreteChecks {
		c := c
		t.Run(c.name, func(t *testing.T) { c.fn(t, s) })
	}
}

// discreteChecks is the fixed battery for discrete distributions.
// The table binds each scenario name to its check explicitly; adding
// a check means adding a row.
var discreteChecks = []struct {
	name string
	fn   func(*testing.T, *Suite)
}{
	{"Probability", checkProbability},
	{"LogProbability", checkLogProbability},
	{"CumulativeProbability", checkCumulative},
	{"SurvivalProbability", checkSurvival},
	{"CumulativeProbabilityHighPrecision", checkCumulativeHP},
	{"SurvivalProbabilityHighPrecision", checkSurvivalHP},
	{"InverseCumulativeProbability", checkInverseCumulative},
	{"CumulativeProbabilityInverseMapping", checkInverseMapping},
	{"SurvivalAndCumulativeProbabilityComplement", checkComplement},
	{"Consistency", checkConsistency},
	{"OutsideSupport", checkOutsideSupport},
	{"InvalidProbabilities", checkInvalidProbabilities},
	{"Sampling", checkSampling},
	{"ProbabilitySums", checkProbabilitySums},
	{"Support", checkSupport},
	{"Moments", checkMoments},
	{"ParameterAccessors", checkAccessors},
}

// A scenario is one check invocation's arguments: a fresh
// distribution instance with the points, expected values and
// tolerance drawn from one fixture. Scenarios are never mutated by
// checks.
type scenario struct {
	desc   string
	d      dist.Discrete
	points []int
	values []float64
	tol    Tolerance
	fx     *fixture.Fixture
	seed   uint64
}

// scenarios projects each usable fixture into a scenario for one
// check category. A fixture is elided when disabled reports true or
// when the category's point selector yields no data. If nothing
// remains the whole category is skipped, not failed.
func (s *Suite) scenarios(t *testing.T,
	disabled func(*fixture.Fixture) bool,
	points func(*fixture.Fixture) []float64,
	values func(*fixture.Fixture) []float64,
	tol func(*fixture.Fixture) Tolerance) []scenario {
	t.Helper()
	seed := s.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	var out []scenario
	for i, fx := range s.Fixtures {
		if disabled != nil && disabled(fx) {
			continue
		}
		sc := scenario{
			desc: fmt.Sprintf("%s[%s] params=%v", s.Name, fx.Name, fx.Parameters),
			d:    s.New(fx.Parameters),
			fx:   fx,
			seed: seed + uint64(i),
		}
		if points != nil {
			p := points(fx)
			if len(p) == 0 {
				continue
			}
			sc.points = ints(p)
		}
		if values != nil {
			sc.values = values(fx)
		}
		if tol != nil {
			sc.tol = tol(fx)
		}
		out = append(out, sc)
	}
	if len(out) == 0 {
		t.Skipf("%s: no fixture data for check", s.Name)
	}
	return out
}

func fixtureTol(fx *fixture.Fixture) Tolerance   { return Combined(fx.Tol) }
func fixtureTolHP(fx *fixture.Fixture) Tolerance { return Combined(fx.TolHP) }

func ints(xs []float64) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}
	return out
}

// assertClose fails the test when got is not within tol of want,
// reporting both values and the formatted input description.
func assertClose(t *testing.T, tol Tolerance, want, got float64, format string, args ...any) {
	t.Helper()
	if !tol.Equal(want, got) {
		t.Errorf("%s: want %v, got %v", fmt.Sprintf(format, args...), want, got)
	}
}

// assertExact is assertClose with zero tolerance.
func assertExact(t *testing.T, want, got float64, format string, args ...any) {
	t.Helper()
	if want != got {
		t.Errorf("%s: want %v, got %v", fmt.Sprintf(format, args...), want, got)
	}
}
