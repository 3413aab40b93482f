// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conform

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/statv/go-distcheck/dist"
	"github.com/statv/go-distcheck/fixture"
)

// A ContinuousAccessor pairs a parameter name with the function that
// reads the parameter back from a constructed continuous
// distribution.
type ContinuousAccessor struct {
	Name string
	Get  func(d dist.Continuous) float64
}

// A ContinuousSuite runs the conformance battery for one family of
// continuous distributions. The battery mirrors the discrete one with
// a real-valued domain: the inverse checks compare within the fixture
// tolerance rather than exactly, and sampling buckets draws by
// quartile instead of by point mass.
type ContinuousSuite struct {
	// Name identifies the family in diagnostics.
	Name string

	// New constructs the distribution under test from fixture
	// parameters.
	New func(params []float64) dist.Continuous

	// Fixtures is the ordered fixture set for the family.
	Fixtures []*fixture.Fixture

	// Accessors optionally lists parameter accessors to verify
	// against the fixture parameters. Nil skips the check.
	Accessors []ContinuousAccessor

	// Seed is the base sampler seed; zero selects a fixed
	// default.
	Seed uint64
}

// Run executes every check in the battery as a subtest of t.
func (s *ContinuousSuite) Run(t *testing.T) {
	for _, c := range continuousChecks {
		c := c
		t.Run(c.name, func(t *testing.T) { c.fn(t, s) })
	}
}

var continuousChecks = []struct {
	name string
	fn   func(*testing.T, *ContinuousSuite)
}{
	{"Density", checkDensity},
	{"LogDensity", checkLogDensity},
	{"CumulativeProbability", checkCCumulative},
	{"SurvivalProbability", checkCSurvival},
	{"CumulativeProbabilityHighPrecision", checkCCumulativeHP},
	{"SurvivalProbabilityHighPrecision", checkCSurvivalHP},
	{"InverseCumulativeProbability", checkCInverseCumulative},
	{"CumulativeProbabilityInverseMapping", checkCInverseMapping},
	{"SurvivalAndCumulativeProbabilityComplement", checkCComplement},
	{"Consistency", checkCConsistency},
	{"OutsideSupport", checkCOutsideSupport},
	{"InvalidProbabilities", checkCInvalidProbabilities},
	{"Sampling", checkCSampling},
	{"Support", checkCSupport},
	{"Moments", checkCMoments},
	{"ParameterAccessors", checkCAccessors},
}

type cscenario struct {
	desc   string
	d      dist.Continuous
	points []float64
	values []float64
	tol    Tolerance
	fx     *fixture.Fixture
	seed   uint64
}

func (s *ContinuousSuite) scenarios(t *testing.T,
	disabled func(*fixture.Fixture) bool,
	points func(*fixture.Fixture) []float64,
	values func(*fixture.Fixture) []float64,
	tol func(*fixture.Fixture) Tolerance) []cscenario {
	t.Helper()
	seed := s.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	var out []cscenario
	for i, fx := range s.Fixtures {
		if disabled != nil && disabled(fx) {
			continue
		}
		sc := cscenario{
			desc: fmt.Sprintf("%s[%s] params=%v", s.Name, fx.Name, fx.Parameters),
			d:    s.New(fx.Parameters),
			fx:   fx,
			seed: seed + uint64(i),
		}
		if points != nil {
			sc.points = points(fx)
			if len(sc.points) == 0 {
				continue
			}
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

func checkDensity(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisablePMF },
		func(fx *fixture.Fixture) []float64 { return fx.PMFPoints },
		func(fx *fixture.Fixture) []float64 { return fx.PMFValues },
		fixtureTol)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.PDF(x), "%s: pdf(%v)", sc.desc, x)
		}
	}
}

func checkLogDensity(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisablePMF },
		func(fx *fixture.Fixture) []float64 { return fx.PMFPoints },
		func(fx *fixture.Fixture) []float64 { return fx.LogPMFValues },
		fixtureTol)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.LogPDF(x), "%s: logpdf(%v)", sc.desc, x)
		}
	}
}

func checkCCumulative(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisableCDF },
		func(fx *fixture.Fixture) []float64 { return fx.CDFPoints },
		func(fx *fixture.Fixture) []float64 { return fx.CDFValues },
		fixtureTol)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.CDF(x), "%s: cdf(%v)", sc.desc, x)
		}
		for i, x0 := range sc.points {
			for j, x1 := range sc.points {
				if x0 <= x1 {
					got, err := sc.d.Prob(x0, x1)
					if err != nil {
						t.Errorf("%s: prob(%v, %v): unexpected error %v", sc.desc, x0, x1, err)
						continue
					}
					assertClose(t, sc.tol, sc.values[j]-sc.values[i], got,
						"%s: prob(%v, %v)", sc.desc, x0, x1)
				} else if _, err := sc.d.Prob(x0, x1); !errors.Is(err, dist.ErrRange) {
					t.Errorf("%s: prob(%v, %v): want %v, got %v", sc.desc, x0, x1, dist.ErrRange, err)
				}
			}
		}
	}
}

func checkCSurvival(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.SFPoints },
		func(fx *fixture.Fixture) []float64 { return fx.SFValues },
		fixtureTol)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.Survival(x), "%s: sf(%v)", sc.desc, x)
		}
	}
}

func checkCCumulativeHP(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.CDFHPPoints },
		func(fx *fixture.Fixture) []float64 { return fx.CDFHPValues },
		fixtureTolHP)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.CDF(x),
				"%s: cdf(%v) not precise", sc.desc, x)
		}
	}
}

func checkCSurvivalHP(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.SFHPPoints },
		func(fx *fixture.Fixture) []float64 { return fx.SFHPValues },
		fixtureTolHP)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.Survival(x),
				"%s: sf(%v) not precise", sc.desc, x)
		}
	}
}

// checkCInverseCumulative verifies explicit inverse-CDF reference
// values. Unlike the discrete battery the comparison uses the fixture
// tolerance, since a real-valued inverse rarely reproduces its input
// to the last bit.
func checkCInverseCumulative(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.InvX },
		func(fx *fixture.Fixture) []float64 { return fx.InvP },
		fixtureTol)
	for _, sc := range scs {
		lo, hi := sc.d.Bounds()
		for i, x := range sc.points {
			if x < lo || x > hi {
				continue
			}
			p := sc.values[i]
			got, err := sc.d.InvCDF(p)
			if err != nil {
				t.Errorf("%s: icdf(%v): unexpected error %v", sc.desc, p, err)
				continue
			}
			assertClose(t, sc.tol, x, got, "%s: icdf(%v)", sc.desc, p)
		}
	}
}

// checkCInverseMapping verifies x ~= icdf(cdf(x)) within the fixture
// tolerance over the in-support CDF points. Points whose CDF
// saturates at 0 or 1 are skipped since the inverse collapses to the
// support bound there.
func checkCInverseMapping(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisableCDFInverse },
		func(fx *fixture.Fixture) []float64 { return fx.CDFPoints },
		nil, fixtureTol)
	for _, sc := range scs {
		lo, hi := sc.d.Bounds()
		for _, x := range sc.points {
			if x < lo || x > hi {
				continue
			}
			p := sc.d.CDF(x)
			if p == 0 || p == 1 {
				continue
			}
			got, err := sc.d.InvCDF(p)
			if err != nil {
				t.Errorf("%s: icdf(cdf(%v)): unexpected error %v", sc.desc, x, err)
				continue
			}
			assertClose(t, sc.tol, x, got, "%s: icdf(cdf(%v)=%v)", sc.desc, x, p)
		}
	}
}

func checkCComplement(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.CDFPoints },
		nil, fixtureTol)
	for _, sc := range scs {
		for _, x := range sc.points {
			assertClose(t, sc.tol, 1.0, sc.d.Survival(x)+sc.d.CDF(x),
				"%s: sf(%v)+cdf(%v)", sc.desc, x, x)
		}
	}
}

func checkCConsistency(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.CDFPoints },
		nil, fixtureTol)
	for _, sc := range scs {
		for i := 1; i < len(sc.points); i++ {
			x := sc.points[i]
			got, err := sc.d.Prob(x, x)
			if err != nil {
				t.Errorf("%s: prob(%v, %v): unexpected error %v", sc.desc, x, x, err)
			} else {
				assertExact(t, 0, got, "%s: prob(%v, %v)", sc.desc, x, x)
			}

			lower, upper := sc.points[i-1], x
			if lower > upper {
				lower, upper = upper, lower
			}
			diff := sc.d.CDF(upper) - sc.d.CDF(lower)
			direct, err := sc.d.Prob(lower, upper)
			if err != nil {
				t.Errorf("%s: prob(%v, %v): unexpected error %v", sc.desc, lower, upper, err)
				continue
			}
			assertClose(t, sc.tol, diff, direct, "%s: prob(%v, %v)", sc.desc, lower, upper)
		}
	}
}

// checkCOutsideSupport exercises the boundary quantities. Finite
// bounds are probed one unit outside; infinite bounds are probed at
// the infinities themselves.
func checkCOutsideSupport(t *testing.T, s *ContinuousSuite) {
	for _, sc := range s.scenarios(t, nil, nil, nil, fixtureTol) {
		d := sc.d
		lo, hi := d.Bounds()
		if lo > hi {
			t.Errorf("%s: bounds out of order: %v > %v", sc.desc, lo, hi)
			continue
		}

		if x, err := d.InvCDF(0); err != nil || x != lo {
			t.Errorf("%s: icdf(0): want %v, got %v, %v", sc.desc, lo, x, err)
		}
		if x, err := d.InvCDF(1); err != nil || x != hi {
			t.Errorf("%s: icdf(1): want %v, got %v, %v", sc.desc, hi, x, err)
		}

		below, above := lo, hi
		if !math.IsInf(lo, -1) {
			below = lo - 1
			assertExact(t, 0, d.PDF(below), "%s: pdf(%v) below support", sc.desc, below)
			assertExact(t, math.Inf(-1), d.LogPDF(below), "%s: logpdf(%v) below support", sc.desc, below)
		} else {
			below = math.Inf(-1)
		}
		assertExact(t, 0, d.CDF(below), "%s: cdf(%v) below support", sc.desc, below)
		assertExact(t, 1, d.Survival(below), "%s: sf(%v) below support", sc.desc, below)

		if !math.IsInf(hi, 1) {
			above = hi + 1
			assertExact(t, 0, d.PDF(above), "%s: pdf(%v) above support", sc.desc, above)
			assertExact(t, math.Inf(-1), d.LogPDF(above), "%s: logpdf(%v) above support", sc.desc, above)
		} else {
			above = math.Inf(1)
		}
		assertExact(t, 1, d.CDF(above), "%s: cdf(%v) above support", sc.desc, above)
		assertExact(t, 0, d.Survival(above), "%s: sf(%v) above support", sc.desc, above)
	}
}

func checkCInvalidProbabilities(t *testing.T, s *ContinuousSuite) {
	for _, sc := range s.scenarios(t, nil, nil, nil, nil) {
		lo, hi := sc.d.Bounds()
		if lo < hi {
			if _, err := sc.d.Prob(hi, lo); !errors.Is(err, dist.ErrRange) {
				t.Errorf("%s: prob(%v, %v): want %v, got %v", sc.desc, hi, lo, dist.ErrRange, err)
			}
		}
		for _, p := range []float64{-1, 2} {
			if _, err := sc.d.InvCDF(p); !errors.Is(err, dist.ErrProbability) {
				t.Errorf("%s: icdf(%v): want %v, got %v", sc.desc, p, dist.ErrProbability, err)
			}
		}
	}
}

// checkCSampling buckets draws by the distribution's own quartiles
// and tests the four bucket counts against a uniform expectation with
// a chi-square decision.
func checkCSampling(t *testing.T, s *ContinuousSuite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisableSample },
		nil, nil, nil)
	for _, sc := range scs {
		sc := sc
		t.Run(sc.fx.Name, func(t *testing.T) {
			quartiles := make([]float64, 3)
			for i, p := range []float64{0.25, 0.5, 0.75} {
				q, err := sc.d.InvCDF(p)
				if err != nil {
					t.Fatalf("%s: icdf(%v): unexpected error %v", sc.desc, p, err)
				}
				quartiles[i] = q
			}
			if !(quartiles[0] < quartiles[1] && quartiles[1] < quartiles[2]) {
				t.Skipf("%s: quartiles %v not distinct", sc.desc, quartiles)
			}

			observed := make([]int64, 4)
			smp := sc.d.Sampler(sc.seed)
			for n := 0; n < samplingDraws; n++ {
				x := smp.Sample()
				b := 0
				for b < 3 && x >= quartiles[b] {
					b++
				}
				observed[b]++
			}

			expected := []float64{0.25, 0.25, 0.25, 0.25}
			r := ChiSquareTest(expected, observed, samplingAlpha)
			if r.Reject {
				labels := []string{"q1", "q2", "q3", "q4"}
				t.Errorf("%s: %s", sc.desc, r.diagnostic(labels, expected, observed, samplingAlpha))
			}
		})
	}
}

func checkCSupport(t *testing.T, s *ContinuousSuite) {
	for _, sc := range s.scenarios(t, nil, nil, nil, nil) {
		lo, hi := sc.d.Bounds()
		assertExact(t, sc.fx.Lower, lo, "%s: support lower bound", sc.desc)
		assertExact(t, sc.fx.Upper, hi, "%s: support upper bound", sc.desc)
		if got := sc.d.Connected(); got != sc.fx.Connected {
			t.Errorf("%s: connected: want %v, got %v", sc.desc, sc.fx.Connected, got)
		}
	}
}

func checkCMoments(t *testing.T, s *ContinuousSuite) {
	for _, sc := range s.scenarios(t, nil, nil, nil, fixtureTol) {
		assertClose(t, sc.tol, sc.fx.Mean, sc.d.Mean(), "%s: mean", sc.desc)
		assertClose(t, sc.tol, sc.fx.Variance, sc.d.Variance(), "%s: variance", sc.desc)
	}
}

func checkCAccessors(t *testing.T, s *ContinuousSuite) {
	if s.Accessors == nil {
		t.Skipf("%s: no parameter accessors", s.Name)
	}
	for _, sc := range s.scenarios(t, nil, nil, nil, nil) {
		if len(s.Accessors) != len(sc.fx.Parameters) {
			t.Errorf("%s: %d accessors for %d parameters", sc.desc, len(s.Accessors), len(sc.fx.Parameters))
			continue
		}
		for i, a := range s.Accessors {
			assertExact(t, sc.fx.Parameters[i], a.Get(sc.d), "%s: parameter %s", sc.desc, a.Name)
		}
	}
}
