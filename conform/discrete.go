// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conform

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/statv/go-distcheck/dist"
	"github.com/statv/go-distcheck/fixture"
)

// Fixed tolerance for the mass-sum reconstruction check, independent
// of the fixture tolerance.
var sumTol = Absolute(1e-9)

// maxSumGap bounds the integer range reconstructed by the mass-sum
// check; larger gaps between test points are ignored.
const maxSumGap = 50

func checkProbability(t *testing.T, s *Suite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisablePMF },
		func(fx *fixture.Fixture) []float64 { return fx.PMFPoints },
		func(fx *fixture.Fixture) []float64 { return fx.PMFValues },
		fixtureTol)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.PMF(x), "%s: pmf(%d)", sc.desc, x)
		}
	}
}

func checkLogProbability(t *testing.T, s *Suite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisablePMF },
		func(fx *fixture.Fixture) []float64 { return fx.PMFPoints },
		func(fx *fixture.Fixture) []float64 { return fx.LogPMFValues },
		fixtureTol)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.LogPMF(x), "%s: logpmf(%d)", sc.desc, x)
		}
	}
}

func checkCumulative(t *testing.T, s *Suite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisableCDF },
		func(fx *fixture.Fixture) []float64 { return fx.CDFPoints },
		func(fx *fixture.Fixture) []float64 { return fx.CDFValues },
		fixtureTol)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.CDF(x), "%s: cdf(%d)", sc.desc, x)
		}
		// Every ordered pair must agree with the CDF difference;
		// reversed pairs must fail.
		for i, x0 := range sc.points {
			for j, x1 := range sc.points {
				if x0 <= x1 {
					got, err := sc.d.Prob(x0, x1)
					if err != nil {
						t.Errorf("%s: prob(%d, %d): unexpected error %v", sc.desc, x0, x1, err)
						continue
					}
					assertClose(t, sc.tol, sc.values[j]-sc.values[i], got,
						"%s: prob(%d, %d)", sc.desc, x0, x1)
				} else if _, err := sc.d.Prob(x0, x1); !errors.Is(err, dist.ErrRange) {
					t.Errorf("%s: prob(%d, %d): want %v, got %v", sc.desc, x0, x1, dist.ErrRange, err)
				}
			}
		}
	}
}

func checkSurvival(t *testing.T, s *Suite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.SFPoints },
		func(fx *fixture.Fixture) []float64 { return fx.SFValues },
		fixtureTol)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.Survival(x), "%s: sf(%d)", sc.desc, x)
		}
	}
}

func checkCumulativeHP(t *testing.T, s *Suite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.CDFHPPoints },
		func(fx *fixture.Fixture) []float64 { return fx.CDFHPValues },
		fixtureTolHP)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.CDF(x),
				"%s: cdf(%d) not precise", sc.desc, x)
		}
	}
}

func checkSurvivalHP(t *testing.T, s *Suite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.SFHPPoints },
		func(fx *fixture.Fixture) []float64 { return fx.SFHPValues },
		fixtureTolHP)
	for _, sc := range scs {
		for i, x := range sc.points {
			assertClose(t, sc.tol, sc.values[i], sc.d.Survival(x),
				"%s: sf(%d) not precise", sc.desc, x)
		}
	}
}

// checkInverseCumulative verifies explicit inverse-CDF reference
// values exactly. Expected points outside the support are ignored.
func checkInverseCumulative(t *testing.T, s *Suite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.InvX },
		func(fx *fixture.Fixture) []float64 { return fx.InvP },
		nil)
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
			if got != x {
				t.Errorf("%s: icdf(%v): want %d, got %d", sc.desc, p, x, got)
			}
		}
	}
}

// checkInverseMapping verifies x == icdf(cdf(x)) for every in-support
// CDF point. Points mapping to CDF 1 are skipped: several points can
// saturate to 1, so the mapping is not a bijection there.
func checkInverseMapping(t *testing.T, s *Suite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisableCDFInverse },
		func(fx *fixture.Fixture) []float64 { return fx.CDFPoints },
		nil, nil)
	for _, sc := range scs {
		lo, hi := sc.d.Bounds()
		for _, x := range sc.points {
			if x < lo || x > hi {
				continue
			}
			p := sc.d.CDF(x)
			if p == 1.0 {
				continue
			}
			got, err := sc.d.InvCDF(p)
			if err != nil {
				t.Errorf("%s: icdf(cdf(%d)): unexpected error %v", sc.desc, x, err)
				continue
			}
			if got != x {
				t.Errorf("%s: icdf(cdf(%d)=%v): want %d, got %d", sc.desc, x, p, x, got)
			}
		}
	}
}

// checkComplement verifies sf(x)+cdf(x) == 1 over the CDF points.
// This deliberately ignores the CDF disable flag: that flag suppresses
// comparisons against reference values, while this checks internal
// self-consistency only.
func checkComplement(t *testing.T, s *Suite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.CDFPoints },
		nil, fixtureTol)
	for _, sc := range scs {
		for _, x := range sc.points {
			assertClose(t, sc.tol, 1.0, sc.d.Survival(x)+sc.d.CDF(x),
				"%s: sf(%d)+cdf(%d)", sc.desc, x, x)
		}
	}
}

// checkConsistency verifies prob(x, x) == 0 and the difference
// identity prob(a, b) == cdf(b)-cdf(a) over adjacent CDF points. Like
// checkComplement it runs regardless of the CDF disable flag.
func checkConsistency(t *testing.T, s *Suite) {
	scs := s.scenarios(t, nil,
		func(fx *fixture.Fixture) []float64 { return fx.CDFPoints },
		nil, fixtureTol)
	for _, sc := range scs {
		for i := 1; i < len(sc.points); i++ {
			x := sc.points[i]
			got, err := sc.d.Prob(x, x)
			if err != nil {
				t.Errorf("%s: prob(%d, %d): unexpected error %v", sc.desc, x, x, err)
			} else {
				assertExact(t, 0, got, "%s: prob(%d, %d)", sc.desc, x, x)
			}

			lower, upper := sc.points[i-1], x
			if lower > upper {
				lower, upper = upper, lower
			}
			diff := sc.d.CDF(upper) - sc.d.CDF(lower)
			direct, err := sc.d.Prob(lower, upper)
			if err != nil {
				t.Errorf("%s: prob(%d, %d): unexpected error %v", sc.desc, lower, upper, err)
				continue
			}
			assertClose(t, sc.tol, diff, direct, "%s: prob(%d, %d)", sc.desc, lower, upper)
		}
	}
}

// checkOutsideSupport exercises every boundary quantity: the CDF and
// inverse CDF at the support bounds, and the mass, log-mass,
// cumulative and survival values one step outside a finite bound.
func checkOutsideSupport(t *testing.T, s *Suite) {
	for _, sc := range s.scenarios(t, nil, nil, nil, fixtureTol) {
		d := sc.d
		lo, hi := d.Bounds()
		if lo > hi {
			t.Errorf("%s: bounds out of order: %d > %d", sc.desc, lo, hi)
			continue
		}

		assertClose(t, sc.tol, d.CDF(lo), d.PMF(lo), "%s: pmf(lower) vs cdf(lower)", sc.desc)
		if x, err := d.InvCDF(0); err != nil || x != lo {
			t.Errorf("%s: icdf(0): want %d, got %d, %v", sc.desc, lo, x, err)
		}
		if lo != math.MinInt {
			below := lo - 1
			assertExact(t, 0, d.PMF(below), "%s: pmf(%d) below support", sc.desc, below)
			assertExact(t, math.Inf(-1), d.LogPMF(below), "%s: logpmf(%d) below support", sc.desc, below)
			assertExact(t, 0, d.CDF(below), "%s: cdf(%d) below support", sc.desc, below)
			assertExact(t, 1, d.Survival(below), "%s: sf(%d) below support", sc.desc, below)
		}

		assertExact(t, 1, d.CDF(hi), "%s: cdf(upper)", sc.desc)
		assertExact(t, 0, d.Survival(hi), "%s: sf(upper)", sc.desc)
		assertClose(t, sc.tol, d.PMF(hi), d.Survival(hi-1), "%s: pmf(upper) vs sf(upper-1)", sc.desc)
		if x, err := d.InvCDF(1); err != nil || x != hi {
			t.Errorf("%s: icdf(1): want %d, got %d, %v", sc.desc, hi, x, err)
		}
		if hi != math.MaxInt {
			above := hi + 1
			assertExact(t, 0, d.PMF(above), "%s: pmf(%d) above support", sc.desc, above)
			assertExact(t, math.Inf(-1), d.LogPMF(above), "%s: logpmf(%d) above support", sc.desc, above)
			assertExact(t, 1, d.CDF(above), "%s: cdf(%d) above support", sc.desc, above)
			assertExact(t, 0, d.Survival(above), "%s: sf(%d) above support", sc.desc, above)
		}

		// The log mass may stay finite and meaningful where the
		// plain mass underflows to zero, so only the exp of the
		// log is compared, never log(pmf) against logpmf.
		assertClose(t, sc.tol, d.PMF(lo), math.Exp(d.LogPMF(lo)), "%s: pmf(lower) vs exp(logpmf(lower))", sc.desc)
		assertClose(t, sc.tol, d.PMF(hi), math.Exp(d.LogPMF(hi)), "%s: pmf(upper) vs exp(logpmf(upper))", sc.desc)
	}
}

// checkInvalidProbabilities verifies that the expected
// invalid-argument failures actually occur.
func checkInvalidProbabilities(t *testing.T, s *Suite) {
	for _, sc := range s.scenarios(t, nil, nil, nil, nil) {
		lo, hi := sc.d.Bounds()
		if lo < hi {
			if _, err := sc.d.Prob(hi, lo); !errors.Is(err, dist.ErrRange) {
				t.Errorf("%s: prob(%d, %d): want %v, got %v", sc.desc, hi, lo, dist.ErrRange, err)
			}
		}
		for _, p := range []float64{-1, 2} {
			if _, err := sc.d.InvCDF(p); !errors.Is(err, dist.ErrProbability) {
				t.Errorf("%s: icdf(%v): want %v, got %v", sc.desc, p, dist.ErrProbability, err)
			}
		}
	}
}

// checkProbabilitySums reconstructs range probabilities by summing
// the mass function between consecutive CDF test points. Points whose
// expected CDF is outside (1e-5, 1-1e-5), and gaps wider than
// maxSumGap, are ignored.
func checkProbabilitySums(t *testing.T, s *Suite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisablePMF },
		func(fx *fixture.Fixture) []float64 { return fx.CDFPoints },
		func(fx *fixture.Fixture) []float64 { return fx.CDFValues },
		nil)
	for _, sc := range scs {
		var pts []int
		for i, x := range sc.points {
			v := sc.values[i]
			if math.IsNaN(v) || v < 1e-5 || v > 1-1e-5 {
				continue
			}
			pts = append(pts, x)
		}
		sort.Ints(pts)
		for i := 1; i < len(pts); i++ {
			x0, x1 := pts[i-1], pts[i]
			if x1-x0 > maxSumGap {
				continue
			}
			sum := 0.0
			for x := x0 + 1; x <= x1; x++ {
				sum += sc.d.PMF(x)
			}
			direct, err := sc.d.Prob(x0, x1)
			if err != nil {
				t.Errorf("%s: prob(%d, %d): unexpected error %v", sc.desc, x0, x1, err)
				continue
			}
			assertClose(t, sumTol, direct, sum, "%s: sum of pmf over (%d, %d]", sc.desc, x0, x1)
		}
	}
}

func checkSupport(t *testing.T, s *Suite) {
	for _, sc := range s.scenarios(t, nil, nil, nil, nil) {
		lo, hi := sc.d.Bounds()
		assertExact(t, sc.fx.Lower, boundFloat(lo), "%s: support lower bound", sc.desc)
		assertExact(t, sc.fx.Upper, boundFloat(hi), "%s: support upper bound", sc.desc)
		if got := sc.d.Connected(); got != sc.fx.Connected {
			t.Errorf("%s: connected: want %v, got %v", sc.desc, sc.fx.Connected, got)
		}
	}
}

// boundFloat maps the integer domain sentinels onto the infinities
// the fixture format uses for unbounded support.
func boundFloat(k int) float64 {
	switch k {
	case math.MinInt:
		return math.Inf(-1)
	case math.MaxInt:
		return math.Inf(1)
	}
	return float64(k)
}

func checkMoments(t *testing.T, s *Suite) {
	for _, sc := range s.scenarios(t, nil, nil, nil, fixtureTol) {
		assertClose(t, sc.tol, sc.fx.Mean, sc.d.Mean(), "%s: mean", sc.desc)
		assertClose(t, sc.tol, sc.fx.Variance, sc.d.Variance(), "%s: variance", sc.desc)
	}
}

// checkAccessors verifies the construction parameters round-trip
// through the family's parameter accessors.
func checkAccessors(t *testing.T, s *Suite) {
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
