// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conform

import (
	"strconv"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/statv/go-distcheck/fixture"
)

const (
	// samplingDraws is the sample size for the chi-square
	// goodness-of-fit decision.
	samplingDraws = 1000

	// degenerateDraws is the sample size for single-point
	// distributions, where every draw must hit the point exactly.
	degenerateDraws = 20

	// samplingAlpha is the chi-square significance level. The
	// seeds are fixed, so a passing configuration stays passing.
	samplingAlpha = 0.001

	// minMassCoverage is the least total mass the fixture's test
	// points must cover for the goodness-of-fit decision to be
	// meaningful.
	minMassCoverage = 0.5
)

// checkSampling draws from the distribution's sampler and tests the
// empirical distribution over the fixture's mass points with a
// chi-square decision. Draws that hit none of the points are
// discarded, which tests the conditional distribution over the
// covered region; fixtures covering less than minMassCoverage of the
// total mass are skipped. If only one positive-mass point remains it
// carries all the tested mass, so every draw must hit it exactly.
func checkSampling(t *testing.T, s *Suite) {
	scs := s.scenarios(t,
		func(fx *fixture.Fixture) bool { return fx.DisableSample },
		func(fx *fixture.Fixture) []float64 { return fx.PMFPoints },
		func(fx *fixture.Fixture) []float64 { return fx.PMFValues },
		nil)
	for _, sc := range scs {
		sc := sc
		t.Run(sc.fx.Name, func(t *testing.T) {
			points, expected := trimZeroMass(sc.points, sc.values)
			if cover := floats.Sum(expected); cover < minMassCoverage {
				t.Skipf("%s: mass points cover %v of total mass, need %v", sc.desc, cover, minMassCoverage)
			}
			if len(points) == 1 {
				checkDegenerateSampling(t, sc, points[0])
				return
			}

			index := make(map[int]int, len(points))
			for i, x := range points {
				index[x] = i
			}
			observed := make([]int64, len(points))
			smp := sc.d.Sampler(sc.seed)
			for n := 0; n < samplingDraws; n++ {
				if i, ok := index[smp.Sample()]; ok {
					observed[i]++
				}
			}

			r := ChiSquareTest(expected, observed, samplingAlpha)
			if r.Reject {
				labels := make([]string, len(points))
				for i, x := range points {
					labels[i] = strconv.Itoa(x)
				}
				t.Errorf("%s: %s", sc.desc, r.diagnostic(labels, expected, observed, samplingAlpha))
			}
		})
	}
}

// checkDegenerateSampling verifies the sampler only ever produces
// the one point carrying the tested mass.
func checkDegenerateSampling(t *testing.T, sc scenario, want int) {
	smp := sc.d.Sampler(sc.seed)
	for n := 0; n < degenerateDraws; n++ {
		if got := smp.Sample(); got != want {
			t.Errorf("%s: draw %d: want %d, got %d", sc.desc, n, want, got)
			return
		}
	}
}

// trimZeroMass drops points whose expected mass is zero, which would
// make the chi-square statistic degenerate. The inputs are not
// modified.
func trimZeroMass(points []int, values []float64) ([]int, []float64) {
	outP := make([]int, 0, len(points))
	outV := make([]float64, 0, len(values))
	for i, v := range values {
		if v > 0 {
			outP = append(outP, points[i])
			outV = append(outV, v)
		}
	}
	return outP, outV
}
