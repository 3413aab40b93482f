// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conform

import (
	"testing"

	"github.com/statv/go-distcheck/dist"
	"github.com/statv/go-distcheck/fixture"
)

// countingDist wraps a distribution so tests can observe how many
// draws the sampling check consumed: 0 when it skipped,
// degenerateDraws on the single-point path, samplingDraws on the
// chi-square path.
type countingDist struct {
	dist.Discrete
	draws *int
}

func (d countingDist) Sampler(seed uint64) dist.Sampler {
	return countingSampler{d.Discrete.Sampler(seed), d.draws}
}

type countingSampler struct {
	s     dist.Sampler
	draws *int
}

func (s countingSampler) Sample() int {
	*s.draws++
	return s.s.Sample()
}

// wideConstant puts all mass at K like Constant but reports a wider
// support, so its single-point behavior comes from the fixture's mass
// values rather than from Bounds.
type wideConstant struct {
	dist.Constant
}

func (d wideConstant) Bounds() (lo, hi int) {
	return d.K, d.K + 10
}

func runCountingSampling(t *testing.T, d dist.Discrete, fx *fixture.Fixture) int {
	t.Helper()
	var draws int
	s := &Suite{
		Name: "counting",
		New: func([]float64) dist.Discrete {
			return countingDist{d, &draws}
		},
		Fixtures: []*fixture.Fixture{fx},
	}
	t.Run("Sampling", func(t *testing.T) {
		checkSampling(t, s)
	})
	return draws
}

func TestSamplingSinglePoint(t *testing.T) {
	// One positive-mass point carrying all the tested mass on a
	// distribution whose support is not a single point: every
	// draw must be asserted against that point, not skipped.
	fx := &fixture.Fixture{
		Name:       "single",
		Parameters: []float64{7},
		PMFPoints:  []float64{7},
		PMFValues:  []float64{1},
	}
	draws := runCountingSampling(t, wideConstant{dist.Constant{K: 7}}, fx)
	if draws != degenerateDraws {
		t.Errorf("want %d asserted draws for a single positive-mass point, got %d",
			degenerateDraws, draws)
	}
}

func TestSamplingZeroMassTrimmedToSinglePoint(t *testing.T) {
	// Zero-mass points are eliminated before the cardinality
	// decision, so this fixture is a single-point assertion too.
	fx := &fixture.Fixture{
		Name:       "trimmed",
		Parameters: []float64{7},
		PMFPoints:  []float64{7, 9, 11},
		PMFValues:  []float64{1, 0, 0},
	}
	draws := runCountingSampling(t, wideConstant{dist.Constant{K: 7}}, fx)
	if draws != degenerateDraws {
		t.Errorf("want %d asserted draws after zero-mass elimination, got %d",
			degenerateDraws, draws)
	}
}

func TestSamplingLowCoverageSkipped(t *testing.T) {
	// The tested points cover under half the mass, so the
	// chi-square decision is meaningless and the check must skip
	// without drawing.
	fx := &fixture.Fixture{
		Name:       "lowmass",
		Parameters: []float64{10, 0.5},
		PMFPoints:  []float64{4, 5},
		PMFValues:  []float64{0.205078125, 0.24609375},
	}
	draws := runCountingSampling(t, dist.Binomial{N: 10, P: 0.5}, fx)
	if draws != 0 {
		t.Errorf("want no draws below %v mass coverage, got %d", minMassCoverage, draws)
	}
}

func TestSamplingChiSquarePath(t *testing.T) {
	fx := &fixture.Fixture{
		Name:       "full",
		Parameters: []float64{1, 0.5},
		PMFPoints:  []float64{0, 1},
		PMFValues:  []float64{0.5, 0.5},
	}
	draws := runCountingSampling(t, dist.Binomial{N: 1, P: 0.5}, fx)
	if draws != samplingDraws {
		t.Errorf("want %d chi-square draws, got %d", samplingDraws, draws)
	}
}
