// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Poisson is the distribution of the number of events in a fixed
// interval when events occur at a constant mean rate Lambda.
//
// The support is unbounded above; Bounds reports math.MaxInt for the
// upper bound.
type Poisson struct {
	// Lambda is the mean event rate. Lambda > 0.
	Lambda float64
}

var _ Discrete = Poisson{}

func (d Poisson) dist() distuv.Poisson {
	return distuv.Poisson{Lambda: d.Lambda}
}

func (d Poisson) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	return d.dist().Prob(float64(k))
}

func (d Poisson) LogPMF(k int) float64 {
	if k < 0 {
		return math.Inf(-1)
	}
	return d.dist().LogProb(float64(k))
}

// CDF sums the lower tail directly below the mode and switches to the
// survival complement above it, so both tails keep full precision and
// the CDF reaches exactly 1 once the upper tail underflows.
func (d Poisson) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	if k <= int(d.Lambda) {
		return massSum(d.PMF, 0, k)
	}
	return 1 - d.Survival(k)
}

// Survival sums the upper tail directly, stopping once further terms
// cannot change the result.
func (d Poisson) Survival(k int) float64 {
	if k < 0 {
		return 1
	}
	if k == math.MaxInt {
		return 0
	}
	mode := int(d.Lambda)
	var s kahanSum
	for j := k + 1; ; j++ {
		t := d.PMF(j)
		s.add(t)
		if j > mode && (t == 0 || t < s.sum*1e-18) {
			break
		}
	}
	return s.sum
}

func (d Poisson) Prob(k0, k1 int) (float64, error) {
	return rangeProb(d.CDF, k0, k1)
}

func (d Poisson) InvCDF(p float64) (int, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	if p == 1 {
		return math.MaxInt, nil
	}
	// The CDF reaches exactly 1 in finite steps, so the scan
	// terminates for any p < 1.
	return invCDFScan(d.CDF, 0, math.MaxInt, p), nil
}

func (d Poisson) Bounds() (lo, hi int) {
	return 0, math.MaxInt
}

func (d Poisson) Connected() bool { return true }

func (d Poisson) Mean() float64 { return d.dist().Mean() }

func (d Poisson) Variance() float64 { return d.dist().Variance() }

func (d Poisson) Sampler(seed uint64) Sampler {
	return newInvSampler(seed, func(p float64) int {
		k, _ := d.InvCDF(p)
		return k
	})
}
