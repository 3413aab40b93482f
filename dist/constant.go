// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// Constant is the degenerate distribution with all mass at K.
type Constant struct {
	K int
}

var _ Discrete = Constant{}

func (d Constant) PMF(k int) float64 {
	if k == d.K {
		return 1
	}
	return 0
}

func (d Constant) LogPMF(k int) float64 {
	if k == d.K {
		return 0
	}
	return math.Inf(-1)
}

func (d Constant) CDF(k int) float64 {
	if k >= d.K {
		return 1
	}
	return 0
}

func (d Constant) Survival(k int) float64 {
	if k >= d.K {
		return 0
	}
	return 1
}

func (d Constant) Prob(k0, k1 int) (float64, error) {
	return rangeProb(d.CDF, k0, k1)
}

func (d Constant) InvCDF(p float64) (int, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return d.K, nil
}

func (d Constant) Bounds() (lo, hi int) {
	return d.K, d.K
}

func (d Constant) Connected() bool { return true }

func (d Constant) Mean() float64 { return float64(d.K) }

func (d Constant) Variance() float64 { return 0 }

func (d Constant) Sampler(seed uint64) Sampler {
	return newInvSampler(seed, func(float64) int { return d.K })
}
