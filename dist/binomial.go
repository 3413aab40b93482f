// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Binomial is the distribution of the number of successes in N
// independent Bernoulli trials with success probability P.
//
// If N=1, this is equivalent to the Bernoulli distribution.
type Binomial struct {
	// N is the number of trials. N >= 0.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

var _ Discrete = Binomial{}

func (d Binomial) dist() distuv.Binomial {
	return distuv.Binomial{N: float64(d.N), P: d.P}
}

// PMF is the probability of exactly k successes in d.N trials.
func (d Binomial) PMF(k int) float64 {
	if k < 0 || k > d.N {
		return 0
	}
	return d.dist().Prob(float64(k))
}

func (d Binomial) LogPMF(k int) float64 {
	if k < 0 || k > d.N {
		return math.Inf(-1)
	}
	return d.dist().LogProb(float64(k))
}

// CDF is the probability of k or fewer successes. The lower tail is
// summed directly so small cumulative probabilities keep full
// precision.
func (d Binomial) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	if k >= d.N {
		return 1
	}
	return massSum(d.PMF, 0, k)
}

// Survival is the probability of more than k successes, summed
// directly over the upper tail.
func (d Binomial) Survival(k int) float64 {
	if k < 0 {
		return 1
	}
	if k >= d.N {
		return 0
	}
	return massSum(d.PMF, k+1, d.N)
}

func (d Binomial) Prob(k0, k1 int) (float64, error) {
	return rangeProb(d.CDF, k0, k1)
}

func (d Binomial) InvCDF(p float64) (int, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	// cdf(k) may round to 1 before the upper bound, so p=1 maps
	// to the bound explicitly.
	if p == 1 {
		return d.N, nil
	}
	return invCDFScan(d.CDF, 0, d.N, p), nil
}

func (d Binomial) Bounds() (lo, hi int) {
	return 0, d.N
}

func (d Binomial) Connected() bool { return true }

func (d Binomial) Mean() float64 { return d.dist().Mean() }

func (d Binomial) Variance() float64 { return d.dist().Variance() }

func (d Binomial) Sampler(seed uint64) Sampler {
	return newInvSampler(seed, func(p float64) int {
		k, _ := d.InvCDF(p)
		return k
	})
}
