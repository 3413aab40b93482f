// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// Exponential is the continuous distribution of waiting times
// between events occurring at constant rate Rate.
type Exponential struct {
	// Rate is the event rate. Rate > 0.
	Rate float64
}

var _ Continuous = Exponential{}

func (d Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Rate * math.Exp(-d.Rate*x)
}

func (d Exponential) LogPDF(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return math.Log(d.Rate) - d.Rate*x
}

// CDF uses expm1 so cumulative probabilities near zero keep full
// precision instead of rounding through 1-exp(-rate*x).
func (d Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-d.Rate * x)
}

// Survival is exp(-rate*x) directly, precise deep into the upper
// tail.
func (d Exponential) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(-d.Rate * x)
}

func (d Exponential) Prob(x0, x1 float64) (float64, error) {
	return rangeProbFloat(d.CDF, x0, x1)
}

func (d Exponential) InvCDF(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return -math.Log1p(-p) / d.Rate, nil
}

func (d Exponential) Bounds() (lo, hi float64) {
	return 0, math.Inf(1)
}

func (d Exponential) Connected() bool { return true }

func (d Exponential) Mean() float64 { return 1 / d.Rate }

func (d Exponential) Variance() float64 { return 1 / (d.Rate * d.Rate) }

func (d Exponential) Sampler(seed uint64) ContinuousSampler {
	return newInvContinuousSampler(seed, func(p float64) float64 {
		x, _ := d.InvCDF(p)
		return x
	})
}
