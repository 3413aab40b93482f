// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// kahanSum accumulates a running compensated sum. The zero value is
// an empty sum.
type kahanSum struct {
	sum, c float64
}

func (s *kahanSum) add(x float64) {
	y := x - s.c
	t := s.sum + y
	s.c = (t - s.sum) - y
	s.sum = t
}

// massSum returns the compensated sum of pmf over [k0, k1].
func massSum(pmf func(int) float64, k0, k1 int) float64 {
	var s kahanSum
	for k := k0; k <= k1; k++ {
		s.add(pmf(k))
	}
	return s.sum
}

// invCDFScan returns the smallest k in [lo, hi] with cdf(k) >= p.
// Defining the inverse in terms of the CDF itself keeps
// InvCDF(CDF(k)) == k exact wherever the CDF is strictly increasing.
func invCDFScan(cdf func(int) float64, lo, hi int, p float64) int {
	for k := lo; ; k++ {
		if cdf(k) >= p || k == hi {
			return k
		}
	}
}

// rangeProb returns P(k0 < X <= k1) as a CDF difference, or ErrRange
// if the bounds are out of order.
func rangeProb(cdf func(int) float64, k0, k1 int) (float64, error) {
	if k0 > k1 {
		return 0, fmt.Errorf("range (%d, %d]: %w", k0, k1, ErrRange)
	}
	if k0 == k1 {
		return 0, nil
	}
	return cdf(k1) - cdf(k0), nil
}

// rangeProbFloat is rangeProb over a real-valued CDF.
func rangeProbFloat(cdf func(float64) float64, x0, x1 float64) (float64, error) {
	if x0 > x1 {
		return 0, fmt.Errorf("range (%v, %v]: %w", x0, x1, ErrRange)
	}
	if x0 == x1 {
		return 0, nil
	}
	return cdf(x1) - cdf(x0), nil
}

// checkProbability validates an inverse CDF argument.
func checkProbability(p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("p=%v: %w", p, ErrProbability)
	}
	return nil
}

// invSampler samples by inverse transform of uniform variates.
type invSampler struct {
	rnd *rand.Rand
	inv func(p float64) int
}

func (s *invSampler) Sample() int {
	return s.inv(s.rnd.Float64())
}

func newInvSampler(seed uint64, inv func(p float64) int) Sampler {
	return &invSampler{rand.New(rand.NewSource(seed)), inv}
}

// invContinuousSampler is the continuous analog of invSampler.
type invContinuousSampler struct {
	rnd *rand.Rand
	inv func(p float64) float64
}

func (s *invContinuousSampler) Sample() float64 {
	return s.inv(s.rnd.Float64())
}

func newInvContinuousSampler(seed uint64, inv func(p float64) float64) ContinuousSampler {
	return &invContinuousSampler{rand.New(rand.NewSource(seed)), inv}
}
