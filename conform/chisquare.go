// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conform

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A ChiSquareResult is the outcome of a chi-square goodness-of-fit
// decision.
type ChiSquareResult struct {
	// Statistic is Pearson's chi-square statistic.
	Statistic float64

	// P is the probability of a statistic at least this large
	// under the null hypothesis.
	P float64

	// DF is the degrees of freedom, len(expected)-1.
	DF int

	// Reject reports whether the null hypothesis is rejected at
	// the significance level passed to ChiSquareTest.
	Reject bool
}

// ChiSquareTest decides whether observed counts are consistent with
// expected frequencies at significance level alpha. The expected
// frequencies are rescaled so their total matches the observed total,
// so callers may pass unnormalized weights.
func ChiSquareTest(expected []float64, observed []int64, alpha float64) ChiSquareResult {
	obs := make([]float64, len(observed))
	for i, c := range observed {
		obs[i] = float64(c)
	}
	exp := make([]float64, len(expected))
	scale := floats.Sum(obs) / floats.Sum(expected)
	for i, e := range expected {
		exp[i] = e * scale
	}

	x2 := stat.ChiSquare(obs, exp)
	df := len(expected) - 1
	p := distuv.ChiSquared{K: float64(df)}.Survival(x2)
	return ChiSquareResult{Statistic: x2, P: p, DF: df, Reject: p < alpha}
}

// diagnostic renders the per-bucket comparison for a failed decision.
// The labels identify each bucket, typically the sample values. The
// expected weights are rescaled to counts the same way ChiSquareTest
// rescales them, so the two columns compare like for like.
func (r ChiSquareResult) diagnostic(labels []string, expected []float64, observed []int64, alpha float64) string {
	var total int64
	for _, c := range observed {
		total += c
	}
	scale := float64(total) / floats.Sum(expected)

	var b strings.Builder
	fmt.Fprintf(&b, "chi-square test failed: p-value=%v statistic=%v df=%d\n", r.P, r.Statistic, r.DF)
	fmt.Fprintf(&b, "value\texpected\tobserved\n")
	for i := range expected {
		fmt.Fprintf(&b, "%s\t%.2f\t%d\n", labels[i], expected[i]*scale, observed[i])
	}
	fmt.Fprintf(&b, "this test can fail randomly due to sampling error with probability %v", alpha)
	return b.String()
}
