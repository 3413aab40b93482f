// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conform

import (
	"math"
	"testing"
)

func TestTolerance(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	for _, c := range []struct {
		name      string
		tol       Tolerance
		want, got float64
		equal     bool
	}{
		{"ExactZero", Absolute(0), 1, 1, true},
		{"ExactZeroDiff", Absolute(0), 1, 1 + 1e-15, false},
		{"AbsWithin", Absolute(1e-6), 1, 1 + 1e-7, true},
		{"AbsOutside", Absolute(1e-6), 1, 1 + 1e-5, false},
		{"RelWithin", Relative(1e-6), 1e6, 1e6 + 0.5, true},
		{"RelOutside", Relative(1e-6), 1e-6, 2e-6, false},
		{"CombinedAbs", Combined(1e-6), 1e-30, 2e-30, true},
		{"CombinedRel", Combined(1e-6), 1e6, 1e6 + 0.5, true},
		{"NaNBoth", Absolute(1), nan, nan, true},
		{"NaNOne", Absolute(1), nan, 0, false},
		{"InfSame", Absolute(1), inf, inf, true},
		{"InfOpposite", Absolute(1), inf, -inf, false},
		{"InfVsFinite", Absolute(1e300), inf, 1e300, false},
		{"ZeroVsZero", Absolute(0), 0, 0, true},
		{"SignedZero", Absolute(0), 0, math.Copysign(0, -1), true},
	} {
		t.Run(c.name, func(t *testing.T) {
			if got := c.tol.Equal(c.want, c.got); got != c.equal {
				t.Errorf("Tolerance%+v.Equal(%v, %v) = %v, want %v",
					c.tol, c.want, c.got, got, c.equal)
			}
		})
	}
}
