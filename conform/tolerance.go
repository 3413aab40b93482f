// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conform

import "math"

// A Tolerance is an equality predicate for expected-vs-actual
// floating point comparisons. Values are equal if they differ by at
// most Abs, or by at most Rel relative to the expected magnitude.
// NaN equals NaN; infinities must match in sign exactly.
type Tolerance struct {
	Abs, Rel float64
}

// Absolute returns a tolerance admitting absolute error up to eps.
func Absolute(eps float64) Tolerance {
	return Tolerance{Abs: eps}
}

// Relative returns a tolerance admitting relative error up to eps.
func Relative(eps float64) Tolerance {
	return Tolerance{Rel: eps}
}

// Combined returns a tolerance admitting either absolute or relative
// error up to eps.
func Combined(eps float64) Tolerance {
	return Tolerance{Abs: eps, Rel: eps}
}

// Equal reports whether got matches want under the tolerance.
func (tol Tolerance) Equal(want, got float64) bool {
	if math.IsNaN(want) || math.IsNaN(got) {
		return math.IsNaN(want) && math.IsNaN(got)
	}
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		return want == got
	}
	if want == got {
		return true
	}
	d := math.Abs(want - got)
	return d <= tol.Abs || d <= tol.Rel*math.Abs(want)
}
