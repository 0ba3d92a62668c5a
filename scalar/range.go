// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"slices"

	"cogentcore.org/core/math32"
)

// rangeTrimFraction is the fraction of extreme values discarded at
// each end when deriving the data range, so that a few outliers do
// not swamp the colormap window.
const rangeTrimFraction = 1e-5

// robustMinMax returns the bounds of the values after discarding the
// bottom and top trim fraction of the sorted ordering, along with any
// non-finite values. A degenerate (constant) result is widened to a
// small positive span around the value so that downstream range
// widgets never receive a zero-width range.
func robustMinMax(values []float32, trim float32) (min, max float32) {
	sorted := make([]float32, 0, len(values))
	for _, v := range values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			continue
		}
		sorted = append(sorted, v)
	}
	if len(sorted) == 0 {
		return 0, 1e-5
	}
	slices.Sort(sorted)
	n := len(sorted)
	k := int(math32.Floor(trim * float32(n)))
	if 2*k >= n {
		k = (n - 1) / 2
	}
	min, max = sorted[k], sorted[n-1-k]
	if min == max {
		pad := math32.Max(math32.Abs(min)*1e-5, 1e-5)
		min -= pad
		max += pad
	}
	return min, max
}

// defaultMapRange returns the normalization window derived purely
// from the data range under the field's data type policy.
func (f *Field) defaultMapRange() math32.Vector2 {
	switch f.DataType {
	case Symmetric:
		r := math32.Max(math32.Abs(f.dataRange.X), math32.Abs(f.dataRange.Y))
		return math32.Vec2(-r, r)
	case Magnitude:
		return math32.Vec2(0, f.dataRange.Y)
	default:
		return f.dataRange
	}
}

// DataRange returns the robust data bounds (min, max) computed from
// the raw values at construction.
func (f *Field) DataRange() math32.Vector2 {
	return f.dataRange
}

// MapRange returns the current colormap normalization window
// (low, high).
func (f *Field) MapRange() math32.Vector2 {
	return f.vizRange
}

// SetMapRange sets the colormap normalization window. The setter
// accepts any pair; UI widgets constrain edits to the policy's slider
// domain, but programmatic callers are not clamped.
func (f *Field) SetMapRange(rng math32.Vector2) {
	f.vizRange = rng
	f.owner.RequestRedraw()
}

// ResetMapRange recomputes the normalization window from the data
// range under the field's policy, independent of the current window.
func (f *Field) ResetMapRange() {
	f.vizRange = f.defaultMapRange()
	f.owner.RequestRedraw()
}

// sliderDomain returns the bounds the UI range slider is constrained
// to under the field's policy, and the display format for its values.
func (f *Field) sliderDomain() (min, max float32, format string) {
	format = "%.5g"
	switch f.DataType {
	case Symmetric:
		r := math32.Max(math32.Abs(f.dataRange.X), math32.Abs(f.dataRange.Y))
		return -r, r, format
	case Magnitude:
		return 0, f.dataRange.Y, format
	default:
		return f.dataRange.X, f.dataRange.Y, format
	}
}
