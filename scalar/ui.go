// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"cogentcore.org/core/math32"

	"github.com/PierceLBrooks/polyscope/colormap"
)

// Toolkit is the immediate-mode widget surface the UI layer provides.
// Each call draws one widget and synchronously reports whether the
// user edited it, with edited values written back through the
// pointers.
type Toolkit interface {

	// Checkbox draws a labeled checkbox.
	Checkbox(label string, value *bool) bool

	// DragFloat draws a labeled draggable number, constrained
	// to [min, max] and displayed with the given format.
	DragFloat(label string, value *float32, speed, min, max float32, format string) bool

	// RangeSlider draws a two-handled slider over [min, max],
	// displayed with the given format.
	RangeSlider(label string, low, high *float32, min, max float32, format string) bool

	// Selector draws a drop-down over the options, returning the
	// chosen option when edited.
	Selector(label string, options []string, current string) (string, bool)

	// Button draws a button, reporting whether it was pressed.
	Button(label string) bool

	// HistogramPanel draws the histogram, highlighting the part of
	// its range inside the given window.
	HistogramPanel(h *Histogram, window math32.Vector2)
}

// BuildUI draws the field's display controls with the given toolkit
// and applies any edits through the field's setters. The range slider
// is bounded to the policy's domain; programmatic callers remain
// unclamped.
func (f *Field) BuildUI(tk Toolkit) {
	if nm, edited := tk.Selector("Color map", colormap.AvailableMapsList(), f.ColorMap()); edited {
		f.SetColorMap(nm)
	}

	tk.HistogramPanel(f.Hist, f.vizRange)

	lo, hi := f.vizRange.X, f.vizRange.Y
	min, max, format := f.sliderDomain()
	if tk.RangeSlider("Range", &lo, &hi, min, max, format) {
		f.SetMapRange(math32.Vec2(lo, hi))
	}
	if tk.Button("Reset range") {
		f.ResetMapRange()
	}

	f.buildIsolineUI(tk)
}

func (f *Field) buildIsolineUI(tk Toolkit) {
	on := f.isolinesEnabled.Get()
	if tk.Checkbox("Isolines", &on) {
		f.SetIsolinesEnabled(on)
	}
	if !f.isolinesEnabled.Get() {
		return
	}

	w := f.isolineWidth.Get()
	if w.Relative {
		if tk.DragFloat("Width", &w.Value, 0.001, 0, 1, "%.4f") {
			f.SetIsolineWidth(w.Value, true)
		}
	} else {
		span := f.dataRange.Y - f.dataRange.X
		if tk.DragFloat("Width", &w.Value, span/100, 0, span, "%.4g") {
			f.SetIsolineWidth(w.Value, false)
		}
	}

	d := f.isolineDarkness.Get()
	if tk.DragFloat("Darkness", &d, 0.01, 0, 1, "%.2f") {
		f.SetIsolineDarkness(d)
	}
}
