// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/PierceLBrooks/polyscope/colormap"
)

// histogramBins is the number of bins in a field's histogram.
const histogramBins = 51

// Histogram is the binned distribution of a field's values, shaded by
// the field's colormap for display in the UI panel. It is rebuilt
// from scratch whenever the values change and holds no persisted
// state.
type Histogram struct {

	// Heights are the per-bin heights, normalized so the tallest
	// bin is 1. Empty until Build is called with data.
	Heights []float32

	// Colors are the per-bin fill colors, sampled from the colormap
	// at each bin center.
	Colors []color.RGBA

	// Range is the value range spanned by the bins.
	Range math32.Vector2

	cmap *colormap.Map
}

func newHistogram(cm *colormap.Map) *Histogram {
	return &Histogram{cmap: cm}
}

// Build rebins the given values over the given range. Values outside
// the range are clamped into the end bins, matching how the colormap
// clamps out-of-window values.
func (h *Histogram) Build(values []float32, rng math32.Vector2) {
	h.Range = rng
	h.Heights = make([]float32, histogramBins)
	span := rng.Y - rng.X
	if span <= 0 || len(values) == 0 {
		h.recolor()
		return
	}
	for _, v := range values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			continue
		}
		b := int(math32.Floor((v - rng.X) / span * histogramBins))
		if b < 0 {
			b = 0
		} else if b > histogramBins-1 {
			b = histogramBins - 1
		}
		h.Heights[b]++
	}
	hmax := float32(0)
	for _, c := range h.Heights {
		hmax = math32.Max(hmax, c)
	}
	if hmax > 0 {
		for i := range h.Heights {
			h.Heights[i] /= hmax
		}
	}
	h.recolor()
}

// SetColorMap reshades the bins with the given colormap.
func (h *Histogram) SetColorMap(cm *colormap.Map) {
	h.cmap = cm
	h.recolor()
}

func (h *Histogram) recolor() {
	h.Colors = make([]color.RGBA, len(h.Heights))
	if h.cmap == nil {
		return
	}
	for i := range h.Colors {
		h.Colors[i] = h.cmap.Map((float32(i) + 0.5) / float32(len(h.Colors)))
	}
}
