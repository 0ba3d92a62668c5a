// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides the registry of color maps used to shade
// scalar data, mapping normalized positions in [0, 1] to colors by
// linear interpolation over a table of control colors.
package colormap

import (
	"image/color"
	"sort"

	"cogentcore.org/core/math32"
)

// Map is a color map with a given name, mapping a normalized value
// in the range [0, 1] onto a color by linear interpolation between
// the evenly-spaced control colors in Colors.
type Map struct {
	// Name is the registry name of this map.
	Name string

	// Colors is the list of control colors, evenly spaced on [0, 1].
	Colors []color.RGBA
}

// NewMap returns a new map with given name and control colors.
func NewMap(name string, colors ...color.RGBA) *Map {
	return &Map{Name: name, Colors: colors}
}

// Map returns the color at normalized position pos in [0, 1].
// Positions outside that range are clamped to the endpoint colors.
func (cm *Map) Map(pos float32) color.RGBA {
	nc := len(cm.Colors)
	if nc == 0 {
		return color.RGBA{}
	}
	if pos <= 0 || nc == 1 {
		return cm.Colors[0]
	}
	if pos >= 1 {
		return cm.Colors[nc-1]
	}
	ix := pos * float32(nc-1)
	lo := int(math32.Floor(ix))
	hi := lo + 1
	if hi > nc-1 {
		hi = nc - 1
	}
	return lerpRGBA(cm.Colors[lo], cm.Colors[hi], ix-float32(lo))
}

func lerpRGBA(a, b color.RGBA, t float32) color.RGBA {
	lc := func(x, y uint8) uint8 {
		return uint8(float32(x) + t*(float32(y)-float32(x)))
	}
	return color.RGBA{R: lc(a.R, b.R), G: lc(a.G, b.G), B: lc(a.B, b.B), A: 255}
}

// AvailableMaps is the registry of available named color maps.
var AvailableMaps = map[string]*Map{}

// Register adds the given map to [AvailableMaps], keyed by its name,
// replacing any existing map of the same name.
func Register(cm *Map) {
	AvailableMaps[cm.Name] = cm
}

// AvailableMapsList returns a sorted list of the names of all
// the available color maps.
func AvailableMapsList() []string {
	nms := make([]string, 0, len(AvailableMaps))
	for nm := range AvailableMaps {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}
