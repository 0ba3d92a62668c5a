// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeToolkit records the widgets drawn in one BuildUI pass and plays
// back scripted edits.
type fakeToolkit struct {
	labels []string

	sliderMin, sliderMax float32
	editLow, editHigh    float32
	editRange            bool

	selectName string
	pressReset bool
	toggleIso  *bool
	editWidth  *float32
	histWindow math32.Vector2
}

func (tk *fakeToolkit) Checkbox(label string, value *bool) bool {
	tk.labels = append(tk.labels, label)
	if tk.toggleIso != nil {
		*value = *tk.toggleIso
		return true
	}
	return false
}

func (tk *fakeToolkit) DragFloat(label string, value *float32, speed, min, max float32, format string) bool {
	tk.labels = append(tk.labels, label)
	if label == "Width" && tk.editWidth != nil {
		*value = *tk.editWidth
		return true
	}
	return false
}

func (tk *fakeToolkit) RangeSlider(label string, low, high *float32, min, max float32, format string) bool {
	tk.labels = append(tk.labels, label)
	tk.sliderMin, tk.sliderMax = min, max
	if tk.editRange {
		*low, *high = tk.editLow, tk.editHigh
		return true
	}
	return false
}

func (tk *fakeToolkit) Selector(label string, options []string, current string) (string, bool) {
	tk.labels = append(tk.labels, label)
	if tk.selectName != "" {
		return tk.selectName, true
	}
	return current, false
}

func (tk *fakeToolkit) Button(label string) bool {
	tk.labels = append(tk.labels, label)
	return tk.pressReset && label == "Reset range"
}

func (tk *fakeToolkit) HistogramPanel(h *Histogram, window math32.Vector2) {
	tk.histWindow = window
}

func TestBuildUIWidgets(t *testing.T) {
	f, _, _ := newTestField(t, []float32{0, 5, 10}, Standard)
	tk := &fakeToolkit{}
	f.BuildUI(tk)
	assert.Equal(t, []string{"Color map", "Range", "Reset range", "Isolines"}, tk.labels)
	assert.Equal(t, f.MapRange(), tk.histWindow)
}

func TestBuildUISliderDomain(t *testing.T) {
	f, _, _ := newTestField(t, []float32{-2, 1, 5}, Symmetric)
	tk := &fakeToolkit{}
	f.BuildUI(tk)
	assert.Equal(t, float32(-5), tk.sliderMin)
	assert.Equal(t, float32(5), tk.sliderMax)

	f, _, _ = newTestField(t, []float32{1, 2, 5}, Magnitude)
	tk = &fakeToolkit{}
	f.BuildUI(tk)
	assert.Equal(t, float32(0), tk.sliderMin)
	assert.Equal(t, float32(5), tk.sliderMax)
}

func TestBuildUIRangeEdit(t *testing.T) {
	f, _, _ := newTestField(t, []float32{0, 10}, Standard)
	tk := &fakeToolkit{editRange: true, editLow: 2, editHigh: 8}
	f.BuildUI(tk)
	assert.Equal(t, math32.Vec2(2, 8), f.MapRange())
}

func TestBuildUIResetButton(t *testing.T) {
	f, _, _ := newTestField(t, []float32{0, 10}, Standard)
	f.SetMapRange(math32.Vec2(3, 4))
	tk := &fakeToolkit{pressReset: true}
	f.BuildUI(tk)
	assert.Equal(t, f.DataRange(), f.MapRange())
}

func TestBuildUIColorMapEdit(t *testing.T) {
	f, _, _ := newTestField(t, []float32{0, 10}, Standard)
	tk := &fakeToolkit{selectName: "turbo"}
	f.BuildUI(tk)
	assert.Equal(t, "turbo", f.ColorMap())
}

func TestBuildUIIsolineControls(t *testing.T) {
	f, _, _ := newTestField(t, []float32{0, 10}, Standard)

	// disabled: width and darkness widgets are not drawn
	tk := &fakeToolkit{}
	f.BuildUI(tk)
	assert.NotContains(t, tk.labels, "Width")
	assert.NotContains(t, tk.labels, "Darkness")

	on := true
	tk = &fakeToolkit{toggleIso: &on}
	f.BuildUI(tk)
	require.True(t, f.IsolinesEnabled())
	assert.Contains(t, tk.labels, "Width")
	assert.Contains(t, tk.labels, "Darkness")

	w := float32(0.1)
	tk = &fakeToolkit{editWidth: &w}
	f.BuildUI(tk)
	assert.Equal(t, ScaledValue{Value: 0.1, Relative: true}, f.IsolineWidth())
}
