// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"fmt"
	"slices"
	"testing"

	"github.com/PierceLBrooks/polyscope/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOwner counts the callbacks the field makes into its owner.
type testOwner struct {
	prefix    string
	refreshes int
	redraws   int
}

func (o *testOwner) UniquePrefix() string { return o.prefix }
func (o *testOwner) Refresh()             { o.refreshes++ }
func (o *testOwner) RequestRedraw()       { o.redraws++ }

// memBuffer is an in-memory stand-in for device value storage.
type memBuffer struct {
	vals    []float32
	uploads int
}

func (mb *memBuffer) IsAllocated() bool { return mb.vals != nil }
func (mb *memBuffer) Len() int          { return len(mb.vals) }
func (mb *memBuffer) Release()          { mb.vals = nil }

func (mb *memBuffer) SetData(values []float32) error {
	mb.vals = slices.Clone(values)
	mb.uploads++
	return nil
}

func (mb *memBuffer) Value(i int) (float32, error) {
	if i < 0 || i >= len(mb.vals) {
		return 0, fmt.Errorf("index %d out of range", i)
	}
	return mb.vals[i], nil
}

func newTestField(t *testing.T, values []float32, dtype DataType) (*Field, *testOwner, prefs.MapStore) {
	t.Helper()
	owner := &testOwner{prefix: "surface#bunny"}
	store := prefs.MapStore{}
	f := NewField(owner, store, "temperature", values, dtype)
	f.SetBufferAllocator(func(label string) ValueBuffer { return &memBuffer{} })
	return f, owner, store
}

func TestColorMapDefaults(t *testing.T) {
	f, _, _ := newTestField(t, []float32{1, 2, 3}, Standard)
	assert.Equal(t, "viridis", f.ColorMap())

	f, _, _ = newTestField(t, []float32{-1, 2}, Symmetric)
	assert.Equal(t, "coolwarm", f.ColorMap())

	f, _, _ = newTestField(t, []float32{1, 2}, Magnitude)
	assert.Equal(t, "blues", f.ColorMap())
}

func TestSetColorMap(t *testing.T) {
	f, owner, _ := newTestField(t, []float32{1, 2, 3}, Standard)
	before := slices.Clone(f.Hist.Colors)

	f.SetColorMap("plasma")
	assert.Equal(t, "plasma", f.ColorMap())
	assert.Equal(t, 1, owner.refreshes)
	assert.Equal(t, 1, owner.redraws)
	assert.NotEqual(t, before, f.Hist.Colors)
}

func TestColorMapPersistence(t *testing.T) {
	owner := &testOwner{prefix: "surface#bunny"}
	store := prefs.MapStore{}

	f := NewField(owner, store, "temperature", []float32{1, 2, 3}, Standard)
	f.SetColorMap("spectral")
	f.Release()

	// reconstruction with the same identity adopts the stored value
	f2 := NewField(owner, store, "temperature", []float32{1, 2, 3}, Standard)
	assert.Equal(t, "spectral", f2.ColorMap())

	// a different identity still gets the policy default
	f3 := NewField(owner, store, "pressure", []float32{1, 2, 3}, Standard)
	assert.Equal(t, "viridis", f3.ColorMap())
}

func TestIsolineWidthRoundTrip(t *testing.T) {
	f, _, _ := newTestField(t, []float32{0, 5, 10}, Standard)
	span := f.DataRange().Y - f.DataRange().X

	f.SetIsolineWidth(0.1, true)
	assert.True(t, f.IsolineWidth().Relative)
	assert.InDelta(t, 0.1*span, f.EffectiveIsolineWidth(), 1e-5)

	f.SetIsolineWidth(2.5, false)
	assert.False(t, f.IsolineWidth().Relative)
	assert.Equal(t, float32(2.5), f.EffectiveIsolineWidth())
}

func TestIsolineImplicitEnable(t *testing.T) {
	f, _, _ := newTestField(t, []float32{0, 5, 10}, Standard)
	require.False(t, f.IsolinesEnabled())

	f.SetIsolineWidth(0.05, true)
	assert.True(t, f.IsolinesEnabled())
	span := f.DataRange().Y - f.DataRange().X
	assert.InDelta(t, 0.05*span, f.EffectiveIsolineWidth(), 1e-5)

	f.SetIsolinesEnabled(false)
	f.SetIsolineDarkness(0.5)
	assert.True(t, f.IsolinesEnabled())
	assert.Equal(t, float32(0.5), f.IsolineDarkness())
}

func TestIsolinePersistence(t *testing.T) {
	owner := &testOwner{prefix: "mesh#spot"}
	store := prefs.MapStore{}

	f := NewField(owner, store, "curvature", []float32{1, 2, 3}, Standard)
	f.SetIsolineWidth(0.25, true)
	f.SetIsolineDarkness(0.4)

	f2 := NewField(owner, store, "curvature", []float32{1, 2, 3}, Standard)
	assert.True(t, f2.IsolinesEnabled())
	assert.Equal(t, ScaledValue{Value: 0.25, Relative: true}, f2.IsolineWidth())
	assert.Equal(t, float32(0.4), f2.IsolineDarkness())
}

func TestSettersRequestRedraw(t *testing.T) {
	f, owner, _ := newTestField(t, []float32{1, 2, 3}, Standard)

	f.SetMapRange(f.DataRange())
	assert.Equal(t, 1, owner.redraws)
	f.ResetMapRange()
	assert.Equal(t, 2, owner.redraws)
	f.SetIsolinesEnabled(true)
	assert.Equal(t, 3, owner.redraws)
	assert.Equal(t, 1, owner.refreshes)
}

type uniformRecorder map[string]float32

func (u uniformRecorder) SetUniform(name string, value float32) { u[name] = value }

func TestSetUniforms(t *testing.T) {
	f, _, _ := newTestField(t, []float32{0, 5, 10}, Standard)

	u := uniformRecorder{}
	f.SetUniforms(u)
	assert.Equal(t, f.MapRange().X, u["u_rangeLow"])
	assert.Equal(t, f.MapRange().Y, u["u_rangeHigh"])
	_, hasMod := u["u_modLen"]
	assert.False(t, hasMod)

	f.SetIsolineWidth(0.1, true)
	u = uniformRecorder{}
	f.SetUniforms(u)
	assert.Equal(t, f.EffectiveIsolineWidth(), u["u_modLen"])
	assert.Equal(t, f.IsolineDarkness(), u["u_modDarkness"])
}

func TestHistogramRebuiltOnUpdate(t *testing.T) {
	f, _, _ := newTestField(t, []float32{0, 0, 0, 10}, Standard)
	lowHeavy := slices.Clone(f.Hist.Heights)

	require.NoError(t, f.UpdateData([]float32{10, 10, 10, 0}))
	assert.NotEqual(t, lowHeavy, f.Hist.Heights)
}
