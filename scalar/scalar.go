// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar implements the state manager for a scalar field
// attached to a visualized structure: one value per vertex, cell, or
// point. It derives a robust data range from the raw values, maps it
// onto a colormap normalization window according to the field's data
// type policy, keeps the user-editable display parameters persisted
// across sessions, and synchronizes a GPU-resident mirror of the
// values with the CPU-side array.
package scalar

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"github.com/PierceLBrooks/polyscope/colormap"
	"github.com/PierceLBrooks/polyscope/prefs"
)

// DataType determines how a field's data range is mapped onto the
// colormap normalization window.
type DataType int32

const (
	// Standard maps the data range directly onto the colormap.
	Standard DataType = iota

	// Symmetric centers the window on zero, spanning the largest
	// absolute bound of the data range in both directions, for
	// signed data where the sign is meaningful.
	Symmetric

	// Magnitude pins the low end of the window to zero,
	// for non-negative data such as vector magnitudes.
	Magnitude
)

func (dt DataType) String() string {
	switch dt {
	case Symmetric:
		return "symmetric"
	case Magnitude:
		return "magnitude"
	default:
		return "standard"
	}
}

// DefaultColorMap returns the name of the default color map
// for this data type.
func (dt DataType) DefaultColorMap() string {
	switch dt {
	case Symmetric:
		return "coolwarm"
	case Magnitude:
		return "blues"
	default:
		return "viridis"
	}
}

// Owner is the capability a visualized structure provides to the
// scalar fields attached to it. The field never sees a concrete
// structure type.
type Owner interface {

	// UniquePrefix returns a stable identity string for the owning
	// structure, used to key persisted parameters.
	UniquePrefix() string

	// Refresh recomputes the owner's derived render state.
	Refresh()

	// RequestRedraw marks the view as needing a redraw on the next
	// frame of the external render loop.
	RequestRedraw()
}

// ScaledValue is a length tagged as either absolute (in data units)
// or relative (a fraction of the data range span).
type ScaledValue struct {

	// Value is the stored length.
	Value float32

	// Relative is whether Value is a fraction of the data range span
	// rather than an absolute length in data units.
	Relative bool
}

// Absolute returns the value as an absolute length, multiplying
// by the given span if the value is tagged relative.
func (sv ScaledValue) Absolute(span float32) float32 {
	if sv.Relative {
		return sv.Value * span
	}
	return sv.Value
}

// dataSource tags which side holds the authoritative copy of the
// field's values.
type dataSource int32

const (
	// sourceValues: the CPU-side values slice is authoritative.
	sourceValues dataSource = iota

	// sourceBuffer: the device buffer is authoritative and the
	// CPU-side slice is absent.
	sourceBuffer
)

// Field is a scalar field attached to a visualized structure.
// It is mutated only through its setters; every user-facing parameter
// is an independently persisted cell keyed by the owner's identity.
type Field struct {

	// Name is the field's name, unique within its owner.
	Name string

	// DataType is the range-mapping policy, fixed at construction.
	DataType DataType

	// Hist is the binned distribution of the current values,
	// rebuilt whenever the values change. It is display state only
	// and is not persisted.
	Hist *Histogram

	owner  Owner
	store  prefs.Store
	values []float32
	source dataSource

	dataRange math32.Vector2 // X = min, Y = max
	vizRange  math32.Vector2 // X = low, Y = high

	colorMap        *prefs.Value[string]
	isolinesEnabled *prefs.Value[bool]
	isolineWidth    *prefs.Value[ScaledValue]
	isolineDarkness *prefs.Value[float32]

	buffer    ValueBuffer
	newBuffer func(label string) ValueBuffer
	dataDirty bool
}

// NewField returns a new scalar field attached to the given owner,
// with one value per element of the owning structure. Persisted
// parameters adopt any values already held in the store under this
// field's identity; otherwise they take the policy defaults.
// If values is empty the field starts in buffer-only mode and the
// data range defaults to the unit interval.
func NewField(owner Owner, store prefs.Store, name string, values []float32, dtype DataType) *Field {
	f := &Field{
		Name:     name,
		DataType: dtype,
		owner:    owner,
		store:    store,
		values:   values,
	}
	if len(values) == 0 {
		f.source = sourceBuffer
		f.dataRange = math32.Vec2(0, 1)
	} else {
		mn, mx := robustMinMax(values, rangeTrimFraction)
		f.dataRange = math32.Vec2(mn, mx)
	}
	f.vizRange = f.defaultMapRange()

	f.colorMap = prefs.NewValue(store, f.paramKey("colormap"), dtype.DefaultColorMap())
	f.isolinesEnabled = prefs.NewValue(store, f.paramKey("isolinesEnabled"), false)
	f.isolineWidth = prefs.NewValueWith(store, f.paramKey("isolineWidth"),
		ScaledValue{Value: 0.02, Relative: true}, encodeScaled, decodeScaled)
	f.isolineDarkness = prefs.NewValue[float32](store, f.paramKey("isolineDarkness"), 0.7)

	f.Hist = newHistogram(f.resolveColorMap())
	if f.source == sourceValues {
		f.Hist.Build(f.values, f.dataRange)
	}
	return f
}

// SetBufferAllocator sets the factory used to allocate the device
// buffer mirroring the values, typically bound to the render engine's
// device. Returns the field for chaining.
func (f *Field) SetBufferAllocator(alloc func(label string) ValueBuffer) *Field {
	f.newBuffer = alloc
	return f
}

// Release releases the device buffer, if any. The persisted
// parameter cells survive in the store under the field's identity.
func (f *Field) Release() {
	if f.buffer != nil {
		f.buffer.Release()
		f.buffer = nil
	}
}

// paramKey returns the persistence key for the given parameter,
// combining the owner's identity, the field name, and the parameter
// name.
func (f *Field) paramKey(param string) string {
	return fmt.Sprintf("%s#%s#%s", f.owner.UniquePrefix(), f.Name, param)
}

func encodeScaled(sv ScaledValue) any {
	return map[string]any{"value": float64(sv.Value), "relative": sv.Relative}
}

func decodeScaled(raw any) (ScaledValue, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return ScaledValue{}, false
	}
	sv := ScaledValue{}
	switch v := m["value"].(type) {
	case float64:
		sv.Value = float32(v)
	case float32:
		sv.Value = v
	case int64:
		sv.Value = float32(v)
	default:
		return ScaledValue{}, false
	}
	rel, ok := m["relative"].(bool)
	if !ok {
		return ScaledValue{}, false
	}
	sv.Relative = rel
	return sv, true
}

// resolveColorMap resolves the current colormap name in the registry,
// falling back to the policy default if the name is unknown
// (e.g. a stale persisted entry).
func (f *Field) resolveColorMap() *colormap.Map {
	nm := f.colorMap.Get()
	if cm, ok := colormap.AvailableMaps[nm]; ok {
		return cm
	}
	slog.Error("scalar.Field: unknown color map name", "field", f.Name, "name", nm)
	return colormap.AvailableMaps[f.DataType.DefaultColorMap()]
}

// ColorMap returns the current colormap name.
func (f *Field) ColorMap() string {
	return f.colorMap.Get()
}

// SetColorMap sets the colormap by registry name, persists it,
// recolors the histogram, and refreshes the owner's render state.
func (f *Field) SetColorMap(name string) {
	f.colorMap.Set(name)
	f.Hist.SetColorMap(f.resolveColorMap())
	f.owner.Refresh()
	f.owner.RequestRedraw()
}

// IsolinesEnabled returns whether isolines are drawn.
func (f *Field) IsolinesEnabled() bool {
	return f.isolinesEnabled.Get()
}

// SetIsolinesEnabled sets whether isolines are drawn, persists the
// flag, and refreshes the owner's render state.
func (f *Field) SetIsolinesEnabled(on bool) {
	f.isolinesEnabled.Set(on)
	f.owner.Refresh()
	f.owner.RequestRedraw()
}

// IsolineWidth returns the stored isoline width with its
// absolute-or-relative tag.
func (f *Field) IsolineWidth() ScaledValue {
	return f.isolineWidth.Get()
}

// EffectiveIsolineWidth returns the isoline width as an absolute
// length in data units, scaling relative widths by the data range
// span.
func (f *Field) EffectiveIsolineWidth() float32 {
	return f.isolineWidth.Get().Absolute(f.dataRange.Y - f.dataRange.X)
}

// SetIsolineWidth sets the isoline width, tagged absolute or
// relative, and persists it. Setting a width while isolines are
// disabled enables them.
func (f *Field) SetIsolineWidth(width float32, relative bool) {
	f.isolineWidth.Set(ScaledValue{Value: width, Relative: relative})
	if !f.isolinesEnabled.Get() {
		f.SetIsolinesEnabled(true)
	}
	f.owner.RequestRedraw()
}

// IsolineDarkness returns the darkness factor applied to isoline
// bands.
func (f *Field) IsolineDarkness() float32 {
	return f.isolineDarkness.Get()
}

// SetIsolineDarkness sets the isoline darkness factor and persists
// it. Setting a darkness while isolines are disabled enables them.
func (f *Field) SetIsolineDarkness(darkness float32) {
	f.isolineDarkness.Set(darkness)
	if !f.isolinesEnabled.Get() {
		f.SetIsolinesEnabled(true)
	}
	f.owner.RequestRedraw()
}

// UniformSink receives the shader uniform values this field exports.
type UniformSink interface {
	SetUniform(name string, value float32)
}

// SetUniforms writes the field's shader uniforms to the given sink:
// the normalization window bounds, and the isoline modulation
// parameters when isolines are enabled.
func (f *Field) SetUniforms(sink UniformSink) {
	sink.SetUniform("u_rangeLow", f.vizRange.X)
	sink.SetUniform("u_rangeHigh", f.vizRange.Y)
	if f.isolinesEnabled.Get() {
		sink.SetUniform("u_modLen", f.EffectiveIsolineWidth())
		sink.SetUniform("u_modDarkness", f.isolineDarkness.Get())
	}
}
