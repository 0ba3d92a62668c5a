// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
)

// ErrSizeMismatch is returned by [Field.UpdateData] when the new data
// does not have one value per element of the field.
var ErrSizeMismatch = errors.New("scalar: new data size does not match field size")

// ValueBuffer is the device-resident mirror of a field's values,
// provided by the render engine. The first SetData allocates the
// device storage; later calls re-upload in place.
type ValueBuffer interface {

	// IsAllocated reports whether device storage has been allocated
	// and filled.
	IsAllocated() bool

	// SetData uploads the given values, allocating the device
	// storage on first use.
	SetData(values []float32) error

	// Len returns the number of values in the device storage.
	Len() int

	// Value reads back the value at the given index from the device.
	Value(i int) (float32, error)

	// Release frees the device storage.
	Release()
}

// Len returns the number of values in the field, reading through the
// device buffer when the CPU-side values are absent. It returns an
// error if neither side holds data; that indicates a programming
// error in the owning system.
func (f *Field) Len() (int, error) {
	if f.source == sourceValues {
		return len(f.values), nil
	}
	if f.buffer == nil || !f.buffer.IsAllocated() {
		return 0, errors.Log(errors.New("scalar.Field: values are device-only but the render buffer is not filled"))
	}
	return f.buffer.Len(), nil
}

// Value returns the value at the given index, reading through the
// device buffer when the CPU-side values are absent.
func (f *Field) Value(i int) (float32, error) {
	if f.source == sourceValues {
		if i < 0 || i >= len(f.values) {
			return 0, fmt.Errorf("scalar.Field %s: index %d out of range [0, %d)", f.Name, i, len(f.values))
		}
		return f.values[i], nil
	}
	if f.buffer == nil || !f.buffer.IsAllocated() {
		return 0, errors.Log(errors.New("scalar.Field: values are device-only but the render buffer is not filled"))
	}
	return f.buffer.Value(i)
}

// Values returns the CPU-side values slice, which is nil when the
// device buffer is authoritative. The slice is owned by the field.
func (f *Field) Values() []float32 {
	return f.values
}

// EnsureRenderBuffer makes sure the device buffer exists and holds
// the current values. The first allocation always uploads; after
// that, the upload is repeated only when force is set or the values
// have changed since the last fill, since all mutation goes through
// tracked setters.
func (f *Field) EnsureRenderBuffer(force bool) error {
	if f.source == sourceBuffer {
		if f.buffer == nil || !f.buffer.IsAllocated() {
			return errors.Log(errors.New("scalar.Field: values are device-only but the render buffer is not filled"))
		}
		return nil
	}
	if f.buffer == nil {
		if f.newBuffer == nil {
			return errors.Log(errors.New("scalar.Field: no render buffer allocator set"))
		}
		f.buffer = f.newBuffer(f.Name)
		force = true
	}
	if force || f.dataDirty || !f.buffer.IsAllocated() {
		if err := f.buffer.SetData(f.values); err != nil {
			return err
		}
		f.dataDirty = false
	}
	return nil
}

// RenderBuffer returns the device buffer holding the field's values,
// filling it first if needed.
func (f *Field) RenderBuffer() (ValueBuffer, error) {
	if err := f.EnsureRenderBuffer(false); err != nil {
		return nil, err
	}
	return f.buffer, nil
}

// UpdateData replaces the field's values with new data of the same
// cardinality, rebuilds the histogram, refills the device buffer, and
// requests a redraw. On a size mismatch the field is left unmodified
// and an [ErrSizeMismatch] error is returned.
func (f *Field) UpdateData(newValues []float32) error {
	n, err := f.Len()
	if err != nil {
		return err
	}
	if len(newValues) != n {
		return fmt.Errorf("%w: field %s has %d elements, got %d", ErrSizeMismatch, f.Name, n, len(newValues))
	}
	f.values = slices.Clone(newValues)
	f.source = sourceValues
	f.dataDirty = true
	f.Hist.Build(f.values, f.dataRange)
	// TODO: dataRange and vizRange stay pinned to the data the field
	// was constructed with; confirm with product whether UpdateData
	// should rederive them from the new values.
	if f.buffer != nil {
		if err := f.EnsureRenderBuffer(true); err != nil {
			return err
		}
	}
	f.owner.RequestRedraw()
	return nil
}

// RenderBufferExternallyUpdated signals that a collaborator has
// rewritten the device buffer's contents (e.g. values computed on
// device). The CPU-side copy is dropped and the device buffer becomes
// the authoritative source; the data and normalization ranges are
// left untouched.
func (f *Field) RenderBufferExternallyUpdated() {
	f.values = nil
	f.source = sourceBuffer
	f.dataDirty = false
	f.owner.RequestRedraw()
}
