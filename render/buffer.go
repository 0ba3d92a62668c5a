// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Buffer is device-resident storage for one float32 value per element
// of a visualized structure. It satisfies the scalar package's
// ValueBuffer contract: the first SetData allocates the device buffer
// and uploads in one step; later calls write in place unless the
// element count changed.
type Buffer struct {
	// Name labels the device buffer, for debugging tools.
	Name string

	device     *Device
	buffer     *wgpu.Buffer
	readBuffer *wgpu.Buffer
	n          int
}

// NewBuffer returns a new unallocated value buffer on this device
// with the given label.
func (dv *Device) NewBuffer(name string) *Buffer {
	return &Buffer{Name: name, device: dv}
}

// IsAllocated reports whether the device buffer has been allocated
// and filled.
func (b *Buffer) IsAllocated() bool {
	return b.buffer != nil
}

// Len returns the number of values held in the device buffer.
func (b *Buffer) Len() int {
	return b.n
}

// SetData uploads the given values, allocating the device buffer on
// the first call or when the element count changes.
func (b *Buffer) SetData(values []float32) error {
	data := wgpu.ToBytes(values)
	if b.buffer == nil || b.n != len(values) {
		b.Release()
		buf, err := b.device.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    b.Name,
			Contents: data,
			Usage:    wgpu.BufferUsageStorage | wgpu.BufferUsageVertex | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		})
		if errors.Log(err) != nil {
			return err
		}
		b.buffer = buf
		b.n = len(values)
		return nil
	}
	return errors.Log(b.device.Queue.WriteBuffer(b.buffer, 0, data))
}

// Handle returns the underlying WebGPU buffer, for binding into
// shader programs. It is nil until the buffer is allocated.
func (b *Buffer) Handle() *wgpu.Buffer {
	return b.buffer
}

// Value reads back the value at the given index from the device,
// copying it through a small mappable staging buffer and waiting for
// the device to finish.
func (b *Buffer) Value(i int) (float32, error) {
	if b.buffer == nil {
		return 0, errors.Log(errors.New("render.Buffer: not allocated"))
	}
	if i < 0 || i >= b.n {
		return 0, fmt.Errorf("render.Buffer %s: index %d out of range [0, %d)", b.Name, i, b.n)
	}
	if b.readBuffer == nil {
		rb, err := b.device.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: b.Name + "_read",
			Size:  4,
			Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
		})
		if errors.Log(err) != nil {
			return 0, err
		}
		b.readBuffer = rb
	}
	enc, err := b.device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return 0, err
	}
	enc.CopyBufferToBuffer(b.buffer, uint64(i)*4, b.readBuffer, 0, 4)
	cmd, err := enc.Finish(nil)
	if errors.Log(err) != nil {
		return 0, err
	}
	b.device.Queue.Submit(cmd)

	var status wgpu.BufferMapAsyncStatus
	err = b.readBuffer.MapAsync(wgpu.MapModeRead, 0, 4, func(s wgpu.BufferMapAsyncStatus) {
		status = s
	})
	if errors.Log(err) != nil {
		return 0, err
	}
	b.device.WaitDone()
	if status != wgpu.BufferMapAsyncStatusSuccess {
		return 0, errors.Log(fmt.Errorf("render.Buffer %s: map status is %s", b.Name, status.String()))
	}
	val := wgpu.FromBytes[float32](b.readBuffer.GetMappedRange(0, 4))[0]
	b.readBuffer.Unmap()
	return val, nil
}

// Release frees the device storage.
func (b *Buffer) Release() {
	if b.buffer != nil {
		b.buffer.Release()
		b.buffer = nil
	}
	if b.readBuffer != nil {
		b.readBuffer.Release()
		b.readBuffer = nil
	}
	b.n = 0
}
