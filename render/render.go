// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the WebGPU-backed device storage for field
// values, and the uniform staging used to feed shader programs.
package render

import "github.com/cogentcore/webgpu/wgpu"

// Device wraps the WebGPU device and its queue for buffer operations.
type Device struct {
	// Device is the WebGPU device.
	Device *wgpu.Device

	// Queue is the default queue of the device.
	Queue *wgpu.Queue
}

// NewDevice returns a Device wrapping the given WebGPU device.
func NewDevice(dev *wgpu.Device) *Device {
	return &Device{Device: dev, Queue: dev.GetQueue()}
}

// WaitDone waits until the device is done with its current work.
func (dv *Device) WaitDone() {
	dv.Device.Poll(true, nil)
}
