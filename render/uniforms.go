// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// Uniforms stages named float32 shader uniform values between the
// state layer and a shader program binding. It satisfies the scalar
// package's UniformSink contract.
type Uniforms struct {
	vals map[string]float32
}

// NewUniforms returns a new empty uniform staging set.
func NewUniforms() *Uniforms {
	return &Uniforms{vals: map[string]float32{}}
}

// SetUniform stages the value under the given uniform name.
func (u *Uniforms) SetUniform(name string, value float32) {
	u.vals[name] = value
}

// Uniform returns the staged value for the given name,
// and whether one has been set.
func (u *Uniforms) Uniform(name string) (float32, bool) {
	v, ok := u.vals[name]
	return v, ok
}

// Floats returns the staged values in the given order, with zero for
// any name not staged, for packing into a uniform buffer.
func (u *Uniforms) Floats(order ...string) []float32 {
	out := make([]float32, len(order))
	for i, nm := range order {
		out[i] = u.vals[nm]
	}
	return out
}
