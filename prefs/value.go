// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefs

// Value is a single persisted parameter cell, holding a current value
// of type T under a fixed key in a [Store]. A cell constructed while
// the store already holds its key adopts the stored value; otherwise
// it takes the given default. Set marks the cell as explicitly set and
// writes through to the store; SetPassive updates the default without
// persisting, and is a no-op once the cell has been explicitly set.
type Value[T any] struct {
	store    Store
	key      string
	val      T
	explicit bool
	encode   func(T) any
	decode   func(any) (T, bool)
}

// NewValue returns a new cell for the given store, key, and default,
// using the standard coercion for primitive value types.
func NewValue[T any](store Store, key string, def T) *Value[T] {
	return NewValueWith(store, key, def, func(v T) any { return v }, coerce[T])
}

// NewValueWith is [NewValue] with explicit encode and decode hooks,
// for cell types the store's codec does not handle directly.
func NewValueWith[T any](store Store, key string, def T, encode func(T) any, decode func(any) (T, bool)) *Value[T] {
	v := &Value[T]{store: store, key: key, val: def, encode: encode, decode: decode}
	if raw, ok := store.Lookup(key); ok {
		if dv, ok := decode(raw); ok {
			v.val = dv
			v.explicit = true
		}
	}
	return v
}

// Key returns the store key of this cell.
func (v *Value[T]) Key() string {
	return v.key
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.val
}

// Set sets the current value, marks the cell as explicitly set, and
// writes the value through to the store.
func (v *Value[T]) Set(val T) {
	v.val = val
	v.explicit = true
	v.store.Set(v.key, v.encode(val))
}

// SetPassive updates the current value without persisting it,
// for programmatic defaults. It does nothing if the cell was
// explicitly set, or holds a value adopted from the store.
func (v *Value[T]) SetPassive(val T) {
	if v.explicit {
		return
	}
	v.val = val
}

// Explicit reports whether the cell holds an explicitly-set
// (or store-adopted) value rather than its default.
func (v *Value[T]) Explicit() bool {
	return v.explicit
}

// coerce converts a value as returned by a store codec into T.
// TOML decodes numbers as float64 or int64, so narrower numeric
// cell types must be converted back.
func coerce[T any](raw any) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *float32:
		switch r := raw.(type) {
		case float32:
			*p = r
		case float64:
			*p = float32(r)
		case int64:
			*p = float32(r)
		default:
			return out, false
		}
	case *float64:
		switch r := raw.(type) {
		case float64:
			*p = r
		case float32:
			*p = float64(r)
		case int64:
			*p = float64(r)
		default:
			return out, false
		}
	case *int:
		switch r := raw.(type) {
		case int:
			*p = r
		case int64:
			*p = int(r)
		case float64:
			*p = int(r)
		default:
			return out, false
		}
	case *bool:
		r, ok := raw.(bool)
		if !ok {
			return out, false
		}
		*p = r
	case *string:
		r, ok := raw.(string)
		if !ok {
			return out, false
		}
		*p = r
	default:
		return out, false
	}
	return out, true
}
