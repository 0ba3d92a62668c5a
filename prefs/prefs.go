// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefs provides durable storage of user-edited visualization
// parameters, keyed per owning structure and parameter name, so that
// edits survive destruction and reconstruction of the objects that
// own them.
package prefs

import (
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Store is a keyed persistence store for parameter values.
// Keys are formed as "<ownerUniquePrefix>#<paramName>".
// Stored values round-trip through the store's codec, so numeric
// values may come back with a widened type (e.g. float64 for a
// float32 that was stored); [Value] handles the coercion.
type Store interface {

	// Lookup returns the stored value for the given key,
	// and whether one is present.
	Lookup(key string) (any, bool)

	// Set durably stores the given value under the given key.
	Set(key string, value any)
}

// MapStore is a transient in-memory [Store], for use when no
// settings file is configured, and in tests.
type MapStore map[string]any

func (ms MapStore) Lookup(key string) (any, bool) {
	v, ok := ms[key]
	return v, ok
}

func (ms MapStore) Set(key string, value any) {
	ms[key] = value
}

// FileStore is a [Store] backed by a TOML file. The file is read once
// when the store is opened; every Set writes the file back through.
type FileStore struct {

	// Filename is the path of the TOML file holding the values.
	Filename string

	vals map[string]any
}

// OpenFileStore opens the TOML file at the given path, returning a
// store with its current contents. A missing file is not an error:
// the store starts empty and the file is created on first Set.
func OpenFileStore(filename string) (*FileStore, error) {
	fs := &FileStore{Filename: filename, vals: map[string]any{}}
	b, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return fs, errors.Log(err)
	}
	if err := toml.Unmarshal(b, &fs.vals); err != nil {
		return fs, errors.Log(err)
	}
	return fs, nil
}

func (fs *FileStore) Lookup(key string) (any, bool) {
	v, ok := fs.vals[key]
	return v, ok
}

func (fs *FileStore) Set(key string, value any) {
	fs.vals[key] = value
	errors.Log(fs.Save())
}

// Save writes the current values back to the store's file,
// creating any missing parent directories.
func (fs *FileStore) Save() error {
	b, err := toml.Marshal(fs.vals)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fs.Filename), 0750); err != nil {
		return err
	}
	return os.WriteFile(fs.Filename, b, 0664)
}
