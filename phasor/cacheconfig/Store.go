//******************************************************************************************************
//  Store.go - Gbtc
//
//  Copyright © 2021, Grid Protection Alliance.  All Rights Reserved.
//
//  Licensed to the Grid Protection Alliance (GPA) under one or more contributor license agreements. See
//  the NOTICE file distributed with this work for additional information regarding copyright ownership.
//  The GPA licenses this file to you under the MIT License (MIT), the "License"; you may not use this
//  file except in compliance with the License. You may obtain a copy of the License at:
//
//      http://opensource.org/licenses/MIT
//
//  Unless agreed to in writing, the subject software distributed under the License is distributed on an
//  "AS-IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. Refer to the
//  License for the specific language governing permissions and limitations.
//
//  Code Modification History:
//  ----------------------------------------------------------------------------------------------------
//  07/31/2026 - generated original version of source code.
//
//******************************************************************************************************

// Package cacheconfig persists the last-known-good configuration frame for an adapter to durable
// storage, and loads it back across process restarts.
package cacheconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alitto/pond/v2"

	"github.com/gpascada/phasoradapter/phasor/data"
)

// Store reads and writes one configuration cache file per adapter, named
// "<adapterName>.configuration.xml" within Directory. Writes are dispatched to a single-worker
// pool so the caller's frame-event goroutine never blocks on disk I/O.
type Store struct {
	Directory string

	pool pond.Pool
}

// NewStore creates a Store rooted at directory. The directory is not created until the first
// write; a missing directory is treated the same as a missing cache file by Load.
func NewStore(directory string) *Store {
	return &Store{
		Directory: directory,
		pool:      pond.NewPool(1),
	}
}

func (s *Store) path(adapterName string) string {
	return filepath.Join(s.Directory, adapterName+".configuration.xml")
}

// Cache schedules an asynchronous, atomic write of frame to this adapter's cache file and returns
// the pending task. reportError is invoked (from the worker goroutine) if the write fails; a write
// failure never propagates back to the caller and never aborts the adapter. The returned task is
// ignored on the hot path and exists so tests can deterministically wait for the write to land.
func (s *Store) Cache(adapterName string, frame *data.DataSet, reportError func(string)) pond.Task {
	return s.pool.Submit(func() {
		if err := s.writeAtomic(adapterName, frame); err != nil {
			reportError(fmt.Sprintf("failed to cache configuration for %q: %v", adapterName, err))
		}
	})
}

func (s *Store) writeAtomic(adapterName string, frame *data.DataSet) error {
	if err := os.MkdirAll(s.Directory, 0o755); err != nil {
		return err
	}

	destination := s.path(adapterName)
	temp := destination + ".tmp"
	buffer := frame.WriteXml("ConfigurationCache")

	if err := os.WriteFile(temp, buffer, 0o644); err != nil {
		return err
	}

	return os.Rename(temp, destination)
}

// Load reads back the cached configuration for adapterName. A missing file returns (nil, nil) —
// this is the normal cold-start state, not an error. A file that exists but fails to parse returns
// (nil, error); the caller is expected to report it and carry on without cached configuration.
func (s *Store) Load(adapterName string) (*data.DataSet, error) {
	buffer, err := os.ReadFile(s.path(adapterName))

	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	dataSet := data.NewDataSet()

	if err := dataSet.ParseXml(buffer); err != nil {
		return nil, fmt.Errorf("corrupt configuration cache for %q: %w", adapterName, err)
	}

	return dataSet, nil
}

// Wait blocks until all scheduled Cache writes have completed. Intended for tests and for a clean
// shutdown path; the hot path never calls it.
func (s *Store) Wait() {
	s.pool.StopAndWait()
}
