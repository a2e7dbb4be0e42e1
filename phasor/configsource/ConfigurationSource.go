//******************************************************************************************************
//  ConfigurationSource.go - Gbtc
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

// Package configsource provides the adapter's configuration metadata, as a DataSet carrying the
// InputAdapters, InputStreamDevices, and ActiveMeasurements tables that DeviceTable and Catalog load
// from.
package configsource

import (
	"fmt"
	"os"

	"github.com/gpascada/phasoradapter/phasor/data"
)

// Source produces the configuration metadata DataSet used to populate a device table and
// measurement catalog. Load may be called more than once over the adapter's lifetime (e.g. on
// reconnect, or when re-reading a configurationFile after the ConfigurationChanged notification),
// so implementations should not assume they are called exactly once.
type Source interface {
	Load() (*data.DataSet, error)
}

// Static wraps an already-parsed DataSet, used by tests and by the cached-configuration fallback
// path where the DataSet was already reconstituted from a cache file.
type Static struct {
	DataSet *data.DataSet
}

// NewStatic wraps dataSet as a Source.
func NewStatic(dataSet *data.DataSet) *Static {
	return &Static{DataSet: dataSet}
}

// Load returns the wrapped DataSet unchanged.
func (s *Static) Load() (*data.DataSet, error) {
	if s.DataSet == nil {
		return nil, fmt.Errorf("static configuration source has no DataSet")
	}

	return s.DataSet, nil
}

// File loads configuration metadata from a GPA-schema XML file on disk, as produced by the
// host's ConfigurationCache (see phasor/cacheconfig) or supplied directly via the
// configurationFile connection setting.
type File struct {
	Path string
}

// NewFile creates a File source reading from path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads and parses the file at Path. A fresh DataSet is returned on every call so that
// repeated loads (e.g. after ConfigurationChanged) observe the file's current contents.
func (f *File) Load() (*data.DataSet, error) {
	buffer, err := os.ReadFile(f.Path)

	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", f.Path, err)
	}

	dataSet := data.NewDataSet()

	if err := dataSet.ParseXml(buffer); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", f.Path, err)
	}

	return dataSet, nil
}
