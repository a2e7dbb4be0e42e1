//******************************************************************************************************
//  Catalog.go - Gbtc
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
//  07/30/2026 - generated original version of source code, adapted from Subscriber.loadMeasurementMetadata's
//       column-walk style, keyed by signalReference instead of signalID.
//
//******************************************************************************************************

package catalog

import (
	"strconv"
	"strings"

	"github.com/gpascada/phasoradapter/phasor/data"
	"github.com/gpascada/phasoradapter/phasor/measurement"
)

// Catalog maps a platform-wide signal reference string to its immutable measurement metadata,
// loaded once from the ActiveMeasurements table of the configuration source.
type Catalog struct {
	bySignalReference map[string]*measurement.Descriptor
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{bySignalReference: make(map[string]*measurement.Descriptor)}
}

// Load populates a Catalog from the ActiveMeasurements table of a configuration DataSet, filtered
// by DeviceID = queryID (the adapter's effective query ID, as resolved by mapper.Mapper's effectiveQueryID).
func Load(dataSet *data.DataSet, queryID uint32, reportError func(string)) *Catalog {
	catalog := New()

	measurements := dataSet.Table("ActiveMeasurements")

	if measurements == nil {
		reportError("configuration source has no ActiveMeasurements table")
		return catalog
	}

	deviceIDIndex := measurements.ColumnIndex("DeviceID")
	signalRefIndex := measurements.ColumnIndex("SignalReference")
	signalIDIndex := measurements.ColumnIndex("SignalID")
	idIndex := measurements.ColumnIndex("ID")
	adderIndex := measurements.ColumnIndex("Adder")
	multiplierIndex := measurements.ColumnIndex("Multiplier")

	if signalRefIndex < 0 || signalIDIndex < 0 {
		reportError("ActiveMeasurements table is missing required SignalReference/SignalID columns")
		return catalog
	}

	for i := 0; i < measurements.RowCount(); i++ {
		row := measurements.Row(i)

		if row == nil {
			continue
		}

		if deviceIDIndex > -1 {
			deviceID, null, err := row.UInt32Value(deviceIDIndex)

			if err != nil || null || deviceID != queryID {
				continue
			}
		}

		signalReference, null, err := row.StringValue(signalRefIndex)

		if err != nil || null || signalReference == "" {
			reportError("ActiveMeasurements row has an empty SignalReference, skipping")
			continue
		}

		signalID, null, err := row.GuidValue(signalIDIndex)

		if err != nil || null {
			reportError("ActiveMeasurements row for " + signalReference + " has an invalid SignalID, skipping")
			continue
		}

		descriptor := &measurement.Descriptor{
			SignalID:        signalID,
			SignalReference: signalReference,
			Multiplier:      1.0,
		}

		if idIndex > -1 {
			id, _, _ := row.StringValue(idIndex)
			parts := strings.SplitN(id, ":", 2)

			if len(parts) == 2 {
				descriptor.Key.Source = parts[0]
				descriptor.Key.ID, _ = strconv.ParseUint(parts[1], 10, 64)
			}
		}

		if adderIndex > -1 {
			descriptor.Adder, _, _ = row.DoubleValue(adderIndex)
		}

		if multiplierIndex > -1 {
			multiplier, null, _ := row.DoubleValue(multiplierIndex)

			if !null {
				descriptor.Multiplier = multiplier
			}
		}

		catalog.bySignalReference[signalReference] = descriptor
	}

	return catalog
}

// Get returns the MeasurementDescriptor for a signal reference, or nil if no mapping exists — the
// parsed value should then be silently dropped, per 4.C.
func (c *Catalog) Get(signalReference string) *measurement.Descriptor {
	return c.bySignalReference[signalReference]
}

// Count returns the number of signal references currently mapped.
func (c *Catalog) Count() int {
	return len(c.bySignalReference)
}
