//******************************************************************************************************
//  Measurement.go - Gbtc
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
//  07/30/2026 - split the wire Measurement into ParsedMeasurement/MeasurementDescriptor/MappedMeasurement.
//
//******************************************************************************************************

package measurement

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gpascada/phasoradapter/phasor/guid"
	"github.com/gpascada/phasoradapter/phasor/ticks"
)

// Key identifies a measurement within the downstream time-series platform, independent of its
// signal reference string.
type Key struct {
	Source string
	ID     uint64
}

// String renders a Key in the conventional "Source:ID" form.
func (k Key) String() string {
	return k.Source + ":" + strconv.FormatUint(k.ID, 10)
}

// Descriptor is the immutable metadata entry for one signal reference, loaded once into the
// MeasurementCatalog from the configuration source's ActiveMeasurements table.
type Descriptor struct {
	SignalID        guid.Guid
	Key             Key
	SignalReference string
	Adder           float64
	Multiplier      float64
}

// Parsed is what a FrameParserAdapter hands to the mapper for one signal inside one device cell:
// a bare value, a timestamp, and quality flags, with no identity attached yet.
type Parsed struct {
	Value     float64
	Timestamp ticks.Ticks
	Quality   QualityFlagsEnum
}

// Mapped is a Parsed measurement enriched with its Descriptor once mapAttributes has resolved the
// owning signal reference in the MeasurementCatalog.
type Mapped struct {
	Parsed
	SignalID        guid.Guid
	Key             Key
	SignalReference string
	Adder           float64
	Multiplier      float64
}

// AdjustedValue applies the descriptor's linear scaling (value*multiplier + adder), the same
// convention the teacher's historian-facing adapters use for raw-to-engineering-unit conversion.
func (m *Mapped) AdjustedValue() float64 {
	return m.Value*m.Multiplier + m.Adder
}

// DateTime gets the Mapped measurement's timestamp as a standard Go Time value.
func (m *Mapped) DateTime() time.Time {
	return ticks.ToTime(m.Timestamp)
}

// String returns the string form of a Mapped measurement, mirroring the teacher's own
// Measurement.String() rendering.
func (m *Mapped) String() string {
	return fmt.Sprintf("%s @ %s = %s",
		m.SignalReference,
		m.DateTime().Format(time.RFC3339Nano),
		strconv.FormatFloat(m.AdjustedValue(), 'f', 3, 64))
}

// newMapped builds a Mapped measurement whose identity fields come from a Descriptor,
// preserving the parsed timestamp and value, per mapAttributes' contract.
func newMapped(parsed Parsed, descriptor *Descriptor) Mapped {
	return Mapped{
		Parsed:          parsed,
		SignalID:        descriptor.SignalID,
		Key:             descriptor.Key,
		SignalReference: descriptor.SignalReference,
		Adder:           descriptor.Adder,
		Multiplier:      descriptor.Multiplier,
	}
}

// NewMapped is the exported constructor used by the mapper's hot path.
func NewMapped(parsed Parsed, descriptor *Descriptor) Mapped {
	return newMapped(parsed, descriptor)
}
