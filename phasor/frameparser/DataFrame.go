//******************************************************************************************************
//  DataFrame.go - Gbtc
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
//  07/31/2026 - generated original version of source code. Binary wire decoding itself is out of
//       scope; DataFrame is the boundary contract the underlying protocol library is assumed to
//       hand back already decoded.
//
//******************************************************************************************************

package frameparser

import (
	"github.com/gpascada/phasoradapter/phasor/measurement"
	"github.com/gpascada/phasoradapter/phasor/ticks"
)

// PhasorValue is one phasor's polar components, already engineering-unit scaled.
type PhasorValue struct {
	Angle     float64
	Magnitude float64
}

// DataCell is one device's sample within a DataFrame.
type DataCell struct {
	IDCode      uint16
	StationName string
	Quality     measurement.QualityFlagsEnum

	Phasors   []PhasorValue
	Frequency float64
	DfDt      float64
	Analogs   []float64
	Digitals  []uint16
}

// DataFrame is a fully decoded data frame: one timestamp shared by every device cell reporting at
// that instant.
type DataFrame struct {
	Timestamp ticks.Ticks
	Cells     []DataCell
}
