//******************************************************************************************************
//  SignalKind.go - Gbtc
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
//  07/30/2026 - adapted for the ten adapter-level signal kinds (no Alarm kind).
//
//******************************************************************************************************

package signalkind

import "strings"

// Enum defines the type for the SignalKind enumeration.
type Enum uint16

// SignalKind is an enumeration of the possible kinds of signals a ParsedMeasurement can represent.
var SignalKind = struct {
	// Status defines a status flags signal kind.
	Status Enum
	// Angle defines a phase angle signal kind (could be a voltage or a current).
	Angle Enum
	// Magnitude defines a phase magnitude signal kind (could be a voltage or a current).
	Magnitude Enum
	// Frequency defines a line frequency signal kind.
	Frequency Enum
	// DfDt defines a frequency delta over time (dF/dt) signal kind.
	DfDt Enum
	// Analog defines an analog value signal kind.
	Analog Enum
	// Digital defines a digital value signal kind.
	Digital Enum
	// Quality defines a quality flags signal kind.
	Quality Enum
	// Calculation defines a calculated value signal kind.
	Calculation Enum
	// Statistic defines a statistical value signal kind.
	Statistic Enum
	// Unknown defines an undetermined signal kind.
	Unknown Enum
}{
	Status:      0,
	Angle:       1,
	Magnitude:   2,
	Frequency:   3,
	DfDt:        4,
	Analog:      5,
	Digital:     6,
	Quality:     7,
	Calculation: 8,
	Statistic:   9,
	Unknown:     10,
}

// String gets the SignalKind enumeration value as a string.
func (ske Enum) String() string {
	switch ske {
	case SignalKind.Status:
		return "Status"
	case SignalKind.Angle:
		return "Angle"
	case SignalKind.Magnitude:
		return "Magnitude"
	case SignalKind.Frequency:
		return "Frequency"
	case SignalKind.DfDt:
		return "DfDt"
	case SignalKind.Analog:
		return "Analog"
	case SignalKind.Digital:
		return "Digital"
	case SignalKind.Quality:
		return "Quality"
	case SignalKind.Calculation:
		return "Calculation"
	case SignalKind.Statistic:
		return "Statistic"
	default:
		return "Unknown"
	}
}

// Acronym gets the SignalKind enumeration value as its two-character acronym string, matching the
// signal reference grammar of `<adapterName>!IS-<kindCode>[ordinal]`.
func (ske Enum) Acronym() string {
	switch ske {
	case SignalKind.Status:
		return "SF"
	case SignalKind.Angle:
		return "PA"
	case SignalKind.Magnitude:
		return "PM"
	case SignalKind.Frequency:
		return "FQ"
	case SignalKind.DfDt:
		return "DF"
	case SignalKind.Analog:
		return "AV"
	case SignalKind.Digital:
		return "DV"
	case SignalKind.Quality:
		return "QF"
	case SignalKind.Calculation:
		return "CV"
	case SignalKind.Statistic:
		return "ST"
	default:
		return "??"
	}
}

// ParseAcronym gets the SignalKind enumeration value for the specified two-character acronym.
func ParseAcronym(acronym string) Enum {
	switch strings.TrimSpace(strings.ToUpper(acronym)) {
	case "SF":
		return SignalKind.Status
	case "PA":
		return SignalKind.Angle
	case "PM":
		return SignalKind.Magnitude
	case "FQ":
		return SignalKind.Frequency
	case "DF":
		return SignalKind.DfDt
	case "AV":
		return SignalKind.Analog
	case "DV":
		return SignalKind.Digital
	case "QF":
		return SignalKind.Quality
	case "CV":
		return SignalKind.Calculation
	case "ST":
		return SignalKind.Statistic
	default:
		return SignalKind.Unknown
	}
}

// All lists every defined SignalKind in the order devices typically assign ordinals.
var All = []Enum{
	SignalKind.Status,
	SignalKind.Angle,
	SignalKind.Magnitude,
	SignalKind.Frequency,
	SignalKind.DfDt,
	SignalKind.Analog,
	SignalKind.Digital,
	SignalKind.Quality,
	SignalKind.Calculation,
	SignalKind.Statistic,
}
