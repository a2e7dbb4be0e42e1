//******************************************************************************************************
//  Parser.go - Gbtc
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

package frameparser

// DeviceCommand identifies an administrative command sendable to the underlying protocol library,
// mirroring the small fixed command set real synchrophasor devices accept (e.g. IEEE C37.118's
// turn-on/turn-off-data-frames, send-configuration-frame commands).
type DeviceCommand int

const (
	// SendConfigurationFrame1 requests the device's primary configuration frame.
	SendConfigurationFrame1 DeviceCommand = iota
	// SendConfigurationFrame2 requests the device's extended configuration frame.
	SendConfigurationFrame2
	// EnableRealTimeData requests the device begin streaming data frames.
	EnableRealTimeData
	// DisableRealTimeData requests the device stop streaming data frames.
	DisableRealTimeData
)

// Parser is the opaque protocol-library boundary: it owns the wire connection to a single PMU/PDC
// and reports everything that happens on it as a stream of Events. Binary decoding of a specific
// synchrophasor dialect (IEEE C37.118, IEEE 1344, BPA PDCstream, …) lives entirely behind this
// interface and is out of scope here.
type Parser interface {
	// Start begins (or resumes) the connection attempt. Events, including ConnectionAttempt and
	// eventually ConnectionEstablished or ConnectionException, are delivered on Events().
	Start() error
	// Stop tears down the connection. In-flight event delivery is allowed to drain.
	Stop()
	// Events returns the channel Event values are delivered on for the lifetime of the Parser.
	Events() <-chan Event
	// SupportsCommands reports whether SendCommand has any effect for this parser/device pairing.
	// Some devices are receive-only; LivenessMonitor only asks for a connect-cycle restart when
	// this is true (4.F step 1).
	SupportsCommands() bool
	// SendCommand forwards an administrative command to the device. A no-op, not an error, when
	// SupportsCommands is false.
	SendCommand(command DeviceCommand)
}
