//******************************************************************************************************
//  FrameEvent.go - Gbtc
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
//  07/31/2026 - generated original version of source code, replacing a delegate-list callback
//       surface (compare sttp/transport/SubscriberConnector's *Callback fields) with a single typed
//       event delivered over a channel.
//
//******************************************************************************************************

// Package frameparser is the opaque event source wrapping the underlying phasor protocol library:
// it emits a single FrameEvent stream that MeasurementMapper's run loop consumes.
package frameparser

import "github.com/gpascada/phasoradapter/phasor/data"

// Kind identifies the type of a FrameEvent.
type Kind int

const (
	// ConnectionAttempt is emitted when a connection attempt begins.
	ConnectionAttempt Kind = iota
	// ConnectionEstablished is emitted once a connection succeeds.
	ConnectionEstablished
	// ConnectionException is emitted when a connection attempt or an established connection fails.
	ConnectionException
	// ConnectionTerminated is emitted when an established connection is closed.
	ConnectionTerminated
	// ReceivedConfigurationFrame is emitted when a configuration frame is decoded.
	ReceivedConfigurationFrame
	// ReceivedDataFrame is emitted when a data frame is decoded.
	ReceivedDataFrame
	// ReceivedHeaderFrame is emitted when a header frame is decoded.
	ReceivedHeaderFrame
	// ReceivedFrameBufferImage is emitted for every chunk of bytes read off the wire, independent
	// of whether those bytes completed a frame.
	ReceivedFrameBufferImage
	// ParsingException is emitted when a frame fails to decode.
	ParsingException
	// ExceededParsingExceptionThreshold is emitted once too many ParsingException events have
	// accumulated within the parser's own window.
	ExceededParsingExceptionThreshold
	// ConfigurationChanged is emitted when the source signals that its configuration has changed,
	// without itself carrying the new configuration frame.
	ConfigurationChanged
)

// String names a Kind for logging.
func (k Kind) String() string {
	switch k {
	case ConnectionAttempt:
		return "ConnectionAttempt"
	case ConnectionEstablished:
		return "ConnectionEstablished"
	case ConnectionException:
		return "ConnectionException"
	case ConnectionTerminated:
		return "ConnectionTerminated"
	case ReceivedConfigurationFrame:
		return "ReceivedConfigurationFrame"
	case ReceivedDataFrame:
		return "ReceivedDataFrame"
	case ReceivedHeaderFrame:
		return "ReceivedHeaderFrame"
	case ReceivedFrameBufferImage:
		return "ReceivedFrameBufferImage"
	case ParsingException:
		return "ParsingException"
	case ExceededParsingExceptionThreshold:
		return "ExceededParsingExceptionThreshold"
	case ConfigurationChanged:
		return "ConfigurationChanged"
	default:
		return "Unknown"
	}
}

// Event is the single typed payload MeasurementMapper's run loop receives per parser occurrence.
// Only the fields relevant to Kind are populated; the others are left at their zero value.
type Event struct {
	Kind Kind

	// ConfigFrame carries the decoded configuration frame for ReceivedConfigurationFrame: one row
	// per device, keyed by IDCode, with its current phasor/analog/digital signal counts.
	ConfigFrame *data.DataSet

	// DataFrame carries the decoded data frame for ReceivedDataFrame.
	DataFrame *DataFrame

	// Err carries the failure for ConnectionException and ParsingException.
	Err error

	// ByteCount carries the chunk size for ReceivedFrameBufferImage.
	ByteCount int
}
