//******************************************************************************************************
//  Sink.go - Gbtc
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

package mapper

import "github.com/gpascada/phasoradapter/phasor/measurement"

// Sink receives a batch of MappedMeasurements exactly once per processed data frame (§4.G step 5).
// Persistence, downstream bus delivery, and any further fan-out are the sink's concern, not the
// mapper's.
type Sink interface {
	Receive(measurements []measurement.Mapped)
}

// SinkFunc adapts a plain function to Sink, the way the teacher adapts plain callbacks for its
// SetXReceiver setters.
type SinkFunc func(measurements []measurement.Mapped)

// Receive calls f.
func (f SinkFunc) Receive(measurements []measurement.Mapped) {
	f(measurements)
}
