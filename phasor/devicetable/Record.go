//******************************************************************************************************
//  Record.go - Gbtc
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
//  07/30/2026 - generated original version of source code.
//
//******************************************************************************************************

package devicetable

import "github.com/gpascada/phasoradapter/phasor/ticks"

// Record is the configured expectation for one device, plus the counters the mapper maintains on
// frame arrival. Per the concurrency model, these counters are mutated only from the single parser
// event pipeline; readers (the status renderer) may observe torn values, which is acceptable.
type Record struct {
	IDCode      uint16
	Label       string
	StationName string
	ExternalTag uint32

	TotalFrames       uint64
	DataQualityErrors uint64
	TimeQualityErrors uint64
	DeviceErrors      uint64
	LastReportTime    ticks.Ticks
}

// UpdateLastReportTime advances LastReportTime only if the given timestamp is newer, keeping the
// per-device value monotonic non-decreasing the same way the adapter-wide lastReportTime is kept.
func (r *Record) UpdateLastReportTime(timestamp ticks.Ticks) {
	if timestamp > r.LastReportTime {
		r.LastReportTime = timestamp
	}
}

// ResetStatistics zeroes this device's counters, leaving its identity fields untouched. Used by
// the ResetDeviceStatistics command.
func (r *Record) ResetStatistics() {
	r.TotalFrames = 0
	r.DataQualityErrors = 0
	r.TimeQualityErrors = 0
	r.DeviceErrors = 0
	r.LastReportTime = 0
}
