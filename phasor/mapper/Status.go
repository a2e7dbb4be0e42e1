//******************************************************************************************************
//  Status.go - Gbtc
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
//  07/31/2026 - generated original version of source code. UndefinedDeviceCounter is grounded on
//       §5's "mutated under a dedicated mutex" note; GetShortStatus is grounded on the teacher's
//       Subscriber status-line rendering, using phasor/format's thousands-separated numbers.
//
//******************************************************************************************************

package mapper

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gpascada/phasoradapter/phasor/format"
)

// UndefinedDeviceCounter tracks station names encountered in the stream that did not resolve to a
// configured DeviceRecord. It is mutated under its own mutex rather than the mapper's stateMu or
// the lock-free atomics covering per-connection statistics, since its map is not amenable to
// lock-free copy-on-write the way DeviceTable/Catalog snapshots are.
type UndefinedDeviceCounter struct {
	mu     sync.Mutex
	counts map[string]uint64
}

func newUndefinedDeviceCounter() *UndefinedDeviceCounter {
	return &UndefinedDeviceCounter{counts: make(map[string]uint64)}
}

// Increment bumps the sighting count for stationName and returns the new count. A return value of
// 1 tells the caller this is the first sighting, warranting a one-time warning.
func (u *UndefinedDeviceCounter) Increment(stationName string) uint64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.counts[stationName]++

	return u.counts[stationName]
}

// Count returns the number of distinct undefined station names seen since the last Reset.
func (u *UndefinedDeviceCounter) Count() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return len(u.counts)
}

// Reset clears all undefined-device sightings.
func (u *UndefinedDeviceCounter) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.counts = make(map[string]uint64)
}

// GetShortStatus renders a single status line for this adapter: connection state, uptime, frames
// processed, device count, and the out-of-order/undefined-device/reconnect counters, truncated to
// maxLen. A maxLen of 0 or less returns the untruncated line.
func (m *Mapper) GetShortStatus(maxLen int) string {
	uptime := time.Duration(0)

	if !m.startedAt.IsZero() {
		uptime = time.Since(m.startedAt)
	}

	line := fmt.Sprintf(
		"%s: %s, up %s, %s frames, %d devices, %s out-of-order, %d undefined devices, %s reconnects",
		m.name,
		m.State(),
		uptime.Round(time.Second),
		format.UInt64(m.framesProcessed.Load()),
		m.DeviceTable().Count(),
		format.UInt64(m.outOfOrderFrames.Load()),
		m.undefinedDevices.Count(),
		format.UInt64(m.reconnects.Load()),
	)

	if maxLen > 0 && len(line) > maxLen {
		if maxLen <= 3 {
			return line[:maxLen]
		}

		return strings.TrimSpace(line[:maxLen-3]) + "..."
	}

	return line
}
