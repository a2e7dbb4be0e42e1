//******************************************************************************************************
//  Monitor.go - Gbtc
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
//  07/31/2026 - generated original version of source code, grounded on
//       transport.SubscriberConnector.waitForRetry's timer/channel shape and its use of
//       abool.AtomicBool for the cancel flag.
//
//******************************************************************************************************

// Package liveness detects data starvation and absent configuration frames on a periodic tick,
// triggering cached-configuration recovery or a connect-cycle restart.
package liveness

import (
	"time"

	"github.com/tevino/abool/v2"
)

// Hooks is the callback surface Monitor drives on each tick. All methods may be called from the
// monitor's own timer goroutine.
type Hooks interface {
	// BytesReceivedSinceTick returns the byte count accumulated since the last tick.
	BytesReceivedSinceTick() uint64
	// ResetBytesReceived zeroes the byte counter for the next interval.
	ResetBytesReceived()
	// ReceivedConfigurationFrame reports whether a configuration frame has been received on the
	// current connection.
	ReceivedConfigurationFrame() bool
	// ParserSupportsCommands reports whether the frame parser can be sent commands (and thus
	// whether a connect-cycle restart can be requested of it).
	ParserSupportsCommands() bool
	// AllowCachedConfiguration reports the allowUseOfCachedConfiguration setting.
	AllowCachedConfiguration() bool
	// LoadCachedConfiguration asks the mapper to inject the cached configuration frame.
	LoadCachedConfiguration()
	// RestartConnectCycle asks the mapper to tear down and restart the connection.
	RestartConnectCycle()
	// ReportMessage surfaces a status/diagnostic message to the host.
	ReportMessage(message string)
}

// Monitor runs the periodic liveness tick described in 4.F.
type Monitor struct {
	interval time.Duration
	hooks    Hooks

	enabled abool.AtomicBool

	ticker *time.Ticker
	stop   chan struct{}

	cachedConfigLoadAttempted bool
}

// New creates a Monitor with the given tick interval and callback hooks. The monitor starts
// disabled; call Enable to begin driving ticks once a connection is established.
func New(interval time.Duration, hooks Hooks) *Monitor {
	return &Monitor{interval: interval, hooks: hooks}
}

// Start launches the monitor's timer goroutine. Safe to call once per Monitor lifetime; pair with
// Stop on adapter teardown.
func (m *Monitor) Start() {
	m.ticker = time.NewTicker(m.interval)
	m.stop = make(chan struct{})

	go func() {
		for {
			select {
			case <-m.ticker.C:
				m.Tick()
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop terminates the timer goroutine and releases the underlying ticker.
func (m *Monitor) Stop() {
	if m.ticker != nil {
		m.ticker.Stop()
	}

	if m.stop != nil {
		close(m.stop)
	}
}

// Enable arms the monitor to act on ticks; also resets the once-per-connection cached-config-load
// latch, since Enable is called at the start of a new connection.
func (m *Monitor) Enable() {
	m.cachedConfigLoadAttempted = false
	m.enabled.Set()
}

// Disable arms the monitor to ignore ticks until Enable is called again.
func (m *Monitor) Disable() {
	m.enabled.UnSet()
}

// Enabled reports whether the monitor currently acts on ticks.
func (m *Monitor) Enabled() bool {
	return m.enabled.IsSet()
}

// CachedConfigLoadAttempted reports whether LoadCachedConfiguration has already been invoked for
// the current connection (invariant 5: false→true at most once per connection).
func (m *Monitor) CachedConfigLoadAttempted() bool {
	return m.cachedConfigLoadAttempted
}

// Tick runs one liveness evaluation per 4.F's three numbered steps. Exported so tests can drive it
// deterministically instead of waiting on the real ticker.
func (m *Monitor) Tick() {
	if m.enabled.IsNotSet() {
		return
	}

	defer m.hooks.ResetBytesReceived()

	if m.hooks.BytesReceivedSinceTick() == 0 {
		if m.hooks.ParserSupportsCommands() {
			m.enabled.UnSet()
			m.hooks.ReportMessage("no data received since last liveness check, restarting connection")
			m.hooks.RestartConnectCycle()
		}

		return
	}

	if !m.hooks.ReceivedConfigurationFrame() && m.hooks.AllowCachedConfiguration() {
		if !m.cachedConfigLoadAttempted {
			m.cachedConfigLoadAttempted = true
			m.hooks.LoadCachedConfiguration()
		} else if m.hooks.ParserSupportsCommands() {
			m.hooks.RestartConnectCycle()
		}
	}
}
