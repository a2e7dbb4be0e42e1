//******************************************************************************************************
//  ConnectionLifecycle.go - Gbtc
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
//  07/31/2026 - generated original version of source code. The connect/reconnect cycle and the
//       dispatch table for frame-parser events is grounded on transport.SubscriberConnector's
//       connect/autoReconnect/waitForRetry shape, generalized from a single DataSubscriber to the
//       mapper's Parser abstraction; LivenessMonitor wiring is grounded on 4.F.
//
//******************************************************************************************************

package mapper

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gpascada/phasoradapter/phasor/configsource"
	"github.com/gpascada/phasoradapter/phasor/data"
	"github.com/gpascada/phasoradapter/phasor/frameparser"
	phmetrics "github.com/gpascada/phasoradapter/phasor/metrics"
	"github.com/gpascada/phasoradapter/phasor/thread"
)

// AttemptConnection resets per-connection state and starts a fresh Parser. Per 4.G: lastReportTime,
// bytesReceived, outOfOrderFrames, and receivedConfigFrame are reset here for the new connection;
// the LivenessMonitor's cachedConfigLoadAttempted latch is reset when the monitor is enabled on
// ConnectionEstablished.
func (m *Mapper) AttemptConnection() error {
	m.enabled.Set()
	m.resetConnectionState()

	m.connectionAttempts.Add(1)
	m.log.Info("attempting connection")

	m.stateMu.Lock()
	if m.liveness != nil && !m.livenessStarted {
		m.liveness.Start()
		m.livenessStarted = true
	}
	m.state = Connecting
	m.stateMu.Unlock()

	parser := m.newParser(m.settings)
	m.parser = parser

	stopRun := make(chan struct{})
	m.stopRun = stopRun

	runThread := thread.NewThread(func() { m.run(parser.Events(), stopRun) })
	m.runThread = runThread
	runThread.Start()

	if err := parser.Start(); err != nil {
		m.reportError(fmt.Sprintf("failed to start frame parser: %v", err))
		return err
	}

	return nil
}

// AttemptDisconnection disables the LivenessMonitor first, then stops the parser, per §5's
// cancellation ordering. In-flight frame processing is allowed to complete; there is no hard
// cancellation of work already begun. It blocks on runThread.Join so that the event pipeline
// goroutine has fully exited before the adapter is reported Idle, closing the race where a caller
// reconnects (or reads Mapper state) while the prior connection's goroutine is still unwinding.
func (m *Mapper) AttemptDisconnection() {
	m.enabled.UnSet()

	m.stateMu.Lock()
	if m.liveness != nil && m.livenessStarted {
		m.liveness.Disable()
		m.liveness.Stop()
		m.livenessStarted = false
	}
	m.stateMu.Unlock()

	if m.parser != nil {
		m.parser.Stop()
	}

	if m.stopRun != nil {
		close(m.stopRun)
		m.stopRun = nil
	}

	if m.runThread != nil {
		m.runThread.Join()
		m.runThread = nil
	}

	m.setState(Idle)
}

func (m *Mapper) resetConnectionState() {
	m.lastReportTime.Store(0)
	m.bytesReceived.Store(0)
	m.outOfOrderFrames.Store(0)
	m.receivedConfigFrame.Store(false)
	m.minLatency.Store(0)
	m.maxLatency.Store(0)
	m.totalLatency.Store(0)
	m.latencyCount.Store(0)
	m.firstConfigSinceConnect.Store(true)
}

// SendCommand forwards an administrative command to the frame parser, if one is currently
// attached. A no-op when disconnected.
func (m *Mapper) SendCommand(command frameparser.DeviceCommand) {
	if m.parser != nil {
		m.parser.SendCommand(command)
	}
}

// ResetStatistics zeroes the mapper's adapter-wide counters (not per-device counters).
func (m *Mapper) ResetStatistics() {
	m.connectionAttempts.Store(0)
	m.reconnects.Store(0)
	m.framesProcessed.Store(0)
	m.outOfOrderFrames.Store(0)
	m.minLatency.Store(0)
	m.maxLatency.Store(0)
	m.totalLatency.Store(0)
	m.latencyCount.Store(0)
	m.undefinedDevices.Reset()
}

// ResetDeviceStatistics zeroes the per-device counters for one device, identified by its wire
// idCode.
func (m *Mapper) ResetDeviceStatistics(idCode uint16) {
	if record, ok := m.DeviceTable().ByIDCode(idCode); ok {
		record.ResetStatistics()
	}
}

// run is the single parser-event-pipeline goroutine for one connection. It exits when the events
// channel closes (Parser.Stop was called and has finished draining) or stopSignal closes
// (AttemptDisconnection).
func (m *Mapper) run(events <-chan frameparser.Event, stopSignal chan struct{}) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}

			m.handleEvent(event)
		case <-stopSignal:
			return
		}
	}
}

// handleEvent dispatches one FrameEvent per the response table in 4.E.
func (m *Mapper) handleEvent(event frameparser.Event) {
	switch event.Kind {
	case frameparser.ConnectionAttempt:
		m.log.Info("connection attempt")

	case frameparser.ConnectionEstablished:
		m.backOff.Reset()
		m.setState(ConnectedNoConfig)

		if m.parser.SupportsCommands() || m.settings.AllowUseOfCachedConfiguration {
			m.liveness.Enable()
		}

		m.reportMessage("connection established")

	case frameparser.ConnectionException:
		m.reportError(fmt.Sprintf("connection exception: %v", event.Err))
		m.RestartConnectCycle()

	case frameparser.ConnectionTerminated:
		m.reportMessage("connection terminated")
		m.RestartConnectCycle()

	case frameparser.ReceivedConfigurationFrame:
		m.handleReceivedConfigurationFrame(event.ConfigFrame)

	case frameparser.ReceivedDataFrame:
		m.extractFrameMeasurements(event.DataFrame)

	case frameparser.ReceivedHeaderFrame:
		m.log.Debug("received header frame")

	case frameparser.ReceivedFrameBufferImage:
		m.bytesReceived.Add(uint64(event.ByteCount))

	case frameparser.ParsingException:
		m.reportError(fmt.Sprintf("parsing exception: %v", event.Err))

	case frameparser.ExceededParsingExceptionThreshold:
		m.reportError("exceeded parsing exception threshold")
		m.RestartConnectCycle()

	case frameparser.ConfigurationChanged:
		m.receivedConfigFrame.Store(false)
		m.setState(ConnectedNoConfig)

		if m.liveness != nil {
			m.liveness.Disable()
			m.liveness.Enable()
		}

		m.SendCommand(frameparser.SendConfigurationFrame2)
	}
}

func (m *Mapper) handleReceivedConfigurationFrame(frame *data.DataSet) {
	// Invariant 5: only the first configuration frame after (re)connection persists to cache;
	// subsequent receipts are tracked but do not re-trigger a write.
	if m.firstConfigSinceConnect.CompareAndSwap(true, false) && m.cacheStore != nil && frame != nil {
		m.cacheStore.Cache(m.name, frame, m.reportError)
	}

	m.receivedConfigFrame.Store(true)
	m.setState(Streaming)
}

// RestartConnectCycle tears down the current connection and schedules a fresh AttemptConnection
// after an exponential back-off delay, as long as the adapter remains enabled. This implements
// liveness.Hooks and is also invoked directly from handleEvent for connection-level failures.
func (m *Mapper) RestartConnectCycle() {
	if m.enabled.IsNotSet() {
		return
	}

	if m.liveness != nil {
		m.liveness.Disable()
	}

	if m.parser != nil {
		m.parser.Stop()
	}

	m.reconnects.Add(1)
	phmetrics.Reconnects.Inc()
	m.setState(Connecting)

	delay := m.backOff.NextBackOff()

	if delay == backoff.Stop {
		delay = 30 * time.Second
	}

	time.AfterFunc(delay, func() {
		if m.enabled.IsSet() {
			if err := m.AttemptConnection(); err != nil {
				m.reportError(fmt.Sprintf("reconnect attempt failed: %v", err))
			}
		}
	})
}

// LoadCachedConfiguration asks the ConfigurationCacheStore for the last-known-good configuration
// and, if present, applies it. Implements both the §6 admin command and liveness.Hooks.
func (m *Mapper) LoadCachedConfiguration() {
	if m.cacheStore == nil {
		m.reportError("no configuration cache store configured")
		return
	}

	frame, err := m.cacheStore.Load(m.name)

	if err != nil {
		m.reportError(fmt.Sprintf("failed to load cached configuration: %v", err))
		return
	}

	if frame == nil {
		phmetrics.CacheMisses.Inc()
		m.reportMessage(fmt.Sprintf("no cached configuration available for %q", m.name))
		return
	}

	phmetrics.CacheHits.Inc()
	m.applyConfigurationFrame(frame)
}

// LoadConfiguration reads a configuration frame from path (bypassing the wire) and applies it,
// rebuilding the DeviceTable/Catalog if the file carries full topology tables.
func (m *Mapper) LoadConfiguration(path string) error {
	source := configsource.NewFile(path)

	frame, err := source.Load()

	if err != nil {
		return err
	}

	if frame.Table("InputStreamDevices") != nil || frame.Table("ActiveMeasurements") != nil {
		queryID, qErr := m.effectiveQueryID()

		if qErr != nil {
			queryID = uint32(m.settings.AccessID)
		}

		m.loadTopology(frame, queryID)
	}

	m.applyConfigurationFrame(frame)

	return nil
}

func (m *Mapper) applyConfigurationFrame(frame *data.DataSet) {
	m.receivedConfigFrame.Store(true)
	m.setState(Streaming)
}

// --- liveness.Hooks ---

// BytesReceivedSinceTick implements liveness.Hooks.
func (m *Mapper) BytesReceivedSinceTick() uint64 {
	return m.bytesReceived.Load()
}

// ResetBytesReceived implements liveness.Hooks.
func (m *Mapper) ResetBytesReceived() {
	m.bytesReceived.Store(0)
}

// ReceivedConfigurationFrame implements liveness.Hooks.
func (m *Mapper) ReceivedConfigurationFrame() bool {
	return m.receivedConfigFrame.Load()
}

// ParserSupportsCommands implements liveness.Hooks.
func (m *Mapper) ParserSupportsCommands() bool {
	return m.parser != nil && m.parser.SupportsCommands()
}

// AllowCachedConfiguration implements liveness.Hooks.
func (m *Mapper) AllowCachedConfiguration() bool {
	return m.settings.AllowUseOfCachedConfiguration
}

// ReportMessage implements liveness.Hooks.
func (m *Mapper) ReportMessage(message string) {
	m.reportMessage(message)
}
