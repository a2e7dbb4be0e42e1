//******************************************************************************************************
//  Mapper_test.go - Gbtc
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

import (
	"sync"
	"testing"
	"time"

	"github.com/gpascada/phasoradapter/phasor/cacheconfig"
	"github.com/gpascada/phasoradapter/phasor/data"
	"github.com/gpascada/phasoradapter/phasor/frameparser"
	"github.com/gpascada/phasoradapter/phasor/guid"
	"github.com/gpascada/phasoradapter/phasor/measurement"
	"github.com/gpascada/phasoradapter/phasor/phasorconfig"
	"github.com/gpascada/phasoradapter/phasor/ticks"
)

// fakeParser is a test double implementing frameparser.Parser whose lifecycle and emitted events
// are entirely driven by the test.
type fakeParser struct {
	events          chan frameparser.Event
	supportsCommand bool
	commands        []frameparser.DeviceCommand
	started         bool
	stopped         bool
}

func newFakeParser(supportsCommands bool) *fakeParser {
	return &fakeParser{events: make(chan frameparser.Event, 16), supportsCommand: supportsCommands}
}

func (p *fakeParser) Start() error {
	p.started = true
	return nil
}

func (p *fakeParser) Stop() {
	if !p.stopped {
		p.stopped = true
		close(p.events)
	}
}

func (p *fakeParser) Events() <-chan frameparser.Event { return p.events }

func (p *fakeParser) SupportsCommands() bool { return p.supportsCommand }

func (p *fakeParser) SendCommand(command frameparser.DeviceCommand) {
	p.commands = append(p.commands, command)
}

// recordingSink collects every batch Receive is called with, guarded by a mutex since the mapper
// delivers from its own run goroutine while the test observes from the main goroutine.
type recordingSink struct {
	mu      sync.Mutex
	batches [][]measurement.Mapped
}

func (s *recordingSink) Receive(measurements []measurement.Mapped) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches = append(s.batches, measurements)
}

func (s *recordingSink) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0

	for _, batch := range s.batches {
		count += len(batch)
	}

	return count
}

func (s *recordingSink) batchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.batches)
}

func buildSingleDeviceConfiguration(stationName string, acronym string, accessID uint16) *data.DataSet {
	dataSet := data.NewDataSet()

	devices := dataSet.CreateTable("InputStreamDevices")
	devices.AddColumn(devices.CreateColumn("ID", data.DataType.UInt32, ""))
	devices.AddColumn(devices.CreateColumn("AccessID", data.DataType.UInt16, ""))
	devices.AddColumn(devices.CreateColumn("Acronym", data.DataType.String, ""))
	devices.AddColumn(devices.CreateColumn("Name", data.DataType.String, ""))

	deviceRow := devices.CreateRow()
	deviceRow.SetValue(0, uint32(1))
	deviceRow.SetValue(1, accessID)
	deviceRow.SetValue(2, acronym)
	deviceRow.SetValue(3, stationName)
	devices.AddRow(deviceRow)
	dataSet.AddTable(devices)

	measurements := dataSet.CreateTable("ActiveMeasurements")
	measurements.AddColumn(measurements.CreateColumn("DeviceID", data.DataType.UInt32, ""))
	measurements.AddColumn(measurements.CreateColumn("SignalReference", data.DataType.String, ""))
	measurements.AddColumn(measurements.CreateColumn("SignalID", data.DataType.Guid, ""))
	measurements.AddColumn(measurements.CreateColumn("ID", data.DataType.String, ""))
	measurements.AddColumn(measurements.CreateColumn("Adder", data.DataType.Double, ""))
	measurements.AddColumn(measurements.CreateColumn("Multiplier", data.DataType.Double, ""))

	for _, signalRef := range []string{
		"TEST!IS-SF", "TEST!IS-PA1", "TEST!IS-PM1", "TEST!IS-FQ", "TEST!IS-DF",
	} {
		row := measurements.CreateRow()
		row.SetValue(0, uint32(1))
		row.SetValue(1, signalRef)
		row.SetValue(2, guid.New())
		row.SetValue(3, "PPA:1")
		row.SetValue(4, 0.0)
		row.SetValue(5, 1.0)
		measurements.AddRow(row)
	}

	dataSet.AddTable(measurements)

	return dataSet
}

func newTestMapper(t *testing.T, dataSet *data.DataSet, parser *fakeParser, sink *recordingSink) *Mapper {
	t.Helper()

	settings := phasorconfig.ConnectionSettings{AccessID: 1, TimeZone: "UTC"}

	var newParser ParserFactory = func(phasorconfig.ConnectionSettings) frameparser.Parser {
		return parser
	}

	m := New("TEST", settings, nil, nil, newParser, sink, nil, nil)
	m.loadTopology(dataSet, 1)

	if err := m.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	return m
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()

	deadline := time.Now().Add(time.Second)

	for time.Now().Before(deadline) {
		if condition() {
			return
		}

		time.Sleep(time.Millisecond)
	}

	t.Fatalf("condition not satisfied within deadline")
}

// S1: a single device's data frame maps to the expected measurements in the fixed emission order.
func TestExtractFrameMeasurementsSingleDevice(t *testing.T) {
	sink := &recordingSink{}
	parser := newFakeParser(true)
	dataSet := buildSingleDeviceConfiguration("TEST", "TEST", 1)
	m := newTestMapper(t, dataSet, parser, sink)

	frame := &frameparser.DataFrame{
		Timestamp: ticks.FromTime(time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)),
		Cells: []frameparser.DataCell{
			{
				IDCode:      1,
				StationName: "TEST",
				Quality:     measurement.QualityFlags.Normal,
				Phasors:     []frameparser.PhasorValue{{Angle: 12.5, Magnitude: 120000.0}},
				Frequency:   60.0,
				DfDt:        0.01,
			},
		},
	}

	m.extractFrameMeasurements(frame)

	if sink.batchCount() != 1 {
		t.Fatalf("expected exactly one sink delivery per frame, got %d", sink.batchCount())
	}

	batch := sink.batches[0]

	if len(batch) != 5 {
		t.Fatalf("expected 5 mapped measurements (status, angle, magnitude, frequency, dfdt), got %d", len(batch))
	}

	expectedOrder := []string{"TEST!IS-SF", "TEST!IS-PA1", "TEST!IS-PM1", "TEST!IS-FQ", "TEST!IS-DF"}

	for i, signalRef := range expectedOrder {
		if batch[i].SignalReference != signalRef {
			t.Fatalf("expected batch[%d].SignalReference == %q, got %q", i, signalRef, batch[i].SignalReference)
		}
	}

	if batch[2].AdjustedValue() != 120000.0 {
		t.Fatalf("unexpected magnitude value: %v", batch[2].AdjustedValue())
	}

	record, ok := m.DeviceTable().ByIDCode(1)

	if !ok {
		t.Fatalf("expected device record for idCode 1")
	}

	if record.TotalFrames != 1 {
		t.Fatalf("expected TotalFrames == 1, got %d", record.TotalFrames)
	}
}

// S2: a positive timeAdjustmentTicks setting shifts the timestamp used for order tracking.
func TestExtractFrameMeasurementsAppliesTimeAdjustment(t *testing.T) {
	sink := &recordingSink{}
	parser := newFakeParser(true)
	dataSet := buildSingleDeviceConfiguration("TEST", "TEST", 1)
	m := newTestMapper(t, dataSet, parser, sink)
	m.settings.TimeAdjustmentTicks = int64(ticks.PerSecond)

	baseTime := time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)
	frame := &frameparser.DataFrame{
		Timestamp: ticks.FromTime(baseTime),
		Cells: []frameparser.DataCell{
			{IDCode: 1, StationName: "TEST", Quality: measurement.QualityFlags.Normal, Frequency: 60.0},
		},
	}

	m.extractFrameMeasurements(frame)

	expected := uint64(ticks.FromTime(baseTime)) + uint64(ticks.PerSecond)

	if m.lastReportTime.Load() != expected {
		t.Fatalf("expected lastReportTime %d (base + 1s adjustment), got %d", expected, m.lastReportTime.Load())
	}
}

// S3: a frame with a timestamp at or before the last accepted frame is counted as out-of-order and
// does not advance lastReportTime.
func TestExtractFrameMeasurementsDetectsOutOfOrder(t *testing.T) {
	sink := &recordingSink{}
	parser := newFakeParser(true)
	dataSet := buildSingleDeviceConfiguration("TEST", "TEST", 1)
	m := newTestMapper(t, dataSet, parser, sink)

	later := time.Date(2026, 7, 31, 12, 0, 1, 0, time.UTC)
	earlier := time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)

	m.extractFrameMeasurements(&frameparser.DataFrame{
		Timestamp: ticks.FromTime(later),
		Cells:     []frameparser.DataCell{{IDCode: 1, StationName: "TEST", Frequency: 60.0}},
	})

	lastAfterFirst := m.lastReportTime.Load()

	m.extractFrameMeasurements(&frameparser.DataFrame{
		Timestamp: ticks.FromTime(earlier),
		Cells:     []frameparser.DataCell{{IDCode: 1, StationName: "TEST", Frequency: 60.0}},
	})

	if m.outOfOrderFrames.Load() != 1 {
		t.Fatalf("expected outOfOrderFrames == 1, got %d", m.outOfOrderFrames.Load())
	}

	if m.lastReportTime.Load() != lastAfterFirst {
		t.Fatalf("lastReportTime should not regress on an out-of-order frame")
	}
}

// S5: an unrecognized station name is counted as an undefined device and warned exactly once.
func TestExtractFrameMeasurementsWarnsOnceForUndefinedDevice(t *testing.T) {
	sink := &recordingSink{}
	parser := newFakeParser(true)
	dataSet := buildSingleDeviceConfiguration("TEST", "TEST", 1)

	var warnings []string
	var mu sync.Mutex

	settings := phasorconfig.ConnectionSettings{AccessID: 1, TimeZone: "UTC"}

	var newParser ParserFactory = func(phasorconfig.ConnectionSettings) frameparser.Parser {
		return parser
	}

	m := New("TEST", settings, nil, nil, newParser, sink, func(msg string) {
		mu.Lock()
		warnings = append(warnings, msg)
		mu.Unlock()
	}, nil)
	m.loadTopology(dataSet, 1)

	if err := m.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	frame := &frameparser.DataFrame{
		Timestamp: ticks.FromTime(time.Now()),
		Cells:     []frameparser.DataCell{{IDCode: 99, StationName: "GHOST", Frequency: 60.0}},
	}

	m.extractFrameMeasurements(frame)
	m.extractFrameMeasurements(frame)

	if sink.total() != 0 {
		t.Fatalf("expected no measurements emitted for an undefined device, got %d", sink.total())
	}

	if m.undefinedDevices.Count() != 1 {
		t.Fatalf("expected 1 distinct undefined device, got %d", m.undefinedDevices.Count())
	}

	mu.Lock()
	warningCount := len(warnings)
	mu.Unlock()

	if warningCount != 1 {
		t.Fatalf("expected exactly 1 undefined-device warning, got %d", warningCount)
	}
}

// S6: when no live configuration frame has been received, a received cached configuration
// satisfies LivenessMonitor's hook and transitions the mapper to Streaming.
func TestLoadCachedConfigurationTransitionsToStreaming(t *testing.T) {
	dir := t.TempDir()
	sink := &recordingSink{}
	parser := newFakeParser(true)
	dataSet := buildSingleDeviceConfiguration("TEST", "TEST", 1)

	store := cacheconfig.NewStore(dir)
	store.Cache("TEST", dataSet, func(string) {})
	store.Wait()

	settings := phasorconfig.ConnectionSettings{AccessID: 1, TimeZone: "UTC", AllowUseOfCachedConfiguration: true}

	var newParser ParserFactory = func(phasorconfig.ConnectionSettings) frameparser.Parser {
		return parser
	}

	m := New("TEST", settings, nil, store, newParser, sink, nil, nil)
	m.loadTopology(dataSet, 1)

	if err := m.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	m.setState(ConnectedNoConfig)
	m.LoadCachedConfiguration()

	if m.State() != Streaming {
		t.Fatalf("expected state Streaming after loading cached configuration, got %s", m.State())
	}

	if !m.receivedConfigFrame.Load() {
		t.Fatalf("expected receivedConfigFrame to be true after cached configuration load")
	}
}

// RestartConnectCycle must be a no-op once the mapper is disabled, otherwise a disconnect racing a
// reconnect would resurrect a connection the caller believes is torn down.
func TestRestartConnectCycleNoOpWhenDisabled(t *testing.T) {
	sink := &recordingSink{}
	parser := newFakeParser(true)
	dataSet := buildSingleDeviceConfiguration("TEST", "TEST", 1)
	m := newTestMapper(t, dataSet, parser, sink)

	m.enabled.UnSet()
	m.RestartConnectCycle()

	if m.reconnects.Load() != 0 {
		t.Fatalf("expected RestartConnectCycle to no-op while disabled")
	}
}

// AttemptConnection followed by AttemptDisconnection must leave the mapper able to connect again
// without leaking the LivenessMonitor's ticker goroutine (livenessStarted must return to false).
func TestConnectDisconnectCycleResetsLivenessStarted(t *testing.T) {
	sink := &recordingSink{}
	parser := newFakeParser(true)
	dataSet := buildSingleDeviceConfiguration("TEST", "TEST", 1)
	m := newTestMapper(t, dataSet, parser, sink)

	if err := m.AttemptConnection(); err != nil {
		t.Fatalf("AttemptConnection failed: %v", err)
	}

	waitFor(t, func() bool {
		m.stateMu.Lock()
		defer m.stateMu.Unlock()
		return m.livenessStarted
	})

	m.AttemptDisconnection()

	m.stateMu.Lock()
	started := m.livenessStarted
	m.stateMu.Unlock()

	if started {
		t.Fatalf("expected livenessStarted to be false after AttemptDisconnection")
	}

	if m.State() != Idle {
		t.Fatalf("expected state Idle after AttemptDisconnection, got %s", m.State())
	}
}
