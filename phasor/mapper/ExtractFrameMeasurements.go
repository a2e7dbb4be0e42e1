//******************************************************************************************************
//  ExtractFrameMeasurements.go - Gbtc
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
//  07/31/2026 - generated original version of source code, the hot path implementing 4.G's five
//       numbered steps.
//
//******************************************************************************************************

package mapper

import (
	"fmt"
	"time"

	"github.com/gpascada/phasoradapter/phasor/catalog"
	"github.com/gpascada/phasoradapter/phasor/devicetable"
	"github.com/gpascada/phasoradapter/phasor/frameparser"
	"github.com/gpascada/phasoradapter/phasor/measurement"
	phmetrics "github.com/gpascada/phasoradapter/phasor/metrics"
	"github.com/gpascada/phasoradapter/phasor/signalkind"
	"github.com/gpascada/phasoradapter/phasor/ticks"
)

// extractFrameMeasurements is the hot path: it runs on every decoded data frame, potentially tens
// of thousands of times per second, so everything here avoids allocation beyond the per-frame
// output batch.
func (m *Mapper) extractFrameMeasurements(frame *frameparser.DataFrame) {
	if frame == nil {
		return
	}

	// 1. Time normalization.
	timestamp, err := ticks.ToUTC(frame.Timestamp, m.settings.TimeZone)

	if err != nil {
		m.reportError(fmt.Sprintf("failed to convert frame timestamp from zone %q: %v", m.settings.TimeZone, err))
		timestamp = frame.Timestamp
	}

	timestamp = addSignedTicks(timestamp, m.settings.TimeAdjustmentTicks)

	// 2. Order tracking.
	for {
		last := m.lastReportTime.Load()

		if uint64(timestamp) <= last {
			m.outOfOrderFrames.Add(1)
			phmetrics.OutOfOrderFrames.Inc()
			break
		}

		if m.lastReportTime.CompareAndSwap(last, uint64(timestamp)) {
			break
		}
	}

	// 3. Latency sampling.
	receivedTimestamp := ticks.FromTime(time.Now())
	m.sampleLatency(int64(receivedTimestamp) - int64(timestamp))

	// 4. Per-device loop.
	// TODO: this frame's DeviceTable/Catalog snapshot is taken once here and used for every cell;
	// a ConfigurationChanged swap concurrent with this call is still possible between the load and
	// the last cell's mapping, so a frame straddling a reconfiguration may mix old and new tables.
	table := m.DeviceTable()
	measurementCatalog := m.Catalog()
	batch := make([]measurement.Mapped, 0, len(frame.Cells)*4)

	for i := range frame.Cells {
		cell := frame.Cells[i]
		batch = m.mapCellSafely(table, measurementCatalog, cell, timestamp, batch)
	}

	// 5. Emit — exactly once per frame.
	m.framesProcessed.Add(1)
	phmetrics.FramesProcessed.Inc()
	phmetrics.MeasurementsEmitted.Add(float64(len(batch)))

	if m.sink != nil {
		m.sink.Receive(batch)
	}
}

// mapCellSafely wraps mapDeviceCell in a recover so a fault mapping one device cell is reported
// and isolated, per §5/§7's per-device fault isolation: other devices in the same frame are
// unaffected.
func (m *Mapper) mapCellSafely(
	table *devicetable.Table,
	measurementCatalog *catalog.Catalog,
	cell frameparser.DataCell,
	timestamp ticks.Ticks,
	batch []measurement.Mapped,
) (result []measurement.Mapped) {
	result = batch

	defer func() {
		if r := recover(); r != nil {
			m.reportError(fmt.Sprintf("error mapping device %q (idCode %d): %v", cell.StationName, cell.IDCode, r))
			result = batch
		}
	}()

	result = m.mapDeviceCell(table, measurementCatalog, cell, timestamp, batch)

	return result
}

// mapDeviceCell resolves one DataCell's DeviceRecord, updates its counters, and appends its
// mapped measurements to batch in the fixed order required by 4.G step 4.c.
func (m *Mapper) mapDeviceCell(
	table *devicetable.Table,
	measurementCatalog *catalog.Catalog,
	cell frameparser.DataCell,
	timestamp ticks.Ticks,
	batch []measurement.Mapped,
) []measurement.Mapped {
	record, ok := table.Resolve(cell.IDCode, cell.StationName)

	if !ok {
		m.recordUndefinedDevice(cell.StationName)
		return batch
	}

	record.UpdateLastReportTime(timestamp)
	record.TotalFrames++

	if cell.Quality.HasDataQualityError() {
		record.DataQualityErrors++
	}

	if cell.Quality.HasTimeQualityError() {
		record.TimeQualityErrors++
	}

	if cell.Quality.HasDeviceError() {
		record.DeviceErrors++
	}

	parsed := func(value float64) measurement.Parsed {
		return measurement.Parsed{Value: value, Timestamp: timestamp, Quality: cell.Quality}
	}

	batch = m.mapAttributes(batch, m.signalCache.Get(signalkind.SignalKind.Status), parsed(float64(cell.Quality)), measurementCatalog)

	phasorCount := len(cell.Phasors)

	for index, phasor := range cell.Phasors {
		angleRef := m.signalCache.GetIndexed(signalkind.SignalKind.Angle, index, phasorCount)
		batch = m.mapAttributes(batch, angleRef, parsed(phasor.Angle), measurementCatalog)

		magnitudeRef := m.signalCache.GetIndexed(signalkind.SignalKind.Magnitude, index, phasorCount)
		batch = m.mapAttributes(batch, magnitudeRef, parsed(phasor.Magnitude), measurementCatalog)
	}

	batch = m.mapAttributes(batch, m.signalCache.Get(signalkind.SignalKind.Frequency), parsed(cell.Frequency), measurementCatalog)
	batch = m.mapAttributes(batch, m.signalCache.Get(signalkind.SignalKind.DfDt), parsed(cell.DfDt), measurementCatalog)

	analogCount := len(cell.Analogs)

	for index, value := range cell.Analogs {
		analogRef := m.signalCache.GetIndexed(signalkind.SignalKind.Analog, index, analogCount)
		batch = m.mapAttributes(batch, analogRef, parsed(value), measurementCatalog)
	}

	digitalCount := len(cell.Digitals)

	for index, value := range cell.Digitals {
		digitalRef := m.signalCache.GetIndexed(signalkind.SignalKind.Digital, index, digitalCount)
		batch = m.mapAttributes(batch, digitalRef, parsed(float64(value)), measurementCatalog)
	}

	return batch
}

// mapAttributes looks up signalRef in the MeasurementCatalog; if absent, the parsed value is
// silently dropped (not all wire signals are subscribed). Otherwise the descriptor's identity
// fields overwrite parsed's zero identity, and the result is appended to batch. The timestamp and
// value already present on parsed are preserved unchanged.
func (m *Mapper) mapAttributes(
	batch []measurement.Mapped,
	signalRef string,
	parsed measurement.Parsed,
	measurementCatalog *catalog.Catalog,
) []measurement.Mapped {
	descriptor := measurementCatalog.Get(signalRef)

	if descriptor == nil {
		return batch
	}

	return append(batch, measurement.NewMapped(parsed, descriptor))
}

// sampleLatency updates the rolling min/max/total latency accumulators using initialize-on-zero
// semantics: a zero min/max is treated as "unset" and is unconditionally overwritten by the first
// sample (4.G step 3).
func (m *Mapper) sampleLatency(latencyTicks int64) {
	milliseconds := float64(latencyTicks) / float64(ticks.PerMillisecond)
	phmetrics.FrameLatencyMilliseconds.Observe(milliseconds)

	m.totalLatency.Add(latencyTicks)
	m.latencyCount.Add(1)

	for {
		min := m.minLatency.Load()

		if min != 0 && latencyTicks >= min {
			break
		}

		if m.minLatency.CompareAndSwap(min, latencyTicks) {
			break
		}
	}

	for {
		max := m.maxLatency.Load()

		if latencyTicks <= max {
			break
		}

		if m.maxLatency.CompareAndSwap(max, latencyTicks) {
			break
		}
	}
}

// recordUndefinedDevice bumps the UndefinedDeviceCounter for a device cell that resolved to no
// configured DeviceRecord, logging a warning only on the first sighting (4.G step 4.a).
func (m *Mapper) recordUndefinedDevice(stationName string) {
	phmetrics.UndefinedDeviceHits.Inc()

	if m.undefinedDevices.Increment(stationName) == 1 {
		m.reportMessage(fmt.Sprintf("undefined device encountered in stream: %q", stationName))
	}
}

// addSignedTicks adds a signed tick delta to an (unsigned) Ticks value.
func addSignedTicks(t ticks.Ticks, delta int64) ticks.Ticks {
	if delta < 0 {
		return t - ticks.Ticks(-delta)
	}

	return t + ticks.Ticks(delta)
}
