//******************************************************************************************************
//  Mapper.go - Gbtc
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
//  07/31/2026 - generated original version of source code. Public surface (AttemptConnection,
//       AttemptDisconnection, command methods) is grounded on sttp.Subscriber's Dial/Disconnect/
//       SetXReceiver shape; reconnect back-off is grounded on transport.SubscriberConnector's
//       waitForRetry, generalized to use cenkalti/backoff/v4 instead of a hand-rolled math.Pow.
//
//******************************************************************************************************

// Package mapper implements the core engine: it orchestrates the signal-reference cache, device
// table, measurement catalog, configuration cache, frame parser, and liveness monitor to turn a
// stream of decoded phasor frames into batches of mapped measurements.
package mapper

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"github.com/tevino/abool/v2"

	"github.com/gpascada/phasoradapter/phasor/cacheconfig"
	"github.com/gpascada/phasoradapter/phasor/catalog"
	"github.com/gpascada/phasoradapter/phasor/configsource"
	"github.com/gpascada/phasoradapter/phasor/data"
	"github.com/gpascada/phasoradapter/phasor/devicetable"
	"github.com/gpascada/phasoradapter/phasor/frameparser"
	"github.com/gpascada/phasoradapter/phasor/liveness"
	"github.com/gpascada/phasoradapter/phasor/phasorconfig"
	"github.com/gpascada/phasoradapter/phasor/signalref"
	"github.com/gpascada/phasoradapter/phasor/thread"
)

// ParserFactory builds the Parser instance for one connection attempt. A fresh Parser is
// constructed per AttemptConnection, the same way sttp.Subscriber builds a fresh
// transport.DataSubscriber per Dial.
type ParserFactory func(settings phasorconfig.ConnectionSettings) frameparser.Parser

// Mapper is the MeasurementMapper described in §4.G: the core engine wiring together the
// SignalReferenceCache, DeviceTable, MeasurementCatalog, ConfigurationCacheStore,
// FrameParserAdapter, and LivenessMonitor.
type Mapper struct {
	name          string
	settings      phasorconfig.ConnectionSettings
	configSource  configsource.Source
	cacheStore    *cacheconfig.Store
	newParser     ParserFactory
	sink          Sink
	reportMessage func(string)
	reportError   func(string)

	log *logrus.Entry

	deviceTable atomic.Pointer[devicetable.Table]
	catalog     atomic.Pointer[catalog.Catalog]
	signalCache *signalref.Cache

	stateMu sync.Mutex
	state   State

	enabled         abool.AtomicBool
	parser          frameparser.Parser
	liveness        *liveness.Monitor
	livenessStarted bool

	backOff backoff.BackOff

	// Per-connection statistics, mutated only by the parser event pipeline goroutine (§5);
	// atomics let the LivenessMonitor and the status renderer read them from other goroutines
	// without a torn read on 32-bit platforms.
	bytesReceived       atomic.Uint64
	lastReportTime      atomic.Uint64
	outOfOrderFrames    atomic.Uint64
	receivedConfigFrame atomic.Bool

	connectionAttempts      atomic.Uint64
	reconnects              atomic.Uint64
	framesProcessed         atomic.Uint64
	firstConfigSinceConnect atomic.Bool

	minLatency   atomic.Int64
	maxLatency   atomic.Int64
	totalLatency atomic.Int64
	latencyCount atomic.Uint64

	undefinedDevices *UndefinedDeviceCounter

	startedAt time.Time

	stopRun   chan struct{}
	runThread *thread.Thread
}

// New creates a Mapper. name identifies the adapter instance — it is the signal-reference prefix
// and the configuration cache file's base name. The Parser itself is constructed lazily, once per
// AttemptConnection, via newParser.
func New(
	name string,
	settings phasorconfig.ConnectionSettings,
	configSource configsource.Source,
	cacheStore *cacheconfig.Store,
	newParser ParserFactory,
	sink Sink,
	reportMessage func(string),
	reportError func(string),
) *Mapper {
	settings.Name = name

	if reportMessage == nil {
		reportMessage = func(string) {}
	}

	if reportError == nil {
		reportError = func(string) {}
	}

	m := &Mapper{
		name:             name,
		settings:         settings,
		configSource:     configSource,
		cacheStore:       cacheStore,
		newParser:        newParser,
		sink:             sink,
		reportMessage:    reportMessage,
		reportError:      reportError,
		log:              logrus.WithField("adapter", name),
		signalCache:      signalref.New(name),
		undefinedDevices: newUndefinedDeviceCounter(),
		state:            Init,
	}

	m.deviceTable.Store(devicetable.New())
	m.catalog.Store(catalog.New())

	return m
}

// Initialize loads the DeviceTable and MeasurementCatalog from the ConfigurationSource (branching
// on IsConcentrator), optionally preloads a configuration frame from ConfigurationFile, and wires
// the LivenessMonitor. Only a failure to resolve the effective query ID is treated as fatal;
// missing optional pieces are reported and left empty (§7: only init-time settings failures are
// fatal).
func (m *Mapper) Initialize() error {
	queryID, err := m.effectiveQueryID()

	if err != nil {
		return fmt.Errorf("failed to resolve effective query ID: %w", err)
	}

	if m.configSource != nil {
		dataSet, err := m.configSource.Load()

		if err != nil {
			m.reportError(fmt.Sprintf("failed to load configuration source: %v", err))
		} else {
			m.loadTopology(dataSet, queryID)
		}
	}

	if m.settings.ConfigurationFile != "" {
		if err := m.LoadConfiguration(m.settings.ConfigurationFile); err != nil {
			m.reportError(fmt.Sprintf("failed to preload configuration file %q: %v", m.settings.ConfigurationFile, err))
		}
	}

	interval := time.Duration(m.settings.DataLossIntervalSeconds * float64(time.Second))

	if interval <= 0 {
		interval = 5 * time.Second
	}

	m.liveness = liveness.New(interval, m)

	floor := time.Duration(m.settings.DelayedConnectionIntervalSeconds * float64(time.Second))

	if floor < time.Millisecond {
		floor = time.Millisecond
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = floor
	exp.MaxInterval = 30 * time.Second
	exp.MaxElapsedTime = 0
	m.backOff = exp

	m.setState(Idle)
	m.startedAt = time.Now()
	m.enabled.Set()

	return nil
}

// effectiveQueryID resolves the ID used to filter InputStreamDevices/ActiveMeasurements: either
// the raw AccessID, or — when SharedMapping names another adapter — that adapter's InputAdapters
// row ID (§6's sharedMapping indirection).
func (m *Mapper) effectiveQueryID() (uint32, error) {
	if m.settings.SharedMapping == "" {
		return uint32(m.settings.AccessID), nil
	}

	if m.configSource == nil {
		return 0, fmt.Errorf("sharedMapping %q given but no configuration source is set", m.settings.SharedMapping)
	}

	dataSet, err := m.configSource.Load()

	if err != nil {
		return 0, err
	}

	adapters := dataSet.Table("InputAdapters")

	if adapters == nil {
		return 0, fmt.Errorf("configuration source has no InputAdapters table to resolve sharedMapping %q", m.settings.SharedMapping)
	}

	nameIndex := adapters.ColumnIndex("AdapterName")
	idIndex := adapters.ColumnIndex("ID")

	if nameIndex < 0 || idIndex < 0 {
		return 0, fmt.Errorf("InputAdapters table is missing AdapterName/ID columns")
	}

	for i := 0; i < adapters.RowCount(); i++ {
		row := adapters.Row(i)

		if row == nil {
			continue
		}

		adapterName, null, err := row.StringValue(nameIndex)

		if err != nil || null || !strings.EqualFold(strings.TrimSpace(adapterName), m.settings.SharedMapping) {
			continue
		}

		id, null, err := row.UInt32Value(idIndex)

		if err != nil || null {
			continue
		}

		return id, nil
	}

	return 0, fmt.Errorf("sharedMapping %q not found in InputAdapters", m.settings.SharedMapping)
}

// loadTopology builds a fresh DeviceTable/Catalog pair from dataSet and swaps them in atomically —
// the lock-free pointer-swap equivalent of the concurrency model's copy-on-write requirement for
// reinitialization under streaming reads.
func (m *Mapper) loadTopology(dataSet *data.DataSet, queryID uint32) {
	table := devicetable.Load(dataSet, queryID, m.settings.IsConcentrator, m.reportError)
	measurementCatalog := catalog.Load(dataSet, queryID, m.reportError)

	m.deviceTable.Store(table)
	m.catalog.Store(measurementCatalog)
}

// DeviceTable returns the currently active DeviceTable snapshot.
func (m *Mapper) DeviceTable() *devicetable.Table {
	return m.deviceTable.Load()
}

// Catalog returns the currently active MeasurementCatalog snapshot.
func (m *Mapper) Catalog() *catalog.Catalog {
	return m.catalog.Load()
}

// State returns the mapper's current connection state.
func (m *Mapper) State() State {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	return m.state
}

func (m *Mapper) setState(state State) {
	m.stateMu.Lock()
	m.state = state
	m.stateMu.Unlock()
}
