//******************************************************************************************************
//  DemoParser.go - Gbtc
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
//  07/31/2026 - generated original version of source code. Binary wire decoding of the underlying
//       phasor protocol is out of scope; this package stands in for it so the admin CLI has
//       something to drive end to end.
//
//******************************************************************************************************

// Package demoparser is a frameparser.Parser that synthesizes a periodic single-device data frame
// stream instead of decoding a real wire protocol. It exists so cmd/phasoradapterctl can exercise
// the full mapper pipeline without a live PMU/PDC connection.
package demoparser

import (
	"time"

	"github.com/gpascada/phasoradapter/phasor/data"
	"github.com/gpascada/phasoradapter/phasor/frameparser"
	"github.com/gpascada/phasoradapter/phasor/measurement"
	"github.com/gpascada/phasoradapter/phasor/phasorconfig"
	"github.com/gpascada/phasoradapter/phasor/ticks"
)

// Parser emits a ConnectionEstablished event, a single ReceivedConfigurationFrame event carrying
// configFrame, and then one ReceivedDataFrame per tick of period for a single device identified by
// idCode/stationName, until Stop is called.
type Parser struct {
	idCode      uint16
	stationName string
	configFrame *data.DataSet
	period      time.Duration

	events chan frameparser.Event
	stop   chan struct{}
}

// New builds a demo Parser for the named single-device stream described by settings. configFrame
// may be nil, in which case no ReceivedConfigurationFrame event is emitted (exercising the
// cached-configuration recovery path instead).
func New(settings phasorconfig.ConnectionSettings, idCode uint16, stationName string, configFrame *data.DataSet, period time.Duration) *Parser {
	if period <= 0 {
		period = time.Second
	}

	return &Parser{
		idCode:      idCode,
		stationName: stationName,
		configFrame: configFrame,
		period:      period,
		events:      make(chan frameparser.Event, 16),
		stop:        make(chan struct{}),
	}
}

// Start implements frameparser.Parser.
func (p *Parser) Start() error {
	p.events <- frameparser.Event{Kind: frameparser.ConnectionAttempt}
	p.events <- frameparser.Event{Kind: frameparser.ConnectionEstablished}

	if p.configFrame != nil {
		p.events <- frameparser.Event{Kind: frameparser.ReceivedConfigurationFrame, ConfigFrame: p.configFrame}
	}

	go p.run()

	return nil
}

func (p *Parser) run() {
	ticker := time.NewTicker(p.period)
	defer ticker.Stop()

	phase := 0.0

	for {
		select {
		case <-ticker.C:
			phase += 0.5
			p.events <- frameparser.Event{
				Kind: frameparser.ReceivedDataFrame,
				DataFrame: &frameparser.DataFrame{
					Timestamp: ticks.FromTime(time.Now()),
					Cells: []frameparser.DataCell{
						{
							IDCode:      p.idCode,
							StationName: p.stationName,
							Quality:     measurement.QualityFlags.Normal,
							Phasors:     []frameparser.PhasorValue{{Angle: phase, Magnitude: 120000.0}},
							Frequency:   60.0,
							DfDt:        0.0,
						},
					},
				},
			}
		case <-p.stop:
			close(p.events)
			return
		}
	}
}

// Stop implements frameparser.Parser. Idempotent: a second call is a no-op.
func (p *Parser) Stop() {
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
}

// Events implements frameparser.Parser.
func (p *Parser) Events() <-chan frameparser.Event { return p.events }

// SupportsCommands implements frameparser.Parser. The demo parser has no real device to command.
func (p *Parser) SupportsCommands() bool { return false }

// SendCommand implements frameparser.Parser as a no-op.
func (p *Parser) SendCommand(frameparser.DeviceCommand) {}
