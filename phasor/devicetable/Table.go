//******************************************************************************************************
//  Table.go - Gbtc
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
//  07/30/2026 - generated original version of source code, adapted from Subscriber.loadMeasurementMetadata's
//       column-walk style and transport.SignalIndexCache's dual-map bookkeeping.
//
//******************************************************************************************************

package devicetable

import (
	"fmt"
	"strings"

	"github.com/gpascada/phasoradapter/phasor/data"
)

// Table is the dual-keyed registry of configured devices described in invariant 1: a device is
// held in exactly one of the two sub-tables, resolved first by label (if the label table exists
// due to an idCode collision), else by idCode.
type Table struct {
	byID    map[uint16]*Record
	byLabel map[string]*Record
}

// New creates an empty Table.
func New() *Table {
	return &Table{
		byID:    make(map[uint16]*Record),
		byLabel: make(map[string]*Record),
	}
}

// Load populates a Table from the InputStreamDevices table of a configuration DataSet. When
// isConcentrator is true, rows are filtered by ParentID = queryID (a PDC's child devices);
// otherwise a single device row matching AccessID = queryID is expected. reportError receives a
// human-readable message for each rejected or malformed row but loading continues.
func Load(dataSet *data.DataSet, queryID uint32, isConcentrator bool, reportError func(string)) *Table {
	table := New()

	devices := dataSet.Table("InputStreamDevices")

	if devices == nil {
		reportError("configuration source has no InputStreamDevices table")
		return table
	}

	parentIDIndex := devices.ColumnIndex("ParentID")
	accessIDIndex := devices.ColumnIndex("AccessID")
	acronymIndex := devices.ColumnIndex("Acronym")
	nameIndex := devices.ColumnIndex("Name")
	idIndex := devices.ColumnIndex("ID")

	if accessIDIndex < 0 || acronymIndex < 0 {
		reportError("InputStreamDevices table is missing required AccessID/Acronym columns")
		return table
	}

	for i := 0; i < devices.RowCount(); i++ {
		row := devices.Row(i)

		if row == nil {
			continue
		}

		if isConcentrator && parentIDIndex > -1 {
			parentID, null, err := row.UInt32Value(parentIDIndex)

			if err != nil || null || parentID != queryID {
				continue
			}
		} else if !isConcentrator {
			rowAccessID, null, err := row.UInt16Value(accessIDIndex)

			if err != nil || null || uint32(rowAccessID) != queryID {
				continue
			}
		}

		accessID, null, err := row.UInt16Value(accessIDIndex)

		if err != nil || null {
			reportError("InputStreamDevices row has an invalid AccessID, skipping")
			continue
		}

		acronym, null, err := row.StringValue(acronymIndex)

		if err != nil || null || acronym == "" {
			reportError("InputStreamDevices row has an empty Acronym, skipping")
			continue
		}

		record := &Record{
			IDCode: accessID,
			Label:  acronym,
		}

		if nameIndex > -1 {
			record.StationName, _, _ = row.StringValue(nameIndex)
		}

		if idIndex > -1 {
			externalID, _, _ := row.UInt32Value(idIndex)
			record.ExternalTag = externalID
		}

		table.add(record, reportError)
	}

	return table
}

func (t *Table) add(record *Record, reportError func(string)) {
	upperLabel := strings.ToUpper(record.Label)

	_, idExists := t.byID[record.IDCode]
	_, labelExists := t.byLabel[upperLabel]

	switch {
	case idExists && labelExists:
		reportError(fmt.Sprintf("rejected device %q: idCode %d and label already both claimed", record.Label, record.IDCode))
	case idExists:
		t.byLabel[upperLabel] = record
	default:
		t.byID[record.IDCode] = record
	}
}

// Resolve finds the configured Record for a parsed device cell, given its wire-level idCode and
// reported station name/label. Per invariant 1 / 4.B's lookup order: the label (secondary) map is
// consulted first when it has entries, then the primary idCode map.
func (t *Table) Resolve(idCode uint16, stationName string) (*Record, bool) {
	if len(t.byLabel) > 0 {
		if record, ok := t.byLabel[strings.ToUpper(stationName)]; ok {
			return record, true
		}
	}

	record, ok := t.byID[idCode]

	return record, ok
}

// Count returns the total number of devices held across both sub-tables.
func (t *Table) Count() int {
	return len(t.byID) + len(t.byLabel)
}

// Records returns every Record currently held, for status rendering and statistics reset.
func (t *Table) Records() []*Record {
	records := make([]*Record, 0, t.Count())

	for _, record := range t.byID {
		records = append(records, record)
	}

	for _, record := range t.byLabel {
		records = append(records, record)
	}

	return records
}

// ByIDCode finds a Record strictly by its primary idCode key, used by ResetDeviceStatistics which
// is invoked with a wire idCode rather than a parsed cell.
func (t *Table) ByIDCode(idCode uint16) (*Record, bool) {
	if record, ok := t.byID[idCode]; ok {
		return record, true
	}

	for _, record := range t.byLabel {
		if record.IDCode == idCode {
			return record, true
		}
	}

	return nil, false
}
