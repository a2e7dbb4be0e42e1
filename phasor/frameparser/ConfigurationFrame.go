//******************************************************************************************************
//  ConfigurationFrame.go - Gbtc
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

package frameparser

import "github.com/gpascada/phasoradapter/phasor/data"

// NewConfigurationFrame creates an empty configuration frame DataSet with the DeviceSignalCounts
// table: one row per device reporting IDCode, PhasorCount, AnalogCount, and DigitalCount. The
// mapper does not read this table; the SignalReferenceCache invalidates an indexed entry from the
// per-cell signal count it is given on each lookup.
func NewConfigurationFrame() *data.DataSet {
	frame := data.NewDataSet()
	table := frame.CreateTable("DeviceSignalCounts")

	table.AddColumn(table.CreateColumn("IDCode", data.DataType.UInt16, ""))
	table.AddColumn(table.CreateColumn("PhasorCount", data.DataType.Int32, ""))
	table.AddColumn(table.CreateColumn("AnalogCount", data.DataType.Int32, ""))
	table.AddColumn(table.CreateColumn("DigitalCount", data.DataType.Int32, ""))

	frame.AddTable(table)

	return frame
}

// AddDeviceSignalCounts appends one device's signal counts to a configuration frame built by
// NewConfigurationFrame.
func AddDeviceSignalCounts(frame *data.DataSet, idCode uint16, phasorCount, analogCount, digitalCount int) {
	table := frame.Table("DeviceSignalCounts")

	if table == nil {
		return
	}

	row := table.CreateRow()
	row.SetValue(0, idCode)
	row.SetValue(1, int32(phasorCount))
	row.SetValue(2, int32(analogCount))
	row.SetValue(3, int32(digitalCount))
	table.AddRow(row)
}

// DeviceSignalCounts is one device's reported phasor/analog/digital counts from a configuration
// frame.
type DeviceSignalCounts struct {
	IDCode       uint16
	PhasorCount  int
	AnalogCount  int
	DigitalCount int
}

// ReadDeviceSignalCounts extracts every device's signal counts from a configuration frame built by
// NewConfigurationFrame/AddDeviceSignalCounts (or reloaded from cache via the same schema).
func ReadDeviceSignalCounts(frame *data.DataSet) map[uint16]DeviceSignalCounts {
	counts := make(map[uint16]DeviceSignalCounts)

	if frame == nil {
		return counts
	}

	table := frame.Table("DeviceSignalCounts")

	if table == nil {
		return counts
	}

	idCodeIndex := table.ColumnIndex("IDCode")
	phasorIndex := table.ColumnIndex("PhasorCount")
	analogIndex := table.ColumnIndex("AnalogCount")
	digitalIndex := table.ColumnIndex("DigitalCount")

	for i := 0; i < table.RowCount(); i++ {
		row := table.Row(i)

		if row == nil {
			continue
		}

		idCode, null, err := row.UInt16Value(idCodeIndex)

		if err != nil || null {
			continue
		}

		phasorCount, _, _ := row.Int32Value(phasorIndex)
		analogCount, _, _ := row.Int32Value(analogIndex)
		digitalCount, _, _ := row.Int32Value(digitalIndex)

		counts[idCode] = DeviceSignalCounts{
			IDCode:       idCode,
			PhasorCount:  int(phasorCount),
			AnalogCount:  int(analogCount),
			DigitalCount: int(digitalCount),
		}
	}

	return counts
}
