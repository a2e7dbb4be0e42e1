//******************************************************************************************************
//  QualityFlags.go - Gbtc
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
//  07/30/2026 - adapted from transport.StateFlags; trimmed to the bits the mapper classifies against.
//
//******************************************************************************************************

package measurement

// QualityFlagsEnum defines the type for the QualityFlags enumeration.
type QualityFlagsEnum uint32

// QualityFlags is an enumeration of the possible quality states carried on a device cell or a
// single parsed value. Devices report these as a bit-mask; the mapper classifies a cell's
// flags into the DeviceRecord's dataQualityErrors/timeQualityErrors/deviceErrors counters.
var QualityFlags = struct {
	Normal           QualityFlagsEnum
	BadData          QualityFlagsEnum
	SuspectData      QualityFlagsEnum
	OverRangeError   QualityFlagsEnum
	UnderRangeError  QualityFlagsEnum
	AlarmHigh        QualityFlagsEnum
	AlarmLow         QualityFlagsEnum
	ComparisonAlarm  QualityFlagsEnum
	ReceivedAsBad    QualityFlagsEnum
	BadTime          QualityFlagsEnum
	SuspectTime      QualityFlagsEnum
	LateTimeAlarm    QualityFlagsEnum
	FutureTimeAlarm  QualityFlagsEnum
	DeviceError      QualityFlagsEnum
	SystemError      QualityFlagsEnum
	SystemWarning    QualityFlagsEnum
	MeasurementError QualityFlagsEnum
}{
	Normal:           0x0,
	BadData:          0x1,
	SuspectData:      0x2,
	OverRangeError:   0x4,
	UnderRangeError:  0x8,
	AlarmHigh:        0x10,
	AlarmLow:         0x20,
	ComparisonAlarm:  0x200,
	ReceivedAsBad:    0x800,
	BadTime:          0x10000,
	SuspectTime:      0x20000,
	LateTimeAlarm:    0x40000,
	FutureTimeAlarm:  0x80000,
	DeviceError:      0x100000,
	SystemError:      0x20000000,
	SystemWarning:    0x40000000,
	MeasurementError: 0x80000000,
}

const dataQualityMask = QualityFlagsEnum(QualityFlags.BadData | QualityFlags.SuspectData |
	QualityFlags.OverRangeError | QualityFlags.UnderRangeError | QualityFlags.AlarmHigh |
	QualityFlags.AlarmLow | QualityFlags.ComparisonAlarm | QualityFlags.ReceivedAsBad |
	QualityFlags.MeasurementError)

const timeQualityMask = QualityFlagsEnum(QualityFlags.BadTime | QualityFlags.SuspectTime |
	QualityFlags.LateTimeAlarm | QualityFlags.FutureTimeAlarm)

const deviceErrorMask = QualityFlagsEnum(QualityFlags.DeviceError | QualityFlags.SystemError |
	QualityFlags.SystemWarning)

// HasDataQualityError reports whether the flags indicate a data quality problem, the class of
// error DeviceRecord.dataQualityErrors accumulates.
func (qf QualityFlagsEnum) HasDataQualityError() bool {
	return qf&dataQualityMask != 0
}

// HasTimeQualityError reports whether the flags indicate a time quality problem, the class of
// error DeviceRecord.timeQualityErrors accumulates.
func (qf QualityFlagsEnum) HasTimeQualityError() bool {
	return qf&timeQualityMask != 0
}

// HasDeviceError reports whether the flags indicate a device-level error, the class of error
// DeviceRecord.deviceErrors accumulates.
func (qf QualityFlagsEnum) HasDeviceError() bool {
	return qf&deviceErrorMask != 0
}
