//******************************************************************************************************
//  ConnectionSettings.go - Gbtc
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
//  07/31/2026 - generated original version of source code, value coercion grounded on
//       transport.MeasurementMetadata's strconv usage; defaults-struct pattern grounded on
//       sttp.NewSettings/settingsDefaults.
//
//******************************************************************************************************

// Package phasorconfig parses the adapter's key=value connection string into ConnectionSettings.
package phasorconfig

import (
	"strconv"
	"strings"
)

// ConnectionSettings holds every recognized key from the adapter's connection string (§6).
type ConnectionSettings struct {
	IsConcentrator bool
	AccessID       uint16
	SharedMapping  string
	TimeZone       string

	TimeAdjustmentTicks int64

	DataLossIntervalSeconds          float64
	DelayedConnectionIntervalSeconds float64
	AllowUseOfCachedConfiguration    bool

	DefinedFrameRate          int
	AutoRepeatFile            bool
	UseHighResolutionInputTimer bool
	SimulateTimestamp         bool

	AllowedParsingExceptions     int
	ParsingExceptionWindow       float64
	AutoStartDataParsingSequence bool
	SkipDisableRealTimeData      bool
	ExecuteParseOnSeparateThread bool

	ConfigurationFile string

	// Name is the adapter's own name, used as the signal-reference prefix and the configuration
	// cache file's base name. It is not itself a connection-string key; callers set it directly
	// (it identifies the adapter instance, not a per-connection behavior).
	Name string

	// ExtraParameters holds any key not recognized above, preserved for forward compatibility the
	// way the teacher's Settings.ExtraConnectionStringParameters does.
	ExtraParameters map[string]string
}

// defaults mirrors §6's Default column.
func defaults() ConnectionSettings {
	return ConnectionSettings{
		AccessID:                         1,
		TimeZone:                         "UTC",
		DataLossIntervalSeconds:          5.0,
		DelayedConnectionIntervalSeconds: 1.5,
		AllowUseOfCachedConfiguration:    true,
		DefinedFrameRate:                 30,
		AutoRepeatFile:                   true,
		AutoStartDataParsingSequence:     true,
		ExtraParameters:                  make(map[string]string),
	}
}

// ParseSettings parses a ';'-separated, case-insensitive key=value connection string into
// ConnectionSettings. No suitable parser for this bespoke grammar exists among the teacher's or
// the pack's dependencies, so this is a direct strings.Split/strconv implementation.
func ParseSettings(connectionString string) (ConnectionSettings, error) {
	settings := defaults()

	for _, pair := range strings.Split(connectionString, ";") {
		pair = strings.TrimSpace(pair)

		if len(pair) == 0 {
			continue
		}

		parts := strings.SplitN(pair, "=", 2)
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		var value string

		if len(parts) == 2 {
			value = strings.TrimSpace(parts[1])
		}

		switch key {
		case "isconcentrator":
			settings.IsConcentrator, _ = strconv.ParseBool(value)
		case "accessid":
			id, err := strconv.ParseUint(value, 10, 16)

			if err == nil {
				settings.AccessID = uint16(id)
			}
		case "sharedmapping":
			settings.SharedMapping = value
		case "timezone":
			settings.TimeZone = value
		case "timeadjustmentticks":
			settings.TimeAdjustmentTicks, _ = strconv.ParseInt(value, 10, 64)
		case "datalossinterval":
			settings.DataLossIntervalSeconds, _ = strconv.ParseFloat(value, 64)
		case "delayedconnectioninterval":
			settings.DelayedConnectionIntervalSeconds, _ = strconv.ParseFloat(value, 64)
		case "allowuseofcachedconfiguration":
			settings.AllowUseOfCachedConfiguration, _ = strconv.ParseBool(value)
		case "definedframerate":
			rate, err := strconv.Atoi(value)

			if err == nil {
				settings.DefinedFrameRate = rate
			}
		case "autorepeatfile":
			settings.AutoRepeatFile, _ = strconv.ParseBool(value)
		case "usehighresolutioninputtimer":
			settings.UseHighResolutionInputTimer, _ = strconv.ParseBool(value)
		case "simulatetimestamp":
			settings.SimulateTimestamp, _ = strconv.ParseBool(value)
		case "allowedparsingexceptions":
			count, err := strconv.Atoi(value)

			if err == nil {
				settings.AllowedParsingExceptions = count
			}
		case "parsingexceptionwindow":
			settings.ParsingExceptionWindow, _ = strconv.ParseFloat(value, 64)
		case "autostartdataparsingsequence":
			settings.AutoStartDataParsingSequence, _ = strconv.ParseBool(value)
		case "skipdisablerealtimedata":
			settings.SkipDisableRealTimeData, _ = strconv.ParseBool(value)
		case "executeparseonseparatethread":
			settings.ExecuteParseOnSeparateThread, _ = strconv.ParseBool(value)
		case "configurationfile":
			settings.ConfigurationFile = value
		default:
			settings.ExtraParameters[key] = value
		}
	}

	return settings, nil
}
