//******************************************************************************************************
//  OperationalSettings.go - Gbtc
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

package phasorconfig

import (
	"os"

	"github.com/spf13/viper"
)

// OperationalSettings holds host-level concerns that sit outside the GSF connection-string
// grammar: where the configuration cache lives, where metrics are exposed, and how verbosely the
// adapter logs.
type OperationalSettings struct {
	CacheDirectory string
	MetricsAddress string
	LogLevel       string
}

func operationalDefaults() OperationalSettings {
	return OperationalSettings{
		CacheDirectory: "./cache",
		MetricsAddress: ":9090",
		LogLevel:       "info",
	}
}

// LoadFile reads OperationalSettings from a YAML/TOML/JSON/.env file at path using viper. A
// missing file is not an error: defaults are returned unchanged, since these settings are
// operational conveniences rather than required configuration.
func LoadFile(path string) (OperationalSettings, error) {
	settings := operationalDefaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("cachedirectory", settings.CacheDirectory)
	v.SetDefault("metricsaddress", settings.MetricsAddress)
	v.SetDefault("loglevel", settings.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		return settings, err
	}

	settings.CacheDirectory = v.GetString("cachedirectory")
	settings.MetricsAddress = v.GetString("metricsaddress")
	settings.LogLevel = v.GetString("loglevel")

	return settings, nil
}
