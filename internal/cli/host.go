//******************************************************************************************************
//  host.go - Gbtc
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

package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gpascada/phasoradapter/internal/demoparser"
	"github.com/gpascada/phasoradapter/phasor/cacheconfig"
	"github.com/gpascada/phasoradapter/phasor/configsource"
	"github.com/gpascada/phasoradapter/phasor/frameparser"
	"github.com/gpascada/phasoradapter/phasor/mapper"
	"github.com/gpascada/phasoradapter/phasor/measurement"
	"github.com/gpascada/phasoradapter/phasor/phasorconfig"
)

// buildMapper parses the --connection string and wires a Mapper using the shared --name/--cache-dir/
// --config-source flags. The frame parser is demoparser.Parser: binary wire decoding of the real
// protocol is out of scope, so this CLI exercises the mapper pipeline end to end against a
// synthesized single-device stream rather than a live PMU/PDC.
func buildMapper() (*mapper.Mapper, error) {
	settings, err := phasorconfig.ParseSettings(connectionString)

	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	var source configsource.Source

	if configFile != "" {
		source = configsource.NewFile(configFile)
	}

	cacheStore := cacheconfig.NewStore(cacheDirectory)

	var newParser mapper.ParserFactory = func(settings phasorconfig.ConnectionSettings) frameparser.Parser {
		return demoparser.New(settings, settings.AccessID, adapterName, nil, 0)
	}

	m := mapper.New(
		adapterName,
		settings,
		source,
		cacheStore,
		newParser,
		mapper.SinkFunc(logMeasurements),
		func(message string) { fmt.Println(message) },
		func(message string) { fmt.Fprintln(logrus.StandardLogger().Out, "error: "+message) },
	)

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize adapter %q: %w", adapterName, err)
	}

	return m, nil
}

func logMeasurements(measurements []measurement.Mapped) {
	logrus.WithField("adapter", adapterName).Debugf("mapped %d measurements", len(measurements))
}
