//******************************************************************************************************
//  root.go - Gbtc
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
//  07/31/2026 - generated original version of source code, grounded on shelly-cli's
//       internal/cli/root.go persistent-flag + viper-binding pattern.
//
//******************************************************************************************************

// Package cli implements phasoradapterctl's command-line interface: one subcommand per §6 admin
// operation, each driving a fresh in-process mapper.Mapper.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	connectionString string
	adapterName      string
	cacheDirectory   string
	configFile       string
)

var rootCmd = &cobra.Command{
	Use:   "phasoradapterctl",
	Short: "Operate a phasor data ingestion adapter",
	Long: `phasoradapterctl hosts a single phasor data ingestion adapter and exposes its
administrative operations as subcommands: connect, disconnect, send-command, reset-statistics,
reset-device-statistics, load-cached-configuration, load-configuration, and status.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&connectionString, "connection", "", "adapter connection string (key=value;key=value;...)")
	rootCmd.PersistentFlags().StringVar(&adapterName, "name", "PMU1", "adapter instance name")
	rootCmd.PersistentFlags().StringVar(&cacheDirectory, "cache-dir", "./cache", "configuration cache directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config-source", "", "path to a GPA-schema XML configuration source file")

	_ = viper.BindPFlag("connection", rootCmd.PersistentFlags().Lookup("connection"))
	_ = viper.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache-dir"))

	rootCmd.AddCommand(newConnectCmd())
	rootCmd.AddCommand(newDisconnectCmd())
	rootCmd.AddCommand(newSendCommandCmd())
	rootCmd.AddCommand(newResetStatisticsCmd())
	rootCmd.AddCommand(newResetDeviceStatisticsCmd())
	rootCmd.AddCommand(newLoadCachedConfigurationCmd())
	rootCmd.AddCommand(newLoadConfigurationCmd())
	rootCmd.AddCommand(newStatusCmd())
}
