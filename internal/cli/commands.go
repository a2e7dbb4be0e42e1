//******************************************************************************************************
//  commands.go - Gbtc
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
//  07/31/2026 - generated original version of source code. One subcommand per remaining §6 admin
//       operation; each builds a fresh Mapper, performs its one operation, and prints the resulting
//       status line before exiting.
//
//******************************************************************************************************

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gpascada/phasoradapter/phasor/frameparser"
)

func newDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Initialize the adapter and immediately attempt disconnection",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMapper()

			if err != nil {
				return err
			}

			m.AttemptDisconnection()
			fmt.Println(m.GetShortStatus(0))

			return nil
		},
	}
}

func newSendCommandCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "send-command [sendConfigurationFrame1|sendConfigurationFrame2|enableRealTimeData|disableRealTimeData]",
		Short:     "Connect and forward a single device command",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"sendConfigurationFrame1", "sendConfigurationFrame2", "enableRealTimeData", "disableRealTimeData"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var command frameparser.DeviceCommand

			switch args[0] {
			case "sendConfigurationFrame1":
				command = frameparser.SendConfigurationFrame1
			case "sendConfigurationFrame2":
				command = frameparser.SendConfigurationFrame2
			case "enableRealTimeData":
				command = frameparser.EnableRealTimeData
			case "disableRealTimeData":
				command = frameparser.DisableRealTimeData
			default:
				return fmt.Errorf("unrecognized command %q", args[0])
			}

			m, err := buildMapper()

			if err != nil {
				return err
			}

			if err := m.AttemptConnection(); err != nil {
				return fmt.Errorf("connect failed: %w", err)
			}

			m.SendCommand(command)
			m.AttemptDisconnection()
			fmt.Println(m.GetShortStatus(0))

			return nil
		},
	}
}

func newResetStatisticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-statistics",
		Short: "Zero the adapter's connection-wide counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMapper()

			if err != nil {
				return err
			}

			m.ResetStatistics()
			fmt.Println(m.GetShortStatus(0))

			return nil
		},
	}
}

func newResetDeviceStatisticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-device-statistics <idCode>",
		Short: "Zero one device's per-device counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idCode, err := strconv.ParseUint(args[0], 10, 16)

			if err != nil {
				return fmt.Errorf("invalid idCode %q: %w", args[0], err)
			}

			m, err := buildMapper()

			if err != nil {
				return err
			}

			m.ResetDeviceStatistics(uint16(idCode))
			fmt.Println(m.GetShortStatus(0))

			return nil
		},
	}
}

func newLoadCachedConfigurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load-cached-configuration",
		Short: "Load the last-known-good configuration from the configuration cache store",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMapper()

			if err != nil {
				return err
			}

			m.LoadCachedConfiguration()
			fmt.Println(m.GetShortStatus(0))

			return nil
		},
	}
}

func newLoadConfigurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load-configuration <path>",
		Short: "Load a configuration frame from a file, bypassing the wire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMapper()

			if err != nil {
				return err
			}

			if err := m.LoadConfiguration(args[0]); err != nil {
				return fmt.Errorf("load-configuration failed: %w", err)
			}

			fmt.Println(m.GetShortStatus(0))

			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the adapter's current status line",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMapper()

			if err != nil {
				return err
			}

			fmt.Println(m.GetShortStatus(0))

			return nil
		},
	}
}
