//******************************************************************************************************
//  root_test.go - Gbtc
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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersOneSubcommandPerAdminOperation(t *testing.T) {
	names := make(map[string]bool)

	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{
		"connect",
		"disconnect",
		"send-command",
		"reset-statistics",
		"reset-device-statistics",
		"load-cached-configuration",
		"load-configuration",
		"status",
	} {
		require.Truef(t, names[want], "expected root command to register %q", want)
	}
}

func TestSendCommandRejectsUnknownCommandName(t *testing.T) {
	cmd := newSendCommandCmd()
	cmd.SetArgs([]string{"not-a-real-command"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	require.Error(t, err)
	require.Contains(t, err.Error(), "unrecognized command")
}

func TestResetDeviceStatisticsRejectsNonNumericIDCode(t *testing.T) {
	cmd := newResetDeviceStatisticsCmd()
	cmd.SetArgs([]string{"not-a-number"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid idCode")
}
