//******************************************************************************************************
//  connect.go - Gbtc
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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var statusInterval time.Duration

func newConnectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Attempt a connection and print status until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMapper()

			if err != nil {
				return err
			}

			if err := m.AttemptConnection(); err != nil {
				return fmt.Errorf("connect failed: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ticker := time.NewTicker(statusInterval)
			defer ticker.Stop()

			fmt.Println(m.GetShortStatus(0))

			for {
				select {
				case <-ticker.C:
					fmt.Println(m.GetShortStatus(0))
				case <-ctx.Done():
					m.AttemptDisconnection()
					fmt.Println(m.GetShortStatus(0))
					return nil
				}
			}
		},
	}

	cmd.Flags().DurationVar(&statusInterval, "interval", 5*time.Second, "status print interval")

	return cmd
}
