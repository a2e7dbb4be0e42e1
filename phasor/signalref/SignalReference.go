//******************************************************************************************************
//  SignalReference.go - Gbtc
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
//  07/30/2026 - generated original version of source code.
//
//******************************************************************************************************

package signalref

import (
	"strconv"
	"strings"

	"github.com/gpascada/phasoradapter/phasor/signalkind"
)

// Encode builds the platform-wide signal reference for a scalar SignalKind:
// "<adapterName>!IS-<kindCode>".
func Encode(adapterName string, kind signalkind.Enum) string {
	var builder strings.Builder

	builder.WriteString(adapterName)
	builder.WriteString("!IS-")
	builder.WriteString(kind.Acronym())

	return builder.String()
}

// EncodeIndexed builds the platform-wide signal reference for an indexed SignalKind entry:
// "<adapterName>!IS-<kindCode><ordinal>", where ordinal is 1-based.
func EncodeIndexed(adapterName string, kind signalkind.Enum, index int) string {
	var builder strings.Builder

	builder.WriteString(adapterName)
	builder.WriteString("!IS-")
	builder.WriteString(kind.Acronym())
	builder.WriteString(strconv.Itoa(index + 1))

	return builder.String()
}
