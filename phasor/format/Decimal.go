//******************************************************************************************************
//  Decimal.go - Gbtc
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
//  07/31/2026 - generated original version of source code. Extends the Float/Int/UInt family to
//       shopspring/decimal.Decimal, the type DataSet.loadRecords stores for DataType.Decimal columns.
//
//******************************************************************************************************

package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal formats a decimal.Decimal with a period as the decimal symbol and a comma as the
// numeric thousands grouping symbol, rounding the fractional part to prec digits.
func Decimal(d decimal.Decimal, prec int) string {
	return DecimalWith(d, prec, '.', ',')
}

// DecimalWith formats a decimal.Decimal with the specified decimalSymbol, e.g., '.', and the
// specified numeric thousands groupSymbol, e.g., ','.
func DecimalWith(d decimal.Decimal, prec int, decimalSymbol byte, groupSymbol byte) string {
	in := d.StringFixed(int32(prec))
	negative := strings.HasPrefix(in, "-")

	if negative {
		in = in[1:]
	}

	decSymbolAsStr := string([]byte{decimalSymbol})
	parts := strings.SplitN(in, ".", 2)
	in = parts[0]
	var fraction string

	if len(parts) > 1 {
		fraction = decSymbolAsStr + parts[1]
	}

	commas := (len(in) - 1) / 3
	out := make([]byte, len(in)+commas)
	image := formatNumber(in, out, groupSymbol)

	if negative {
		image = "-" + image
	}

	return image + fraction
}
