// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package tokenquery

import "strings"

const upperhex = "0123456789ABCDEF"

// escape works like url.QueryEscape, but keeps the characters RFC 3986 allows unescaped in a
// query and which are commonly used in placeholders.
func escape(val string) string {
	var sb strings.Builder

	sb.Grow(len(val))

	for i := range len(val) {
		chr := val[i]

		switch {
		case shouldNotEscape(chr):
			sb.WriteByte(chr)
		case chr == ' ':
			sb.WriteByte('+')
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[chr>>4])
			sb.WriteByte(upperhex[chr&15]) //nolint:mnd
		}
	}

	return sb.String()
}

func shouldNotEscape(chr byte) bool {
	if 'a' <= chr && chr <= 'z' || 'A' <= chr && chr <= 'Z' || '0' <= chr && chr <= '9' {
		return true
	}

	return strings.IndexByte("-_.~()!*'", chr) != -1
}
