// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Highlight_01(t *testing.T) {
	var hl = NewHighlighter(false)
	//
	assert.Equal(t, "?x", hl.Colour("?x", TERM_GREEN))
	assert.Equal(t, "?x", hl.Bold("?x"))
}

func Test_Highlight_02(t *testing.T) {
	var hl = NewHighlighter(true)
	//
	assert.Equal(t, "\033[32m?x\033[0m", hl.Colour("?x", TERM_GREEN))
	assert.Equal(t, "\033[1m?x\033[0m", hl.Bold("?x"))
}

func Test_Highlight_03(t *testing.T) {
	assert.Equal(t, "\033[1;31m", BoldAnsiEscape().FgColour(TERM_RED).Build())
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
