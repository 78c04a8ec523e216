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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-aml/pkg/pattern"
	"github.com/consensys/go-aml/pkg/util/termio"
	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer flag, or exit if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected signed integer flag, or exit if an error arises.
func getInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine whether or not output should be highlighted.  This is the case
// when writing to a terminal, or when explicitly requested.
func highlighter(cmd *cobra.Command) termio.Highlighter {
	enabled := getFlag(cmd, "ansi-escapes") || termio.IsTerminal(cmd.OutOrStdout())
	//
	return termio.NewHighlighter(enabled)
}

// Print a pattern alongside its free variables.
func printFreeVariables(out io.Writer, hl termio.Highlighter, label string, p pattern.Pattern,
	fvs *pattern.VarSet) {
	//
	var colour = termio.TERM_GREEN
	//
	if fvs.IsEmpty() {
		colour = termio.TERM_CYAN
	}
	//
	fmt.Fprintf(out, "%s: %s\n", hl.Bold(label), p.String())
	fmt.Fprintf(out, "\tfree: %s\n", hl.Colour(fvs.String(), colour))
}
