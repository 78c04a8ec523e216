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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [name]",
	Short: "Report the free variables of some well-known patterns.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		//
		if !runExamples(cmd.OutOrStdout(), highlighter(cmd), name) {
			os.Exit(2)
		}
	},
}

// example is a named pattern.
type example struct {
	Name    string
	Pattern pattern.Pattern
}

var (
	x  = pattern.NewEVar("x")
	y  = pattern.NewEVar("y")
	z  = pattern.NewEVar("z")
	sx = pattern.NewSVar("x")
	sX = pattern.NewSVar("X")
)

var examples = []example{
	{"symbol", pattern.NewSymbol("f")},
	{"shadow", pattern.NewExists(x, pattern.NewExists(x, x))},
	{"kinds", pattern.NewExists(x, sx)},
	{"scope", pattern.NewApp(x, pattern.NewExists(y, pattern.NewAnd(x, y)))},
	{"fixpoint", pattern.NewMu(sX, pattern.NewOr(sX, z))},
	{"always", pattern.NewNu(sX, pattern.NewAnd(x, pattern.NewApp(pattern.NewSymbol("next"), sX)))},
	{"closed", pattern.NewForall(x, pattern.NewNot(pattern.NewMu(sX, pattern.NewApp(x, sX))))},
}

// Print the example of the given name, or all examples when no name is given.
// Returns false (and reports an error) if no matching example exists.
func runExamples(out io.Writer, hl termio.Highlighter, name string) bool {
	var found = false
	//
	for _, e := range examples {
		if name == "" || name == e.Name {
			printFreeVariables(out, hl, e.Name, e.Pattern, pattern.FreeVariables(e.Pattern))
			//
			found = true
		}
	}
	//
	if !found {
		log.Errorf("unknown example \"%s\"", name)
	}
	//
	return found
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
