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
	"github.com/consensys/go-aml/pkg/pattern/gen"
	"github.com/consensys/go-aml/pkg/util"
	"github.com/consensys/go-aml/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags]",
	Short: "Generate random patterns and report their free variables.",
	Long: `Generate a deterministic stream of pseudo-random patterns from a given seed,
	and report the free variables of each.  With --check, free variables are
	computed both recursively and iteratively, and any disagreement is reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg genConfig
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.seed = getInt64(cmd, "seed")
		cfg.count = getUint(cmd, "count")
		cfg.depth = getUint(cmd, "depth")
		cfg.iterative = getFlag(cmd, "iterative")
		cfg.check = getFlag(cmd, "check")
		cfg.quiet = getFlag(cmd, "quiet")
		//
		stats := util.NewPerfStats()
		//
		if errs := runGen(cmd.OutOrStdout(), highlighter(cmd), cfg); len(errs) > 0 {
			// Report errors
			for _, e := range errs {
				log.Error(e)
			}
			// Error signal
			os.Exit(1)
		}
		//
		stats.Log(fmt.Sprintf("Generating %d patterns", cfg.count))
	},
}

// genConfig encapsulates configuration related to pattern generation.
type genConfig struct {
	seed      int64
	count     uint
	depth     uint
	iterative bool
	check     bool
	quiet     bool
}

// Generate patterns according to the given configuration, writing each (along
// with its free variables) to the given output.  Any disagreements between the
// recursive and iterative computations are returned as errors.
func runGen(out io.Writer, hl termio.Highlighter, cfg genConfig) []error {
	var (
		config = gen.DefaultConfig()
		errs   []error
	)
	//
	config.Depth = cfg.depth
	generator := gen.NewGenerator(config, cfg.seed)
	//
	log.Debugf("generating %d patterns (seed %d, depth %d)", cfg.count, cfg.seed, cfg.depth)
	//
	for i := range cfg.count {
		var (
			p   = generator.Next()
			fvs *pattern.VarSet
		)
		//
		if cfg.iterative {
			fvs = pattern.FreeVariablesIter(p)
		} else {
			fvs = pattern.FreeVariables(p)
		}
		//
		if cfg.check {
			if err := crossCheck(p, fvs, cfg.iterative); err != nil {
				errs = append(errs, fmt.Errorf("pattern #%d: %w", i, err))
			}
		}
		//
		if !cfg.quiet {
			printFreeVariables(out, hl, fmt.Sprintf("#%d", i), p, fvs)
		}
	}
	//
	return errs
}

// Compare a computed free variable set against that given by the other
// algorithm.
func crossCheck(p pattern.Pattern, fvs *pattern.VarSet, iterative bool) error {
	var other *pattern.VarSet
	//
	if iterative {
		other = pattern.FreeVariables(p)
	} else {
		other = pattern.FreeVariablesIter(p)
	}
	//
	if !fvs.Equals(other) {
		return fmt.Errorf("inconsistent free variables for %s (%s vs %s)", p, fvs, other)
	}
	//
	log.Debugf("consistent free variables for %s", p)
	//
	return nil
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().Int64("seed", 0, "seed for pattern generation")
	genCmd.Flags().Uint("count", 10, "number of patterns to generate")
	genCmd.Flags().Uint("depth", 4, "maximum height of generated patterns")
	genCmd.Flags().Bool("iterative", false, "compute free variables without recursion")
	genCmd.Flags().Bool("check", false, "cross check recursive and iterative computations")
	genCmd.Flags().BoolP("quiet", "q", false, "suppress output of patterns")
}
