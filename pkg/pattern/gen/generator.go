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
package gen

import (
	"math/rand/v2"

	"github.com/consensys/go-aml/pkg/pattern"
)

// Config determines the shape of generated patterns.
type Config struct {
	// Maximum height of any generated pattern.
	Depth uint
	// Names available for symbols.
	Symbols []string
	// Names available for element variables.
	EVars []string
	// Names available for set variables.
	SVars []string
}

// DefaultConfig returns a configuration using small alphabets, such that
// binders frequently capture occurrences beneath them and element/set
// variables frequently share names.
func DefaultConfig() Config {
	return Config{
		Depth:   4,
		Symbols: []string{"f", "g", "a"},
		EVars:   []string{"x", "y", "z"},
		SVars:   []string{"x", "X", "Y"},
	}
}

// Generator produces a deterministic stream of pseudo-random patterns for a
// given seed.
type Generator struct {
	config Config
	random *rand.Rand
}

// NewGenerator constructs a new generator.  Generators constructed with the
// same configuration and seed produce identical streams.
func NewGenerator(config Config, seed int64) *Generator {
	if len(config.Symbols) == 0 || len(config.EVars) == 0 || len(config.SVars) == 0 {
		panic("generator requires at least one symbol, element variable and set variable")
	}
	//
	return &Generator{config, rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Next generates the next pattern in the stream.
func (p *Generator) Next() pattern.Pattern {
	return p.generate(p.config.Depth)
}

func (p *Generator) generate(depth uint) pattern.Pattern {
	const variants = 11
	// Bottom out
	if depth == 0 {
		return p.leaf()
	}
	//
	switch p.random.IntN(variants) {
	case 0, 1, 2:
		return p.leaf()
	case 3:
		return pattern.NewAnd(p.generate(depth-1), p.generate(depth-1))
	case 4:
		return pattern.NewOr(p.generate(depth-1), p.generate(depth-1))
	case 5:
		return pattern.NewNot(p.generate(depth - 1))
	case 6:
		return pattern.NewApp(p.generate(depth-1), p.generate(depth-1))
	case 7:
		return pattern.NewExists(p.evar(), p.generate(depth-1))
	case 8:
		return pattern.NewForall(p.evar(), p.generate(depth-1))
	case 9:
		return pattern.NewMu(p.svar(), p.generate(depth-1))
	default:
		return pattern.NewNu(p.svar(), p.generate(depth-1))
	}
}

func (p *Generator) leaf() pattern.Pattern {
	switch p.random.IntN(3) {
	case 0:
		return pattern.NewSymbol(pick(p.random, p.config.Symbols))
	case 1:
		return p.evar()
	default:
		return p.svar()
	}
}

func (p *Generator) evar() pattern.EVar {
	return pattern.NewEVar(pick(p.random, p.config.EVars))
}

func (p *Generator) svar() pattern.SVar {
	return pattern.NewSVar(pick(p.random, p.config.SVars))
}

func pick(random *rand.Rand, names []string) string {
	return names[random.IntN(len(names))]
}
