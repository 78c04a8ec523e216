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
package pattern

import "hash/fnv"

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Distinguishes variants within hashcodes, so that (for example) "(and a b)"
// and "(or a b)" hash differently.
const (
	symbolTag uint64 = iota + 1
	evarTag
	svarTag
	andTag
	orTag
	notTag
	appTag
	existsTag
	forallTag
	muTag
	nuTag
)

// Equal determines whether two patterns are structurally equal, meaning they
// are the same variant with recursively equal fields.
func Equal(lhs Pattern, rhs Pattern) bool {
	return lhs == rhs
}

// Hash returns a 64-bit hashcode for a given pattern which is consistent with
// Equal.  That is, structurally equal patterns always have the same hashcode.
func Hash(p Pattern) uint64 {
	return Visit[uint64](p, hasher{})
}

// hasher computes FNV1a-style hashcodes over the structure of a pattern.
type hasher struct{}

func (h hasher) VisitSymbol(p Symbol) uint64 { return combine(symbolTag, hashName(p.Name)) }
func (h hasher) VisitEVar(p EVar) uint64     { return combine(evarTag, hashName(p.Name)) }
func (h hasher) VisitSVar(p SVar) uint64     { return combine(svarTag, hashName(p.Name)) }
func (h hasher) VisitAnd(p And) uint64       { return combine(andTag, Hash(p.Left), Hash(p.Right)) }
func (h hasher) VisitOr(p Or) uint64         { return combine(orTag, Hash(p.Left), Hash(p.Right)) }
func (h hasher) VisitNot(p Not) uint64       { return combine(notTag, Hash(p.Subpattern)) }
func (h hasher) VisitApp(p App) uint64       { return combine(appTag, Hash(p.Left), Hash(p.Right)) }

func (h hasher) VisitExists(p Exists) uint64 {
	return combine(existsTag, hashName(p.Bound.Name), Hash(p.Subpattern))
}

func (h hasher) VisitForall(p Forall) uint64 {
	return combine(forallTag, hashName(p.Bound.Name), Hash(p.Subpattern))
}

func (h hasher) VisitMu(p Mu) uint64 {
	return combine(muTag, hashName(p.Bound.Name), Hash(p.Subpattern))
}

func (h hasher) VisitNu(p Nu) uint64 {
	return combine(nuTag, hashName(p.Bound.Name), Hash(p.Subpattern))
}

func combine(tag uint64, hashes ...uint64) uint64 {
	hash := offset64 ^ tag
	hash *= prime64
	//
	for _, c := range hashes {
		hash ^= c
		hash *= prime64
	}
	//
	return hash
}

func hashName(name string) uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(name))
	//
	return hash.Sum64()
}
