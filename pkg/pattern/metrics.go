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

// Size returns the number of nodes in a given pattern.  Bound variables count
// as part of their binder, rather than as separate nodes.
func Size(p Pattern) uint {
	return Visit[uint](p, sizer{})
}

// Height returns the length of the longest path from the root of a given
// pattern to one of its leaves.  Leaves have height zero.
func Height(p Pattern) uint {
	return Visit[uint](p, measurer{})
}

type sizer struct{}

func (v sizer) VisitSymbol(Symbol) uint   { return 1 }
func (v sizer) VisitEVar(EVar) uint       { return 1 }
func (v sizer) VisitSVar(SVar) uint       { return 1 }
func (v sizer) VisitAnd(p And) uint       { return 1 + Size(p.Left) + Size(p.Right) }
func (v sizer) VisitOr(p Or) uint         { return 1 + Size(p.Left) + Size(p.Right) }
func (v sizer) VisitNot(p Not) uint       { return 1 + Size(p.Subpattern) }
func (v sizer) VisitApp(p App) uint       { return 1 + Size(p.Left) + Size(p.Right) }
func (v sizer) VisitExists(p Exists) uint { return 1 + Size(p.Subpattern) }
func (v sizer) VisitForall(p Forall) uint { return 1 + Size(p.Subpattern) }
func (v sizer) VisitMu(p Mu) uint         { return 1 + Size(p.Subpattern) }
func (v sizer) VisitNu(p Nu) uint         { return 1 + Size(p.Subpattern) }

type measurer struct{}

func (v measurer) VisitSymbol(Symbol) uint   { return 0 }
func (v measurer) VisitEVar(EVar) uint       { return 0 }
func (v measurer) VisitSVar(SVar) uint       { return 0 }
func (v measurer) VisitAnd(p And) uint       { return 1 + max(Height(p.Left), Height(p.Right)) }
func (v measurer) VisitOr(p Or) uint         { return 1 + max(Height(p.Left), Height(p.Right)) }
func (v measurer) VisitNot(p Not) uint       { return 1 + Height(p.Subpattern) }
func (v measurer) VisitApp(p App) uint       { return 1 + max(Height(p.Left), Height(p.Right)) }
func (v measurer) VisitExists(p Exists) uint { return 1 + Height(p.Subpattern) }
func (v measurer) VisitForall(p Forall) uint { return 1 + Height(p.Subpattern) }
func (v measurer) VisitMu(p Mu) uint         { return 1 + Height(p.Subpattern) }
func (v measurer) VisitNu(p Nu) uint         { return 1 + Height(p.Subpattern) }
