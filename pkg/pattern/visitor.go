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

import "fmt"

// Visitor provides one case per pattern variant.  Any traversal written as a
// Visitor must handle every variant, since adding a variant to the pattern
// model adds a method here and thus breaks every existing implementation at
// compile time.
type Visitor[T any] interface {
	VisitSymbol(Symbol) T
	VisitEVar(EVar) T
	VisitSVar(SVar) T
	VisitAnd(And) T
	VisitOr(Or) T
	VisitNot(Not) T
	VisitApp(App) T
	VisitExists(Exists) T
	VisitForall(Forall) T
	VisitMu(Mu) T
	VisitNu(Nu) T
}

// Visit dispatches a given pattern to the matching case of a visitor.
func Visit[T any](p Pattern, v Visitor[T]) T {
	switch p := p.(type) {
	case Symbol:
		return v.VisitSymbol(p)
	case EVar:
		return v.VisitEVar(p)
	case SVar:
		return v.VisitSVar(p)
	case And:
		return v.VisitAnd(p)
	case Or:
		return v.VisitOr(p)
	case Not:
		return v.VisitNot(p)
	case App:
		return v.VisitApp(p)
	case Exists:
		return v.VisitExists(p)
	case Forall:
		return v.VisitForall(p)
	case Mu:
		return v.VisitMu(p)
	case Nu:
		return v.VisitNu(p)
	}
	// Only reachable with a nil pattern, since the variant set is sealed.
	panic(fmt.Sprintf("unknown pattern encountered (%T)", p))
}
