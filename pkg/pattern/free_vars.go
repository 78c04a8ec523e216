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

// FreeVariables returns the set of variables occurring in a given pattern
// outside the scope of any binder which binds them.  A binder only ever binds
// variables of its own kind, so (for example) "exists ?x" does not bind "@x".
// The bound variable is removed regardless of whether it actually occurs.
func FreeVariables(p Pattern) *VarSet {
	return Visit[*VarSet](p, freeVariables{})
}

// IsClosed checks whether a given pattern has no free variables.
func IsClosed(p Pattern) bool {
	return FreeVariables(p).IsEmpty()
}

// freeVariables computes free variable sets by structural recursion.  Every
// case returns a freshly allocated set, which callers are free to mutate.
type freeVariables struct{}

func (v freeVariables) VisitSymbol(Symbol) *VarSet   { return NewVarSet() }
func (v freeVariables) VisitEVar(p EVar) *VarSet     { return NewVarSet(p.Var()) }
func (v freeVariables) VisitSVar(p SVar) *VarSet     { return NewVarSet(p.Var()) }
func (v freeVariables) VisitAnd(p And) *VarSet       { return v.union(p.Left, p.Right) }
func (v freeVariables) VisitOr(p Or) *VarSet         { return v.union(p.Left, p.Right) }
func (v freeVariables) VisitNot(p Not) *VarSet       { return Visit[*VarSet](p.Subpattern, v) }
func (v freeVariables) VisitApp(p App) *VarSet       { return v.union(p.Left, p.Right) }
func (v freeVariables) VisitExists(p Exists) *VarSet { return v.bind(p.Bound.Var(), p.Subpattern) }
func (v freeVariables) VisitForall(p Forall) *VarSet { return v.bind(p.Bound.Var(), p.Subpattern) }
func (v freeVariables) VisitMu(p Mu) *VarSet         { return v.bind(p.Bound.Var(), p.Subpattern) }
func (v freeVariables) VisitNu(p Nu) *VarSet         { return v.bind(p.Bound.Var(), p.Subpattern) }

func (v freeVariables) union(left Pattern, right Pattern) *VarSet {
	lhs := Visit[*VarSet](left, v)
	lhs.Union(Visit[*VarSet](right, v))
	//
	return lhs
}

func (v freeVariables) bind(bound Variable, body Pattern) *VarSet {
	fvs := Visit[*VarSet](body, v)
	fvs.Remove(bound)
	//
	return fvs
}

// ============================================================================
// Iterative
// ============================================================================

// FreeVariablesIter computes exactly the same set as FreeVariables, but using
// an explicit work stack held on the heap rather than recursion.  This is
// intended for pathologically deep patterns.
func FreeVariablesIter(p Pattern) *VarSet {
	var (
		exp = newExpander()
		// Work stack
		stack = []frame{visit(p)}
	)
	//
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		//
		if top.exit {
			exp.exit(top.bound)
		} else {
			stack = append(stack, Visit[[]frame](top.pattern, exp)...)
		}
	}
	// Construct final set
	vars := make([]Variable, 0, len(exp.free))
	for v := range exp.free {
		vars = append(vars, v)
	}
	//
	return NewVarSet(vars...)
}

// frame is either a pattern still to be visited, or the exit point of a
// binder's scope.
type frame struct {
	pattern Pattern
	exit    bool
	bound   Variable
}

func visit(p Pattern) frame {
	return frame{pattern: p}
}

// expander performs a single step of the iterative traversal.  Each case
// records any free occurrence, and returns the frames to push onto the work
// stack (the last of which is visited first).
type expander struct {
	// Number of enclosing binders for each variable currently in scope.
	scope map[Variable]uint
	// Free variables encountered so far.
	free map[Variable]struct{}
}

func newExpander() *expander {
	return &expander{make(map[Variable]uint), make(map[Variable]struct{})}
}

func (e *expander) VisitSymbol(Symbol) []frame   { return nil }
func (e *expander) VisitEVar(p EVar) []frame     { return e.occurs(p.Var()) }
func (e *expander) VisitSVar(p SVar) []frame     { return e.occurs(p.Var()) }
func (e *expander) VisitAnd(p And) []frame       { return []frame{visit(p.Right), visit(p.Left)} }
func (e *expander) VisitOr(p Or) []frame         { return []frame{visit(p.Right), visit(p.Left)} }
func (e *expander) VisitNot(p Not) []frame       { return []frame{visit(p.Subpattern)} }
func (e *expander) VisitApp(p App) []frame       { return []frame{visit(p.Right), visit(p.Left)} }
func (e *expander) VisitExists(p Exists) []frame { return e.enter(p.Bound.Var(), p.Subpattern) }
func (e *expander) VisitForall(p Forall) []frame { return e.enter(p.Bound.Var(), p.Subpattern) }
func (e *expander) VisitMu(p Mu) []frame         { return e.enter(p.Bound.Var(), p.Subpattern) }
func (e *expander) VisitNu(p Nu) []frame         { return e.enter(p.Bound.Var(), p.Subpattern) }

func (e *expander) occurs(v Variable) []frame {
	if e.scope[v] == 0 {
		e.free[v] = struct{}{}
	}
	//
	return nil
}

// Open the scope of a binder, and schedule a frame to close it once the body
// has been processed.
func (e *expander) enter(bound Variable, body Pattern) []frame {
	e.scope[bound]++
	//
	return []frame{{exit: true, bound: bound}, visit(body)}
}

// Close the scope of a binder.
func (e *expander) exit(bound Variable) {
	if e.scope[bound]--; e.scope[bound] == 0 {
		delete(e.scope, bound)
	}
}
