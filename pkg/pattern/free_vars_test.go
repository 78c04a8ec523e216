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

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	x  = NewEVar("x")
	y  = NewEVar("y")
	z  = NewEVar("z")
	sx = NewSVar("x")
	sX = NewSVar("X")
	f  = NewSymbol("f")
)

func Test_FreeVars_01(t *testing.T) {
	checkFreeVars(t, f)
	checkFreeVars(t, NewSymbol("x"))
}

func Test_FreeVars_02(t *testing.T) {
	checkFreeVars(t, x, x.Var())
	checkFreeVars(t, sX, sX.Var())
}

func Test_FreeVars_03(t *testing.T) {
	checkFreeVars(t, NewAnd(x, y), x.Var(), y.Var())
	checkFreeVars(t, NewOr(x, sX), x.Var(), sX.Var())
	checkFreeVars(t, NewApp(f, z), z.Var())
}

func Test_FreeVars_04(t *testing.T) {
	checkFreeVars(t, NewAnd(x, x), x.Var())
	checkFreeVars(t, NewApp(x, NewOr(y, x)), x.Var(), y.Var())
}

func Test_FreeVars_05(t *testing.T) {
	checkFreeVars(t, NewNot(x), x.Var())
	checkFreeVars(t, NewNot(NewNot(f)))
}

func Test_FreeVars_06(t *testing.T) {
	checkFreeVars(t, NewExists(x, x))
	checkFreeVars(t, NewForall(x, NewAnd(x, y)), y.Var())
}

// Removal of a bound variable which does not occur is not an error.
func Test_FreeVars_07(t *testing.T) {
	checkFreeVars(t, NewExists(x, y), y.Var())
	checkFreeVars(t, NewForall(z, f))
	checkFreeVars(t, NewMu(sX, x), x.Var())
}

func Test_FreeVars_08(t *testing.T) {
	checkFreeVars(t, NewMu(sX, sX))
	checkFreeVars(t, NewNu(sX, NewApp(sX, sx)), sx.Var())
}

// Binders never capture variables of the other kind.
func Test_FreeVars_09(t *testing.T) {
	checkFreeVars(t, NewExists(x, sx), sx.Var())
	checkFreeVars(t, NewForall(x, NewAnd(x, sx)), sx.Var())
	checkFreeVars(t, NewMu(sx, x), x.Var())
	checkFreeVars(t, NewNu(sx, NewOr(x, sx)), x.Var())
}

func Test_FreeVars_10(t *testing.T) {
	checkFreeVars(t, NewExists(x, NewExists(x, x)))
	checkFreeVars(t, NewMu(sX, NewNu(sX, sX)))
}

func Test_FreeVars_11(t *testing.T) {
	checkFreeVars(t, NewApp(x, NewExists(y, NewAnd(x, y))), x.Var())
}

func Test_FreeVars_12(t *testing.T) {
	checkFreeVars(t, NewMu(sX, NewOr(sX, z)), z.Var())
}

// An occurrence outside a binder remains free, even when the same variable is
// bound elsewhere.
func Test_FreeVars_13(t *testing.T) {
	checkFreeVars(t, NewAnd(NewExists(x, x), x), x.Var())
	checkFreeVars(t, NewOr(sX, NewMu(sX, sX)), sX.Var())
}

// Binary connectives and application agree with each other.
func Test_FreeVars_14(t *testing.T) {
	var (
		lhs = NewExists(y, NewAnd(x, y))
		rhs = NewNot(NewMu(sX, NewApp(sX, z)))
	)
	//
	expected := FreeVariables(lhs)
	expected.Union(FreeVariables(rhs))
	//
	for _, p := range []Pattern{NewAnd(lhs, rhs), NewOr(lhs, rhs), NewApp(lhs, rhs)} {
		assertVarSet(t, expected, FreeVariables(p), p)
	}
}

func Test_FreeVars_15(t *testing.T) {
	var body = NewAnd(NewOr(x, sx), NewApp(y, sX))
	//
	for _, b := range []Pattern{NewExists(x, body), NewForall(x, body)} {
		checkFreeVars(t, b, sx.Var(), y.Var(), sX.Var())
	}
	//
	for _, b := range []Pattern{NewMu(sx, body), NewNu(sx, body)} {
		checkFreeVars(t, b, x.Var(), y.Var(), sX.Var())
	}
}

func Test_FreeVars_16(t *testing.T) {
	assert.True(t, IsClosed(NewExists(x, NewMu(sX, NewApp(x, sX)))))
	assert.False(t, IsClosed(NewExists(x, NewMu(sX, NewApp(y, sX)))))
}

// Results are fresh, and hence can be mutated without affecting later calls.
func Test_FreeVars_17(t *testing.T) {
	var p = NewAnd(x, y)
	//
	fvs := FreeVariables(p)
	fvs.Remove(x.Var())
	fvs.Insert(z.Var())
	//
	checkFreeVars(t, p, x.Var(), y.Var())
}

func Test_FreeVars_18(t *testing.T) {
	var (
		// Shared subtree
		shared = NewApp(NewExists(y, NewAnd(x, y)), NewMu(sX, NewOr(sX, z)))
		p      = NewAnd(shared, NewNot(shared))
		wg     sync.WaitGroup
	)
	//
	for range 16 {
		wg.Add(1)
		//
		go func() {
			defer wg.Done()
			assertVarSet(t, NewVarSet(x.Var(), z.Var()), FreeVariables(p), p)
		}()
	}
	//
	wg.Wait()
}

// Deep patterns are handled by the iterative traversal.
func Test_FreeVars_19(t *testing.T) {
	var p Pattern = x
	//
	for i := range 100_000 {
		switch i % 3 {
		case 0:
			p = NewNot(p)
		case 1:
			p = NewAnd(y, p)
		default:
			p = NewNu(sX, p)
		}
	}
	//
	p = NewExists(y, p)
	//
	assertVarSet(t, NewVarSet(x.Var()), FreeVariablesIter(p), "deep pattern")
}

// Each step of the iterative traversal schedules exactly the subpatterns of its
// variant, with binders closing their scope after their body.
func Test_FreeVars_20(t *testing.T) {
	var (
		exp  = newExpander()
		body = NewAnd(x, sX)
	)
	//
	assert.Empty(t, Visit[[]frame](f, exp))
	assert.Empty(t, Visit[[]frame](x, exp))
	assert.Empty(t, Visit[[]frame](sX, exp))
	assert.Equal(t, []frame{visit(y), visit(x)}, Visit[[]frame](NewAnd(x, y), exp))
	assert.Equal(t, []frame{visit(y), visit(x)}, Visit[[]frame](NewOr(x, y), exp))
	assert.Equal(t, []frame{visit(y), visit(x)}, Visit[[]frame](NewApp(x, y), exp))
	assert.Equal(t, []frame{visit(body)}, Visit[[]frame](NewNot(body), exp))
	//
	for _, p := range []Pattern{NewExists(z, body), NewForall(z, body)} {
		assert.Equal(t, []frame{{exit: true, bound: z.Var()}, visit(body)}, Visit[[]frame](p, exp))
	}
	//
	for _, p := range []Pattern{NewMu(sx, body), NewNu(sx, body)} {
		assert.Equal(t, []frame{{exit: true, bound: sx.Var()}, visit(body)}, Visit[[]frame](p, exp))
	}
	// Leaves visited outside any binder are free
	assert.Equal(t, map[Variable]struct{}{x.Var(): {}, sX.Var(): {}}, exp.free)
	assert.Equal(t, map[Variable]uint{z.Var(): 2, sx.Var(): 2}, exp.scope)
}

// Leaves visited within the scope of a matching binder are not free, and
// closing that scope makes them free again.
func Test_FreeVars_21(t *testing.T) {
	var exp = newExpander()
	//
	Visit[[]frame](NewExists(x, x), exp)
	Visit[[]frame](x, exp)
	Visit[[]frame](sx, exp)
	assert.Equal(t, map[Variable]struct{}{sx.Var(): {}}, exp.free)
	//
	exp.exit(x.Var())
	assert.Empty(t, exp.scope)
	Visit[[]frame](x, exp)
	assert.Equal(t, map[Variable]struct{}{x.Var(): {}, sx.Var(): {}}, exp.free)
}

// ============================================================================
// Framework
// ============================================================================

func checkFreeVars(t *testing.T, p Pattern, vars ...Variable) {
	t.Helper()
	//
	expected := NewVarSet(vars...)
	//
	assertVarSet(t, expected, FreeVariables(p), "recursive: %s", p)
	assertVarSet(t, expected, FreeVariablesIter(p), "iterative: %s", p)
}

func assertVarSet(t *testing.T, expected *VarSet, actual *VarSet, msgAndArgs ...any) {
	t.Helper()
	//
	if !expected.Equals(actual) {
		assert.Fail(t, "free variables differ: expected "+expected.String()+" but got "+actual.String(), msgAndArgs...)
	}
}
