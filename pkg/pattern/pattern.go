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

// Pattern represents a node in a matching-logic expression tree.  The set of
// patterns is closed: the only implementations are the eleven variants
// declared in this file.  Every variant is an immutable value, hence patterns
// compare structurally using == and can be used directly as map keys.
// Subtrees can be shared freely between patterns.
type Pattern interface {
	// String returns an S-Expression rendering of this pattern.
	String() string
	// Prevents implementations outside this package.
	isPattern()
}

// Symbol is an atomic constant symbol.
type Symbol struct {
	Name string
}

// EVar is an element variable leaf.
type EVar struct {
	Name string
}

// SVar is a set variable leaf.
type SVar struct {
	Name string
}

// And is the conjunction of two patterns.
type And struct {
	Left  Pattern
	Right Pattern
}

// Or is the disjunction of two patterns.
type Or struct {
	Left  Pattern
	Right Pattern
}

// Not is the negation of a pattern.
type Not struct {
	Subpattern Pattern
}

// App is the application of one pattern to another.
type App struct {
	Left  Pattern
	Right Pattern
}

// Exists binds an element variable existentially over its subpattern.
type Exists struct {
	Bound      EVar
	Subpattern Pattern
}

// Forall binds an element variable universally over its subpattern.
type Forall struct {
	Bound      EVar
	Subpattern Pattern
}

// Mu is the least fixpoint of its subpattern with respect to a set variable.
type Mu struct {
	Bound      SVar
	Subpattern Pattern
}

// Nu is the greatest fixpoint of its subpattern with respect to a set
// variable.
type Nu struct {
	Bound      SVar
	Subpattern Pattern
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var (
	_ Pattern = Symbol{}
	_ Pattern = EVar{}
	_ Pattern = SVar{}
	_ Pattern = And{}
	_ Pattern = Or{}
	_ Pattern = Not{}
	_ Pattern = App{}
	_ Pattern = Exists{}
	_ Pattern = Forall{}
	_ Pattern = Mu{}
	_ Pattern = Nu{}
)

// ============================================================================
// Constructors
// ============================================================================

// NewSymbol constructs a symbol with the given name.
func NewSymbol(name string) Symbol { return Symbol{name} }

// NewEVar constructs an element variable leaf with the given name.
func NewEVar(name string) EVar { return EVar{name} }

// NewSVar constructs a set variable leaf with the given name.
func NewSVar(name string) SVar { return SVar{name} }

// NewAnd constructs the conjunction of two patterns.
func NewAnd(left Pattern, right Pattern) And { return And{left, right} }

// NewOr constructs the disjunction of two patterns.
func NewOr(left Pattern, right Pattern) Or { return Or{left, right} }

// NewNot constructs the negation of a pattern.
func NewNot(subpattern Pattern) Not { return Not{subpattern} }

// NewApp constructs the application of one pattern to another.
func NewApp(left Pattern, right Pattern) App { return App{left, right} }

// NewExists constructs an existential binder.
func NewExists(bound EVar, subpattern Pattern) Exists { return Exists{bound, subpattern} }

// NewForall constructs a universal binder.
func NewForall(bound EVar, subpattern Pattern) Forall { return Forall{bound, subpattern} }

// NewMu constructs a least fixpoint binder.
func NewMu(bound SVar, subpattern Pattern) Mu { return Mu{bound, subpattern} }

// NewNu constructs a greatest fixpoint binder.
func NewNu(bound SVar, subpattern Pattern) Nu { return Nu{bound, subpattern} }

// ============================================================================
// Variables
// ============================================================================

// Var returns the variable represented by this leaf.
func (p EVar) Var() Variable { return ElementVar(p.Name) }

// Var returns the variable represented by this leaf.
func (p SVar) Var() Variable { return SetVar(p.Name) }

// ============================================================================
// Rendering
// ============================================================================

func (p Symbol) String() string { return render(p) }
func (p EVar) String() string   { return render(p) }
func (p SVar) String() string   { return render(p) }
func (p And) String() string    { return render(p) }
func (p Or) String() string     { return render(p) }
func (p Not) String() string    { return render(p) }
func (p App) String() string    { return render(p) }
func (p Exists) String() string { return render(p) }
func (p Forall) String() string { return render(p) }
func (p Mu) String() string     { return render(p) }
func (p Nu) String() string     { return render(p) }

func (Symbol) isPattern() {}
func (EVar) isPattern()   {}
func (SVar) isPattern()   {}
func (And) isPattern()    {}
func (Or) isPattern()     {}
func (Not) isPattern()    {}
func (App) isPattern()    {}
func (Exists) isPattern() {}
func (Forall) isPattern() {}
func (Mu) isPattern()     {}
func (Nu) isPattern()     {}
