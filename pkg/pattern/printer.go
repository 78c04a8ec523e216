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

import "strings"

// render a pattern as an S-Expression.  For example, the pattern "exists y. x
// and y" becomes "(exists ?y (and ?x ?y))".
func render(p Pattern) string {
	var builder strings.Builder
	//
	Visit[any](p, &printer{&builder})
	//
	return builder.String()
}

// printer writes patterns into a string builder.  Results are returned through
// the builder, hence the visitor itself returns nothing useful.
type printer struct {
	out *strings.Builder
}

func (p *printer) VisitSymbol(e Symbol) any { return p.atom(e.Name) }
func (p *printer) VisitEVar(e EVar) any     { return p.atom(e.Var().String()) }
func (p *printer) VisitSVar(e SVar) any     { return p.atom(e.Var().String()) }
func (p *printer) VisitAnd(e And) any       { return p.list("and", e.Left, e.Right) }
func (p *printer) VisitOr(e Or) any         { return p.list("or", e.Left, e.Right) }
func (p *printer) VisitNot(e Not) any       { return p.list("not", e.Subpattern) }
func (p *printer) VisitApp(e App) any       { return p.list("app", e.Left, e.Right) }
func (p *printer) VisitExists(e Exists) any { return p.list("exists", e.Bound, e.Subpattern) }
func (p *printer) VisitForall(e Forall) any { return p.list("forall", e.Bound, e.Subpattern) }
func (p *printer) VisitMu(e Mu) any         { return p.list("mu", e.Bound, e.Subpattern) }
func (p *printer) VisitNu(e Nu) any         { return p.list("nu", e.Bound, e.Subpattern) }

func (p *printer) atom(name string) any {
	p.out.WriteString(name)
	return nil
}

func (p *printer) list(head string, elements ...Pattern) any {
	p.out.WriteString("(")
	p.out.WriteString(head)
	//
	for _, e := range elements {
		p.out.WriteString(" ")
		Visit[any](e, p)
	}
	//
	p.out.WriteString(")")
	//
	return nil
}
