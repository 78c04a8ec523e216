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
	"cmp"
	"fmt"
	"hash/fnv"
	"strings"
)

// Kind distinguishes the two variable namespaces.  Element and set variables
// never compare equal, even when their names coincide.
type Kind uint8

const (
	// ElementKind identifies element variables, which range over individual
	// elements of a model's domain.
	ElementKind Kind = iota
	// SetKind identifies set variables, which range over subsets of a model's
	// domain.
	SetKind
)

func (k Kind) String() string {
	switch k {
	case ElementKind:
		return "element"
	case SetKind:
		return "set"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Variable is either an element variable or a set variable, identified by its
// kind and its name.  Variables are values: two variables are equal exactly
// when both their kinds and names are equal.
type Variable struct {
	Kind Kind
	Name string
}

// ElementVar constructs an element variable with the given name.
func ElementVar(name string) Variable {
	return Variable{ElementKind, name}
}

// SetVar constructs a set variable with the given name.
func SetVar(name string) Variable {
	return Variable{SetKind, name}
}

// IsElement checks whether this is an element variable.
func (v Variable) IsElement() bool {
	return v.Kind == ElementKind
}

// IsSet checks whether this is a set variable.
func (v Variable) IsSet() bool {
	return v.Kind == SetKind
}

// Cmp implementation for the Comparable interface.  Element variables are
// ordered before set variables, and variables of the same kind are ordered by
// name.
func (v Variable) Cmp(o Variable) int {
	if c := cmp.Compare(v.Kind, o.Kind); c != 0 {
		return c
	}
	//
	return strings.Compare(v.Name, o.Name)
}

// Equals implementation for the Hasher interface.
func (v Variable) Equals(o Variable) bool {
	return v == o
}

// Hash implementation for the Hasher interface.
func (v Variable) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write([]byte{byte(v.Kind)})
	hash.Write([]byte(v.Name))
	// Done
	return hash.Sum64()
}

// Pattern returns the leaf pattern corresponding to this variable.
func (v Variable) Pattern() Pattern {
	if v.Kind == SetKind {
		return SVar{v.Name}
	}
	//
	return EVar{v.Name}
}

// String renders element variables as "?x" and set variables as "@X".
func (v Variable) String() string {
	if v.Kind == SetKind {
		return "@" + v.Name
	}
	//
	return "?" + v.Name
}
