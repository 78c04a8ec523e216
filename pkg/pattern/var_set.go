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
	"slices"
	"sort"
	"strings"
)

// VarSet is an array of unique variables kept in sorted order (see
// Variable.Cmp).  Every operation producing a VarSet allocates a fresh array,
// hence sets returned to callers never alias one another.
type VarSet []Variable

// NewVarSet creates a variable set from zero or more variables.  The given
// array is cloned first, and so will not be mutated by this function or any
// subsequent calls on the resulting set.
func NewVarSet(vars ...Variable) *VarSet {
	var items VarSet = slices.Clone(vars)
	// Sort incoming data
	slices.SortFunc(items, Variable.Cmp)
	// Remove duplicates
	items = slices.Compact(items)
	//
	return &items
}

// Len returns the number of variables in this set.
func (p *VarSet) Len() int {
	return len(*p)
}

// IsEmpty checks whether this set contains no variables.
func (p *VarSet) IsEmpty() bool {
	return len(*p) == 0
}

// ToArray returns a copy of the variables in this set, in sorted order.
func (p *VarSet) ToArray() []Variable {
	return slices.Clone(*p)
}

// Contains returns true if a given variable is in the set.
func (p *VarSet) Contains(v Variable) bool {
	_, found := p.find(v)
	//
	return found
}

// Insert a variable into this set.
//
//nolint:revive
func (p *VarSet) Insert(v Variable) {
	i, found := p.find(v)
	//
	if !found {
		*p = slices.Insert(*p, i, v)
	}
}

// Remove a variable from this set, returning true if it was present.
//
//nolint:revive
func (p *VarSet) Remove(v Variable) bool {
	i, found := p.find(v)
	//
	if found {
		*p = slices.Delete(*p, i, i+1)
	}
	//
	return found
}

// Union inserts all variables from a given set into this set.
//
//nolint:revive
func (p *VarSet) Union(q *VarSet) {
	if len(*q) == 0 {
		return
	}
	// Concatenate into fresh array, then restore order
	items := slices.Concat(*p, *q)
	slices.SortFunc(items, Variable.Cmp)
	//
	*p = slices.Compact(items)
}

// Equals checks whether two sets contain exactly the same variables.
func (p *VarSet) Equals(q *VarSet) bool {
	return slices.Equal(*p, *q)
}

func (p *VarSet) String() string {
	var items = make([]string, len(*p))
	//
	for i, v := range *p {
		items[i] = v.String()
	}
	//
	return "{" + strings.Join(items, ", ") + "}"
}

// Find index where element either does occur, or should occur.
func (p *VarSet) find(v Variable) (int, bool) {
	data := *p
	i := sort.Search(len(data), func(i int) bool {
		return v.Cmp(data[i]) <= 0
	})
	//
	return i, i < len(data) && data[i] == v
}
