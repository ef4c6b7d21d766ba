// Copyright 2025 The lane2stardict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index provides a sorted in-memory lookup over headword
// records.
package index

import (
	"fmt"
	"slices"
	"sort"
)

// Index is a sorted array index over values keyed by their String form.
type Index[V fmt.Stringer] struct {
	values []V
	cmp    func(string, string) int
}

// New builds an index from values. cmp(a, b) must return a negative
// number when a < b, a positive number when a > b and zero when the keys
// are equal or incomparable under a strict weak ordering.
func New[V fmt.Stringer](values []V, cmp func(string, string) int) *Index[V] {
	sorted := make([]V, len(values))
	copy(sorted, values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(a.String(), b.String())
	})

	return &Index[V]{
		values: sorted,
		cmp:    cmp,
	}
}

// Search returns every value whose key compares equal to query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.values), func(i int) int {
		return idx.cmp(query, idx.values[i].String())
	})
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.values) && idx.cmp(query, idx.values[j].String()) == 0 {
		j++
	}
	return idx.values[i:j]
}

// Len returns the number of indexed values.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}
