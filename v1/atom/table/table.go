// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package table holds the static set of identifiers known to the markup
// engine.
//
// A Table is immutable once built. Lookups hand out the address of the
// canonical entry, which stays valid for the remainder of the process, so two
// lookups of equal content always return the same pointer. Because nothing
// mutates a Table after construction it may be read from any number of
// goroutines without synchronization.
package table

//go:generate go run ../../.. gen -i atoms.yaml -o table_data.go

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/gobwas/glob"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Table is a read-only mapping from identifier content to a canonical,
// stable-address string.
type Table struct {
	entries []string
	index   map[string]int
	trie    *patricia.Trie
}

var defaultTable = build(names[:])

// Default returns the process-wide table generated from atoms.yaml.
func Default() *Table {
	return defaultTable
}

// New returns a table holding names. The input is copied, sorted and
// deduplicated; later changes to names do not affect the table.
func New(names []string) *Table {
	entries := slices.Clone(names)
	slices.Sort(entries)
	return build(slices.Compact(entries))
}

// build indexes entries, which must already be sorted and free of duplicates.
func build(entries []string) *Table {
	t := &Table{
		entries: entries,
		index:   make(map[string]int, len(entries)),
		trie:    patricia.NewTrie(),
	}
	for i, s := range entries {
		t.index[s] = i
		t.trie.Insert(patricia.Prefix(s), i)
	}
	return t
}

// Lookup returns the canonical entry equal to s.
func (t *Table) Lookup(s string) (*string, bool) {
	i, ok := t.index[s]
	if !ok {
		return nil, false
	}
	return &t.entries[i], true
}

// LookupBytes is like Lookup but takes a byte slice. It does not allocate.
func (t *Table) LookupBytes(b []byte) (*string, bool) {
	i, ok := t.index[string(b)]
	if !ok {
		return nil, false
	}
	return &t.entries[i], true
}

// Index returns the position of s in the table, or -1 if s is not present.
func (t *Table) Index(s string) int {
	if i, ok := t.index[s]; ok {
		return i
	}
	return -1
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Names returns a copy of the entries in byte order.
func (t *Table) Names() []string {
	return slices.Clone(t.entries)
}

// WithPrefix returns the entries starting with prefix, in byte order.
func (t *Table) WithPrefix(prefix string) []string {
	if prefix == "" {
		return t.Names()
	}

	var result []string
	_ = t.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		result = append(result, t.entries[item.(int)])
		return nil
	})
	slices.Sort(result)
	return result
}

// Match returns the entries matching the glob pattern, in byte order.
func (t *Table) Match(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}

	var result []string
	for _, s := range t.entries {
		if g.Match(s) {
			result = append(result, s)
		}
	}
	return result, nil
}

// Suggest returns the entries within maxDist edits of s, closest first.
// Entries at the same distance are returned in byte order.
func (t *Table) Suggest(s string, maxDist int) []string {
	type candidate struct {
		name string
		dist int
	}

	n := utf8.RuneCountInString(s)

	var candidates []candidate
	for _, name := range t.entries {
		// The length difference is a lower bound on the edit distance.
		if abs(utf8.RuneCountInString(name)-n) > maxDist {
			continue
		}
		if d := levenshtein.ComputeDistance(s, name); d <= maxDist {
			candidates = append(candidates, candidate{name: name, dist: d})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.dist, b.dist)
	})

	result := make([]string, len(candidates))
	for i := range candidates {
		result[i] = candidates[i].name
	}
	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
