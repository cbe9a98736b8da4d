// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package table

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsSortedAndUnique(t *testing.T) {
	entries := Default().Names()
	if len(entries) == 0 {
		t.Fatal("default table is empty")
	}
	if !slices.IsSorted(entries) {
		t.Error("default table is not in byte order")
	}
	if len(slices.Compact(slices.Clone(entries))) != len(entries) {
		t.Error("default table holds duplicates")
	}
	if slices.Contains(entries, "") {
		t.Error("the empty string must not be a table entry")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input string
		found bool
	}{
		{"body", true},
		{"a", true},
		{"annotation-xml", true},
		{"viewBox", true},
		{"xmlns", true},
		{"", false},
		{"asdfghjk", false},
		{"BODY", false},
		{"viewbox", true},
		{"VIEWBOX", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			p, ok := Default().Lookup(tc.input)
			if ok != tc.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tc.input, ok, tc.found)
			}
			if !ok {
				if p != nil {
					t.Errorf("Lookup(%q) returned a pointer on a miss", tc.input)
				}
				return
			}
			if *p != tc.input {
				t.Errorf("Lookup(%q) = %q", tc.input, *p)
			}

			q, ok := Default().LookupBytes([]byte(tc.input))
			if !ok || q != p {
				t.Errorf("LookupBytes(%q) does not agree with Lookup", tc.input)
			}
		})
	}
}

func TestLookupIdentity(t *testing.T) {
	// Build the key at runtime so it does not share storage with a literal.
	key := string([]byte{'b', 'o', 'd', 'y'})

	p1, _ := Default().Lookup("body")
	p2, _ := Default().Lookup(key)
	if p1 != p2 {
		t.Error("equal content produced different entries")
	}

	p3, _ := Default().Lookup("head")
	if p1 == p3 {
		t.Error("different content produced the same entry")
	}
}

func TestLookupBytesDoesNotAllocate(t *testing.T) {
	hit, miss := []byte("section"), []byte("not-an-element")
	allocs := testing.AllocsPerRun(100, func() {
		Default().LookupBytes(hit)
		Default().LookupBytes(miss)
	})
	if allocs != 0 {
		t.Errorf("got %v allocations, want 0", allocs)
	}
}

func TestNew(t *testing.T) {
	input := []string{"zeta", "alpha", "beta", "alpha"}
	tbl := New(input)
	input[0] = "mutated"

	if d := cmp.Diff([]string{"alpha", "beta", "zeta"}, tbl.Names()); d != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", d)
	}
	if tbl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tbl.Len())
	}
	if _, ok := tbl.Lookup("mutated"); ok {
		t.Error("table observed a change to its input")
	}
	if got := tbl.Index("beta"); got != 1 {
		t.Errorf("Index(beta) = %d, want 1", got)
	}
	if got := tbl.Index("gamma"); got != -1 {
		t.Errorf("Index(gamma) = %d, want -1", got)
	}
}

func TestNamesIsACopy(t *testing.T) {
	names := Default().Names()
	names[0] = "changed"
	if Default().Names()[0] == "changed" {
		t.Error("Names exposed the table's storage")
	}
}

func TestWithPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"h", []string{"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "height", "hgroup", "hidden", "high", "hr", "href", "hreflang", "html"}},
		{"src", []string{"src", "srcdoc", "srclang", "srcset"}},
		{"xml", []string{"xml", "xmlns"}},
		{"qq", nil},
	}

	for _, tc := range tests {
		t.Run(tc.prefix, func(t *testing.T) {
			if d := cmp.Diff(tc.want, Default().WithPrefix(tc.prefix)); d != "" {
				t.Errorf("WithPrefix(%q) mismatch (-want +got):\n%s", tc.prefix, d)
			}
		})
	}

	if got := Default().WithPrefix(""); len(got) != Default().Len() {
		t.Errorf("empty prefix returned %d entries, want %d", len(got), Default().Len())
	}
}

func TestMatch(t *testing.T) {
	got, err := Default().Match("h?")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"h1", "h2", "h3", "h4", "h5", "h6", "hr"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Match(h?) mismatch (-want +got):\n%s", d)
	}

	got, err = Default().Match("*list")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"datalist", "list"}, got); d != "" {
		t.Errorf("Match(*list) mismatch (-want +got):\n%s", d)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input   string
		maxDist int
		want    []string
	}{
		{"bdoy", 2, []string{"bdo", "bdi", "body"}},
		{"tabel", 2, []string{"label", "table"}},
		{"sectoin", 2, []string{"section"}},
		{"qqqqqqqqqq", 2, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := Default().Suggest(tc.input, tc.maxDist)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("Suggest(%q) mismatch (-want +got):\n%s", tc.input, d)
			}
		})
	}
}

func TestConcurrentLookup(t *testing.T) {
	defer leaktest.CheckTimeout(t, 5*time.Second)()

	names := Default().Names()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range names {
				p, ok := Default().Lookup(s)
				if !ok || *p != s {
					t.Errorf("Lookup(%q) failed under concurrency", s)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkLookup(b *testing.B) {
	b.Run("Hit", func(b *testing.B) {
		for b.Loop() {
			Default().Lookup("blockquote")
		}
	})

	b.Run("Miss", func(b *testing.B) {
		for b.Loop() {
			Default().Lookup("custom-element")
		}
	})
}
