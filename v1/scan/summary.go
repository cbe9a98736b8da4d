// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scan

import (
	"maps"
	"slices"

	"github.com/open-policy-agent/atom/v1/qname"
)

// Counts splits a number of identifiers by representation.
type Counts struct {
	Static int `json:"static"`
	Owned  int `json:"owned"`
}

// Total returns the number of identifiers counted.
func (c Counts) Total() int {
	return c.Static + c.Owned
}

func (c *Counts) add(other Counts) {
	c.Static += other.Static
	c.Owned += other.Owned
}

// Summary aggregates the identifiers found by one or more scans. The zero
// value is an empty summary ready to use.
type Summary struct {
	Tags  Counts `json:"tags"`
	Attrs Counts `json:"attrs"`

	// owned holds the distinct names that are not table entries, keyed by
	// their content.
	owned map[string]qname.QName
}

// NewSummary returns an empty summary.
func NewSummary() *Summary {
	return &Summary{owned: map[string]qname.QName{}}
}

// Add records id. It has the signature expected by Scanner.Scan.
func (s *Summary) Add(id Identifier) error {
	c := &s.Tags
	if id.Kind == Attr {
		c = &s.Attrs
	}

	if id.Name.IsStatic() {
		c.Static++
		return nil
	}

	c.Owned++
	if s.owned == nil {
		s.owned = map[string]qname.QName{}
	}
	key := id.Name.String()
	if _, ok := s.owned[key]; !ok {
		s.owned[key] = id.Name
	}
	return nil
}

// Merge adds the counts and owned names of other to s.
func (s *Summary) Merge(other *Summary) {
	s.Tags.add(other.Tags)
	s.Attrs.add(other.Attrs)
	if s.owned == nil && len(other.owned) > 0 {
		s.owned = make(map[string]qname.QName, len(other.owned))
	}
	for k, v := range other.owned {
		if _, ok := s.owned[k]; !ok {
			s.owned[k] = v
		}
	}
}

// Total returns the number of identifiers recorded.
func (s *Summary) Total() int {
	return s.Tags.Total() + s.Attrs.Total()
}

// StaticRatio returns the fraction of identifiers that were table entries.
func (s *Summary) StaticRatio() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Tags.Static+s.Attrs.Static) / float64(total)
}

// Owned returns the distinct names that are not table entries, sorted.
func (s *Summary) Owned() []qname.QName {
	return slices.SortedFunc(maps.Values(s.owned), qname.Compare)
}
