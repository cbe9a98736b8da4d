// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package qname implements namespace-qualified identifiers such as
// "xlink:href", built from two interned fragments.
package qname

import (
	"errors"
	"strings"

	"github.com/open-policy-agent/atom/v1/atom"
)

// ErrEmpty is returned when parsing a name with an empty local part.
var ErrEmpty = errors.New("qualified name has an empty local part")

// QName is an identifier with an optional namespace prefix. Both fragments
// are atoms, so common prefixes and local names are table entries.
type QName struct {
	Prefix atom.Atom
	Local  atom.Atom
}

// New returns the unqualified name local.
func New(local string) QName {
	return QName{Local: atom.From(local)}
}

// Parse splits s on its first colon. A leading colon or a missing colon yields
// an unqualified name; the only error is an empty local part.
func Parse(s string) (QName, error) {
	prefix, local, ok := strings.Cut(s, ":")
	if !ok || prefix == "" {
		if !ok {
			local = s
		}
		if local == "" {
			return QName{}, ErrEmpty
		}
		return QName{Local: atom.From(local)}, nil
	}
	if local == "" {
		return QName{}, ErrEmpty
	}
	return QName{Prefix: atom.From(prefix), Local: atom.From(local)}, nil
}

// ParseBytes is like Parse but reads from a scratch buffer the caller keeps
// reusing. Fragments that are table entries do not allocate.
func ParseBytes(b []byte) (QName, error) {
	i := indexColon(b)
	if i <= 0 {
		local := b[i+1:]
		if len(local) == 0 {
			return QName{}, ErrEmpty
		}
		return QName{Local: atom.Copy(local)}, nil
	}
	if i == len(b)-1 {
		return QName{}, ErrEmpty
	}
	return QName{Prefix: atom.Copy(b[:i]), Local: atom.Copy(b[i+1:])}, nil
}

func indexColon(b []byte) int {
	for i, c := range b {
		if c == ':' {
			return i
		}
	}
	return -1
}

// MustParse returns a new QName for s. If s cannot be parsed, this function
// will panic. This is mostly for test purposes.
func MustParse(s string) QName {
	q, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return q
}

// IsQualified reports whether q has a namespace prefix.
func (q QName) IsQualified() bool {
	return !q.Prefix.IsEmpty()
}

// IsStatic reports whether every fragment of q is a table entry.
func (q QName) IsStatic() bool {
	return q.Local.IsStatic() && (q.Prefix.IsEmpty() || q.Prefix.IsStatic())
}

// Equal returns true if q is the same as other.
func (q QName) Equal(other QName) bool {
	return q.Local.Equal(other.Local) && q.Prefix.Equal(other.Prefix)
}

// Compare orders by prefix, then by local name. It returns -1 if q is less
// than other, 0 if q is equal to other, or 1 if q is greater than other.
func (q QName) Compare(other QName) int {
	if c := q.Prefix.Compare(other.Prefix); c != 0 {
		return c
	}
	return q.Local.Compare(other.Local)
}

// Compare is QName.Compare as a function, for use with slices.SortFunc.
func Compare(a, b QName) int {
	return a.Compare(b)
}

// HasPrefix returns true if q is qualified by prefix.
func (q QName) HasPrefix(prefix atom.Atom) bool {
	return q.IsQualified() && q.Prefix.Equal(prefix)
}

func (q QName) String() string {
	if !q.IsQualified() {
		return q.Local.String()
	}

	return q.Prefix.String() + ":" + q.Local.String()
}

// MarshalText implements encoding.TextMarshaler.
func (q QName) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *QName) UnmarshalText(text []byte) error {
	parsed, err := ParseBytes(text)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
