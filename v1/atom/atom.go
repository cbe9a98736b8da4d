// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package atom implements interned identifier strings for the markup engine.
//
// An Atom is either a reference to a canonical entry of the static table (see
// package table) or an owned buffer holding any other content. Construction
// always prefers the table, so two table-backed atoms are equal exactly when
// they point at the same entry. Equality, ordering and hashing are defined on
// content and never depend on which representation is in use.
//
// The zero value is the empty string.
package atom

import (
	"strings"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/open-policy-agent/atom/v1/atom/table"
)

// Kind reports how an Atom stores its content.
type Kind uint8

const (
	// KindOwned atoms hold their own buffer.
	KindOwned Kind = iota
	// KindStatic atoms refer to an entry of the static table.
	KindStatic
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindOwned:
		return "owned"
	}
	return "unknown"
}

// Atom is an interned identifier. Atoms are not comparable with ==; use
// Equal, Compare or String.
type Atom struct {
	static *string // set for table entries
	owned  []byte  // exclusively owned by this atom, never mutated
}

// From returns the atom for s. Table entries are returned without allocating;
// other content is copied into a new buffer.
func From(s string) Atom {
	if p, ok := table.Default().Lookup(s); ok {
		return Atom{static: p}
	}
	return Atom{owned: []byte(s)}
}

// Copy is like From but reads the content from b, which the caller keeps.
func Copy(b []byte) Atom {
	if p, ok := table.Default().LookupBytes(b); ok {
		return Atom{static: p}
	}
	return Atom{owned: append([]byte(nil), b...)}
}

// FromBytes returns the atom for b, taking ownership of b. If the content is a
// table entry b is dropped; otherwise the atom keeps b without copying it. The
// caller must not modify b afterwards.
func FromBytes(b []byte) Atom {
	if p, ok := table.Default().LookupBytes(b); ok {
		return Atom{static: p}
	}
	return Atom{owned: b}
}

// Take is like FromBytes but leaves *b usable. On a table hit *b is truncated
// in place so its capacity can be reused; otherwise the buffer moves into the
// atom and *b is set to nil. Either way len(*b) is zero when Take returns.
func Take(b *[]byte) Atom {
	if p, ok := table.Default().LookupBytes(*b); ok {
		*b = (*b)[:0]
		return Atom{static: p}
	}
	a := Atom{owned: *b}
	*b = nil
	return a
}

// fastEqual decides equality from identity alone when both atoms are table
// entries. ok is false when the content has to be compared.
func (a Atom) fastEqual(b Atom) (equal, ok bool) {
	if a.static != nil && b.static != nil {
		return a.static == b.static, true
	}
	return false, false
}

// Equal reports whether a and b hold the same content.
func (a Atom) Equal(b Atom) bool {
	if equal, ok := a.fastEqual(b); ok {
		return equal
	}
	return a.String() == b.String()
}

// Less reports whether a sorts before b in byte order.
func (a Atom) Less(b Atom) bool {
	// Table addresses carry no ordering, only identity.
	if equal, ok := a.fastEqual(b); ok && equal {
		return false
	}
	return a.String() < b.String()
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to or
// after b in byte order.
func (a Atom) Compare(b Atom) int {
	if equal, ok := a.fastEqual(b); ok && equal {
		return 0
	}
	return strings.Compare(a.String(), b.String())
}

// Compare is Atom.Compare as a function, for use with slices.SortFunc.
func Compare(a, b Atom) int {
	return a.Compare(b)
}

// String returns the content of a without copying it.
func (a Atom) String() string {
	if a.static != nil {
		return *a.static
	}
	return unsafe.String(unsafe.SliceData(a.owned), len(a.owned))
}

// Bytes returns a new copy of the content of a.
func (a Atom) Bytes() []byte {
	if a.static != nil {
		return []byte(*a.static)
	}
	return append([]byte(nil), a.owned...)
}

// IntoBytes consumes a and returns its content as a buffer owned by the
// caller. Owned atoms hand over their buffer; table entries are copied. a is
// reset to the zero value, and copies of a made earlier must not be used
// afterwards.
func (a *Atom) IntoBytes() []byte {
	var b []byte
	if a.static != nil {
		b = []byte(*a.static)
	} else {
		b = a.owned
	}
	*a = Atom{}
	return b
}

// Clone returns an atom equal to a that does not share an owned buffer with
// it.
func (a Atom) Clone() Atom {
	if a.static != nil {
		return a
	}
	return Atom{owned: a.Bytes()}
}

// Kind reports whether a refers to the static table.
func (a Atom) Kind() Kind {
	if a.static != nil {
		return KindStatic
	}
	return KindOwned
}

// IsStatic reports whether a refers to the static table.
func (a Atom) IsStatic() bool {
	return a.static != nil
}

// Len returns the length of the content in bytes.
func (a Atom) Len() int {
	if a.static != nil {
		return len(*a.static)
	}
	return len(a.owned)
}

// IsEmpty reports whether a is the empty string.
func (a Atom) IsEmpty() bool {
	return a.Len() == 0
}

// Hash returns a hash of the content of a. Equal atoms hash equally whatever
// their kind.
func (a Atom) Hash() uint64 {
	return xxhash.Sum64String(a.String())
}

// MarshalText implements encoding.TextMarshaler.
func (a Atom) MarshalText() ([]byte, error) {
	return a.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded content is
// interned like any other input.
func (a *Atom) UnmarshalText(text []byte) error {
	*a = Copy(text)
	return nil
}
