// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package scan extracts identifiers from markup and interns them.
//
// A Scanner tokenizes its input and reports every tag name and attribute key
// as an interned qualified name. Tag and attribute names are copied into a
// scratch buffer owned by the scanner and handed to atom.Take, so identifiers
// found in the static table never allocate and the buffer is only replaced
// when an unknown name takes ownership of it.
//
// A Scanner is not safe for concurrent use. Use one Scanner per goroutine; they
// share the static table, which is read-only.
package scan

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/open-policy-agent/atom/v1/atom"
	"github.com/open-policy-agent/atom/v1/logging"
	"github.com/open-policy-agent/atom/v1/qname"
)

// Kind is the syntactic role of an identifier.
type Kind uint8

const (
	// Tag identifies element names from start, end and self-closing tags.
	Tag Kind = iota
	// Attr identifies attribute keys.
	Attr
)

func (k Kind) String() string {
	switch k {
	case Tag:
		return "tag"
	case Attr:
		return "attr"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Identifier is a name found in the input.
type Identifier struct {
	Kind Kind
	Name qname.QName
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger logging.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithMetrics records every identifier in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Scanner) {
		s.metrics = m
	}
}

// Scanner reports identifiers found in markup.
type Scanner struct {
	logger  logging.Logger
	metrics *Metrics
	buf     []byte
}

// New returns a Scanner configured with opts.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		logger: logging.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan tokenizes r and calls fn for every identifier, in document order. fn may
// be nil. Scanning stops at the first error returned by fn, or when ctx is
// done.
func (s *Scanner) Scan(ctx context.Context, r io.Reader, fn func(Identifier) error) error {
	z := html.NewTokenizer(r)
	var tokens, identifiers int

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("tokenize: %w", err)
			}
			s.logger.Debug("Scanned %d tokens, %d identifiers.", tokens, identifiers)
			return nil

		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			tokens++
			name, hasAttr := z.TagName()
			if err := s.emit(Tag, name, fn); err != nil {
				return err
			}
			identifiers++

			for hasAttr {
				var key []byte
				key, _, hasAttr = z.TagAttr()
				if err := s.emit(Attr, key, fn); err != nil {
					return err
				}
				identifiers++
			}

		default:
			tokens++
		}
	}
}

func (s *Scanner) emit(kind Kind, raw []byte, fn func(Identifier) error) error {
	name, err := s.intern(raw)
	if err != nil {
		s.logger.Warn("Skipping %v %q: %v", kind, raw, err)
		return nil
	}

	id := Identifier{Kind: kind, Name: name}
	if s.metrics != nil {
		s.metrics.observe(id)
	}
	if fn == nil {
		return nil
	}
	return fn(id)
}

// intern converts raw, which is only valid until the next token, into a
// qualified name.
func (s *Scanner) intern(raw []byte) (qname.QName, error) {
	if bytes.IndexByte(raw, ':') >= 0 {
		return qname.ParseBytes(raw)
	}
	if len(raw) == 0 {
		return qname.QName{}, qname.ErrEmpty
	}
	s.buf = append(s.buf[:0], raw...)
	return qname.QName{Local: atom.Take(&s.buf)}, nil
}
