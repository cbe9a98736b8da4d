// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package gen renders the static atom table from its YAML source.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"maps"
	"slices"
	"strings"
	"text/template"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/open-policy-agent/atom/v1/util"
)

// ErrStale is returned by Check when the generated file does not match its
// source.
var ErrStale = errors.New("generated table is out of date")

// Source is the decoded atoms.yaml.
type Source struct {
	Package string              `json:"package"`
	Groups  map[string][]string `json:"groups"`
}

// Load decodes and validates a table source.
//
// YAML resolves some unquoted scalars to other types: y, n, on, off, yes and
// no are booleans and 1 is a number. Such names are reported with their
// position so they can be quoted in the source.
func Load(bs []byte) (*Source, error) {
	var raw struct {
		Package string           `json:"package"`
		Groups  map[string][]any `json:"groups"`
	}
	if err := util.Unmarshal(bs, &raw); err != nil {
		return nil, fmt.Errorf("decode table source: %w", err)
	}

	src := Source{Package: raw.Package, Groups: make(map[string][]string, len(raw.Groups))}
	var errs []error
	for _, group := range slices.Sorted(maps.Keys(raw.Groups)) {
		names := make([]string, len(raw.Groups[group]))
		for i, v := range raw.Groups[group] {
			name, ok := v.(string)
			if !ok {
				errs = append(errs, fmt.Errorf("%s[%d]: decoded as %T %v, quote the name", group, i, v, v))
				continue
			}
			names[i] = name
		}
		src.Groups[group] = names
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := src.Validate(); err != nil {
		return nil, err
	}
	return &src, nil
}

// Validate checks that the package name is an identifier and that every name
// can be looked up as a single fragment.
func (s *Source) Validate() error {
	if !token.IsIdentifier(s.Package) {
		return fmt.Errorf("invalid package name %q", s.Package)
	}

	var errs []error
	for _, group := range slices.Sorted(maps.Keys(s.Groups)) {
		for i, name := range s.Groups[group] {
			switch {
			case name == "":
				errs = append(errs, fmt.Errorf("%s[%d]: empty name", group, i))
			case strings.ContainsRune(name, ':'):
				errs = append(errs, fmt.Errorf("%s[%d]: %q is qualified, intern its fragments instead", group, i, name))
			case strings.IndexFunc(name, unicode.IsSpace) >= 0:
				errs = append(errs, fmt.Errorf("%s[%d]: %q contains whitespace", group, i, name))
			}
		}
	}
	return errors.Join(errs...)
}

// Names returns the names of every group, merged, sorted and deduplicated.
func (s *Source) Names() []string {
	var names []string
	for _, group := range s.Groups {
		names = append(names, group...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

var tmpl = template.Must(template.New("table").Parse(`// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Code generated by "atoms gen"; DO NOT EDIT.

package {{.Package}}

// names holds the canonical entries in byte order. The address of each
// element is the identity handed out by Lookup.
var names = [...]string{
{{- range .Names}}
	{{printf "%q" .}},
{{- end}}
}
`))

// Render returns the formatted Go source of the table.
func Render(src *Source) ([]byte, error) {
	buf := util.GetBuffer()
	defer util.PutBuffer(buf)

	err := tmpl.Execute(buf, struct {
		Package string
		Names   []string
	}{src.Package, src.Names()})
	if err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}

// Check compares a previously generated file with freshly rendered output. It
// returns an error wrapping ErrStale, with a line diff, when they differ.
func Check(existing, rendered []byte) error {
	if bytes.Equal(existing, rendered) {
		return nil
	}
	return fmt.Errorf("%w:\n%s", ErrStale, Diff(string(existing), string(rendered)))
}

// Diff returns the changed lines between a and b, prefixed with "-" and "+".
func Diff(a, b string) string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var mark string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			mark = "-"
		case diffmatchpatch.DiffInsert:
			mark = "+"
		default:
			continue
		}
		for line := range strings.Lines(d.Text) {
			sb.WriteString(mark)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
