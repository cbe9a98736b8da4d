// Copyright 2016 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package util

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnmarshalJSONTrailingData(t *testing.T) {
	var x any
	if err := UnmarshalJSON([]byte(`{"a": 1} {"b": 2}`), &x); err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestUnmarshalJSONNumber(t *testing.T) {
	var x map[string]any
	if err := UnmarshalJSON([]byte(`{"n": 12}`), &x); err != nil {
		t.Fatal(err)
	}
	if _, ok := x["n"].(json.Number); !ok {
		t.Errorf("expected json.Number, got %T", x["n"])
	}
}

func TestUnmarshal(t *testing.T) {
	type doc struct {
		Package string              `json:"package"`
		Groups  map[string][]string `json:"groups"`
	}

	want := doc{
		Package: "table",
		Groups:  map[string][]string{"elements": {"a", "body"}},
	}

	inputs := map[string]string{
		"json": `{"package": "table", "groups": {"elements": ["a", "body"]}}`,
		"yaml": "package: table\ngroups:\n  elements:\n    - a\n    - body\n",
		"bom":  "\xef\xbb\xbfpackage: table\ngroups:\n  elements: [a, body]\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			var got doc
			if err := Unmarshal([]byte(input), &got); err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("Unmarshal mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var x any
	if err := Unmarshal([]byte("a: [b"), &x); err == nil {
		t.Fatal("expected error")
	}
}

func TestMarshalYAML(t *testing.T) {
	bs, err := MarshalYAML(map[string]any{"names": []string{"a", "body"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(bs); !strings.Contains(got, "names:") || !strings.Contains(got, "- body") {
		t.Errorf("unexpected YAML:\n%s", got)
	}
}

func TestBufferPool(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString("scratch")
	PutBuffer(buf)

	if got := GetBuffer(); got.Len() != 0 {
		t.Errorf("pooled buffer not reset: %q", got.String())
	}
}
