// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sage-x-project/tuplespace/pkg/tuplespace"
)

func TestRunServe_PutTakeRoundtrip(t *testing.T) {
	space := "serve-test-roundtrip"
	defer tuplespace.CloseSpace(space)

	in := strings.NewReader("put job=render n=1\ntake job=render n\nquit\n")
	var out bytes.Buffer

	cmd := serveCmd
	cmd.SetIn(in)
	cmd.SetOut(&out)

	serveSpace = space
	if err := runServe(cmd, nil); err != nil {
		t.Fatalf("runServe() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "ok put") {
		t.Errorf("expected put confirmation, got %q", got)
	}
	if !strings.Contains(got, "ok map") {
		t.Errorf("expected take to report a match, got %q", got)
	}
}

func TestRunServe_TakeNoMatch(t *testing.T) {
	space := "serve-test-nomatch"
	defer tuplespace.CloseSpace(space)

	in := strings.NewReader("take nonexistent\nquit\n")
	var out bytes.Buffer

	cmd := serveCmd
	cmd.SetIn(in)
	cmd.SetOut(&out)

	serveSpace = space
	if err := runServe(cmd, nil); err != nil {
		t.Fatalf("runServe() error = %v", err)
	}
	if !strings.Contains(out.String(), "no match") {
		t.Errorf("expected 'no match', got %q", out.String())
	}
}

func TestRunServe_Spaces(t *testing.T) {
	space := "serve-test-spaces"
	defer tuplespace.CloseSpace(space)

	in := strings.NewReader("spaces\nquit\n")
	var out bytes.Buffer

	cmd := serveCmd
	cmd.SetIn(in)
	cmd.SetOut(&out)

	serveSpace = space
	if err := runServe(cmd, nil); err != nil {
		t.Fatalf("runServe() error = %v", err)
	}
	if !strings.Contains(out.String(), space) {
		t.Errorf("expected %q listed in spaces output, got %q", space, out.String())
	}
}

func TestParseScalar(t *testing.T) {
	cases := map[string]tuplespace.Value{
		"42":    int64(42),
		"3.14":  3.14,
		"true":  true,
		"hello": "hello",
	}
	for raw, want := range cases {
		got := parseScalar(raw)
		if got != want {
			t.Errorf("parseScalar(%q) = %v (%T), want %v (%T)", raw, got, got, want, want)
		}
	}
}

func TestParseTemplateFields_Wildcard(t *testing.T) {
	fields, err := parseTemplateFields([]string{"job=render", "n"})
	if err != nil {
		t.Fatalf("parseTemplateFields() error = %v", err)
	}
	if fields["job"] != "render" {
		t.Errorf("fields[job] = %v, want \"render\"", fields["job"])
	}
	if v, ok := fields["n"]; !ok || v != nil {
		t.Errorf("fields[n] = %v, want nil wildcard", fields["n"])
	}
}

func TestParseConcreteFields_RequiresEquals(t *testing.T) {
	if _, err := parseConcreteFields([]string{"job"}); err == nil {
		t.Error("expected an error for a put field with no value")
	}
}
