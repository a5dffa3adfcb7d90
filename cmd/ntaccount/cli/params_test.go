// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
)

type sharedParams struct {
	Verbose bool `flag:"verbose,v" desc:"log lookups"`
}

type sampleParams struct {
	sharedParams
	System  string   `flag:"system,s" desc:"remote system"`
	Workers int      `flag:"workers" desc:"concurrent lookups" default:"4"`
	Diag    bool     `flag:"diag" desc:"diagnostic notation" default:"true"`
	Names   []string `flag:"name" desc:"account names"`
	ignored string
}

func TestFlagsFromParams_Defaults(t *testing.T) {
	var params sampleParams
	flagSet := FlagsFromParams("sample", &params)

	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Workers != 4 {
		t.Errorf("Workers = %d, want 4", params.Workers)
	}
	if !params.Diag {
		t.Error("Diag = false, want true")
	}
	if params.Verbose {
		t.Error("Verbose = true, want false")
	}
	if flagSet.Lookup("ignored") != nil {
		t.Error("untagged field was bound")
	}
}

func TestFlagsFromParams_Parse(t *testing.T) {
	var params sampleParams
	flagSet := FlagsFromParams("sample", &params)

	args := []string{"-s", "DC01", "--workers=2", "-v", "--name", "Everyone,Guests", "extra"}
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.System != "DC01" {
		t.Errorf("System = %q, want DC01", params.System)
	}
	if params.Workers != 2 {
		t.Errorf("Workers = %d, want 2", params.Workers)
	}
	if !params.Verbose {
		t.Error("Verbose = false, want true (embedded struct not bound)")
	}
	if len(params.Names) != 2 || params.Names[1] != "Guests" {
		t.Errorf("Names = %v", params.Names)
	}
	if remaining := flagSet.Args(); len(remaining) != 1 || remaining[0] != "extra" {
		t.Errorf("Args() = %v, want [extra]", remaining)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	var notPointer sampleParams
	if err := BindFlags(notPointer, FlagsFromParams("x", &struct{}{})); err == nil {
		t.Error("expected error for non-pointer params")
	}

	var unsupported struct {
		Ratio float32 `flag:"ratio"`
	}
	err := BindFlags(&unsupported, FlagsFromParams("y", &struct{}{}))
	if err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("error = %v, want unsupported type", err)
	}

	var badDefault struct {
		Count int `flag:"count" default:"many"`
	}
	err = BindFlags(&badDefault, FlagsFromParams("z", &struct{}{}))
	if err == nil || !strings.Contains(err.Error(), "default for --count") {
		t.Errorf("error = %v, want default parse error", err)
	}
}

func TestFlagsFromParams_PanicsOnProgrammingError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	FlagsFromParams("bad", "not a struct pointer")
}
