package main

import (
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Fatalf("output %q missing version %q", out, version)
	}
}

func TestVersionCommandJSON(t *testing.T) {
	out, err := runCommand(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	if !strings.Contains(out, `"version"`) {
		t.Fatalf("output %q is not json", out)
	}
}

func TestUnknownCommandFails(t *testing.T) {
	if _, err := runCommand(t, "definitely-not-a-command"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
