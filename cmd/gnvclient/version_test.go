package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	t.Run("ldflags value wins", func(t *testing.T) {
		orig := version
		t.Cleanup(func() { version = orig })

		version = "1.2.3"
		if got := getVersion(); got != "1.2.3" {
			t.Errorf("expected 1.2.3, got %q", got)
		}
	})

	t.Run("fallback is never empty", func(t *testing.T) {
		orig := version
		t.Cleanup(func() { version = orig })

		version = ""
		if got := getVersion(); got == "" {
			t.Error("expected a non-empty version")
		}
	})
}

func TestGetCommit(t *testing.T) {
	t.Run("ldflags value wins", func(t *testing.T) {
		orig := commit
		t.Cleanup(func() { commit = orig })

		commit = "abc1234"
		if got := getCommit(); got != "abc1234" {
			t.Errorf("expected abc1234, got %q", got)
		}
	})
}

func TestGetDate(t *testing.T) {
	t.Run("ldflags value wins", func(t *testing.T) {
		orig := date
		t.Cleanup(func() { date = orig })

		date = "2024-01-01"
		if got := getDate(); got != "2024-01-01" {
			t.Errorf("expected 2024-01-01, got %q", got)
		}
	})
}

func TestVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	cmd.Run(cmd, nil)

	out := buf.String()
	if !strings.Contains(out, "gnvclient version") {
		t.Errorf("unexpected version output:\n%s", out)
	}
	if !strings.Contains(out, "commit:") || !strings.Contains(out, "built:") {
		t.Errorf("expected commit and build date lines:\n%s", out)
	}
}
