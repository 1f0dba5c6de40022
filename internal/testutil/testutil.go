// Package testutil holds fixture helpers for toolchain layouts used across package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code
// and returns its path.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("exit %d", exitCode))
}

// WriteScript writes an executable shell script running body and returns its path.
func WriteScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body + "\n")
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// Mkdir creates dir and its parents.
func Mkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

// Install lays out a fake managed installation at <root>/languages/<language>/<version>
// with a stub for each binary under bin/, and returns the installation root.
func Install(t *testing.T, root string, language string, version string, binaries ...string) string {
	t.Helper()
	dir := filepath.Join(root, "languages", language, version)
	bin := filepath.Join(dir, "bin")
	Mkdir(t, bin)
	for _, name := range binaries {
		WriteStub(t, bin, name)
	}
	return dir
}

// WriteMarker records version as the default for language under a scope root.
func WriteMarker(t *testing.T, root string, language string, version string) {
	t.Helper()
	WriteFile(t, filepath.Join(root, "languages", language, "current"), version+"\n")
}

// GetEnv returns the value for key from an env slice such as a launcher received.
func GetEnv(env []string, key string) (string, bool) {
	for _, entry := range env {
		name, value, ok := strings.Cut(entry, "=")
		if ok && name == key {
			return value, true
		}
	}
	return "", false
}
