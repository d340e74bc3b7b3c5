package system

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func stubBinary(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
}

func TestFindEnginePrefersMagick(t *testing.T) {
	dir := t.TempDir()
	stubBinary(t, dir, "magick", "exit 0\n")
	stubBinary(t, dir, "convert", "exit 0\n")
	t.Setenv("PATH", dir)

	path, err := FindEngine()
	if err != nil {
		t.Fatalf("FindEngine: %v", err)
	}
	if filepath.Base(path) != "magick" {
		t.Errorf("FindEngine = %q, want the magick binary first", path)
	}
}

func TestFindEngineFallsBackToConvert(t *testing.T) {
	dir := t.TempDir()
	stubBinary(t, dir, "convert", "exit 0\n")
	t.Setenv("PATH", dir)

	path, err := FindEngine()
	if err != nil {
		t.Fatalf("FindEngine: %v", err)
	}
	if filepath.Base(path) != "convert" {
		t.Errorf("FindEngine = %q, want the convert binary", path)
	}
}

func TestFindEngineMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if _, err := FindEngine(); err == nil {
		t.Fatal("expected an error when no engine binary exists")
	} else if !strings.Contains(err.Error(), "ImageMagick") {
		t.Errorf("error %q does not name the missing tool", err)
	}
}

func TestEngineVersion(t *testing.T) {
	dir := t.TempDir()
	stubBinary(t, dir, "magick", `echo "Version: ImageMagick 7.1.1-43 Q16-HDRI x86_64"
echo "Copyright: (C) 1999 ImageMagick Studio LLC"
`)

	got, err := EngineVersion(filepath.Join(dir, "magick"))
	if err != nil {
		t.Fatalf("EngineVersion: %v", err)
	}
	if got != "Version: ImageMagick 7.1.1-43 Q16-HDRI x86_64" {
		t.Errorf("EngineVersion = %q, want the first output line only", got)
	}
}

func TestDefaultJobs(t *testing.T) {
	if n := DefaultJobs(); n < 1 {
		t.Errorf("DefaultJobs = %d, want at least 1", n)
	}
}

func TestCheckDiskSpace(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	CheckDiskSpace(t.TempDir(), log)
	CheckDiskSpace(filepath.Join(t.TempDir(), "does-not-exist"), log)
}
