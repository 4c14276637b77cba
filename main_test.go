package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestRun_ProducesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	if err := run(Config{OutputDir: dir}); err != nil {
		t.Fatalf("run: %v", err)
	}

	pngs, err := filepath.Glob(filepath.Join(dir, "icon_*.png"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(pngs) != 7 {
		t.Errorf("icon_*.png count = %d, want 7", len(pngs))
	}
	for _, size := range iconSizes {
		path := filepath.Join(dir, fmt.Sprintf("icon_%d.png", size))
		if w, h := pngDimensions(t, path); w != size || h != size {
			t.Errorf("%s = %dx%d, want %dx%d", path, w, h, size, size)
		}
	}

	ico, err := os.ReadFile(filepath.Join(dir, "windows", "app.ico"))
	if err != nil {
		t.Fatalf("read app.ico: %v", err)
	}
	if count := binary.LittleEndian.Uint16(ico[4:]); count != 7 {
		t.Errorf("app.ico image count = %d, want 7", count)
	}

	linux, err := filepath.Glob(filepath.Join(dir, "linux", "ferrite_*.png"))
	if err != nil {
		t.Fatalf("glob linux: %v", err)
	}
	if len(linux) != 6 {
		t.Errorf("ferrite_*.png count = %d, want 6", len(linux))
	}

	macos, err := os.ReadDir(filepath.Join(dir, "macos"))
	if err != nil {
		t.Fatalf("read macos dir: %v", err)
	}
	if len(macos) != 0 {
		t.Errorf("macos dir has %d entries, want 0 (packaging is manual)", len(macos))
	}
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	if err := run(Config{OutputDir: dir}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	checked := []string{
		filepath.Join(dir, "icon_512.png"),
		filepath.Join(dir, "windows", "app.ico"),
		filepath.Join(dir, "linux", "ferrite_16.png"),
	}
	before := make(map[string][]byte)
	for _, path := range checked {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		before[path] = data
	}

	if err := run(Config{OutputDir: dir}); err != nil {
		t.Fatalf("second run: %v", err)
	}
	for _, path := range checked {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reread %s: %v", path, err)
		}
		if !bytes.Equal(before[path], data) {
			t.Errorf("%s changed between runs", path)
		}
	}
}

func TestRun_SourceFlagInert(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{SourcePath: filepath.Join(dir, "does-not-exist.svg"), OutputDir: dir}
	if err := run(cfg); err != nil {
		t.Fatalf("run with -source: %v", err)
	}
	pngs, err := filepath.Glob(filepath.Join(dir, "icon_*.png"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(pngs) != 7 {
		t.Errorf("icon_*.png count = %d, want 7 (source must be ignored)", len(pngs))
	}
}

func TestRun_ExistingSubdirs(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"windows", "macos", "linux"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", sub, err)
		}
	}
	if err := run(Config{OutputDir: dir}); err != nil {
		t.Fatalf("run with pre-existing subdirs: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "windows", "app.ico")); err != nil {
		t.Errorf("app.ico missing: %v", err)
	}
}

func TestDefaultOutputDir_NonEmpty(t *testing.T) {
	if defaultOutputDir() == "" {
		t.Error("defaultOutputDir returned an empty path")
	}
}
