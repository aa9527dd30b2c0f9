package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReplaceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.bin")

	if err := os.WriteFile(path, []byte("before"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := ReplaceFile(path, []byte("after")); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "after" {
		t.Errorf("content = %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %o, want 600", info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp file left behind: %v", entries)
	}
}

func TestReplaceFileMissingTarget(t *testing.T) {
	if err := ReplaceFile(filepath.Join(t.TempDir(), "absent"), []byte("x")); err == nil {
		t.Error("expected error for missing target")
	}
}

func TestWriteStream(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "nested", "deep", "out.txt")

	if err := WriteStream(dst, strings.NewReader("streamed"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "streamed" {
		t.Errorf("content = %q", got)
	}
}
