package stamp

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"backdate/internal/testsupport"
)

var testInstant = time.Unix(1700000000, 0)

func readTag(t *testing.T, path string, field exif.FieldName) string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		t.Fatalf("decode exif: %v", err)
	}
	tag, err := x.Get(field)
	if err != nil {
		t.Fatalf("get %s: %v", field, err)
	}
	value, err := tag.StringVal()
	if err != nil {
		t.Fatal(err)
	}
	return value
}

func TestWriteTagsJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	testsupport.WriteJPEG(t, path)

	if err := WriteTags(path, testInstant); err != nil {
		t.Fatal(err)
	}

	want := testInstant.Format(TagTimeLayout)
	for _, field := range []exif.FieldName{exif.DateTime, exif.DateTimeOriginal, exif.DateTimeDigitized} {
		if got := readTag(t, path, field); got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}
}

func TestWriteTagsUnsupportedContainer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	testsupport.WritePNG(t, path)

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	err = WriteTags(path, testInstant)
	if err == nil {
		t.Fatal("expected a tag write error for PNG content")
	}
	var tagErr *TagWriteError
	if !errors.As(err, &tagErr) {
		t.Fatalf("error type = %T", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("failed tag write must leave the file byte-identical")
	}
}

func TestSetFileTimes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	testsupport.WriteJPEG(t, path)

	if err := SetFileTimes(path, testInstant); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(testInstant) {
		t.Errorf("mtime = %v, want %v", info.ModTime(), testInstant)
	}
}

func TestApplyIndependentStamps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.png")
	testsupport.WritePNG(t, path)

	out := Apply(path, testInstant, nil)
	if out.Tag == nil {
		t.Error("tag stamp should fail for PNG content")
	}
	if out.Filesystem != nil {
		t.Errorf("filesystem stamp should still succeed: %v", out.Filesystem)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(testInstant) {
		t.Errorf("mtime = %v, want %v", info.ModTime(), testInstant)
	}
}

func TestApplyJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	testsupport.WriteJPEG(t, path)

	out := Apply(path, testInstant, nil)
	if out.Tag != nil {
		t.Errorf("tag stamp failed: %v", out.Tag)
	}
	if out.Filesystem != nil {
		t.Errorf("filesystem stamp failed: %v", out.Filesystem)
	}

	want := testInstant.Format(TagTimeLayout)
	if got := readTag(t, path, exif.DateTimeOriginal); got != want {
		t.Errorf("DateTimeOriginal = %q, want %q", got, want)
	}
}
