package pairing

import (
	"path/filepath"
	"testing"
)

func TestGroupPaths(t *testing.T) {
	dir := "/photos/albums/2023"
	paths := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "a.jpg.json"),
		filepath.Join(dir, "b.png"),
	}

	groups := GroupPaths(paths, nil)

	byKey := groups[dir]
	if byKey == nil {
		t.Fatalf("no groups for %s", dir)
	}
	if len(byKey) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(byKey))
	}

	a := byKey["a"]
	if a == nil {
		t.Fatal("missing group a")
	}
	if !a.Complete() {
		t.Errorf("group a should be complete (sidecar=%q, variants=%d)", a.Sidecar, len(a.Variants))
	}
	if a.Sidecar != "a.jpg.json" {
		t.Errorf("group a sidecar = %q", a.Sidecar)
	}
	if _, ok := a.Variants["a.jpg"]; !ok {
		t.Errorf("group a variants = %v", a.Variants)
	}

	b := byKey["b"]
	if b == nil {
		t.Fatal("missing group b")
	}
	if b.Complete() {
		t.Error("group b has no sidecar and must not be complete")
	}
}

func TestGroupPathsEditedVariantJoinsOriginal(t *testing.T) {
	dir := "/photos"
	paths := []string{
		filepath.Join(dir, "IMG_1.JPG"),
		filepath.Join(dir, "IMG_1-edited.JPG"),
		filepath.Join(dir, "IMG_1.JPG.json"),
	}

	groups := GroupPaths(paths, nil)
	group := groups[dir]["IMG_1"]
	if group == nil {
		t.Fatalf("expected one group keyed IMG_1, got %v", groups[dir])
	}
	if len(group.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %v", group.Variants)
	}
	if !group.Complete() {
		t.Error("group should be complete")
	}
}

func TestGroupPathsScopedPerDirectory(t *testing.T) {
	paths := []string{
		"/photos/2022/a.jpg",
		"/photos/2023/a.jpg",
		"/photos/2023/a.jpg.json",
	}

	groups := GroupPaths(paths, nil)
	if len(groups) != 2 {
		t.Fatalf("expected 2 directories, got %d", len(groups))
	}
	if groups["/photos/2022"]["a"].Complete() {
		t.Error("2022 group must not borrow the 2023 sidecar")
	}
	if !groups["/photos/2023"]["a"].Complete() {
		t.Error("2023 group should be complete")
	}
}

func TestGroupPathsLastSidecarWins(t *testing.T) {
	dir := "/photos"
	paths := []string{
		filepath.Join(dir, "a.jpg.json"),
		filepath.Join(dir, "a.json"),
	}

	groups := GroupPaths(paths, nil)
	group := groups[dir]["a"]
	if group == nil {
		t.Fatal("missing group a")
	}
	if group.Sidecar != "a.json" {
		t.Errorf("last observed sidecar should win, got %q", group.Sidecar)
	}
}
