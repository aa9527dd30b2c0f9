package sidecar

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSidecar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a.jpg.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadPhotoTakenTime(t *testing.T) {
	path := writeSidecar(t, `{"title":"a.jpg","photoTakenTime":{"timestamp":"1700000000"}}`)

	taken, ok, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a usable timestamp")
	}
	if !taken.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("taken = %v", taken)
	}
}

func TestReadNumericTimestamp(t *testing.T) {
	path := writeSidecar(t, `{"photoTakenTime":{"timestamp":1700000000}}`)

	taken, ok, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || !taken.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("taken = %v, ok = %v", taken, ok)
	}
}

func TestReadCreationTimeFallback(t *testing.T) {
	path := writeSidecar(t, `{"creationTime":{"timestamp":"1600000000"}}`)

	taken, ok, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || !taken.Equal(time.Unix(1600000000, 0)) {
		t.Errorf("taken = %v, ok = %v", taken, ok)
	}
}

func TestReadPrefersPhotoTakenTime(t *testing.T) {
	path := writeSidecar(t, `{"photoTakenTime":{"timestamp":"1700000000"},"creationTime":{"timestamp":"1600000000"}}`)

	taken, _, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !taken.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("photoTakenTime should win, got %v", taken)
	}
}

func TestReadZeroTimestamp(t *testing.T) {
	path := writeSidecar(t, `{"creationTime":{"timestamp":"0"}}`)

	_, ok, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("zero timestamp must not be usable")
	}
}

func TestReadMissingFields(t *testing.T) {
	path := writeSidecar(t, `{"title":"a.jpg","somethingElse":true}`)

	_, ok, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("missing timestamp fields must not be usable")
	}
}

func TestReadMalformedJSON(t *testing.T) {
	path := writeSidecar(t, `{not json`)

	if _, _, err := Read(path); err == nil {
		t.Error("expected an error for malformed sidecar")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, _, err := Read(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing sidecar")
	}
}

func TestIsSidecarName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"a.jpg.json", true},
		{"a.JSON", true},
		{"a.jpg", false},
		{"json", false},
		{".json", true},
	}
	for _, tc := range cases {
		if got := IsSidecarName(tc.name); got != tc.want {
			t.Errorf("IsSidecarName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
