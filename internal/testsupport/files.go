// Package testsupport provides shared helpers and tiny real media fixtures
// for tests. The fixture payloads are genuine container bytes so content
// sniffing and tag rewriting run against the same signatures they see in
// production.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteJPEG writes a minimal valid JPEG image to path.
func WriteJPEG(t testing.TB, path string) {
	t.Helper()
	WriteFile(t, path, JPEGData())
}

// WritePNG writes a minimal valid PNG image to path.
func WritePNG(t testing.TB, path string) {
	t.Helper()
	WriteFile(t, path, PNGData())
}

// WriteHEIC writes a minimal HEIC container header to path. The payload is
// enough for signature sniffing, not a decodable image.
func WriteHEIC(t testing.TB, path string) {
	t.Helper()
	WriteFile(t, path, HEICData())
}

// WriteMP4 writes a minimal MP4 container header to path.
func WriteMP4(t testing.TB, path string) {
	t.Helper()
	WriteFile(t, path, MP4Data())
}
