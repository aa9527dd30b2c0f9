package pairing

import (
	"path/filepath"
	"strings"

	"backdate/internal/sidecar"
)

// editedMarker is the suffix the export appends to edited copies of a capture
// (IMG_1-edited.JPG). Everything before the marker identifies the original.
const editedMarker = "-edited"

// DeriveKey computes the grouping key for a basename. Sidecars and edited
// variants collapse to the same key as the original media file:
//
//	IMG_1.JPG          -> IMG_1
//	IMG_1-edited.JPG   -> IMG_1
//	IMG_1.JPG.json     -> IMG_1
func DeriveKey(basename string) string {
	prefix, ext := splitName(basename)

	if strings.EqualFold(ext, sidecar.Suffix) {
		// Sidecars are named after the full media filename, so one more
		// extension layer has to come off.
		inner, _ := splitName(prefix)
		return inner
	}

	if idx := strings.Index(prefix, editedMarker); idx >= 0 {
		return prefix[:idx]
	}

	return prefix
}

// splitName separates a basename into the part before the final extension and
// the extension itself (with leading dot, possibly empty).
func splitName(basename string) (prefix, ext string) {
	ext = filepath.Ext(basename)
	return basename[:len(basename)-len(ext)], ext
}
