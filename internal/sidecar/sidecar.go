// Package sidecar reads the per-media JSON metadata files that accompany an
// exported photo library and recovers the capture timestamp from them.
package sidecar

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Suffix is the sidecar file extension, matched case-insensitively.
const Suffix = ".json"

// record mirrors the subset of the export's metadata schema we consume.
// Unknown fields are ignored.
type record struct {
	PhotoTakenTime timeField `json:"photoTakenTime"`
	CreationTime   timeField `json:"creationTime"`
}

type timeField struct {
	Timestamp epochSeconds `json:"timestamp"`
}

// epochSeconds decodes an integer seconds-since-epoch value that the export
// writes either as a decimal string or as a bare number.
type epochSeconds int64

func (e *epochSeconds) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		return nil
	}
	text = strings.Trim(text, `"`)
	if text == "" {
		return nil
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("timestamp %q: %w", text, err)
	}
	*e = epochSeconds(value)
	return nil
}

// Read parses the sidecar at path and returns the recovered capture time.
// The photo-taken field is preferred; the creation field is the fallback.
// A missing or zero timestamp returns ok=false with no error: there is
// nothing to stamp, which is not a failure.
func Read(path string) (time.Time, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read sidecar: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return time.Time{}, false, fmt.Errorf("parse sidecar: %w", err)
	}

	seconds := int64(rec.PhotoTakenTime.Timestamp)
	if seconds == 0 {
		seconds = int64(rec.CreationTime.Timestamp)
	}
	if seconds == 0 {
		return time.Time{}, false, nil
	}
	return time.Unix(seconds, 0), true, nil
}

// IsSidecarName reports whether the basename carries the sidecar suffix.
func IsSidecarName(name string) bool {
	return len(name) >= len(Suffix) && strings.EqualFold(name[len(name)-len(Suffix):], Suffix)
}
