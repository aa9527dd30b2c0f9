// Package resolve turns a root input (a directory or a packed zip archive)
// into the flat list of candidate file paths the pairing stage consumes.
package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"backdate/internal/logging"
	"backdate/internal/sidecar"
	"backdate/internal/sniff"
)

// ErrInvalidInputKind marks a root that is neither a directory nor a
// recognized archive.
var ErrInvalidInputKind = errors.New("input is neither a directory nor a supported archive")

// Resolve enumerates the media and sidecar files beneath root. An archive
// root is recognized by content signature, extracted in full to a sibling
// directory named after the archive, and then walked like a directory.
// Extraction is all-or-nothing: a failed extraction removes the partial tree
// and resolves nothing.
func Resolve(root string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}

	if info.IsDir() {
		return walk(root)
	}

	isZip, err := sniff.IsZipArchive(root)
	if err != nil {
		return nil, fmt.Errorf("sniff root: %w", err)
	}
	if !isZip {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInputKind, root)
	}

	dest := extractionDir(root)
	if _, err := os.Lstat(dest); err == nil {
		// Never extract into (or later clean up) a path this run did not
		// create.
		return nil, fmt.Errorf("extraction target %s already exists", dest)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat extraction target: %w", err)
	}

	logger.Info("extracting archive", logging.String("archive", root), logging.String("dest", dest))
	if err := extractZip(root, dest); err != nil {
		_ = os.RemoveAll(dest)
		return nil, fmt.Errorf("extract archive: %w", err)
	}
	return walk(dest)
}

// extractionDir names the sibling directory an archive is unpacked into.
// The result is always distinct from the archive path itself, even for
// archives without a filename extension.
func extractionDir(root string) string {
	dest := strings.TrimSuffix(root, filepath.Ext(root))
	if dest == root {
		return root + ".extracted"
	}
	return dest
}

// walk collects every regular file beneath dir that is sniffed as an image,
// sniffed as a video, or named with the sidecar suffix. Everything else is
// silently dropped.
func walk(dir string) ([]string, error) {
	var kept []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if sidecar.IsSidecarName(d.Name()) {
			kept = append(kept, path)
			return nil
		}
		kind, err := sniff.Detect(path)
		if err != nil {
			// Unreadable or unidentifiable content is not a candidate.
			return nil
		}
		if kind == sniff.KindImage || kind == sniff.KindVideo {
			kept = append(kept, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return kept, nil
}
