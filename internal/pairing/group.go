// Package pairing derives grouping keys from filenames and partitions
// discovered paths into per-directory groups of media variants plus their
// single metadata sidecar.
package pairing

import (
	"log/slog"
	"path/filepath"

	"backdate/internal/logging"
	"backdate/internal/sidecar"
)

// Group is the unit of reconciliation: every filename variant of one logical
// capture within one directory, plus at most one sidecar.
type Group struct {
	Dir string
	Key string

	// Sidecar is the basename of the metadata file, empty when none was seen.
	// When two sidecar-like names derive the same key the last one observed
	// wins; the grouper logs the replacement since the earlier file's
	// metadata is silently lost.
	Sidecar string

	// Variants maps the current basename of each media file to the basename
	// it was discovered under. The fixer rewrites keys as it renames or
	// converts files; colliding results collapse, last write wins.
	Variants map[string]string
}

// Complete reports whether the group is eligible for stamping: it needs both
// a sidecar and at least one media variant.
func (g *Group) Complete() bool {
	return g.Sidecar != "" && len(g.Variants) > 0
}

// SidecarPath returns the full path of the group's sidecar file.
func (g *Group) SidecarPath() string {
	return filepath.Join(g.Dir, g.Sidecar)
}

// Groups indexes every group by directory and key. Grouping is scoped per
// directory, so identically named files in different folders never collide.
type Groups map[string]map[string]*Group

// GroupPaths partitions the resolved paths into groups. Paths carrying the
// sidecar suffix become the group's sidecar; everything else is a media
// variant.
func GroupPaths(paths []string, logger *slog.Logger) Groups {
	if logger == nil {
		logger = logging.NewNop()
	}

	groups := make(Groups)
	for _, path := range paths {
		dir := filepath.Dir(path)
		base := filepath.Base(path)
		key := DeriveKey(base)

		byKey := groups[dir]
		if byKey == nil {
			byKey = make(map[string]*Group)
			groups[dir] = byKey
		}
		group := byKey[key]
		if group == nil {
			group = &Group{Dir: dir, Key: key, Variants: make(map[string]string)}
			byKey[key] = group
		}

		if sidecar.IsSidecarName(base) {
			if group.Sidecar != "" && group.Sidecar != base {
				logger.Warn("replacing previously seen sidecar",
					logging.String("dir", dir),
					logging.String("key", key),
					logging.String("dropped", group.Sidecar),
					logging.String("kept", base),
				)
			}
			group.Sidecar = base
		} else {
			group.Variants[base] = base
		}
	}
	return groups
}
