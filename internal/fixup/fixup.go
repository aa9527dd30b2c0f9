// Package fixup normalizes media files before stamping: it renames files
// whose extension disagrees with their sniffed content and optionally
// transcodes HEIC images to JPEG. Fixing changes which file occupies a
// group's variant slot, never the grouping key.
package fixup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"backdate/internal/logging"
	"backdate/internal/pairing"
	"backdate/internal/sniff"
)

// Options are the run-scoped fix-up switches, fixed before the pass starts.
type Options struct {
	FixExtensions    bool
	ConvertHeicToJpg bool
	FFmpegBinary     string
}

// ConvertFunc transcodes the file at src to JPEG and returns the new path.
// The source file is removed on success.
type ConvertFunc func(ctx context.Context, src string) (string, error)

// Fixer applies extension and container fixes to every group in place.
type Fixer struct {
	opts    Options
	logger  *slog.Logger
	convert ConvertFunc
}

// New constructs a Fixer that shells out to ffmpeg for HEIC conversion.
func New(opts Options, logger *slog.Logger) *Fixer {
	f := &Fixer{opts: opts, logger: logger}
	f.convert = func(ctx context.Context, src string) (string, error) {
		return convertHeicToJpeg(ctx, opts.FFmpegBinary, src)
	}
	if f.logger == nil {
		f.logger = logging.NewNop()
	}
	return f
}

// NewWithConverter allows injecting the conversion step (used in tests).
func NewWithConverter(opts Options, logger *slog.Logger, convert ConvertFunc) *Fixer {
	f := New(opts, logger)
	if convert != nil {
		f.convert = convert
	}
	return f
}

// Fix rebuilds the variant set of every eligible group, renaming or
// converting files on disk as it goes. Per-variant failures keep the original
// entry and never abort the pass; stamping later proceeds against whatever
// file ended up in the slot.
func (f *Fixer) Fix(ctx context.Context, groups pairing.Groups) {
	for _, byKey := range groups {
		for _, group := range byKey {
			if !f.eligible(group) {
				continue
			}
			f.fixGroup(ctx, group)
		}
	}
}

func (f *Fixer) eligible(group *pairing.Group) bool {
	if f.opts.ConvertHeicToJpg {
		return true
	}
	return f.opts.FixExtensions && len(group.Variants) > 0
}

func (f *Fixer) fixGroup(ctx context.Context, group *pairing.Group) {
	fixed := make(map[string]string, len(group.Variants))
	for name, source := range group.Variants {
		newName := f.fixVariant(ctx, filepath.Join(group.Dir, name))
		if newName == "" {
			newName = name
		}
		fixed[newName] = source
	}
	group.Variants = fixed
}

// fixVariant returns the new basename for path, or "" when the file was left
// untouched.
func (f *Fixer) fixVariant(ctx context.Context, path string) string {
	if f.opts.ConvertHeicToJpg {
		isHeic, err := sniff.IsHeic(path)
		if err != nil {
			f.logger.Warn("sniff failed, keeping variant", logging.String("path", path), logging.Error(err))
			return ""
		}
		if isHeic {
			converted, err := f.convert(ctx, path)
			if err != nil {
				f.logger.Warn("heic conversion failed, keeping variant", logging.String("path", path), logging.Error(err))
				return ""
			}
			f.logger.Info("converted to jpeg", logging.String("from", filepath.Base(path)), logging.String("to", filepath.Base(converted)))
			return filepath.Base(converted)
		}
	}

	if f.opts.FixExtensions {
		renamed, err := fixExtension(path)
		if err != nil {
			f.logger.Warn("extension fix failed, keeping variant", logging.String("path", path), logging.Error(err))
			return ""
		}
		if renamed != "" {
			f.logger.Info("fixed extension", logging.String("from", filepath.Base(path)), logging.String("to", filepath.Base(renamed)))
			return filepath.Base(renamed)
		}
	}

	return ""
}

// fixExtension renames path to carry the extension matching its sniffed
// content. Returns "" when the current extension already matches.
func fixExtension(path string) (string, error) {
	want, known, err := sniff.CanonicalExt(path)
	if err != nil {
		return "", err
	}
	if !known {
		return "", nil
	}
	current := strings.ToLower(filepath.Ext(path))
	if extensionMatches(current, want) {
		return "", nil
	}

	target := strings.TrimSuffix(path, filepath.Ext(path)) + want
	if err := os.Rename(path, target); err != nil {
		return "", err
	}
	return target, nil
}

// extensionAliases lists spellings that count as matching the canonical
// extension, so a .jpeg file is not churned to .jpg on every run.
var extensionAliases = map[string]string{
	".jpeg": ".jpg",
	".jpe":  ".jpg",
	".jfif": ".jpg",
	".tiff": ".tif",
	".m4v":  ".mp4",
}

func extensionMatches(current, want string) bool {
	if current == want {
		return true
	}
	return extensionAliases[current] == want
}
