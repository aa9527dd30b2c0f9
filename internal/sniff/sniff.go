// Package sniff classifies files by content signature, never by extension.
package sniff

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Kind is the coarse content classification the pairing and fix-up stages
// care about.
type Kind int

const (
	KindOther Kind = iota
	KindImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "other"
	}
}

// Detect sniffs the file at path and reports its kind.
func Detect(path string) (Kind, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return KindOther, err
	}
	return kindOf(mtype), nil
}

func kindOf(mtype *mimetype.MIME) Kind {
	switch {
	case strings.HasPrefix(mtype.String(), "image/"):
		return KindImage
	case strings.HasPrefix(mtype.String(), "video/"):
		return KindVideo
	default:
		return KindOther
	}
}

// IsHeic reports whether the file content is a HEIC/HEIF container.
func IsHeic(path string) (bool, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false, err
	}
	for _, name := range []string{"image/heic", "image/heif", "image/heic-sequence", "image/heif-sequence"} {
		if mtype.Is(name) {
			return true, nil
		}
	}
	return false, nil
}

// IsZipArchive reports whether the file content carries a zip signature.
func IsZipArchive(path string) (bool, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false, err
	}
	return mtype.Is("application/zip"), nil
}

// CanonicalExt returns the extension (with leading dot) matching the file's
// sniffed content type. The boolean result is false when the type has no
// well-known extension.
func CanonicalExt(path string) (string, bool, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", false, err
	}
	ext := mtype.Extension()
	if ext == "" {
		return "", false, nil
	}
	return ext, true, nil
}
