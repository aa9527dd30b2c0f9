package stamp

import (
	"bytes"
	"fmt"
	"os"
	"time"

	exif "github.com/dsoprea/go-exif/v3"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"

	"backdate/internal/fileutil"
)

// TagTimeLayout is the EXIF datetime string format.
const TagTimeLayout = "2006:01:02 15:04:05"

// TagWriteError reports why the embedded-tag stamp could not be applied.
// The media file is untouched when this is returned.
type TagWriteError struct {
	Path   string
	Reason string
	Err    error
}

func (e *TagWriteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tag write %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("tag write %s: %s", e.Path, e.Reason)
}

func (e *TagWriteError) Unwrap() error { return e.Err }

// WriteTags sets DateTime, DateTimeOriginal, and DateTimeDigitized on the
// JPEG at path and rewrites the file atomically. Any failure (unsupported
// container, malformed segment list, rejected field) comes back as a
// *TagWriteError with the file left byte-identical.
//
// The underlying EXIF libraries panic on malformed input rather than
// returning errors, so the whole rewrite is fenced with a recover.
func WriteTags(path string, t time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TagWriteError{Path: path, Reason: fmt.Sprintf("tag library panic: %v", r)}
		}
	}()

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return &TagWriteError{Path: path, Reason: "read media file", Err: readErr}
	}

	parser := jpegstructure.NewJpegMediaParser()
	if !parser.LooksLikeFormat(data) {
		return &TagWriteError{Path: path, Reason: "not a JPEG container"}
	}

	media, parseErr := parser.ParseBytes(data)
	if parseErr != nil {
		return &TagWriteError{Path: path, Reason: "parse JPEG segments", Err: parseErr}
	}
	segments := media.(*jpegstructure.SegmentList)

	rootBuilder, buildErr := segments.ConstructExifBuilder()
	if buildErr != nil {
		return &TagWriteError{Path: path, Reason: "construct tag builder", Err: buildErr}
	}

	value := t.Format(TagTimeLayout)

	rootIfd, ifdErr := exif.GetOrCreateIbFromRootIb(rootBuilder, "IFD0")
	if ifdErr != nil {
		return &TagWriteError{Path: path, Reason: "open root IFD", Err: ifdErr}
	}
	if setErr := rootIfd.SetStandardWithName("DateTime", value); setErr != nil {
		return &TagWriteError{Path: path, Reason: "set DateTime", Err: setErr}
	}

	exifIfd, ifdErr := exif.GetOrCreateIbFromRootIb(rootBuilder, "IFD/Exif")
	if ifdErr != nil {
		return &TagWriteError{Path: path, Reason: "open exif IFD", Err: ifdErr}
	}
	if setErr := exifIfd.SetStandardWithName("DateTimeOriginal", value); setErr != nil {
		return &TagWriteError{Path: path, Reason: "set DateTimeOriginal", Err: setErr}
	}
	if setErr := exifIfd.SetStandardWithName("DateTimeDigitized", value); setErr != nil {
		return &TagWriteError{Path: path, Reason: "set DateTimeDigitized", Err: setErr}
	}

	if setErr := segments.SetExif(rootBuilder); setErr != nil {
		return &TagWriteError{Path: path, Reason: "attach tag block", Err: setErr}
	}

	var out bytes.Buffer
	if writeErr := segments.Write(&out); writeErr != nil {
		return &TagWriteError{Path: path, Reason: "serialize JPEG", Err: writeErr}
	}

	if replaceErr := fileutil.ReplaceFile(path, out.Bytes()); replaceErr != nil {
		return &TagWriteError{Path: path, Reason: "rewrite media file", Err: replaceErr}
	}
	return nil
}
