package stamp

import (
	"log/slog"
	"time"

	"backdate/internal/logging"
)

// Outcome reports the result of the two independent stamps. A nil field
// means that store was updated.
type Outcome struct {
	Tag        error
	Filesystem error
}

// Apply stamps t onto the media file at path: first the embedded EXIF tags,
// then the OS-level file timestamps. The filesystem stamp always runs,
// regardless of the tag outcome.
func Apply(path string, t time.Time, logger *slog.Logger) Outcome {
	if logger == nil {
		logger = logging.NewNop()
	}

	var out Outcome
	out.Tag = WriteTags(path, t)
	if out.Tag != nil {
		logger.Debug("embedded tag stamp skipped", logging.String("path", path), logging.Error(out.Tag))
	}

	out.Filesystem = SetFileTimes(path, t)
	if out.Filesystem != nil {
		logger.Warn("filesystem stamp failed", logging.String("path", path), logging.Error(out.Filesystem))
	}
	return out
}
