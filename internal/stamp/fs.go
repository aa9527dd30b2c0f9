package stamp

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// SetFileTimes sets the file's access and modification timestamps to t.
// Linux exposes no interface for rewriting a file's birth time, so the
// created timestamp is left to the filesystem.
func SetFileTimes(path string, t time.Time) error {
	ts := unix.NsecToTimespec(t.UnixNano())
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, []unix.Timespec{ts, ts}, 0); err != nil {
		return fmt.Errorf("set file times %s: %w", path, err)
	}
	return nil
}
