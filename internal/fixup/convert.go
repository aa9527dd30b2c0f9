package fixup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// commandContext is swapped in tests to fake the external tool.
var commandContext = exec.CommandContext

// convertHeicToJpeg transcodes src to a JPEG alongside it, removes the
// original, and returns the new path. ffmpeg writes the target first, so a
// failed conversion leaves the source file in place.
func convertHeicToJpeg(ctx context.Context, ffmpegBinary, src string) (string, error) {
	if strings.TrimSpace(ffmpegBinary) == "" {
		ffmpegBinary = "ffmpeg"
	}
	target := strings.TrimSuffix(src, filepath.Ext(src)) + ".jpg"

	cmd := commandContext(ctx, ffmpegBinary,
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", src,
		target,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		_ = os.Remove(target)
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("ffmpeg: %w: %s", err, detail)
		}
		return "", fmt.Errorf("ffmpeg: %w", err)
	}

	if err := os.Remove(src); err != nil {
		return "", fmt.Errorf("remove converted source: %w", err)
	}
	return target, nil
}
