package process

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"backdate/internal/config"
	"backdate/internal/fixup"
	"backdate/internal/logging"
	"backdate/internal/pairing"
	"backdate/internal/resolve"
	"backdate/internal/sidecar"
	"backdate/internal/stamp"
)

// newFixer is swapped in tests to inject a fake conversion step.
var newFixer = func(opts fixup.Options, logger *slog.Logger) *fixup.Fixer {
	return fixup.New(opts, logger)
}

// RunOptions carries per-invocation switches that are not configuration.
type RunOptions struct {
	// DryRun resolves, groups, and reports without mutating anything.
	DryRun bool
}

// Runner drives one pass of discovery, grouping, fix-up, stamping, and
// sidecar cleanup over a root input.
type Runner struct {
	cfg    config.Config
	logger *slog.Logger
	sink   Sink
	dryRun bool
}

// NewRunner constructs a Runner. The config is copied; nothing mutates it
// after this point.
func NewRunner(cfg *config.Config, logger *slog.Logger, sink Sink, opts RunOptions) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	if sink == nil {
		sink = NopSink{}
	}
	return &Runner{cfg: *cfg, logger: logger, sink: sink, dryRun: opts.DryRun}
}

// Process runs the full pass over root and returns the aggregated summary.
// Only root-input failures (bad input kind, unreadable root, failed archive
// extraction) are returned as errors; per-group problems are reflected in
// the summary.
func (r *Runner) Process(ctx context.Context, root string) (*Summary, error) {
	runID := uuid.NewString()
	logger := r.logger.With(logging.String("run_id", runID))

	lock := flock.New(lockPath(root))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another backdate run is already processing %s", root)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	paths, err := resolve.Resolve(root, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("resolved candidates", logging.Int("count", len(paths)))

	groups := pairing.GroupPaths(paths, logger)

	if !r.dryRun && (r.cfg.Fixes.FixExtensions || r.cfg.Fixes.ConvertHeicToJpg) {
		fixer := newFixer(fixup.Options{
			FixExtensions:    r.cfg.Fixes.FixExtensions,
			ConvertHeicToJpg: r.cfg.Fixes.ConvertHeicToJpg,
			FFmpegBinary:     r.cfg.Tools.FFmpegBinary,
		}, logger)
		fixer.Fix(ctx, groups)
	}

	summary := newSummary(runID, root, r.dryRun)

	total := 0
	for _, byKey := range groups {
		total += len(byKey)
	}
	r.sink.Begin("applying metadata", total)
	defer r.sink.End()

	for _, dir := range sortedKeys(groups) {
		byKey := groups[dir]
		for _, key := range sortedKeys(byKey) {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			r.sink.Item(filepath.Join(dir, key))
			r.processGroup(byKey[key], logger, summary)
		}
	}

	logger.Info("run complete",
		logging.Int("groups", summary.Groups),
		logging.Int("processed", summary.Processed),
		logging.Int("tag_failures", summary.TagFailures),
		logging.Int("skipped", len(summary.Skipped)),
		logging.Bool("dry_run", summary.DryRun),
	)
	return summary, nil
}

// processGroup stamps every variant of one group and deletes the sidecar
// once all variants were stamped. A variant whose file went missing keeps
// the sidecar so a later run can retry the group.
func (r *Runner) processGroup(g *pairing.Group, logger *slog.Logger, summary *Summary) {
	summary.Groups++

	if !g.Complete() {
		reason := "no sidecar"
		if g.Sidecar != "" {
			reason = "no media variants"
		}
		summary.skip(g.Dir, g.Key, reason)
		logger.Debug("skipping unpaired group",
			logging.String("dir", g.Dir),
			logging.String("key", g.Key),
			logging.String("reason", reason),
		)
		return
	}

	taken, ok, err := sidecar.Read(g.SidecarPath())
	if err != nil {
		summary.skip(g.Dir, g.Key, "sidecar unreadable")
		logger.Warn("skipping group with unreadable sidecar",
			logging.String("sidecar", g.SidecarPath()),
			logging.Error(err),
		)
		return
	}
	if !ok {
		summary.skip(g.Dir, g.Key, "no usable timestamp")
		logger.Debug("skipping group without usable timestamp", logging.String("sidecar", g.SidecarPath()))
		return
	}

	summary.Complete++

	allStamped := true
	for _, name := range sortedKeys(g.Variants) {
		path := filepath.Join(g.Dir, name)
		if _, statErr := os.Stat(path); statErr != nil {
			allStamped = false
			logger.Warn("variant missing, sidecar kept",
				logging.String("path", path),
				logging.Error(statErr),
			)
			continue
		}

		if r.dryRun {
			summary.countAttempt(g.Dir)
			continue
		}

		outcome := stamp.Apply(path, taken, logger)
		summary.countAttempt(g.Dir)
		if outcome.Tag != nil {
			summary.TagFailures++
		}
	}

	if r.dryRun || !allStamped {
		return
	}
	if err := os.Remove(g.SidecarPath()); err != nil {
		logger.Warn("failed to delete consumed sidecar", logging.String("sidecar", g.SidecarPath()), logging.Error(err))
		return
	}
	summary.SidecarsRemoved++
}

// lockPath names the run lock for a root. The lock lives in the system temp
// directory, keyed by the absolute root path, so no lock file is ever left
// inside the tree being processed.
func lockPath(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), fmt.Sprintf("backdate-%x.lock", sum[:8]))
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
