package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"backdate/internal/config"
	"backdate/internal/logging"
	"backdate/internal/process"
)

func newProcessCommand(configFlag *string) *cobra.Command {
	var fixExtensions bool
	var convertHeic bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "process <root>",
		Short: "Reconcile sidecar timestamps beneath a directory or archive",
		Long: `Process discovers media files and their JSON sidecars beneath the given
root (a directory, or a zip archive recognized by signature), groups each
capture with its edited copies and sidecar, optionally normalizes container
formats and extensions, stamps the recovered capture time into EXIF tags and
file timestamps, and deletes consumed sidecars.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("fix-extensions") {
				cfg.Fixes.FixExtensions = fixExtensions
			}
			if cmd.Flags().Changed("convert-heic") {
				cfg.Fixes.ConvertHeicToJpg = convertHeic
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})
			if err != nil {
				return err
			}

			var sink process.Sink = process.NopSink{}
			if stdoutIsTerminal() {
				sink = newBarSink()
			}

			runner := process.NewRunner(cfg, logger, sink, process.RunOptions{DryRun: dryRun})
			summary, err := runner.Process(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fixExtensions, "fix-extensions", false, "Rename files whose extension does not match their content")
	cmd.Flags().BoolVar(&convertHeic, "convert-heic", false, "Convert HEIC images to JPEG before stamping (requires ffmpeg)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be stamped without touching any file")
	return cmd
}
