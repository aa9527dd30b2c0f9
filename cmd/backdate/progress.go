package main

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// barSink renders a terminal progress bar over the stamping pass.
type barSink struct {
	bar *progressbar.ProgressBar
}

func newBarSink() *barSink {
	return &barSink{}
}

func (s *barSink) Begin(label string, total int) {
	s.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (s *barSink) Item(id string) {
	if s.bar == nil {
		return
	}
	s.bar.Describe(filepath.Base(id))
	_ = s.bar.Add(1)
}

func (s *barSink) End() {
	if s.bar == nil {
		return
	}
	_ = s.bar.Finish()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
