// Package process sequences one reconciliation pass over a root input:
// resolve candidate files, group them with their sidecars, apply fix-ups,
// stamp recovered timestamps, and delete consumed sidecars.
//
// Only root-input failures propagate as errors. Every per-group and per-file
// problem degrades to a logged skip that shows up in the Summary, so a run
// over a partially malformed export always completes.
package process
