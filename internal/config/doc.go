// Package config loads, normalizes, and validates backdate configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs; values are fixed once Load returns and are passed onward by value,
// so downstream code never observes a configuration change mid-run.
package config
