// Command backdate reconciles exported photo/video libraries whose capture
// times live in per-file JSON sidecars, stamping the recovered timestamps
// into EXIF tags and OS file timestamps in a single pass.
package main
