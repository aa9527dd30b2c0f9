// Package stamp writes a recovered capture time into a media file's two
// independent timestamp stores: the embedded EXIF datetime tags and the
// OS-level file timestamps.
//
// The two stores fail independently. An EXIF rewrite that cannot proceed
// (non-JPEG container, malformed tag block) surfaces as an explicit
// TagWriteError and leaves the file byte-identical; the filesystem stamp is
// attempted regardless. Neither failure is ever fatal to a run.
package stamp
