// Package platform contains OS integration and external tooling glue:
// filesystem helpers, atomic writes, YouTube URL matching, playlist
// expansion, clipboard access and revealing folders in the file manager.
package platform
