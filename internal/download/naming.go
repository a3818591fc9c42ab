package download

import (
	"path/filepath"
	"strings"
)

// DefaultBaseName is used when a video has neither title nor ID
const DefaultBaseName = "download"

var pathSeparators = strings.NewReplacer("/", "-", "\\", "-")

// SanitizeTitle replaces path separators in title with "-". Nothing else is
// changed.
func SanitizeTitle(title string) string {
	return pathSeparators.Replace(title)
}

// baseName picks the file name stem for a stream
func baseName(stream *Stream) string {
	if name := SanitizeTitle(strings.TrimSpace(stream.Title)); name != "" {
		return name
	}
	if stream.VideoID != "" {
		return stream.VideoID
	}
	return DefaultBaseName
}

// outputPath joins folder, base and ext into a file path
func outputPath(folder, base, ext string) string {
	return filepath.Join(folder, base+"."+ext)
}
