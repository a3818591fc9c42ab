package platform

import (
	"net/url"
	"regexp"
	"strings"
)

// URL parameters
const (
	PlaylistParam = "list"
	VideoParam    = "v"
	PlaylistPath  = "/playlist"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// youtubeURLPattern is deliberately permissive: optional scheme, optional www,
// a youtube.com or youtu.be host and any non-empty path.
var youtubeURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.?be)/.+`)

// IsYouTubeURL reports whether text looks like a YouTube link.
func IsYouTubeURL(text string) bool {
	return youtubeURLPattern.MatchString(strings.TrimSpace(text))
}

// IsPlaylistURL reports whether rawURL points at a playlist rather than a
// single video: it carries a list parameter and no video parameter.
func IsPlaylistURL(rawURL string) bool {
	u, err := parseLenient(rawURL)
	if err != nil {
		return false
	}
	q := u.Query()
	if q.Get(PlaylistParam) == "" {
		return false
	}
	return q.Get(VideoParam) == "" || u.Path == PlaylistPath
}

// ExtractPlaylistID returns the list parameter of rawURL, or "".
func ExtractPlaylistID(rawURL string) string {
	u, err := parseLenient(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(PlaylistParam)
}

func parseLenient(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	return url.Parse(rawURL)
}
