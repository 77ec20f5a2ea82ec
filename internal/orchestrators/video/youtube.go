package video

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/KirkDiggler/ba-raid-api/internal/errors"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// VideoID extracts the video ID from the common YouTube URL shapes:
// watch?v=, youtu.be/, shorts/ and live/
func VideoID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", errors.InvalidArgumentf("invalid video URL: %v", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", errors.InvalidArgumentf("unsupported URL scheme %q", u.Scheme)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var id string
	switch host {
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	case "youtube.com":
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		switch {
		case len(segments) == 1 && segments[0] == "watch":
			id = u.Query().Get("v")
		case len(segments) == 2 && (segments[0] == "shorts" || segments[0] == "live"):
			id = segments[1]
		}
	default:
		return "", errors.InvalidArgumentf("%s is not a YouTube host", u.Hostname())
	}

	if !videoIDPattern.MatchString(id) {
		return "", errors.InvalidArgumentf("no video ID in %s", rawURL)
	}
	return id, nil
}

// CanonicalURL is the watch URL for a video ID
func CanonicalURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
