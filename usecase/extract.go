package usecase

import (
	"net/url"
	"regexp"
	"strings"

	"youtube-tools/infrastructure/logger"
)

// videoIDPattern is the permissive fallback matcher. It tolerates a missing
// scheme, a missing www. prefix, the variant hosts youtube / youtu /
// youtube-nocookie with .com or .be, and the watch?v= / embed/ / v/ path
// shapes as well as any path carrying a ?v= query.
var videoIDPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:youtube|youtu|youtube-nocookie)\.(?:com|be)/(?:watch\?v=|embed/|v/|.*[?&]v=)?([A-Za-z0-9_-]{11})`)

// ExtractVideoID maps a YouTube URL to its 11-character video identifier. The
// structured URL branches are tried first and the permissive pattern strictly
// after, preserving that order on malformed inputs. An empty string means no
// identifier could be extracted; this function never panics and parsing
// failures are swallowed.
func ExtractVideoID(rawURL string) string {
	if id := extractFromParsedURL(rawURL); id != "" {
		return id
	}
	if m := videoIDPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

func extractFromParsedURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"url":   rawURL,
			"error": err,
		}).Debug("Error parsing YouTube URL")
		return ""
	}

	host := u.Hostname()
	if host == "youtu.be" {
		return strings.TrimPrefix(u.Path, "/")
	}
	if host == "www.youtube.com" || host == "youtube.com" {
		switch {
		case u.Path == "/watch":
			// First value only; a missing v yields no identifier.
			return u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"), strings.HasPrefix(u.Path, "/v/"):
			parts := strings.Split(u.Path, "/")
			if len(parts) > 2 {
				return parts[2]
			}
		}
	}
	return ""
}
