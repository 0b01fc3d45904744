package ambient

import (
	"net/url"
	"regexp"
	"strings"
)

// Kind tags an ambient source.
type Kind int

const (
	KindNone Kind = iota
	KindTrack
	KindEmbed
)

func (kind Kind) String() string {
	switch kind {
	case KindTrack:
		return "track"
	case KindEmbed:
		return "embed"
	default:
		return "none"
	}
}

// Source is the active ambient selection: a directly played Track or an
// Embed rendered by a third-party player.
type Source struct {
	Kind Kind
	URL  string
}

// Track builds a direct-audio source.
func Track(rawURL string) Source {
	return Source{Kind: KindTrack, URL: rawURL}
}

// Embed builds an embedded-player source.
func Embed(embedURL string) Source {
	return Source{Kind: KindEmbed, URL: embedURL}
}

// IsZero reports whether nothing is selected.
func (source Source) IsZero() bool {
	return source.Kind == KindNone
}

var (
	videoIDPattern       = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)
	streamingPathPattern = regexp.MustCompile(`^/(?:intl-[a-z]{2}/)?(track|album|playlist|artist|episode|show)/([A-Za-z0-9]+)`)
)

// Classify decides how a pasted link should be played. Video-sharing links
// with an identifier and music-streaming links become embeds; everything else
// is treated as a playable audio file and returned unchanged.
func Classify(rawURL string) Source {
	trimmed := strings.TrimSpace(rawURL)
	if embedURL, ok := videoEmbed(trimmed); ok {
		return Embed(embedURL)
	}
	if embedURL, ok := streamingEmbed(trimmed); ok {
		return Embed(embedURL)
	}
	return Track(rawURL)
}

func parseWebURL(value string) (*url.URL, bool) {
	if value == "" {
		return nil, false
	}
	if !strings.Contains(value, "://") {
		value = "https://" + value
	}
	parsed, err := url.Parse(value)
	if err != nil || parsed.Host == "" {
		return nil, false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, false
	}
	return parsed, true
}

func hostIs(parsed *url.URL, domains ...string) bool {
	host := strings.ToLower(parsed.Hostname())
	for _, domain := range domains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func videoEmbed(value string) (string, bool) {
	parsed, ok := parseWebURL(value)
	if !ok {
		return "", false
	}

	var id string
	switch {
	case hostIs(parsed, "youtu.be"):
		id = firstSegment(parsed.Path)
	case hostIs(parsed, "youtube.com", "youtube-nocookie.com"):
		segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
		switch {
		case segments[0] == "watch":
			id = parsed.Query().Get("v")
		case len(segments) >= 2 && (segments[0] == "embed" || segments[0] == "shorts" || segments[0] == "live" || segments[0] == "v"):
			id = segments[1]
		}
	default:
		return "", false
	}

	if !videoIDPattern.MatchString(id) {
		return "", false
	}
	return "https://www.youtube.com/embed/" + id + "?autoplay=1&loop=1&playlist=" + id, true
}

func streamingEmbed(value string) (string, bool) {
	parsed, ok := parseWebURL(value)
	if !ok || !hostIs(parsed, "open.spotify.com") {
		return "", false
	}
	if strings.HasPrefix(parsed.Path, "/embed/") {
		return "https://open.spotify.com" + parsed.Path, true
	}
	match := streamingPathPattern.FindStringSubmatch(parsed.Path)
	if match == nil {
		return "", false
	}
	return "https://open.spotify.com/embed/" + match[1] + "/" + match[2], true
}

func firstSegment(path string) string {
	trimmed := strings.Trim(path, "/")
	if index := strings.Index(trimmed, "/"); index >= 0 {
		return trimmed[:index]
	}
	return trimmed
}
