package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MediaKind is the content category filter sent to the catalog service.
type MediaKind string

const (
	MediaMovie      MediaKind = "movie"
	MediaPodcast    MediaKind = "podcast"
	MediaMusic      MediaKind = "music"
	MediaMusicVideo MediaKind = "musicVideo"
	MediaAudiobook  MediaKind = "audiobook"
	MediaShortFilm  MediaKind = "shortFilm"
	MediaTVShow     MediaKind = "tvShow"
	MediaSoftware   MediaKind = "software"
	MediaEbook      MediaKind = "ebook"
	MediaAll        MediaKind = "all"
)

var mediaKinds = []MediaKind{
	MediaMovie,
	MediaPodcast,
	MediaMusic,
	MediaMusicVideo,
	MediaAudiobook,
	MediaShortFilm,
	MediaTVShow,
	MediaSoftware,
	MediaEbook,
	MediaAll,
}

// MediaKinds returns every supported media kind in declaration order.
func MediaKinds() []MediaKind {
	out := make([]MediaKind, len(mediaKinds))
	copy(out, mediaKinds)

	return out
}

// Valid reports whether m is one of the supported media kinds.
func (m MediaKind) Valid() bool {
	for _, k := range mediaKinds {
		if k == m {
			return true
		}
	}

	return false
}

// String returns the raw tag used in the outbound query.
func (m MediaKind) String() string {
	return string(m)
}

// Title returns the display title, e.g. "Music Video" for musicVideo.
// A space is inserted wherever a lowercase letter or digit is followed by
// an uppercase letter, then every word is capitalized.
func (m MediaKind) Title() string {
	raw := []rune(string(m))
	if len(raw) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range raw {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(raw[i-1]) || unicode.IsDigit(raw[i-1])) {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}

	words := strings.Fields(sb.String())
	for i, w := range words {
		words[i] = capitalize(w)
	}

	return strings.Join(words, " ")
}

// MediaKindFromTitle is the reverse of Title: it lowercases the first
// letter, drops the spaces and looks the result up among the known tags.
func MediaKindFromTitle(title string) (MediaKind, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false
	}

	first, size := utf8.DecodeRuneInString(title)
	candidate := MediaKind(strings.ReplaceAll(string(unicode.ToLower(first))+title[size:], " ", ""))
	if !candidate.Valid() {
		return "", false
	}

	return candidate, true
}

// ParseMediaKind accepts either a raw tag ("musicVideo") or a display
// title ("Music Video"). An empty value selects MediaAll.
func ParseMediaKind(s string) (MediaKind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MediaAll, nil
	}
	if m := MediaKind(s); m.Valid() {
		return m, nil
	}
	if m, ok := MediaKindFromTitle(s); ok {
		return m, nil
	}

	return "", &MediaError{Value: s}
}

// capitalize uppercases the first letter and lowercases the rest.
func capitalize(w string) string {
	first, size := utf8.DecodeRuneInString(w)

	return string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
}
