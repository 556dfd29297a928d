package domain

// ResultKind is the normalized content kind of a search result. Its value
// is the raw kind string the catalog service emits.
type ResultKind string

const (
	ResultKindAlbum              ResultKind = "album"
	ResultKindBook               ResultKind = "book"
	ResultKindCoachedAudio       ResultKind = "coached-audio"
	ResultKindFeatureMovie       ResultKind = "feature-movie"
	ResultKindInteractiveBooklet ResultKind = "interactive-booklet"
	ResultKindMusicVideo         ResultKind = "music-video"
	ResultKindPDFPodcast         ResultKind = "pdf podcast"
	ResultKindPodcastEpisode     ResultKind = "podcast-episode"
	ResultKindSoftwarePackage    ResultKind = "software-package"
	ResultKindSong               ResultKind = "song"
	ResultKindTVEpisode          ResultKind = "tv-episode"
	ResultKindArtist             ResultKind = "artist"
	ResultKindUnknown            ResultKind = "unknown"
)

type kindInfo struct {
	tag   string
	title string
}

var resultKinds = []ResultKind{
	ResultKindAlbum,
	ResultKindBook,
	ResultKindCoachedAudio,
	ResultKindFeatureMovie,
	ResultKindInteractiveBooklet,
	ResultKindMusicVideo,
	ResultKindPDFPodcast,
	ResultKindPodcastEpisode,
	ResultKindSoftwarePackage,
	ResultKindSong,
	ResultKindTVEpisode,
	ResultKindArtist,
	ResultKindUnknown,
}

var kindInfos = map[ResultKind]kindInfo{
	ResultKindAlbum:              {tag: "album", title: "Albums"},
	ResultKindBook:               {tag: "book", title: "Books"},
	ResultKindCoachedAudio:       {tag: "coachedAudio", title: "Coached Audio"},
	ResultKindFeatureMovie:       {tag: "featureMovie", title: "Movies"},
	ResultKindInteractiveBooklet: {tag: "interactiveBooklet", title: "Interactive Booklet"},
	ResultKindMusicVideo:         {tag: "musicVideo", title: "Music Video"},
	ResultKindPDFPodcast:         {tag: "pdfPodcast", title: "PDF Podcast"},
	ResultKindPodcastEpisode:     {tag: "podcastEpisode", title: "Podcast Episodes"},
	ResultKindSoftwarePackage:    {tag: "softwarePackage", title: "Software"},
	ResultKindSong:               {tag: "song", title: "Songs"},
	ResultKindTVEpisode:          {tag: "tvEpisode", title: "TV Episodes"},
	ResultKindArtist:             {tag: "artist", title: "Artists"},
	ResultKindUnknown:            {tag: "unknown", title: "Unknown"},
}

// ResultKinds returns every result kind, unknown last.
func ResultKinds() []ResultKind {
	out := make([]ResultKind, len(resultKinds))
	copy(out, resultKinds)

	return out
}

// ParseResultKind maps a raw kind string to its ResultKind.
// Unrecognized strings map to ResultKindUnknown.
func ParseResultKind(raw string) ResultKind {
	k := ResultKind(raw)
	if _, ok := kindInfos[k]; ok {
		return k
	}

	return ResultKindUnknown
}

// String returns the raw kind string.
func (k ResultKind) String() string {
	return string(k)
}

// Tag returns the camel-case identifier, e.g. "featureMovie".
func (k ResultKind) Tag() string {
	if info, ok := kindInfos[k]; ok {
		return info.tag
	}

	return kindInfos[ResultKindUnknown].tag
}

// DisplayTitle returns the human readable group title, e.g. "Movies".
func (k ResultKind) DisplayTitle() string {
	if info, ok := kindInfos[k]; ok {
		return info.title
	}

	return kindInfos[ResultKindUnknown].title
}
