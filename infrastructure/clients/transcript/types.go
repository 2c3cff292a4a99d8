package transcript

// playerRequest is the innertube player call body. The ANDROID client is used
// because it serves caption tracks without an API key.
type playerRequest struct {
	Context playerContext `json:"context"`
	VideoID string        `json:"videoId"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSDKVersion int    `json:"androidSdkVersion"`
	HL                string `json:"hl"`
}

type playerResponse struct {
	PlayabilityStatus playabilityStatus `json:"playabilityStatus"`
	Captions          captions          `json:"captions"`
}

type playabilityStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type captions struct {
	PlayerCaptionsTracklistRenderer tracklistRenderer `json:"playerCaptionsTracklistRenderer"`
}

type tracklistRenderer struct {
	CaptionTracks []captionTrack `json:"captionTracks"`
}

// captionTrack describes an available subtitle track.
type captionTrack struct {
	BaseURL      string    `json:"baseUrl"`
	Name         trackName `json:"name"`
	VssID        string    `json:"vssId"`
	LanguageCode string    `json:"languageCode"`
	Kind         string    `json:"kind"`
}

type trackName struct {
	SimpleText string `json:"simpleText"`
}

// rawJSON3 is the wire structure of a timedtext track fetched with fmt=json3.
type rawJSON3 struct {
	WireMagic string     `json:"wireMagic,omitempty"`
	Events    []rawEvent `json:"events"`
}

type rawEvent struct {
	TStartMs    int64    `json:"tStartMs"`
	DDurationMs int64    `json:"dDurationMs"`
	Segs        []rawSeg `json:"segs,omitempty"`
}

type rawSeg struct {
	Utf8 string `json:"utf8"`
}
