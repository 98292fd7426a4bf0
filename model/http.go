package model

type RenderRequest struct {
	Abc   string `json:"abc"`
	Title string `json:"title"`
}

type RenderResponse struct {
	Title string `json:"title"`
	Key   string `json:"key"`
	Tab   string `json:"tab"`
}

type ChordEntry struct {
	Name  string `json:"name"`
	Shape string `json:"shape"`
}

type SongInfo struct {
	Name     string        `json:"name"`
	Title    string        `json:"title"`
	Key      string        `json:"key"`
	Notes    []string      `json:"notes"`
	Mapped   int           `json:"mapped"`
	Missing  []string      `json:"missing"`
	Metadata *SongMetadata `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
