package dto

// PublishRequest is the ephemeral input for one publish call. It only lives
// for the duration of the call and is never persisted.
type PublishRequest struct {
	Title       string
	Description string
	FileName    string
	MimeType    string
	File        []byte
	Platforms   []string // caller-supplied order is preserved during fan-out
}

// UploadInput is the per-platform slice of a PublishRequest handed to an
// upload adapter.
type UploadInput struct {
	Title       string
	Description string
	File        []byte
	MimeType    string
}

// UploadResult is a successful adapter outcome.
type UploadResult struct {
	VideoID string `json:"video_id"`
	URL     string `json:"url"`
}

// PlatformResult is one platform's outcome inside a publish response.
type PlatformResult struct {
	Platform string `json:"platform"`
	Success  bool   `json:"success"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// PublishResponse aggregates per-platform outcomes. Success follows
// any-success semantics: true iff at least one platform succeeded.
type PublishResponse struct {
	Success bool             `json:"success"`
	Results []PlatformResult `json:"results"`
	Message string           `json:"message"`
}
