package model

// MediaType is a player source type (MIME type).
type MediaType string

const (
	MediaMP4 = MediaType("video/mp4")
	MediaFLV = MediaType("video/flv")
	MediaHLS = MediaType("application/x-mpegURL")
)

// Source is a normalized authorization result for a single embed code.
type Source struct {
	Authorized bool `json:"authorized"`

	// Set when the provider refused authorization
	Code    ProviderCode `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`

	// Set for authorized sources only
	Type         MediaType `json:"type,omitempty"`
	Src          string    `json:"src,omitempty"`
	DeliveryType string    `json:"delivery_type,omitempty"`

	// Fields holds the raw stream descriptor as returned by the provider
	Fields map[string]interface{} `json:"fields,omitempty"`

	// Err is set when this entry alone could not be resolved
	Err error `json:"-"`
}

// PlayerSource is what gets handed to the host player.
type PlayerSource struct {
	Type MediaType `json:"type"`
	Src  string    `json:"src"`
}

// Metadata maps embed codes to their base metadata block.
type Metadata map[string]map[string]interface{}
