package sas

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/mxpv/ooyala/pkg/model"
)

var (
	// ErrMalformedResponse is returned when an API response can't be decoded.
	ErrMalformedResponse = errors.New("malformed response")
	ErrNoStreams         = errors.New("authorized entry has no streams")
)

// AuthorizationResponse is the SAS authorization API payload.
type AuthorizationResponse struct {
	AuthorizationData map[string]Authorization `json:"authorization_data"`

	// Raw is the whole decoded payload, including fields not modeled here
	Raw map[string]interface{} `json:"-"`
}

// Authorization is the per embed code authorization result.
type Authorization struct {
	Authorized bool               `json:"authorized"`
	Code       model.ProviderCode `json:"code,omitempty"`
	Message    string             `json:"message,omitempty"`
	Streams    []json.RawMessage  `json:"streams,omitempty"`
}

// Stream is a single stream descriptor. Only the fields needed for
// normalization are modeled, the rest is carried in model.Source.Fields.
type Stream struct {
	DeliveryType string    `json:"delivery_type"`
	URL          StreamURL `json:"url"`
}

type StreamURL struct {
	// Data is the base64 encoded stream URL
	Data   string `json:"data"`
	Format string `json:"format,omitempty"`
}

// MetadataResponse is the metadata API payload.
type MetadataResponse struct {
	Metadata map[string]MetadataItem `json:"metadata"`
	Errors   *model.MetadataError    `json:"errors,omitempty"`
}

type MetadataItem struct {
	Base map[string]interface{} `json:"base"`
}

// ParseAuthorization decodes a SAS authorization response body.
func ParseAuthorization(body []byte) (*AuthorizationResponse, error) {
	var resp AuthorizationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, err.Error())
	}

	if resp.AuthorizationData == nil {
		return nil, errors.Wrap(ErrMalformedResponse, "missing authorization_data")
	}

	if err := json.Unmarshal(body, &resp.Raw); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, err.Error())
	}

	return &resp, nil
}

// ParseMetadata decodes a metadata API response into a flat embed code to
// base metadata mapping. Provider errors are returned as *model.MetadataError.
func ParseMetadata(body []byte) (model.Metadata, error) {
	var resp MetadataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, err.Error())
	}

	if resp.Errors != nil && resp.Errors.Code != "" {
		return nil, resp.Errors
	}

	if resp.Metadata == nil {
		return nil, errors.Wrap(ErrMalformedResponse, "missing metadata")
	}

	out := make(model.Metadata, len(resp.Metadata))
	for embedCode, item := range resp.Metadata {
		out[embedCode] = item.Base
	}

	return out, nil
}
