package config

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/mxpv/ooyala/pkg/model"
)

// Settings configures a resolver. Build it with New, it must not be changed
// afterwards.
type Settings struct {
	// ProviderCode is the Ooyala provider code (pcode)
	ProviderCode string `toml:"pcode"`
	// BrandingID is the player branding id used to scope metadata requests
	BrandingID string `toml:"player_branding_id"`
	// SASEndpoint is the authorization API base URL. Protocol relative URLs
	// take the page protocol.
	SASEndpoint string `toml:"sas_url"`
	// MetadataEndpoint is the metadata API base URL
	MetadataEndpoint string `toml:"metadata_url"`
	// MobileProfile narrows streams returned to mobile devices
	MobileProfile string `toml:"mobile_profile"`
	// EnableHLS requests m3u8 streams even if the player does not report HLS support
	EnableHLS bool `toml:"enable_hls"`
	// Errors overrides the built-in error messages
	Errors model.Catalog `toml:"errors"`
	// RetryDelay is how long to wait before re-issuing a failed authorization request.
	// Format is "500ms", "1.5s".
	RetryDelay time.Duration `toml:"retry_delay"`
	// MaxAttempts caps authorization requests per resolution, 0 retries forever
	MaxAttempts int `toml:"max_attempts"`
}

// Defaults returns the settings used for everything not overridden by the caller.
func Defaults() Settings {
	return Settings{
		SASEndpoint:      model.DefaultSASEndpoint,
		MetadataEndpoint: model.DefaultMetadataEndpoint,
		Errors:           model.DefaultCatalog(),
		RetryDelay:       model.DefaultRetryDelay,
	}
}

// New merges overrides onto Defaults and validates the result.
func New(overrides Settings) (*Settings, error) {
	settings := Defaults().Merge(overrides)
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Merge returns a copy of s with all non-zero fields of overrides applied.
func (s Settings) Merge(overrides Settings) Settings {
	out := s

	if overrides.ProviderCode != "" {
		out.ProviderCode = overrides.ProviderCode
	}

	if overrides.BrandingID != "" {
		out.BrandingID = overrides.BrandingID
	}

	if overrides.SASEndpoint != "" {
		out.SASEndpoint = overrides.SASEndpoint
	}

	if overrides.MetadataEndpoint != "" {
		out.MetadataEndpoint = overrides.MetadataEndpoint
	}

	if overrides.MobileProfile != "" {
		out.MobileProfile = overrides.MobileProfile
	}

	if overrides.EnableHLS {
		out.EnableHLS = true
	}

	if overrides.RetryDelay != 0 {
		out.RetryDelay = overrides.RetryDelay
	}

	if overrides.MaxAttempts != 0 {
		out.MaxAttempts = overrides.MaxAttempts
	}

	out.Errors = s.Errors.Merge(overrides.Errors)
	return out
}

// Validate checks required fields.
func (s *Settings) Validate() error {
	var result *multierror.Error

	if s.ProviderCode == "" {
		result = multierror.Append(result, errors.New("missing Ooyala provider code"))
	}

	if s.BrandingID == "" {
		result = multierror.Append(result, errors.New("missing Ooyala player branding id"))
	}

	if s.SASEndpoint == "" {
		result = multierror.Append(result, errors.New("authorization endpoint is required"))
	}

	if s.MetadataEndpoint == "" {
		result = multierror.Append(result, errors.New("metadata endpoint is required"))
	}

	if s.RetryDelay < 0 {
		result = multierror.Append(result, errors.Errorf("retry delay must not be negative, got %s", s.RetryDelay))
	}

	if s.MaxAttempts < 0 {
		result = multierror.Append(result, errors.Errorf("max attempts must not be negative, got %d", s.MaxAttempts))
	}

	return result.ErrorOrNil()
}
