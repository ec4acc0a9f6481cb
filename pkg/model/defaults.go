package model

import (
	"time"
)

const (
	DefaultSASEndpoint      = "//player.ooyala.com/sas/player_api/v1/authorization/embed_code"
	DefaultMetadataEndpoint = "//player.ooyala.com/player_api/v1/metadata/embed_code"
	DefaultRetryDelay       = 500 * time.Millisecond
	DefaultProtocol         = "https:"
)

// Provider authorization codes with a dedicated error message.
const (
	CodeGeoBlocked = ProviderCode("3")
	CodeExpired    = ProviderCode("5")
)

// Error catalog keys.
const (
	ErrorExpired = "MEDIA_ERR_OOYALA_EXPIRED"
	ErrorBlocked = "MEDIA_ERR_OOYALA_BLOCKED"
	ErrorGeneric = "MEDIA_ERR_OOYALA"
	ErrorNoFlash = "MEDIA_ERR_NO_FLASH"
)

// DefaultCatalog returns a fresh copy of the built-in error messages.
func DefaultCatalog() Catalog {
	return Catalog{
		ErrorExpired: {
			Code:     ErrorExpired,
			Headline: "Sorry, this video is no longer available",
		},
		ErrorBlocked: {
			Code:     ErrorBlocked,
			Headline: "Sorry, this video is not available in your region",
		},
		ErrorGeneric: {
			Code:     ErrorGeneric,
			Headline: "Sorry, this video is no longer available",
		},
		ErrorNoFlash: {
			Code:     ErrorNoFlash,
			Headline: "This content requires the Adobe Flash plugin",
			Message: "To play this content please download it at " +
				`<a target="_blank" href="https://get.adobe.com/flashplayer/">` +
				"https://get.adobe.com/flashplayer/</a>",
		},
	}
}
