package delivery

import (
	"regexp"

	"github.com/mxpv/ooyala/pkg/model"
)

var (
	mp4Tag    = regexp.MustCompile(`(?i)mp4`)
	flvSuffix = regexp.MustCompile(`(?i)\.flv$`)
	hlsSuffix = regexp.MustCompile(`(?i)\.m3u8$`)
)

// Capabilities is what the host player can report about HLS playback.
type Capabilities interface {
	SupportsNativeHLS() bool
	HasFlashFallback() bool
}

// ByDeliveryType checks the provider delivery type hint.
func ByDeliveryType(tag string) (model.MediaType, bool) {
	if mp4Tag.MatchString(tag) {
		return model.MediaMP4, true
	}
	return "", false
}

// BySuffix detects FLV and HLS sources by URL suffix.
func BySuffix(src string) (model.MediaType, bool) {
	if flvSuffix.MatchString(src) {
		return model.MediaFLV, true
	}
	if hlsSuffix.MatchString(src) {
		return model.MediaHLS, true
	}
	return "", false
}

// Detect returns the media type for a stream. The delivery type hint wins
// over the URL suffix, and anything unrecognized is played as MP4.
func Detect(tag, src string) model.MediaType {
	if kind, ok := ByDeliveryType(tag); ok {
		return kind
	}
	if kind, ok := BySuffix(src); ok {
		return kind
	}
	return model.MediaMP4
}

// CanPlayHLS reports whether the host can play HLS either natively or
// through a flash based fallback.
func CanPlayHLS(c Capabilities) bool {
	if c == nil {
		return false
	}
	return c.SupportsNativeHLS() || c.HasFlashFallback()
}
