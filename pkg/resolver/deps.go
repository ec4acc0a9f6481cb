//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=resolver

package resolver

import (
	"context"

	"github.com/mxpv/ooyala/pkg/model"
)

// Host is the player the resolved sources are handed to.
type Host interface {
	// SupportsNativeHLS reports whether the player can play m3u8 natively
	SupportsNativeHLS() bool
	// HasFlashFallback reports whether a flash tech is available for HLS
	HasFlashFallback() bool
	SetSource(source model.PlayerSource)
	// SetError sets or clears (nil) the player error state
	SetError(err error)
	Play()
}

// Transport performs API requests.
type Transport interface {
	Get(ctx context.Context, addr string) (*Response, error)
}
