package resolver

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mxpv/ooyala/pkg/model"
	"github.com/mxpv/ooyala/pkg/sas"
)

// GetMetadata fetches base metadata for the given embed codes. Unlike
// authorization requests, metadata requests are not retried.
func (r *Resolver) GetMetadata(ctx context.Context, embedCodes ...string) (model.Metadata, error) {
	if len(embedCodes) == 0 {
		return nil, model.ErrMissingInput
	}

	addr, err := r.links.Metadata(r.env, embedCodes...)
	if err != nil {
		return nil, err
	}

	resp, err := r.transport.Get(ctx, addr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query metadata")
	}

	if resp == nil || len(resp.Body) == 0 {
		return nil, errors.Wrap(errEmptyBody, "failed to query metadata")
	}

	return sas.ParseMetadata(resp.Body)
}
