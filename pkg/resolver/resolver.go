package resolver

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/ooyala/pkg/config"
	"github.com/mxpv/ooyala/pkg/delivery"
	"github.com/mxpv/ooyala/pkg/link"
	"github.com/mxpv/ooyala/pkg/model"
	"github.com/mxpv/ooyala/pkg/sas"
)

var (
	ErrRetriesExhausted = errors.New("authorization request retries exhausted")
	errEmptyBody        = errors.New("empty response body")
)

// Result is the outcome of an authorization request.
type Result struct {
	// Response is the decoded authorization payload
	Response *sas.AuthorizationResponse
	// Sources maps embed codes to normalized sources
	Sources map[string]*model.Source
	// Attempts is the number of requests it took to get a valid response
	Attempts int
}

type Option func(r *Resolver)

func WithTransport(transport Transport) Option {
	return func(r *Resolver) {
		r.transport = transport
	}
}

func WithClock(clock Clock) Option {
	return func(r *Resolver) {
		r.clock = clock
	}
}

// WithEnvironment sets the page and device the player is embedded in.
func WithEnvironment(env link.Environment) Option {
	return func(r *Resolver) {
		r.env = env
	}
}

// Resolver resolves Ooyala embed codes into player sources.
// It is safe for concurrent use, requests don't share state.
type Resolver struct {
	settings  *config.Settings
	host      Host
	transport Transport
	clock     Clock
	env       link.Environment
	links     *link.Builder
}

func New(settings *config.Settings, host Host, opts ...Option) (*Resolver, error) {
	if settings == nil {
		return nil, errors.New("settings are required")
	}

	if err := settings.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}

	if host == nil {
		return nil, errors.New("host player is required")
	}

	r := &Resolver{
		settings:  settings,
		host:      host,
		transport: NewHTTPTransport(nil),
		clock:     SystemClock{},
	}

	for _, opt := range opts {
		opt(r)
	}

	r.links = link.NewBuilder(settings, link.NewCacheBuster(r.clock.Now))
	return r, nil
}

func (r *Resolver) environment() link.Environment {
	env := r.env
	env.HLS = env.HLS || r.host.SupportsNativeHLS()
	return env
}

// GetVideoSource queries the authorization API for one or more embed codes.
// Network failures, empty and malformed responses are retried after
// settings.RetryDelay until a valid response arrives, ctx is done or
// settings.MaxAttempts is reached.
func (r *Resolver) GetVideoSource(ctx context.Context, embedCodes ...string) (*Result, error) {
	if len(embedCodes) == 0 {
		return nil, model.ErrMissingInput
	}

	for _, code := range embedCodes {
		if code == "" {
			return nil, model.ErrMissingInput
		}
	}

	env := r.environment()

	addr, err := r.links.Authorization(env, embedCodes...)
	if err != nil {
		return nil, err
	}

	logger := log.WithField("embed_codes", strings.Join(embedCodes, link.Separator))

	for attempt := 1; ; attempt++ {
		resp, err := r.fetch(ctx, addr)
		if err == nil {
			sources := sas.Normalize(resp.AuthorizationData, env.Scheme(), embedCodes...)

			for embedCode, source := range sources {
				if source.Err != nil {
					logger.WithError(source.Err).Warnf("failed to resolve %q", embedCode)
				}
			}

			logger.Debugf("received %d source(s) after %d attempt(s)", len(sources), attempt)

			return &Result{
				Response: resp,
				Sources:  sources,
				Attempts: attempt,
			}, nil
		}

		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "authorization request canceled")
		}

		if r.settings.MaxAttempts > 0 && attempt >= r.settings.MaxAttempts {
			return nil, errors.Wrapf(ErrRetriesExhausted, "%d attempt(s), last error: %v", attempt, err)
		}

		logger.WithError(err).Warnf("authorization request failed (attempt %d), retrying in %s", attempt, r.settings.RetryDelay)

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "authorization request canceled")
		case <-r.clock.After(r.settings.RetryDelay):
		}
	}
}

func (r *Resolver) fetch(ctx context.Context, addr string) (*sas.AuthorizationResponse, error) {
	resp, err := r.transport.Get(ctx, addr)
	if err != nil {
		return nil, err
	}

	if resp == nil || len(resp.Body) == 0 {
		return nil, errEmptyBody
	}

	return sas.ParseAuthorization(resp.Body)
}

// PrepareSettingSource checks that the source for embedCode can be played.
// Entries that failed to normalize return their own error, authorization
// failures are classified into catalog descriptors, HLS sources
// on hosts without HLS support yield the no flash descriptor. On success the
// player error state is cleared.
func (r *Resolver) PrepareSettingSource(embedCode string, res *Result) (*model.Source, error) {
	if res == nil {
		return nil, errors.Wrapf(model.ErrNotFound, "no result for %q", embedCode)
	}

	source, ok := res.Sources[embedCode]
	if !ok || source == nil {
		return nil, errors.Wrapf(model.ErrNotFound, "embed code %q", embedCode)
	}

	if source.Err != nil {
		return nil, source.Err
	}

	if !source.Authorized {
		return nil, r.settings.Errors.Classify(source.Code)
	}

	if source.Type == model.MediaHLS && !delivery.CanPlayHLS(r.host) {
		return nil, r.settings.Errors.Get(model.ErrorNoFlash)
	}

	r.host.SetError(nil)
	return source, nil
}

// SetSource resolves embedCode and loads it into the host player. The fetch
// result is returned even when the source can't be played.
func (r *Resolver) SetSource(ctx context.Context, embedCode string) (*Result, error) {
	if embedCode == "" {
		return nil, model.ErrMissingInput
	}

	res, err := r.GetVideoSource(ctx, embedCode)
	if err != nil {
		return nil, err
	}

	source, err := r.PrepareSettingSource(embedCode, res)
	if err != nil {
		log.WithError(err).WithField("embed_code", embedCode).Warn("source can't be played")
		return res, err
	}

	log.WithFields(log.Fields{
		"embed_code": embedCode,
		"type":       source.Type,
	}).Infof("setting source %s", source.Src)

	r.host.SetSource(model.PlayerSource{
		Type: source.Type,
		Src:  source.Src,
	})

	return res, nil
}
