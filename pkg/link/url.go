package link

import (
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/mxpv/ooyala/pkg/config"
	"github.com/mxpv/ooyala/pkg/model"
)

// Separator joins multiple embed codes in a single request.
const Separator = ","

// Environment describes the page and device the player runs on.
type Environment struct {
	// Protocol of the embedding page, "http:" or "https:"
	Protocol string
	// Hostname of the embedding page, sent as the domain parameter
	Hostname string
	// Mobile is true on iOS and Android devices
	Mobile bool
	// HLS is true when the player can take m3u8 streams (native or via plugin)
	HLS bool
}

// Scheme returns the page protocol with a trailing colon, https: by default.
func (e Environment) Scheme() string {
	p := strings.ToLower(strings.TrimSpace(e.Protocol))
	if p == "" {
		return model.DefaultProtocol
	}
	if !strings.HasSuffix(p, ":") {
		p += ":"
	}
	return p
}

// ParsePage builds an Environment from the URL of the embedding page.
func ParsePage(page string) (Environment, error) {
	parsed, err := parseURL(page)
	if err != nil {
		return Environment{}, err
	}

	if parsed.Hostname() == "" {
		return Environment{}, errors.Errorf("page url %q has no host", page)
	}

	return Environment{
		Protocol: parsed.Scheme + ":",
		Hostname: parsed.Hostname(),
	}, nil
}

func parseURL(link string) (*url.URL, error) {
	if !strings.HasPrefix(link, "http") {
		link = "https://" + strings.TrimPrefix(link, "//")
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse url: %s", link)
	}

	return parsed, nil
}

// CacheBuster hands out strictly increasing millisecond timestamps.
type CacheBuster struct {
	now  func() time.Time
	last int64
}

func NewCacheBuster(now func() time.Time) *CacheBuster {
	if now == nil {
		now = time.Now
	}
	return &CacheBuster{now: now}
}

func (c *CacheBuster) Next() int64 {
	for {
		last := atomic.LoadInt64(&c.last)
		next := c.now().UnixNano() / int64(time.Millisecond)
		if next <= last {
			next = last + 1
		}
		if atomic.CompareAndSwapInt64(&c.last, last, next) {
			return next
		}
	}
}

// Builder makes authorization and metadata API URLs.
type Builder struct {
	settings *config.Settings
	buster   *CacheBuster
}

func NewBuilder(settings *config.Settings, buster *CacheBuster) *Builder {
	if buster == nil {
		buster = NewCacheBuster(nil)
	}
	return &Builder{settings: settings, buster: buster}
}

// SupportedFormats lists the stream formats to request, in order of preference.
func (b *Builder) SupportedFormats(env Environment) []string {
	var formats []string

	if env.HLS || b.settings.EnableHLS {
		formats = append(formats, "m3u8")
	}

	// Always ask for MP4
	formats = append(formats, "mp4")
	return formats
}

// Profiles returns the stream profile to narrow to, if any.
func (b *Builder) Profiles(env Environment) string {
	if b.settings.MobileProfile != "" && env.Mobile {
		return b.settings.MobileProfile
	}
	return ""
}

// Authorization returns the SAS authorization URL for the given embed codes.
func (b *Builder) Authorization(env Environment, embedCodes ...string) (string, error) {
	if len(embedCodes) == 0 {
		return "", model.ErrMissingInput
	}

	qs := url.Values{}
	qs.Add("device", "generic")
	qs.Add("domain", env.Hostname)
	qs.Add("supportedFormats", strings.Join(b.SupportedFormats(env), ","))
	qs.Add("_", strconv.FormatInt(b.buster.Next(), 10))

	if profiles := b.Profiles(env); profiles != "" {
		qs.Add("profiles", profiles)
	}

	return b.makeURL(env, b.settings.SASEndpoint, b.settings.ProviderCode, embedCodes, qs)
}

// Metadata returns the metadata API URL for the given embed codes.
func (b *Builder) Metadata(env Environment, embedCodes ...string) (string, error) {
	if len(embedCodes) == 0 {
		return "", model.ErrMissingInput
	}

	qs := url.Values{}
	qs.Add("videoPcode", b.settings.ProviderCode)

	return b.makeURL(env, b.settings.MetadataEndpoint, b.settings.BrandingID, embedCodes, qs)
}

func (b *Builder) makeURL(env Environment, endpoint, scope string, embedCodes []string, qs url.Values) (string, error) {
	if endpoint == "" || scope == "" {
		return "", errors.New("endpoint and scope are required")
	}

	escaped := make([]string, 0, len(embedCodes))
	for _, code := range embedCodes {
		if code == "" {
			return "", model.ErrMissingInput
		}
		escaped = append(escaped, url.PathEscape(code))
	}

	base := strings.TrimRight(endpoint, "/")
	if strings.HasPrefix(base, "//") {
		base = env.Scheme() + base
	}

	addr := base + "/" + url.PathEscape(scope) + "/" + strings.Join(escaped, Separator)

	parsed, err := url.Parse(addr)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse api url %q", addr)
	}

	parsed.RawQuery = qs.Encode()
	return parsed.String(), nil
}
