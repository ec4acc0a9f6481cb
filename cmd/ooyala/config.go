package main

import (
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/ooyala/pkg/config"
	"github.com/mxpv/ooyala/pkg/link"
)

type Config struct {
	// Ooyala is the resolver configuration
	Ooyala config.Settings `toml:"ooyala"`
	// Page describes the page the player is embedded in
	Page Page `toml:"page"`
	// Player is the set of capabilities the player reports
	Player Player `toml:"player"`
	// HTTP client configuration
	HTTP HTTP `toml:"http"`
}

type Page struct {
	// URL of the embedding page. Hostname is sent as domain, scheme is used
	// for the resolved sources.
	URL string `toml:"url"`
	// Mobile enables the mobile stream profile
	Mobile bool `toml:"mobile"`
}

type Player struct {
	NativeHLS bool `toml:"native_hls"`
	Flash     bool `toml:"flash"`
	// HLSPlugin requests m3u8 streams as if an HLS plugin was loaded
	HLSPlugin bool `toml:"hls_plugin"`
}

type HTTP struct {
	// Timeout of a single API request
	Timeout time.Duration `toml:"timeout"`
}

// LoadConfig loads TOML configuration from a file path, applies the non-zero
// fields of overrides on top and validates the result. An empty path loads
// overrides alone.
func LoadConfig(path string, overrides Config) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		log.Debugf("loading configuration %q", path)

		loaded, err := readConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.Ooyala = cfg.Ooyala.Merge(overrides.Ooyala)

	if overrides.Page.URL != "" {
		cfg.Page.URL = overrides.Page.URL
	}

	if overrides.Page.Mobile {
		cfg.Page.Mobile = true
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readConfig decodes a file without applying defaults or validating it.
func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	cfg := Config{}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal toml")
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.Ooyala = config.Defaults().Merge(c.Ooyala)

	if c.Page.URL == "" {
		c.Page.URL = "https://localhost"
	}

	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = 30 * time.Second
	}
}

func (c *Config) validate() error {
	var result *multierror.Error

	if err := c.Ooyala.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	if _, err := link.ParsePage(c.Page.URL); err != nil {
		result = multierror.Append(result, err)
	}

	if c.HTTP.Timeout < 0 {
		result = multierror.Append(result, errors.New("http timeout must not be negative"))
	}

	return result.ErrorOrNil()
}

// Environment returns the link environment described by the page and player sections.
func (c *Config) Environment() (link.Environment, error) {
	env, err := link.ParsePage(c.Page.URL)
	if err != nil {
		return link.Environment{}, err
	}

	env.Mobile = c.Page.Mobile
	env.HLS = c.Player.HLSPlugin
	return env, nil
}
