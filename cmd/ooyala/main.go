package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mxpv/ooyala/pkg/config"
	"github.com/mxpv/ooyala/pkg/model"
	"github.com/mxpv/ooyala/pkg/resolver"
)

type Opts struct {
	ConfigPath   string        `long:"config" short:"c" env:"OOYALA_CONFIG_PATH" description:"Path to TOML config"`
	ProviderCode string        `long:"pcode" env:"OOYALA_PCODE" description:"Ooyala provider code"`
	BrandingID   string        `long:"branding-id" env:"OOYALA_PLAYER_BRANDING_ID" description:"Player branding id"`
	PageURL      string        `long:"page" env:"OOYALA_PAGE_URL" description:"URL of the embedding page"`
	Mobile       bool          `long:"mobile" description:"Pretend to be a mobile device"`
	EnableHLS    bool          `long:"hls" description:"Request HLS streams"`
	NoMetadata   bool          `long:"no-metadata" description:"Skip the metadata request"`
	Timeout      time.Duration `long:"timeout" default:"1m" description:"Give up resolving after this long"`
	Debug        bool          `long:"debug"`

	Args struct {
		EmbedCodes []string `positional-arg-name:"embed-code" required:"1"`
	} `positional-args:"yes"`
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type sourceOutput struct {
	Source *model.Source          `json:"source,omitempty"`
	Player *model.PlayerSource    `json:"player,omitempty"`
	Error  string                 `json:"error,omitempty"`
	Detail *model.ErrorDescriptor `json:"detail,omitempty"`
}

type output struct {
	Sources  map[string]*sourceOutput `json:"sources"`
	Metadata model.Metadata           `json:"metadata,omitempty"`
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})

	opts := Opts{}
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.WithError(err).Fatal("failed to parse command line arguments")
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	log.WithFields(log.Fields{
		"version": version,
		"commit":  commit,
		"date":    date,
	}).Debug("running ooyala")

	cfg, err := buildConfig(opts)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	settings, err := config.New(cfg.Ooyala)
	if err != nil {
		log.WithError(err).Fatal("invalid resolver settings")
	}

	env, err := cfg.Environment()
	if err != nil {
		log.WithError(err).Fatal("invalid page url")
	}

	host := NewConsoleHost(cfg.Player)
	transport := resolver.NewHTTPTransport(&http.Client{Timeout: cfg.HTTP.Timeout})

	res, err := resolver.New(settings, host, resolver.WithTransport(transport), resolver.WithEnvironment(env))
	if err != nil {
		log.WithError(err).Fatal("failed to create resolver")
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-stop:
			log.Info("interrupted, canceling pending requests")
			cancel()
		case <-ctx.Done():
		}
	}()

	out, err := run(ctx, res, opts.Args.EmbedCodes, !opts.NoMetadata)
	if err != nil {
		log.WithError(err).Fatal("failed to resolve")
	}

	host.Play()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.WithError(err).Fatal("failed to write output")
	}
}

func buildConfig(opts Opts) (*Config, error) {
	return LoadConfig(opts.ConfigPath, Config{
		Ooyala: config.Settings{
			ProviderCode: opts.ProviderCode,
			BrandingID:   opts.BrandingID,
			EnableHLS:    opts.EnableHLS,
		},
		Page: Page{
			URL:    opts.PageURL,
			Mobile: opts.Mobile,
		},
	})
}

// run sets the source of every embed code and fetches their metadata in parallel.
func run(ctx context.Context, res *resolver.Resolver, embedCodes []string, metadata bool) (*output, error) {
	var (
		mu  sync.Mutex
		out = &output{Sources: map[string]*sourceOutput{}}
	)

	group, ctx := errgroup.WithContext(ctx)

	for _, embedCode := range embedCodes {
		embedCode := embedCode

		group.Go(func() error {
			result, err := res.SetSource(ctx, embedCode)
			item := &sourceOutput{}

			if result != nil {
				item.Source = result.Sources[embedCode]
			}

			switch e := err.(type) {
			case nil:
				item.Player = &model.PlayerSource{Type: item.Source.Type, Src: item.Source.Src}
			case model.ErrorDescriptor:
				item.Error = e.Error()
				item.Detail = &e
			default:
				if ctx.Err() != nil {
					return errors.Wrapf(err, "failed to resolve %q", embedCode)
				}
				item.Error = err.Error()
			}

			mu.Lock()
			out.Sources[embedCode] = item
			mu.Unlock()
			return nil
		})
	}

	if metadata {
		group.Go(func() error {
			meta, err := res.GetMetadata(ctx, embedCodes...)
			if err != nil {
				log.WithError(err).Warn("failed to fetch metadata")
				return nil
			}

			mu.Lock()
			out.Metadata = meta
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
