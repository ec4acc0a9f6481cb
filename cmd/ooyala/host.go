package main

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/mxpv/ooyala/pkg/model"
)

// ConsoleHost is a player stand-in that logs what it is asked to play.
type ConsoleHost struct {
	player Player

	mu      sync.Mutex
	current *model.PlayerSource
	err     error
}

func NewConsoleHost(player Player) *ConsoleHost {
	return &ConsoleHost{player: player}
}

func (h *ConsoleHost) SupportsNativeHLS() bool {
	return h.player.NativeHLS
}

func (h *ConsoleHost) HasFlashFallback() bool {
	return h.player.Flash
}

func (h *ConsoleHost) SetSource(source model.PlayerSource) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = &source
	log.WithField("type", source.Type).Debugf("player source set to %s", source.Src)
}

func (h *ConsoleHost) SetError(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.err = err
	if err != nil {
		log.WithError(err).Debug("player error set")
	}
}

func (h *ConsoleHost) Play() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		log.Warn("nothing to play")
		return
	}

	log.Infof("playing %s", h.current.Src)
}
