package tui

import (
	"github.com/Iron-Ham/scoreboard/internal/config"
	"github.com/Iron-Ham/scoreboard/internal/event"
	"github.com/Iron-Ham/scoreboard/internal/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// watchConfig starts watching v's config file. Each write that loads and
// validates is published on bus and handed to apply; invalid edits are
// logged and ignored.
func watchConfig(v *viper.Viper, bus *event.Bus, logger *logging.Logger, apply func(*config.Config)) bool {
	if v.ConfigFileUsed() == "" {
		logger.Debug("no config file in use, not watching")
		return false
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		handleConfigChange(v, e, bus, logger, apply)
	})
	v.WatchConfig()
	logger.Info("watching config file", "path", v.ConfigFileUsed())
	return true
}

func handleConfigChange(v *viper.Viper, e fsnotify.Event, bus *event.Bus, logger *logging.Logger, apply func(*config.Config)) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}

	cfg, err := config.LoadFrom(v)
	if err != nil {
		logger.Warn("ignoring invalid config change", "path", e.Name, "error", err.Error())
		return
	}

	bus.Publish(event.NewConfigReloadedEvent(e.Name))
	apply(cfg)
}
