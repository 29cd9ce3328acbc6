package main

import (
	"flag"

	log "github.com/sirupsen/logrus"
)

type settings struct {
	configPath string
	envFile    string
	serverURL  string
}

func parseSettings() settings {
	var s settings
	flag.StringVar(&s.configPath, "config", "config.json", "path to the client config, created with defaults if missing")
	flag.StringVar(&s.envFile, "env", ".env", "optional file of SNAKE_* variables")
	flag.StringVar(&s.serverURL, "server", "", "game server websocket URL, overrides server_url")
	flag.Parse()
	return s
}

func setupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	applyLogLevel(level)
}

// applyLogLevel keeps the current level when the name is unknown.
func applyLogLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warn("ignoring log level")
		return
	}
	if lvl != log.GetLevel() {
		log.WithField("level", lvl).Info("log level")
		log.SetLevel(lvl)
	}
}
