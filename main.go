package main

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/luka333z/snake/client"
	"github.com/luka333z/snake/config"
	"github.com/luka333z/snake/monitor"
	log "github.com/sirupsen/logrus"
)

const dialTimeout = 10 * time.Second

func main() {
	s := parseSettings()

	cfg, err := config.Load(s.configPath)
	if err != nil {
		log.WithError(err).WithField("path", s.configPath).Fatal("cannot load config")
	}
	if err := config.ApplyEnv(cfg, s.envFile); err != nil {
		log.WithError(err).Fatal("bad environment")
	}
	if s.serverURL != "" {
		cfg.ServerURL = s.serverURL
	}
	setupLogging(cfg.LogLevel)
	colors, err := cfg.Palette.Parse()
	if err != nil {
		log.WithError(err).Fatal("bad palette")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		err := config.Watch(ctx, s.configPath, func(c *config.Config) {
			if err := config.ApplyEnv(c, s.envFile); err != nil {
				log.WithError(err).Warn("ignoring config reload")
				return
			}
			applyLogLevel(c.LogLevel)
		})
		if err != nil {
			log.WithError(err).Warn("config watch stopped")
		}
	}()

	dialCtx, dialCancel := context.WithTimeout(ctx, dialTimeout)
	conn, err := client.Dial(dialCtx, cfg.ServerURL, log.WithField("component", "conn"))
	dialCancel()
	if err != nil {
		log.WithError(err).WithField("url", cfg.ServerURL).Fatal("cannot reach game server")
	}
	defer conn.Close()

	var mon *monitor.Server
	if cfg.MonitorAddr != "" {
		mon = monitor.New()
		go func() {
			if err := mon.ListenAndServe(ctx, cfg.MonitorAddr); err != nil {
				log.WithError(err).Error("monitor stopped")
			}
		}()
	}

	game := NewGame(cfg, colors, conn, mon)
	ebiten.SetWindowSize(game.Layout(0, 0))
	ebiten.SetWindowTitle(cfg.WindowTitle)
	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game loop")
	}
}
