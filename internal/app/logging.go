package app

import (
	"io"

	"shoplist/internal/config"

	log "github.com/sirupsen/logrus"
)

// configureLogging keeps logs on w so stdout carries only command output.
func configureLogging(cfg config.Config, w io.Writer) {
	log.SetOutput(w)
	log.SetLevel(cfg.Level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
