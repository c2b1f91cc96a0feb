package config

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger writing to out with the configured level
// and format.
func (l Log) NewLogger(out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if l.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
