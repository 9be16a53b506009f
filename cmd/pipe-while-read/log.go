package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

const defaultLogLevel = "warn"

func newLogger(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("invalid log level %s, defaulting to %s", level, defaultLogLevel)

		lvl = logrus.WarnLevel
	}

	log.SetLevel(lvl)

	return log
}
