// Package logrus adapts a logrus entry to the application logger.
package logrus

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/TudorHulban/timeline/internal/log"
)

type logger struct {
	*logrus.Entry
}

// NewLogrus returns a new log.Logger for a logrus implementation.
func NewLogrus(l *logrus.Entry) log.Logger {
	return logger{Entry: l}
}

func (l logger) WithValues(kv log.Kv) log.Logger {
	newLogger := l.Entry.WithFields(kv)
	return NewLogrus(newLogger)
}

// RotatingFileConfig configures a size rotated log file.
type RotatingFileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func (c *RotatingFileConfig) defaults() {
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = 10
	}

	if c.MaxBackups <= 0 {
		c.MaxBackups = 3
	}

	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = 28
	}
}

// NewRotatingFile returns a writer rotating the log file by size.
func NewRotatingFile(cfg RotatingFileConfig) io.WriteCloser {
	cfg.defaults()

	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}
