package main

import (
	"io"
	"log"
)

type logLevel int

const (
	levelOff logLevel = iota
	levelError
	levelInfo
	levelDebug
)

// tracer is a level-gated wrapper over log.Logger. A disabled tracer drops
// every line.
type tracer struct {
	level  logLevel
	logger *log.Logger
}

func newTracer(enabled bool, w io.Writer) *tracer {
	level := levelOff
	if enabled {
		level = levelDebug
	}
	return &tracer{level: level, logger: log.New(w, "sharkara: ", log.Ltime)}
}

func (t *tracer) Info(format string, v ...any) {
	if t.level >= levelInfo {
		t.logger.Printf("INFO: "+format, v...)
	}
}

func (t *tracer) Debug(format string, v ...any) {
	if t.level >= levelDebug {
		t.logger.Printf("DEBUG: "+format, v...)
	}
}

func (t *tracer) Error(format string, v ...any) {
	if t.level >= levelError {
		t.logger.Printf("ERROR: "+format, v...)
	}
}
