package clog

import (
	"io"
	"sync"

	"github.com/apex/log"
)

// Loggers hands out one apex logger per server component ("api", "cache", "db",
// "notify", ...). All of them write through a single Handler, but each has its own
// level so a noisy component can be turned up without flooding the rest.
type Loggers struct {
	handler      *Handler
	mu           sync.RWMutex
	loggers      map[string]*log.Logger
	defaultLevel log.Level
}

func New(w io.Writer) *Loggers {
	return &Loggers{
		handler:      NewHandler(w),
		loggers:      make(map[string]*log.Logger),
		defaultLevel: log.InfoLevel,
	}
}

func (l *Loggers) Handler() *Handler {
	return l.handler
}

// For returns an entry for the named component, creating its logger on first use.
func (l *Loggers) For(component string) *log.Entry {
	return l.logger(component).WithField(ComponentField, component)
}

func (l *Loggers) logger(component string) *log.Logger {
	l.mu.RLock()
	logger, ok := l.loggers[component]
	l.mu.RUnlock()
	if ok {
		return logger
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if logger, ok := l.loggers[component]; ok {
		return logger
	}

	logger = &log.Logger{Handler: l.handler, Level: l.defaultLevel}
	l.loggers[component] = logger
	return logger
}

func (l *Loggers) SetLevel(component string, level log.Level) {
	l.logger(component).Level = level
}

// SetAllLevels changes every existing component and the level new components start at.
func (l *Loggers) SetAllLevels(level log.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.defaultLevel = level
	for _, logger := range l.loggers {
		logger.Level = level
	}
}

func (l *Loggers) SetLevelFromString(component, s string) error {
	level, err := log.ParseLevel(s)
	if err != nil {
		return err
	}

	if component == "" {
		l.SetAllLevels(level)
	} else {
		l.SetLevel(component, level)
	}

	return nil
}

// Levels reports the current level of every component that has logged so far.
func (l *Loggers) Levels() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	levels := make(map[string]string, len(l.loggers))
	for name, logger := range l.loggers {
		levels[name] = logger.Level.String()
	}

	return levels
}

func (l *Loggers) DefaultLevel() log.Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.defaultLevel
}

func (l *Loggers) SetOutput(w io.Writer) {
	l.handler.SetOutput(w)
}
