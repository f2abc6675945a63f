package clog

import (
	"io"
	"os"

	"github.com/apex/log"
)

var loggers = New(os.Stdout)

// Setup routes the apex global logger through the component handler and sets the
// starting level for every component.
func Setup(level string) error {
	log.SetHandler(loggers.Handler())
	if err := loggers.SetLevelFromString("", level); err != nil {
		return err
	}

	log.SetLevel(loggers.DefaultLevel())
	return nil
}

func Default() *Loggers {
	return loggers
}

func For(component string) *log.Entry {
	return loggers.For(component)
}

func SetLevel(component string, level log.Level) {
	loggers.SetLevel(component, level)
}

func SetLevelFromString(component, s string) error {
	return loggers.SetLevelFromString(component, s)
}

func SetOutput(w io.Writer) {
	loggers.SetOutput(w)
}
