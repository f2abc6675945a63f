package webapi

import (
	"net/http"
	"os"
	"sync"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/clog"
)

// LogController lets an operator inspect and change logging on a running server.
type LogController struct {
	mu             sync.Mutex
	loggers        *clog.Loggers
	currentLogFile string
}

type loggingState struct {
	DefaultLevel string            `json:"defaultLevel"`
	Components   map[string]string `json:"components"`
	LogOutput    string            `json:"logOutput"`
}

func NewLogController(loggers *clog.Loggers) *LogController {
	return &LogController{
		loggers:        loggers,
		currentLogFile: "stdout",
	}
}

func (lc *LogController) ShowCurrentLogging(c echo.Context) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	return c.JSON(http.StatusOK, lc.state())
}

// SetLogging changes the level of one component, or of every component when
// component is empty, and optionally where log lines are written.
func (lc *LogController) SetLogging(c echo.Context) error {
	var req struct {
		Component string `json:"component"`
		LogLevel  string `json:"logLevel"`
		LogOutput string `json:"logOutput"`
	}

	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if req.LogLevel != "" {
		if err := lc.setLoggingLevel(req.Component, req.LogLevel); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	if req.LogOutput != "" {
		if err := lc.setLoggingOutput(req.LogOutput); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	return c.JSON(http.StatusOK, lc.state())
}

func (lc *LogController) setLoggingLevel(component, logLevel string) error {
	if err := lc.loggers.SetLevelFromString(component, logLevel); err != nil {
		return errors.Wrapf(err, "invalid log level %s", logLevel)
	}

	if component == "" {
		log.SetLevel(lc.loggers.DefaultLevel())
	}

	return nil
}

func (lc *LogController) setLoggingOutput(logOutput string) error {
	switch logOutput {
	case "stdout":
		lc.loggers.SetOutput(os.Stdout)
	case "stderr":
		lc.loggers.SetOutput(os.Stderr)
	default:
		f, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrapf(err, "failed to open log output %s", logOutput)
		}
		lc.loggers.SetOutput(f)
	}

	lc.currentLogFile = logOutput
	return nil
}

func (lc *LogController) state() loggingState {
	return loggingState{
		DefaultLevel: lc.loggers.DefaultLevel().String(),
		Components:   lc.loggers.Levels(),
		LogOutput:    lc.currentLogFile,
	}
}
