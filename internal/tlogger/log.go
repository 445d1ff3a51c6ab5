package tlogger

import (
	"io"
	"os"
	"runtime/debug"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Log is the default logger for apps
var Log log.Logger

var hlog log.Logger

var levels = map[string]level.Option{
	"debug": level.AllowDebug(),
	"warn":  level.AllowWarn(),
	"error": level.AllowError(),
	"all":   level.AllowAll(),
	"info":  level.AllowInfo(),
}

// ApplyLogLevel applies min logging level, only the first call has an effect
var ApplyLogLevel func(string)

func init() {
	SetOutput(os.Stdout)
}

// SetOutput rebuilds the loggers on top of w and resets the level filter
func SetOutput(w io.Writer) {
	base := log.NewLogfmtLogger(log.NewSyncWriter(w))
	hlog = log.With(base, "ts", log.DefaultTimestampUTC, "caller", log.Caller(6))
	Log = log.With(base, "ts", log.DefaultTimestampUTC, "caller", log.Caller(5))

	ApplyLogLevel = func(lvl string) {
		opt, ok := levels[lvl]
		if !ok {
			opt = level.AllowInfo()
		}
		Log = level.NewFilter(Log, opt)
		hlog = level.NewFilter(hlog, opt)
		ApplyLogLevel = func(string) {}
	}
}

// Debug add a log entry w/ Debug level
func Debug(keyvals ...interface{}) {
	level.Debug(hlog).Log(keyvals...)
}

// Info add a log entry w/ Info level
func Info(keyvals ...interface{}) {
	level.Info(hlog).Log(keyvals...)
}

// Warn add a log entry w/ Warn level
func Warn(keyvals ...interface{}) {
	level.Warn(hlog).Log(keyvals...)
}

// Error add a log entry w/ Error level
func Error(keyvals ...interface{}) {
	level.Error(hlog).Log(keyvals...)
}

// Fatal add a log entry w/ Error level and exits
func Fatal(keyvals ...interface{}) {
	debug.PrintStack()
	level.Error(hlog).Log(keyvals...)
	os.Exit(1)
}

// FatalIf prints a fatal Error level and exits if err != nil
func FatalIf(err error) {
	if err == nil {
		return
	}
	level.Error(hlog).Log("err", err)
	os.Exit(1)
}
