package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Defaults - settings used for keys missing in the "log" section.
// Any other key is a module name with its own level.
var Defaults = map[string]string{
	"format": "", // autodetect color support
	"level":  "info",
	"output": "stderr",
	"time":   "",
}

// Logger - settings of the "log" config section
type Logger struct {
	zerolog.Logger
	modules map[string]string
}

// New support:
// - output: empty (disabled), stderr, stdout
// - format: empty (autodetect color support), color, json, text
// - time:   empty (disable timestamp), UNIXMS, UNIXMICRO, UNIXNANO
// - level:  disabled, trace, debug, info, warn, error...
func New(cfg map[string]string) *Logger {
	modules := make(map[string]string, len(Defaults)+len(cfg))
	for k, v := range Defaults {
		modules[k] = v
	}
	for k, v := range cfg {
		modules[k] = v
	}

	var writer io.Writer

	switch modules["output"] {
	case "stderr":
		writer = os.Stderr
	case "stdout":
		writer = os.Stdout
	}

	l := &Logger{modules: modules}
	if writer == nil {
		l.Logger = zerolog.Nop()
		return l
	}

	l.Logger = NewLogger(writer, modules["format"], modules["level"], modules["time"])
	return l
}

// NewLogger - zerolog logger writing to w in json or console format
func NewLogger(w io.Writer, format, level, timeFormat string) zerolog.Logger {
	if format != "json" {
		console := &zerolog.ConsoleWriter{Out: w}

		switch format {
		case "text":
			console.NoColor = true
		case "color":
			console.NoColor = false
		default:
			// go-isatty - dependency for go-colorable - dependency for ConsoleWriter
			if f, ok := w.(*os.File); ok {
				console.NoColor = !isatty.IsTerminal(f.Fd())
			} else {
				console.NoColor = true
			}
		}

		if timeFormat != "" {
			console.TimeFormat = "15:04:05.000"
		} else {
			console.PartsOrder = []string{
				zerolog.LevelFieldName,
				zerolog.CallerFieldName,
				zerolog.MessageFieldName,
			}
		}

		w = console
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(w).Level(lvl)

	if timeFormat != "" {
		zerolog.TimeFieldFormat = timeFormat
		logger = logger.With().Timestamp().Logger()
	}

	return logger
}

// GetLogger - logger with the level of module, if one is set
func (l *Logger) GetLogger(module string) zerolog.Logger {
	if s, ok := l.modules[module]; ok {
		lvl, err := zerolog.ParseLevel(s)
		if err == nil {
			return l.Logger.Level(lvl)
		}
		l.Logger.Warn().Err(err).Caller().Send()
	}

	return l.Logger
}
