package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"jirant/internal/infrastructure/config"
	sharedConfig "jirant/internal/shared/config"
)

var (
	Logger      *slog.Logger
	atomicLevel *slog.LevelVar
	loggerMu    sync.Mutex
)

func Init(cfg *sharedConfig.LoggerConfig) error {
	writer, err := openWriter(cfg.OutputPath)
	if err != nil {
		return err
	}

	debugMode := false
	if appCfg := config.Get(); appCfg != nil && appCfg.Server.Mode == "debug" {
		debugMode = true
	}

	level := new(slog.LevelVar)
	level.Set(ParseLevel(cfg.Level))

	l := slog.New(NewHandler(writer, cfg.Format, level, debugMode))

	loggerMu.Lock()
	atomicLevel = level
	Logger = l
	loggerMu.Unlock()
	slog.SetDefault(l)

	return nil
}

// NewHandler builds the handler chain used by Init: JSON when format is "json",
// tint console output otherwise, both wrapped so that source locations are only
// attached to warn/error records (every level in debug mode).
func NewHandler(w io.Writer, format string, level slog.Leveler, debugMode bool) slog.Handler {
	showSourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if debugMode {
		showSourceLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	if strings.ToLower(format) == "json" {
		base := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
		return NewConditionalSourceHandler(base, showSourceLevels...)
	}

	base := tint.NewHandler(w, &tint.Options{
		Level:       level,
		TimeFormat:  time.DateTime,
		NoColor:     !isTerminal(w),
		ReplaceAttr: replaceErrorAttr,
	})
	return NewConditionalSourceHandler(base, showSourceLevels...)
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openWriter(outputPath string) (io.Writer, error) {
	switch strings.ToLower(outputPath) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	}
}

func replaceErrorAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" && a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			return tint.Err(err)
		}
	}
	return a
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func SetLevel(level slog.Level) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if atomicLevel != nil {
		atomicLevel.Set(level)
	}
}

func Get() *slog.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if Logger == nil {
		Logger = slog.New(NewHandler(os.Stdout, "console", slog.LevelInfo, false))
		slog.SetDefault(Logger)
	}
	return Logger
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

func Sync() error {
	return nil
}

func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}
