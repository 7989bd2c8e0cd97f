package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging configuration.
func NewConfig() Config {
	return Config{
		Level:        slog.LevelInfo,
		AddSource:    false,
		AttrReplacer: NormalizeSourceAttrReplacer(),
		Format:       "text",
		Writer:       os.Stderr,
		Path:         "",
		MaxSize:      30,
	}
}

// Config controls how a Logger writes records.
type Config struct {
	// Level is the minimum level to emit, LevelInfo by default.
	Level slog.Level
	// AddSource emits the file and line of the logging call.
	AddSource bool
	// AttrReplacer rewrites attributes before they are logged.
	AttrReplacer AttrReplacer
	// Format is the output format, oneof ["text", "json"].
	Format string
	// Writer is the console output, os.Stderr by default.
	Writer io.Writer

	// Path enables additional output to a rotating log file when non-empty.
	Path string
	// MaxSize is the maximum size in MB of a log file before it gets
	// rotated, 30 MB by default.
	MaxSize int
	// MaxAge is the maximum number of days to retain old log files,
	// unlimited by default.
	MaxAge int
	// MaxBackups is the maximum number of old log files to retain,
	// unlimited by default.
	MaxBackups int
	// Compress enables compression of rotated log files.
	Compress bool
}

func (c *Config) buildHandler(level *slog.LevelVar) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.AddSource,
		Level:       level,
		ReplaceAttr: c.AttrReplacer,
	}
	writer := c.Writer
	if writer == nil {
		writer = os.Stderr
	}
	if fw := c.buildFileWriter(); fw != nil {
		writer = io.MultiWriter(writer, fw)
	}
	if c.Format == "json" {
		return slog.NewJSONHandler(writer, opts)
	}
	return slog.NewTextHandler(writer, opts)
}

func (c *Config) buildFileWriter() io.Writer {
	if c.Path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}
