package main

import (
	"errors"
	"os"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type ConsoleLogging struct {
	Level zerolog.Level `yaml:"level"`
}

type FileLogging struct {
	Directory string        `yaml:"directory"`
	Level     zerolog.Level `yaml:"level"`
}

type LoggingConfig struct {
	Console ConsoleLogging `yaml:"console"`
	File    FileLogging    `yaml:"file"`
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    bool           `yaml:"debug"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "sqlq.db",
		},
		Logging: LoggingConfig{
			Console: ConsoleLogging{
				Level: zerolog.InfoLevel,
			},
			File: FileLogging{
				Level: zerolog.DebugLevel,
			},
		},
	}
}

func (c *Config) ReadConfigIfFound(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		// Missing file keeps the defaults
		return nil
	}

	if info.IsDir() {
		return errors.New("given path is a directory, expected a file")
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(file, c)
}

// CreateLogger builds the process logger: console output always, plus a
// rotated log file when a directory is configured. Diagnostics go to
// stderr so piped query output stays clean.
func (c LoggingConfig) CreateLogger() *zerolog.Logger {
	consoleWriter := &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{
			Writer: zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			},
		},
		Level: c.Console.Level,
	}

	if len(strings.TrimSpace(c.File.Directory)) == 0 {
		logger := zerolog.New(consoleWriter).With().Timestamp().Logger()
		return &logger
	}

	if err := os.MkdirAll(c.File.Directory, 0o744); err != nil {
		logger := zerolog.New(consoleWriter).With().Timestamp().Logger()
		return &logger
	}

	writer := zerolog.MultiLevelWriter(
		consoleWriter,
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{
				// Console writer without color to keep the file readable
				Writer: zerolog.ConsoleWriter{
					NoColor: true,
					Out: &lumberjack.Logger{
						Filename:   path.Join(c.File.Directory, "sqlqsh.log"),
						MaxSize:    10,
						MaxBackups: 3,
						MaxAge:     28,
						Compress:   true,
					},
					TimeFormat: time.RFC3339,
				},
			},
			Level: c.File.Level,
		},
	)
	logger := zerolog.New(writer).With().Timestamp().Logger()
	return &logger
}
