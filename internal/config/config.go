// Package config persists the last-used folder, save name and pin flag in
// a small key=value file kept next to the executable.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const fileName = "config.txt"

type Config struct {
	Directory string
	File      string
	Pin       bool
}

// environment carries the only env-var knob: an override for where the
// config file lives.
type environment struct {
	ConfigPath string `env:"BF2SWITCH_CONFIG"`
}

// Store reads and writes the config file. Persistence is best effort:
// callers never see I/O errors, they are only recorded in the log.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore resolves the config path (BF2SWITCH_CONFIG override, otherwise
// config.txt beside the executable) and returns a store bound to it.
func NewStore(log zerolog.Logger) *Store {
	var e environment
	if err := env.Parse(&e); err != nil {
		log.Debug().Err(err).Msg("env parse failed")
	}

	path := e.ConfigPath
	if path == "" {
		if exe, err := os.Executable(); err == nil {
			path = filepath.Join(filepath.Dir(exe), fileName)
		} else {
			path = fileName
		}
	}
	return NewStoreAt(path, log)
}

// NewStoreAt returns a store bound to an explicit file path.
func NewStoreAt(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load returns the saved config, or ok=false when the file is absent or
// unreadable. Unknown lines are ignored; missing fields keep their zero
// values.
func (s *Store) Load() (Config, bool) {
	f, err := os.Open(s.path)
	if err != nil {
		s.log.Debug().Err(err).Str("path", s.path).Msg("no config loaded")
		return Config{}, false
	}
	defer f.Close()

	var cfg Config
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "directory="):
			cfg.Directory = strings.TrimPrefix(line, "directory=")
		case strings.HasPrefix(line, "file="):
			cfg.File = strings.TrimPrefix(line, "file=")
		case strings.HasPrefix(line, "pin="):
			cfg.Pin = strings.TrimPrefix(line, "pin=") == "1"
		}
	}
	if err := sc.Err(); err != nil {
		s.log.Debug().Err(err).Str("path", s.path).Msg("config read failed")
		return Config{}, false
	}
	return cfg, true
}

// Save rewrites the whole file with the three known keys. Failures are
// swallowed; the config is a convenience, not a contract.
func (s *Store) Save(cfg Config) {
	pin := "0"
	if cfg.Pin {
		pin = "1"
	}
	data := fmt.Sprintf("directory=%s\nfile=%s\npin=%s\n", cfg.Directory, cfg.File, pin)

	if err := os.WriteFile(s.path, []byte(data), 0o644); err != nil {
		s.log.Debug().Err(err).Str("path", s.path).Msg("config save failed")
	}
}
