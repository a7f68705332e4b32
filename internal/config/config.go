// Package config holds the server settings, read from flags with environment
// variable defaults.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Addr            string
	AllowOrigins    string // comma separated
	ReadBufferSize  int
	WriteBufferSize int
	LogLevel        string
}

func Default() Config {
	return Config{
		Addr:            ":3000",
		AllowOrigins:    "http://localhost:5173",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		LogLevel:        "info",
	}
}

// Load parses args on top of the environment, which sits on top of Default.
func Load(args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", envString("CHESS_ADDR", cfg.Addr), "listen address")
	fs.StringVar(&cfg.AllowOrigins, "allow-origins", envString("CHESS_ALLOW_ORIGINS", cfg.AllowOrigins), "comma separated CORS origins")
	fs.IntVar(&cfg.ReadBufferSize, "ws-read-buffer", envInt("CHESS_WS_READ_BUFFER", cfg.ReadBufferSize), "websocket read buffer size")
	fs.IntVar(&cfg.WriteBufferSize, "ws-write-buffer", envInt("CHESS_WS_WRITE_BUFFER", cfg.WriteBufferSize), "websocket write buffer size")
	fs.StringVar(&cfg.LogLevel, "log-level", envString("CHESS_LOG_LEVEL", cfg.LogLevel), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.Wrap(ErrInvalidConfig, "empty listen address")
	}
	if c.ReadBufferSize <= 0 || c.WriteBufferSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "buffer sizes must be positive, got %d/%d", c.ReadBufferSize, c.WriteBufferSize)
	}
	if _, ok := levels[strings.ToLower(c.LogLevel)]; !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown log level %q", c.LogLevel)
	}
	return nil
}

var levels = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

// Level maps LogLevel to the logger's level, defaulting to info.
func (c Config) Level() log.Level {
	if level, ok := levels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return log.LevelInfo
}

// Origins returns AllowOrigins split into individual origins.
func (c Config) Origins() []string {
	origins := []string{}
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
