// Package config resolves settings shared by the blockfall commands from
// flags, the environment and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/tetris"
)

// ErrInvalidSpeed is returned for a non-positive gravity interval.
var ErrInvalidSpeed = errors.New("speed must be positive")

const envPrefix = "BLOCKFALL_"

type Config struct {
	Speed    time.Duration
	Seed     int64
	LogLevel string
	LogJSON  bool
	LogFile  string
	Debug    bool
	Sound    bool
	Addr     string
	Dir      string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Config {
	return Config{
		Speed:    tetris.SpeedNormal,
		LogLevel: "info",
		LogFile:  filepath.Join(os.TempDir(), "blockfall-term.log"),
		Sound:    true,
		Addr:     ":8080",
		Dir:      "web",
	}
}

// Load reads .env (a missing file is fine) and resolves args against the
// process environment. Variables already set win over .env entries.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()
	return Parse(args, os.LookupEnv)
}

// Parse resolves settings with precedence flags > environment > defaults.
// lookup has the signature of os.LookupEnv.
func Parse(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Defaults()
	env := envReader{lookup: lookup}

	cfg.Speed = env.getMillis("SPEED", cfg.Speed)
	cfg.Seed = env.getInt64("SEED", cfg.Seed)
	cfg.LogLevel = env.getString("LOG_LEVEL", cfg.LogLevel)
	cfg.LogJSON = env.getBool("LOG_JSON", cfg.LogJSON)
	cfg.LogFile = env.getString("LOG_FILE", cfg.LogFile)
	cfg.Debug = env.getBool("DEBUG", cfg.Debug)
	cfg.Sound = env.getBool("SOUND", cfg.Sound)
	cfg.Addr = env.getString("ADDR", cfg.Addr)
	cfg.Dir = env.getString("DIR", cfg.Dir)
	if env.err != nil {
		return Config{}, env.err
	}

	fs := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	fs.DurationVar(&cfg.Speed, "speed", cfg.Speed, "gravity interval")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "piece sequence seed, 0 for random")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")
	fs.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "write JSON log lines")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file for the terminal frontend")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "show the debug overlay")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play a chime on line clears")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address of the web host")
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory served by the web host")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, c.Speed)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// EngineOptions translates the settings that configure a tetris.Engine.
func (c Config) EngineOptions(logger zerolog.Logger) []tetris.Option {
	opts := []tetris.Option{
		tetris.WithSpeed(c.Speed),
		tetris.WithLogger(logger),
	}
	if c.Seed != 0 {
		opts = append(opts, tetris.WithSeed(c.Seed))
	}
	return opts
}

// envReader keeps the first parse error so callers check once.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) raw(key string) (string, bool) {
	v, ok := r.lookup(envPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (r *envReader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s%s: %w", envPrefix, key, err)
	}
}

func (r *envReader) getString(key, def string) string {
	if v, ok := r.raw(key); ok {
		return v
	}
	return def
}

func (r *envReader) getBool(key string, def bool) bool {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return b
}

func (r *envReader) getInt64(key string, def int64) int64 {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return n
}

func (r *envReader) getMillis(key string, def time.Duration) time.Duration {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return time.Duration(n) * time.Millisecond
}
