package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-tree/internal/app"
	"github.com/atomicstack/tmux-popup-tree/internal/backend"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSeed       = "TMUX_POPUP_TREE_SEED"
	envLoadDelay  = "TMUX_POPUP_TREE_LOAD_DELAY"
	envWidth      = "TMUX_POPUP_TREE_WIDTH"
	envHeight     = "TMUX_POPUP_TREE_HEIGHT"
	envShowFooter = "TMUX_POPUP_TREE_FOOTER"
	envVerbose    = "TMUX_POPUP_TREE_VERBOSE"
	envTrace      = "TMUX_POPUP_TREE_TRACE"
	envLogFile    = "TMUX_POPUP_TREE_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-popup-tree", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	seedPath := fs.String("seed", envOrDefault(env, envSeed, ""), "YAML or JSON file with the initial tree (built-in demo tree when empty)")
	loadDelay := fs.Duration("load-delay", envOrDuration(env, envLoadDelay, backend.DefaultLoadDelay), "simulated latency of the first expand of a node")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show a status message after each edit")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	dump := fs.Bool("dump", false, "print the initial tree as a table and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			SeedPath:   *seedPath,
			LoadDelay:  *loadDelay,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Dump:       *dump,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"seed":      *seedPath,
			"loadDelay": loadDelay.String(),
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
			"dump":      strconv.FormatBool(*dump),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings that parse but cannot be used.
func Validate(cfg Config) error {
	if cfg.App.LoadDelay < 0 {
		return fmt.Errorf("load-delay must be >= 0 (got %s)", cfg.App.LoadDelay)
	}
	if path := strings.TrimSpace(cfg.App.SeedPath); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("seed file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("seed file %s is a directory", path)
		}
	}
	return nil
}
