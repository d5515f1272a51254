// This file maps the CLI context and the optional YAML config file onto the Config struct.

package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/rony4d/go-bytestream/integration"
)

// Config aggregates everything a command needs.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Sentry  SentryConfig  `yaml:"sentry"`
	Stream  StreamConfig  `yaml:"stream"`
	Input   InputConfig   `yaml:"-"`
	Slice   SliceConfig   `yaml:"-"`
}

type LoggingConfig struct {
	Verbosity int    `yaml:"verbosity"`
	Format    string `yaml:"format"`
	Color     bool   `yaml:"color"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn"`
}

// StreamConfig mirrors integration.PresetConfig with YAML keys.
type StreamConfig struct {
	Preset         string `yaml:"preset"`
	WriterCapacity int    `yaml:"writerCapacity"`
	Charset        string `yaml:"charset"`
	MaxInputBytes  int    `yaml:"maxInputBytes"`
	MaxSliceBytes  int    `yaml:"maxSliceBytes"`
}

// InputConfig says where the payload comes from. Exactly one of File and Hex
// is used; File wins when both are set.
type InputConfig struct {
	File string
	Hex  string
}

type SliceConfig struct {
	Skip  int64
	Limit int
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

func defaultConfig() Config {
	def := DefaultConfig()
	cfg := Config{
		Logging: LoggingConfig{
			Verbosity: def.Logging.Verbosity,
			Format:    def.Logging.Format,
			Color:     def.Logging.Color,
		},
	}
	preset, _ := integration.GetPresetByName(def.Stream.Preset)
	cfg.Stream = streamFromPreset(preset)
	return cfg
}

func streamFromPreset(p integration.PresetConfig) StreamConfig {
	return StreamConfig{
		Preset:         p.Name,
		WriterCapacity: p.WriterCapacity,
		Charset:        p.Charset,
		MaxInputBytes:  p.MaxInputBytes,
		MaxSliceBytes:  p.MaxSliceBytes,
	}
}

// MakeAllConfigs merges, in order: defaults, the selected preset, the config
// file and finally the CLI flags. The preset is chosen by --preset, else by
// the file's stream.preset key.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	var raw []byte
	if file := ctx.GlobalString("config"); file != "" {
		var err error
		if raw, err = os.ReadFile(resolvePath(file)); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	presetName, err := selectPreset(ctx, raw)
	if err != nil {
		return Config{}, err
	}
	preset, err := integration.GetPresetByName(presetName)
	if err != nil {
		return Config{}, err
	}
	base := integration.DefaultPreset()
	integration.ApplyPreset(&base, preset)
	cfg.Stream = streamFromPreset(base)

	if raw != nil {
		if err := loadConfigFile(raw, &cfg); err != nil {
			return Config{}, err
		}
		cfg.Stream.Preset = preset.Name
	}

	applyCLIOverrides(ctx, &cfg)

	if cfg.Stream.MaxInputBytes <= 0 {
		return Config{}, fmt.Errorf("input limit must be positive, got %d", cfg.Stream.MaxInputBytes)
	}
	return cfg, nil
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

func selectPreset(ctx *cli.Context, raw []byte) (string, error) {
	if ctx.GlobalIsSet("preset") {
		return ctx.GlobalString("preset"), nil
	}
	if raw != nil {
		var peek struct {
			Stream struct {
				Preset string `yaml:"preset"`
			} `yaml:"stream"`
		}
		if err := yaml.Unmarshal(raw, &peek); err != nil {
			return "", fmt.Errorf("failed to parse config file: %w", err)
		}
		if peek.Stream.Preset != "" {
			return peek.Stream.Preset, nil
		}
	}
	return ctx.GlobalString("preset"), nil
}

// loadConfigFile decodes YAML over cfg; keys missing from the file keep
// their current values.
func loadConfigFile(raw []byte, cfg *Config) error {
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.GlobalIsSet("log.format") {
		cfg.Logging.Format = ctx.GlobalString("log.format")
	}
	if ctx.GlobalIsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.GlobalInt("log.verbosity")
	}
	if ctx.GlobalIsSet("log.color") {
		cfg.Logging.Color = ctx.GlobalBool("log.color")
	}
	if ctx.GlobalIsSet("sentry.dsn") {
		cfg.Sentry.DSN = ctx.GlobalString("sentry.dsn")
	}

	// command-level flags
	if ctx.IsSet("writer.cap") && ctx.Int("writer.cap") > 0 {
		cfg.Stream.WriterCapacity = ctx.Int("writer.cap")
	}
	if ctx.IsSet("input.max") && ctx.Int("input.max") > 0 {
		cfg.Stream.MaxInputBytes = ctx.Int("input.max")
	}
	if ctx.IsSet("charset") {
		cfg.Stream.Charset = ctx.String("charset")
	}
	if ctx.IsSet("input.file") {
		cfg.Input.File = resolvePath(ctx.String("input.file"))
	}
	if ctx.NArg() > 0 {
		cfg.Input.Hex = ctx.Args().First()
	}
	if ctx.IsSet("skip") {
		cfg.Slice.Skip = ctx.Int64("skip")
	}
	cfg.Slice.Limit = cfg.Stream.MaxSliceBytes
	if ctx.IsSet("limit") && ctx.Int("limit") > 0 {
		cfg.Slice.Limit = ctx.Int("limit")
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
