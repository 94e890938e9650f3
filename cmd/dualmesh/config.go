package main

import (
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/osuushi/dualmesh"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Config struct {
	// Zero means no sampling, so only the input points are used
	Spacing float64 `toml:"spacing"`
	Size    float64 `toml:"size"`
	// Zero means seed from the clock
	Seed int64 `toml:"seed"`

	// Input points, "x y" per line, or "-" for stdin
	Points string `toml:"points"`
	SVG    string `toml:"svg"`

	PNG     string  `toml:"png"`
	Scale   float64 `toml:"scale"`
	Labels  bool    `toml:"labels"`
	Preview bool    `toml:"preview"`

	// Exit with an error if the mesh has structural defects
	Strict   bool   `toml:"strict"`
	LogLevel string `toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Size:     dualmesh.DefaultSize,
		Scale:    1,
		LogLevel: "info",
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config parse failed (%s)", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config (%s)", path)
	}
	return cfg, nil
}

// Apply every field of flags that was given a non-zero value.
func (cfg Config) Merge(flags Config) Config {
	if flags.Spacing != 0 {
		cfg.Spacing = flags.Spacing
	}
	if flags.Size != 0 {
		cfg.Size = flags.Size
	}
	if flags.Seed != 0 {
		cfg.Seed = flags.Seed
	}
	if flags.Points != "" {
		cfg.Points = flags.Points
	}
	if flags.SVG != "" {
		cfg.SVG = flags.SVG
	}
	if flags.PNG != "" {
		cfg.PNG = flags.PNG
	}
	if flags.Scale != 0 {
		cfg.Scale = flags.Scale
	}
	cfg.Labels = cfg.Labels || flags.Labels
	cfg.Preview = cfg.Preview || flags.Preview
	cfg.Strict = cfg.Strict || flags.Strict
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	return cfg
}

func (cfg Config) Validate() error {
	if math.IsNaN(cfg.Spacing) || cfg.Spacing < 0 {
		return errors.Wrapf(dualmesh.ErrInvalidSpacing, "spacing %v", cfg.Spacing)
	}
	if math.IsNaN(cfg.Size) || math.IsInf(cfg.Size, 0) || cfg.Size <= 0 {
		return errors.Wrapf(dualmesh.ErrInvalidSize, "size %v", cfg.Size)
	}
	if cfg.Spacing != 0 && cfg.Size/cfg.Spacing > dualmesh.MaxSizeSpacingRatio {
		return errors.Wrapf(dualmesh.ErrInvalidSpacing, "spacing %v is too small for size %v", cfg.Spacing, cfg.Size)
	}
	if math.IsNaN(cfg.Scale) || cfg.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", cfg.Scale)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Spacing == 0 && cfg.Points == "" && cfg.SVG == "" {
		return errors.New("no input: give a spacing, a points file, or an svg file")
	}
	return nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "disabled", "off", "none":
		return zerolog.Disabled, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.InfoLevel, errors.Errorf("unknown log level %q", raw)
	}
	return level, nil
}
