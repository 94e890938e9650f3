package main

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/osuushi/dualmesh"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Generate a closed dual mesh and report on it. Points come from sampling the
// domain (--spacing), from a file of "x y" lines (--points), from the circles
// and polygons of an SVG file (--svg), or any combination.
//
// Settings may also come from a TOML file (--config); flags win over the file.
func main() {
	app := kingpin.New("dualmesh", "Generate a closed triangle mesh for map generation.")
	configPath := app.Flag("config", "TOML configuration file.").ExistingFile()

	var flags Config
	app.Flag("spacing", "Minimum distance between sampled points. Omit to use only the input points.").Float64Var(&flags.Spacing)
	app.Flag("size", "Side length of the square domain.").Float64Var(&flags.Size)
	app.Flag("seed", "Random seed for the sampler.").Int64Var(&flags.Seed)
	app.Flag("points", "File of \"x y\" lines, or - for stdin.").StringVar(&flags.Points)
	app.Flag("svg", "SVG file to take points from.").StringVar(&flags.SVG)
	app.Flag("png", "Write a rendering of the mesh to this file.").StringVar(&flags.PNG)
	app.Flag("scale", "Pixels per unit when rendering.").Float64Var(&flags.Scale)
	app.Flag("labels", "Label regions in the rendering.").BoolVar(&flags.Labels)
	app.Flag("preview", "Show the rendering in the terminal (iTerm).").BoolVar(&flags.Preview)
	app.Flag("strict", "Fail if the mesh has structural defects.").BoolVar(&flags.Strict)
	app.Flag("log-level", "trace, debug, info, warn, error or off.").StringVar(&flags.LogLevel)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		app.FatalIfError(err, "")
	}
	cfg = cfg.Merge(flags)
	app.FatalIfError(cfg.Validate(), "")

	logger := newLogger(os.Stderr, cfg.LogLevel)
	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("dualmesh failed")
		os.Exit(1)
	}
}

func newLogger(out io.Writer, level string) zerolog.Logger {
	lvl, _ := parseLevel(level)
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "dualmesh").Logger()
}

func run(cfg Config, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	points, err := loadPoints(cfg, stdin)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug().Int64("seed", seed).Int("input_points", len(points)).Msg("creating mesh")

	mesh, report, err := dualmesh.Create(dualmesh.Options{
		Spacing: cfg.Spacing,
		Size:    cfg.Size,
		Points:  points,
		Random:  rand.New(rand.NewSource(seed)).Float64,
		Sink:    dualmesh.ZerologSink{Logger: logger},
	})
	if err != nil {
		return errors.Wrap(err, "could not create mesh")
	}

	logger.Info().
		Int("regions", mesh.NumSolidRegions()).
		Int("boundary_regions", mesh.NumBoundaryRegions).
		Int("solid_sides", mesh.NumSolidSides).
		Int("ghost_triangles", mesh.NumGhostTriangles()).
		Int("bad_angles", report.BadAngleCount).
		Int("structural_defects", len(report.Structural())).
		Msg("mesh created")

	drawOptions := dualmesh.DrawOptions{Scale: cfg.Scale, Labels: cfg.Labels}
	if cfg.PNG != "" {
		if err := mesh.SavePNG(cfg.PNG, drawOptions); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.PNG).Msg("wrote rendering")
	}
	if cfg.Preview {
		if err := mesh.Preview(stdout, drawOptions); err != nil {
			return err
		}
	}

	if cfg.Strict {
		return report.Err()
	}
	return nil
}
