package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/dualmesh"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y". Blank lines and lines
// starting with # are skipped.
func readPoints(in io.Reader) ([]dualmesh.Point, error) {
	var points []dualmesh.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read points")
	}
	return points, nil
}

func parsePoint(line string) (dualmesh.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return dualmesh.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return dualmesh.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return dualmesh.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return dualmesh.Point{X: x, Y: y}, nil
}

// Gather the input points named by the config, from a points file, an svg
// file, or both.
func loadPoints(cfg Config, stdin io.Reader) ([]dualmesh.Point, error) {
	var points []dualmesh.Point
	if cfg.Points != "" {
		in := stdin
		if cfg.Points != "-" {
			file, err := os.Open(cfg.Points)
			if err != nil {
				return nil, errors.Wrap(err, "could not open points file")
			}
			defer file.Close()
			in = file
		}
		read, err := readPoints(in)
		if err != nil {
			return nil, err
		}
		points = append(points, read...)
	}

	if cfg.SVG != "" {
		file, err := os.Open(cfg.SVG)
		if err != nil {
			return nil, errors.Wrap(err, "could not open svg file")
		}
		defer file.Close()
		read, err := dualmesh.LoadSVGPoints(file)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read %s", cfg.SVG)
		}
		points = append(points, read...)
	}
	return points, nil
}
