package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read points out of an SVG document. This is not a full SVG reader: every
// <circle> contributes its center, and every <polygon> or <polyline>
// contributes its vertices. Transforms are ignored.
func LoadSVGPoints(r io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse svg")
	}

	var points []Point
	for _, circle := range root.FindAll("circle") {
		x, err := parseCoordinate(circle.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrap(err, "invalid circle cx")
		}
		y, err := parseCoordinate(circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "invalid circle cy")
		}
		points = append(points, Point{x, y})
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			vertices, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid %s", name)
			}
			points = append(points, vertices...)
		}
	}
	return points, nil
}

func parseCoordinate(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Parse "x1,y1 x2,y2 ...". Commas and whitespace are interchangeable.
func parsePointList(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
