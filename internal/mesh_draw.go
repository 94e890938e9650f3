package internal

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/dualmesh/dbg"
	"github.com/pkg/errors"
)

// Padding around the mesh, in pixels
const drawPadding = 20

type DrawOptions struct {
	// Pixels per mesh unit
	Scale float64
	// Label each region with a readable name
	Labels bool
}

// Render the solid part of the mesh. Hull sides are drawn in red, boundary
// seed regions in blue. The ghost region and ghost triangles are not drawn.
func (m *Mesh) Draw(opts DrawOptions) *gg.Context {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for r := 0; r < m.NumSolidRegions(); r++ {
		p := m.RegionVertex[r]
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if m.NumSolidRegions() == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Triangles
	for t := 0; t < m.NumSolidTriangles(); t++ {
		s0 := SideOfTriangle(t)
		for i := 0; i < 3; i++ {
			p := m.RegionVertex[m.SideStartRegion[s0+i]]
			if i == 0 {
				c.MoveTo(p.X, p.Y)
			} else {
				c.LineTo(p.X, p.Y)
			}
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.3, 0.2)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(1 / scale)
	c.Stroke()

	// Hull
	for s := 0; s < m.NumSolidSides; s++ {
		if !m.IsBoundarySide(s) {
			continue
		}
		a := m.RegionVertex[m.SideBeginRegion(s)]
		b := m.RegionVertex[m.SideEndRegion(s)]
		c.DrawLine(a.X, a.Y, b.X, b.Y)
	}
	c.SetRGB(1, 0, 0)
	c.SetLineWidth(2 / scale)
	c.Stroke()

	// Regions
	for r := 0; r < m.NumSolidRegions(); r++ {
		p := m.RegionVertex[r]
		c.DrawCircle(p.X, p.Y, 2/scale)
		if m.IsBoundaryRegion(r) {
			c.SetRGB(0.3, 0.4, 1)
		} else {
			c.SetRGB(1, 1, 1)
		}
		c.Fill()

		if opts.Labels {
			// Text has to be drawn without the flip, so go back to native coordinates
			x, y := c.TransformPoint(p.X, p.Y)
			c.Push()
			c.Identity()
			c.SetRGB(1, 1, 0)
			c.DrawStringAnchored(dbg.Name(r), x, y-8, 0.5, 0.5)
			c.Pop()
		}
	}
	return c
}

func (m *Mesh) SavePNG(path string, opts DrawOptions) error {
	return errors.Wrapf(m.Draw(opts).SavePNG(path), "could not write %s", path)
}

// Print the rendered mesh to a terminal that supports inline images (iTerm).
func (m *Mesh) Preview(w io.Writer, opts DrawOptions) error {
	file, err := os.CreateTemp("", "dualmesh-*.png")
	if err != nil {
		return errors.Wrap(err, "could not create preview file")
	}
	path := file.Name()
	file.Close()
	defer os.Remove(path)

	if err := m.SavePNG(path, opts); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}
