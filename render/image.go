package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/katalvlaran/lab/grid"
)

// ErrUnknownConvention indicates a convention name ParseConvention does not know.
var ErrUnknownConvention = errors.New("render: unknown drawing convention")

// Convention selects how cell sides are drawn.
type Convention int

const (
	// ConventionReference draws a line along each open side (see Segments).
	ConventionReference Convention = iota
	// ConventionWalls draws a line along each closed side (see Walls).
	ConventionWalls
)

func (c Convention) String() string {
	switch c {
	case ConventionReference:
		return "reference"
	case ConventionWalls:
		return "walls"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// ParseConvention maps "reference" or "walls" (case-insensitive) to a Convention.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reference", "":
		return ConventionReference, nil
	case "walls":
		return ConventionWalls, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownConvention, s)
	}
}

// Style controls image output. One pixel equals one vg point.
type Style struct {
	CellSize   int
	Convention Convention
	Background color.Color
	MazeColor  color.Color
	PathColor  color.Color
	MazeWidth  vg.Length
	PathWidth  vg.Length
}

// DefaultStyle is the classic window look: 20px cells, white maze lines on
// black, a 4px blue solution line.
func DefaultStyle() Style {
	return Style{
		CellSize:   20,
		Convention: ConventionReference,
		Background: color.Black,
		MazeColor:  color.White,
		PathColor:  color.RGBA{B: 255, A: 255},
		MazeWidth:  1,
		PathWidth:  4,
	}
}

// ImageSize returns the pixel size of the picture of m under st.
func ImageSize(m *grid.Maze, st Style) (width, height int) {
	return m.Width() * st.CellSize, m.Height() * st.CellSize
}

// Draw paints the maze and path onto dc. Pixel coordinates are flipped so
// that row 0 sits at the top of the canvas. An empty path draws no path line.
func Draw(dc draw.Canvas, m *grid.Maze, p grid.Path, st Style) error {
	var (
		lines []Segment
		err   error
	)
	switch st.Convention {
	case ConventionReference:
		lines, err = Segments(m, st.CellSize)
	case ConventionWalls:
		lines, err = Walls(m, st.CellSize)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownConvention, st.Convention)
	}
	if err != nil {
		return err
	}
	centres, err := PathLine(p, st.CellSize)
	if err != nil {
		return err
	}

	// Lines run through pixel centres, so a 1px line on x=k lights column k
	// fully. Coordinates on the far border snap to the last pixel.
	top := dc.Max.Y
	pw, ph := float64(dc.Max.X-dc.Min.X), float64(dc.Max.Y-dc.Min.Y)
	at := func(v Vec) vg.Point {
		x, y := pixelCentre(v.X, pw), pixelCentre(v.Y, ph)
		return vg.Point{X: dc.Min.X + vg.Length(x), Y: top - vg.Length(y)}
	}

	dc.FillPolygon(st.Background, []vg.Point{
		{X: dc.Min.X, Y: dc.Min.Y},
		{X: dc.Max.X, Y: dc.Min.Y},
		{X: dc.Max.X, Y: dc.Max.Y},
		{X: dc.Min.X, Y: dc.Max.Y},
	})

	mazeLine := draw.LineStyle{Color: st.MazeColor, Width: st.MazeWidth}
	for _, s := range lines {
		a, b := at(s.A), at(s.B)
		dc.StrokeLine2(mazeLine, a.X, a.Y, b.X, b.Y)
	}

	if len(centres) >= 2 {
		pts := make([]vg.Point, len(centres))
		for i, v := range centres {
			pts[i] = at(v)
		}
		dc.StrokeLines(draw.LineStyle{Color: st.PathColor, Width: st.PathWidth}, pts)
	}
	return nil
}

func pixelCentre(v, size float64) float64 {
	if size >= 1 && v > size-1 {
		v = size - 1
	}
	return v + 0.5
}

// WritePNG renders the maze and path as a PNG image to w.
func WritePNG(w io.Writer, m *grid.Maze, p grid.Path, st Style) error {
	if err := checkCellSize(st.CellSize); err != nil {
		return err
	}
	pw, ph := ImageSize(m, st)
	c := vgimg.NewWith(vgimg.UseWH(vg.Length(pw), vg.Length(ph)), vgimg.UseDPI(72))
	if err := Draw(draw.New(c), m, p, st); err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("render: write png: %w", err)
	}
	return nil
}

// WriteSVG renders the maze and path as an SVG document to w.
func WriteSVG(w io.Writer, m *grid.Maze, p grid.Path, st Style) error {
	if err := checkCellSize(st.CellSize); err != nil {
		return err
	}
	pw, ph := ImageSize(m, st)
	c := vgsvg.New(vg.Length(pw), vg.Length(ph))
	if err := Draw(draw.New(c), m, p, st); err != nil {
		return err
	}
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("render: write svg: %w", err)
	}
	return nil
}
