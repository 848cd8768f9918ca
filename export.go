package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/render"
	"covalent/internal/workspace"
)

// PNG exports are never smaller than this.
const (
	minExportWidth  = 1000
	minExportHeight = 600
)

// pngSurface draws onto a gg context in workspace pixels.
type pngSurface struct {
	dc    *gg.Context
	faces map[render.FontRole]font.Face
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func newPNGSurface(width, height int) (*pngSurface, error) {
	faces := make(map[render.FontRole]font.Face, 3)
	for role, src := range map[render.FontRole]struct {
		ttf  []byte
		size float64
	}{
		render.Label:       {gomono.TTF, 14},
		render.Heading:     {gobold.TTF, 26},
		render.Instruction: {goregular.TTF, 17},
	} {
		face, err := loadFace(src.ttf, src.size)
		if err != nil {
			return nil, fmt.Errorf("%s face: %w", role, err)
		}
		faces[role] = face
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(render.Background)
	dc.Clear()
	return &pngSurface{dc: dc, faces: faces}, nil
}

func (s *pngSurface) paint(st render.Style) {
	s.dc.SetColor(st.Color)
	if st.Filled() {
		s.dc.Fill()
		return
	}
	s.dc.SetLineWidth(st.StrokeWidth)
	s.dc.Stroke()
}

func (s *pngSurface) Circle(c r2.Vec, radius float64, st render.Style) {
	s.dc.DrawCircle(c.X, c.Y, radius)
	s.paint(st)
}

func (s *pngSurface) Line(a, b r2.Vec, c color.Color, width float64) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	s.dc.Stroke()
}

func (s *pngSurface) Rect(box r2.Box, st render.Style) {
	size := box.Size()
	s.dc.DrawRectangle(box.Min.X, box.Min.Y, size.X, size.Y)
	s.paint(st)
}

func (s *pngSurface) Text(text string, anchor r2.Vec, role render.FontRole) {
	s.dc.SetFontFace(s.faces[role])
	s.dc.SetColor(render.Black)
	if role == render.Instruction {
		s.dc.DrawStringAnchored(text, anchor.X, anchor.Y, 0, 1)
		return
	}
	s.dc.DrawStringAnchored(text, anchor.X, anchor.Y, 0.5, 0.5)
}

// exportPNG draws the frame at full pixel resolution.
func exportPNG(filename string, f render.Frame) error {
	width := max(int(math.Ceil(f.Size.X)), minExportWidth)
	height := max(int(math.Ceil(f.Size.Y)), minExportHeight)
	f.Size = r2.Vec{X: float64(width), Y: float64(height)}

	s, err := newPNGSurface(width, height)
	if err != nil {
		return err
	}
	render.DrawScene(s, f)
	if err := s.dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// exportTXT writes the terminal rendering without colors.
func exportTXT(filename string, lines []string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return fmt.Errorf("write %s: %w", filename, err)
		}
	}
	return nil
}

func exportName(ext string, now time.Time) string {
	return fmt.Sprintf("covalent-%s.%s", now.Format("20060102-150405"), ext)
}

// exportPicture writes the PNG snapshot for the S key.
func (m *model) exportPicture() (string, error) {
	filename := m.config.ExportPath(exportName("png", time.Now()))
	f := m.frame(m.workspaceSize())
	f.Preview = nil
	f.Selected = workspace.NoToken
	return filename, exportPNG(filename, f)
}

// exportText writes the T key snapshot, exactly what the canvas shows.
func (m *model) exportText() (string, error) {
	filename := m.config.ExportPath(exportName("txt", time.Now()))
	return filename, exportTXT(filename, m.canvas(false).Plain())
}
