package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var paletteRGBA = map[Color]color.RGBA{
	ColorBackground: {0, 0, 0, 255},
	ColorFloor:      {255, 255, 0, 255},
	ColorDisc:       {255, 0, 0, 255},
	ColorHighlight:  {255, 0, 255, 255},
	ColorWinText:    {0, 255, 0, 255},
}

// pngScreen draws the board at full resolution into an image.
type pngScreen struct {
	dc *gg.Context
}

func newPNGScreen(width, height int) (*pngScreen, error) {
	dc := gg.NewContext(width, height)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	return &pngScreen{dc: dc}, nil
}

func (s *pngScreen) Width() int {
	return s.dc.Width()
}

func (s *pngScreen) Height() int {
	return s.dc.Height()
}

func (s *pngScreen) FillRect(x1, y1, x2, y2 float64, c Color) {
	s.dc.SetColor(paletteRGBA[c])
	s.dc.DrawRectangle(x1, y1, x2-x1, y2-y1)
	s.dc.Fill()
}

func (s *pngScreen) Text(x, y float64, text string, c Color) {
	s.dc.SetColor(paletteRGBA[c])
	s.dc.DrawString(text, x, y)
}

// exportPNG renders the board in its own coordinates, one pixel per unit.
func exportPNG(b *Board, filename string) error {
	s, err := newPNGScreen(b.Width(), b.Height())
	if err != nil {
		return err
	}
	drawBoard(s, b)
	if err := s.dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// exportVisualTXT writes the board as it appears in the terminal, without
// colors.
func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range m.plainBoard() {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return nil
}
