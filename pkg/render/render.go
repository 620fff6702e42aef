// Package render rasterizes a generated scene into a PNG preview. It is an
// integration collaborator, not part of the generation core: the pixels it
// produces are a pure function of the scene and palette it is given.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/gg"

	"github.com/FromJayLee/starfield/pkg/scene"
)

// background is the void behind all layers.
var background = gg.Hex("#070B14")

// Encode rasterizes the scene and writes PNG data to w. Palette entries are
// #RRGGBB strings indexed by each record's color index.
func Encode(s *scene.Scene, palette []string, w io.Writer) error {
	dc, err := draw(s, palette)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG rasterizes the scene into a PNG file at path.
func SavePNG(s *scene.Scene, palette []string, path string) error {
	dc, err := draw(s, palette)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func draw(s *scene.Scene, palette []string) (*gg.Context, error) {
	if s == nil {
		return nil, fmt.Errorf("render: scene is nil")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("render: scene canvas is %dx%d", s.Width, s.Height)
	}

	dc := gg.NewContext(s.Width, s.Height)
	dc.ClearWithColor(background)

	for _, l := range s.Layers {
		for _, rec := range l.Records {
			col, err := paletteColor(palette, rec.ColorIndex)
			if err != nil {
				return nil, fmt.Errorf("render: layer %s: %w", l.Name, err)
			}

			dc.SetRGBA(col.R, col.G, col.B, rec.Alpha)
			dc.DrawCircle(float64(rec.Point.X), float64(rec.Point.Y), radiusFor(rec.Kind, rec.Size))
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("render: layer %s: %w", l.Name, err)
			}
		}
	}
	return dc, nil
}

// radiusFor maps a record's kind and size to a brush radius. Point kinds
// are drawn at half their size; area kinds (nebula, glow) use the full
// size as radius so their soft footprints overlap.
func radiusFor(kind string, size float64) float64 {
	switch kind {
	case "nebula", "glow":
		return size
	default:
		return size / 2
	}
}

func paletteColor(palette []string, idx int) (gg.RGBA, error) {
	if idx < 0 || idx >= len(palette) {
		return gg.RGBA{}, fmt.Errorf("color index %d outside %d-color palette", idx, len(palette))
	}
	hex := strings.TrimSpace(palette[idx])
	if hex == "" {
		return gg.RGBA{}, fmt.Errorf("palette entry %d is empty", idx)
	}
	return gg.Hex(hex), nil
}
