package card

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// typeface draws and measures text. Coordinates and sizes are in card
// units; scale converts them to pixels.
type typeface interface {
	drawString(dst draw.Image, s string, x, y, size, scale float64, c color.Color)
	measure(s string, size, scale float64) float64
	// unicode reports whether the face covers more than ASCII.
	unicode() bool
	Close() error
}

// loadTypeface opens the font at path, or returns the built-in bitmap face
// when path is empty. Font collections (.ttc) use their first font.
func loadTypeface(path string) (typeface, error) {
	if path == "" {
		return bitmapFace{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", path, err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		coll, collErr := opentype.ParseCollection(data)
		if collErr != nil {
			return nil, fmt.Errorf("parse font %q: %w", path, err)
		}
		if f, err = coll.Font(0); err != nil {
			return nil, fmt.Errorf("parse font %q: %w", path, err)
		}
	}

	return &vectorFace{font: f, faces: make(map[float64]font.Face)}, nil
}

// vectorFace renders an OpenType font directly at pixel size.
type vectorFace struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

func (v *vectorFace) face(px float64) (font.Face, error) {
	if f, ok := v.faces[px]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(v.font, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	v.faces[px] = f
	return f, nil
}

func (v *vectorFace) drawString(dst draw.Image, s string, x, y, size, scale float64, c color.Color) {
	face, err := v.face(size * scale)
	if err != nil {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(int(math.Round(x*scale)), int(math.Round(y*scale))),
	}
	d.DrawString(s)
}

func (v *vectorFace) measure(s string, size, scale float64) float64 {
	face, err := v.face(size * scale)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(face, s)) / 64 / scale
}

func (v *vectorFace) unicode() bool { return true }

func (v *vectorFace) Close() error {
	for px, f := range v.faces {
		f.Close()
		delete(v.faces, px)
	}
	return nil
}

// bitmapFace draws basicfont's 7x13 glyphs magnified by whole pixels.
type bitmapFace struct{}

func (bitmapFace) magnify(size, scale float64) int {
	m := int(math.Round(size * scale / float64(basicfont.Face7x13.Height)))
	if m < 1 {
		m = 1
	}
	return m
}

func (b bitmapFace) drawString(dst draw.Image, s string, x, y, size, scale float64, c color.Color) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	if w == 0 {
		return
	}
	mag := b.magnify(size, scale)

	glyphs := image.NewRGBA(image.Rect(0, 0, w, face.Height))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	x0 := int(math.Round(x * scale))
	y0 := int(math.Round(y*scale)) - face.Ascent*mag
	target := image.Rect(x0, y0, x0+w*mag, y0+face.Height*mag)
	draw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), draw.Over, nil)
}

func (b bitmapFace) measure(s string, size, scale float64) float64 {
	w := font.MeasureString(basicfont.Face7x13, s).Ceil()
	return float64(w*b.magnify(size, scale)) / scale
}

func (bitmapFace) unicode() bool { return false }

func (bitmapFace) Close() error { return nil }
