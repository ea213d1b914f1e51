package card

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/archetype/internal/quiz"

	"golang.org/x/image/vector"
)

// DefaultScale is the pixel multiplier used when Options.Scale is unset.
const DefaultScale = 2

// Card layout in card units (pixels at scale 1).
const (
	cardWidth  = 600
	cardHeight = 720

	radarCX     = 300
	radarCY     = 380
	radarRadius = 120
	radarRings  = 4
)

var (
	colorBackground = hexColor("#1A1A2E")
	colorGold       = hexColor("#D4AF37")
	colorWheat      = hexColor("#F5DEB3")
	colorTan        = hexColor("#B8A082")
	colorIvory      = hexColor("#FFFFF0")
)

// Options controls PNG rendering.
type Options struct {
	Scale    int    // pixel multiplier; 0 means DefaultScale
	FontPath string // OpenType font; empty uses the built-in ASCII bitmap face
}

// Render draws the result card. Without a font the card falls back to the
// English names and labels, since the bitmap face only covers ASCII.
func Render(r quiz.Result, opts Options) (image.Image, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	face, err := loadTypeface(opts.FontPath)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	img := image.NewRGBA(image.Rect(0, 0, cardWidth*scale, cardHeight*scale))
	p := &painter{dst: img, scale: float64(scale), face: face}
	p.fillRect(0, 0, cardWidth, cardHeight, colorBackground)

	l := labelsFor(r, face.unicode())
	drawHeader(p, l)
	drawRadar(p, r.Chart, l)
	drawBadges(p, l)
	p.textCentered(l.footer, cardWidth/2, 700, 13, colorTan)

	return img, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// labels holds every string drawn on the card.
type labels struct {
	rank, title, subtitle, rarity string
	chartTitle, badgeTitle       string
	axes                         []string
	badges                       []string
	footer                       string
	rankColor                    color.NRGBA
}

func labelsFor(r quiz.Result, unicode bool) labels {
	l := labels{rankColor: hexColor(r.Rank.Color())}
	if unicode {
		l.rank = r.Rank.Label()
		l.title = r.Archetype.Name
		l.subtitle = r.Archetype.NameEn
		l.rarity = RarityLine(r)
		l.chartTitle = "心理維度分析"
		l.badgeTitle = "獲得勳章"
		l.footer = ShareText(r)
		for _, pt := range r.Chart {
			l.axes = append(l.axes, pt.Label)
		}
		for _, b := range r.Badges {
			l.badges = append(l.badges, b.Name)
		}
		return l
	}

	l.rank = strings.ToUpper(r.Rank.DisplayName())
	l.title = r.Archetype.NameEn
	l.subtitle = r.Archetype.Theme.DisplayName()
	l.rarity = fmt.Sprintf("Only %s%% of people share this archetype", FormatRarity(r.Archetype.Rarity))
	l.chartTitle = "DIMENSIONS"
	l.badgeTitle = "BADGES"
	l.footer = "archetype quiz"
	for _, pt := range r.Chart {
		l.axes = append(l.axes, pt.Dimension.DisplayName())
	}
	for _, b := range r.Badges {
		l.badges = append(l.badges, strings.ToUpper(b.ID))
	}
	return l
}

func drawHeader(p *painter, l labels) {
	const pillH = 26
	pillW := p.measure(l.rank, 13) + 32
	x0 := (cardWidth - pillW) / 2
	p.fillRoundRect(x0, 35, x0+pillW, 35+pillH, pillH/2, withAlpha(l.rankColor, 0x20))
	p.strokeRoundRect(x0, 35, x0+pillW, 35+pillH, pillH/2, 1, l.rankColor)
	p.textCentered(l.rank, cardWidth/2, 53, 13, l.rankColor)

	p.textCentered(l.title, cardWidth/2, 112, 32, colorGold)
	p.textCentered(l.subtitle, cardWidth/2, 144, 18, colorWheat)
	p.textCentered(l.rarity, cardWidth/2, 172, 14, colorTan)
}

// axisPoint returns the point at ratio along axis i of n. Axis 0 points up
// and the rest follow clockwise.
func axisPoint(i, n int, ratio float64) (float64, float64) {
	theta := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	return radarCX + radarRadius*ratio*math.Cos(theta), radarCY + radarRadius*ratio*math.Sin(theta)
}

func drawRadar(p *painter, chart []quiz.ChartPoint, l labels) {
	n := len(chart)
	if n < 3 {
		return
	}
	grid := withAlpha(colorGold, 0x4D)

	p.textCentered(l.chartTitle, cardWidth/2, 215, 16, colorGold)

	for ring := 1; ring <= radarRings; ring++ {
		ratio := float64(ring) / radarRings
		pts := make([][2]float64, n)
		for i := range pts {
			pts[i][0], pts[i][1] = axisPoint(i, n, ratio)
		}
		p.strokePolygon(pts, 1, grid)

		tick := strconv.Itoa(chart[0].FullMark * ring / radarRings)
		p.text(tick, radarCX+4, radarCY-radarRadius*ratio+12, 10, colorTan)
	}
	for i := 0; i < n; i++ {
		x, y := axisPoint(i, n, 1)
		p.strokeLine(radarCX, radarCY, x, y, 1, grid)
	}

	shape := make([][2]float64, n)
	for i, pt := range chart {
		shape[i][0], shape[i][1] = axisPoint(i, n, pt.Ratio())
	}
	p.fillPolygon(shape, withAlpha(colorGold, 0x4D))
	p.strokePolygon(shape, 2, colorGold)

	for i, label := range l.axes {
		x, y := axisPoint(i, n, 1)
		dx, dy := x-radarCX, y-radarCY
		switch {
		case math.Abs(dx) < 1 && dy < 0:
			p.textCentered(label, x, y-12, 12, colorWheat)
		case math.Abs(dx) < 1:
			p.textCentered(label, x, y+24, 12, colorWheat)
		case dx > 0:
			p.text(label, x+10, y+4, 12, colorWheat)
		default:
			p.text(label, x-10-p.measure(label, 12), y+4, 12, colorWheat)
		}
	}
}

func drawBadges(p *painter, l labels) {
	if len(l.badges) == 0 {
		return
	}
	p.textCentered(l.badgeTitle, cardWidth/2, 575, 16, colorGold)

	const (
		size  = 13
		pillH = 26
		gap   = 10
		maxW  = 540
	)

	// Lay badges out in centered rows.
	var rows [][]string
	var row []string
	rowW := 0.0
	for _, name := range l.badges {
		w := p.measure(name, size) + 24
		if len(row) > 0 && rowW+gap+w > maxW {
			rows = append(rows, row)
			row, rowW = nil, 0
		}
		if len(row) > 0 {
			rowW += gap
		}
		row = append(row, name)
		rowW += w
	}
	rows = append(rows, row)

	y := 595.0
	for _, row := range rows {
		total := 0.0
		for i, name := range row {
			if i > 0 {
				total += gap
			}
			total += p.measure(name, size) + 24
		}
		x := (cardWidth - total) / 2
		for _, name := range row {
			w := p.measure(name, size) + 24
			p.fillRoundRect(x, y, x+w, y+pillH, 8, withAlpha(colorGold, 0x0D))
			p.strokeRoundRect(x, y, x+w, y+pillH, 8, 1, withAlpha(colorGold, 0x33))
			p.text(name, x+12, y+18, size, colorWheat)
			x += w + gap
		}
		y += pillH + 8
	}
}

// painter draws shapes and text in card units onto an RGBA image.
type painter struct {
	dst   *image.RGBA
	scale float64
	face  typeface
	z     *vector.Rasterizer
}

func (p *painter) rasterizer() *vector.Rasterizer {
	b := p.dst.Bounds()
	if p.z == nil {
		p.z = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		p.z.Reset(b.Dx(), b.Dy())
	}
	return p.z
}

func (p *painter) fill(path [][2]float64, c color.Color) {
	if len(path) < 3 {
		return
	}
	z := p.rasterizer()
	z.MoveTo(float32(path[0][0]*p.scale), float32(path[0][1]*p.scale))
	for _, pt := range path[1:] {
		z.LineTo(float32(pt[0]*p.scale), float32(pt[1]*p.scale))
	}
	z.ClosePath()
	z.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{})
}

func (p *painter) fillRect(x0, y0, x1, y1 float64, c color.Color) {
	p.fill([][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, c)
}

func (p *painter) fillPolygon(pts [][2]float64, c color.Color) {
	p.fill(pts, c)
}

// strokeLine fills the quad covering a segment of the given width.
func (p *painter) strokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	p.fill([][2]float64{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, c)
}

func (p *painter) strokePolygon(pts [][2]float64, width float64, c color.Color) {
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		p.strokeLine(pts[i][0], pts[i][1], next[0], next[1], width, c)
	}
}

// roundRect returns the outline of a rectangle with circular corners.
func roundRect(x0, y0, x1, y1, radius float64) [][2]float64 {
	radius = math.Min(radius, math.Min((x1-x0)/2, (y1-y0)/2))
	const steps = 8
	corners := [4][3]float64{
		{x1 - radius, y0 + radius, -math.Pi / 2},
		{x1 - radius, y1 - radius, 0},
		{x0 + radius, y1 - radius, math.Pi / 2},
		{x0 + radius, y0 + radius, math.Pi},
	}
	var pts [][2]float64
	for _, c := range corners {
		for s := 0; s <= steps; s++ {
			a := c[2] + math.Pi/2*float64(s)/steps
			pts = append(pts, [2]float64{c[0] + radius*math.Cos(a), c[1] + radius*math.Sin(a)})
		}
	}
	return pts
}

func (p *painter) fillRoundRect(x0, y0, x1, y1, radius float64, c color.Color) {
	p.fill(roundRect(x0, y0, x1, y1, radius), c)
}

func (p *painter) strokeRoundRect(x0, y0, x1, y1, radius, width float64, c color.Color) {
	p.strokePolygon(roundRect(x0, y0, x1, y1, radius), width, c)
}

func (p *painter) measure(s string, size float64) float64 {
	return p.face.measure(s, size, p.scale)
}

// text draws s with its baseline starting at (x, y).
func (p *painter) text(s string, x, y, size float64, c color.Color) {
	p.face.drawString(p.dst, s, x, y, size, p.scale, c)
}

func (p *painter) textCentered(s string, cx, y, size float64, c color.Color) {
	p.text(s, cx-p.measure(s, size)/2, y, size, c)
}

// hexColor parses "#RRGGBB". Malformed input yields opaque black.
func hexColor(s string) color.NRGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(s, "#")) != 6 {
		return color.NRGBA{A: 0xFF}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
