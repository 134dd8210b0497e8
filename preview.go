package simplesvg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageFormat represents the output image format.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// PreviewOptions configures raster previews.
type PreviewOptions struct {
	// Format is the output image format (PNG or JPEG).
	Format ImageFormat
	// JPEGQuality is the JPEG quality (1-100). Default: 90.
	JPEGQuality int
	// BackgroundColor overrides the white background.
	BackgroundColor *color.RGBA
	// FontCache supplies text faces. If nil, DefaultFontCache is used.
	FontCache *FontCache
}

// DefaultPreviewOptions returns default preview options.
func DefaultPreviewOptions() *PreviewOptions {
	return &PreviewOptions{
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
	}
}

// RenderPreview rasterizes c under l into an image the size of the layout.
// Rotation transforms and dash patterns are ignored.
func RenderPreview(c *ShapeCollection, l Layout, opts *PreviewOptions) (image.Image, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultPreviewOptions()
	}

	w := int(math.Ceil(l.Dimensions.Width))
	h := int(math.Ceil(l.Dimensions.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if opts.BackgroundColor != nil {
		bg = *opts.BackgroundColor
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	r := &previewRenderer{img: img, layout: l, fontCache: opts.FontCache}
	if r.fontCache == nil {
		r.fontCache = DefaultFontCache()
	}
	if c != nil {
		for _, s := range c.shapes {
			r.renderShape(s)
		}
	}
	return img, nil
}

// SavePreview renders c under l and writes the image to path.
func SavePreview(c *ShapeCollection, l Layout, path string, opts *PreviewOptions) error {
	img, err := RenderPreview(c, l, opts)
	if err != nil {
		return err
	}
	return saveImage(img, path, opts)
}

func saveImage(img image.Image, path string, opts *PreviewOptions) error {
	if opts == nil {
		opts = DefaultPreviewOptions()
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := encodeImage(f, img, opts); err != nil {
		return fmt.Errorf("write preview %s: %w", path, err)
	}
	return nil
}

// encodeImage encodes img to w and closes w. A failed close is reported
// even when encoding succeeded.
func encodeImage(w io.WriteCloser, img image.Image, opts *PreviewOptions) error {
	var err error
	switch opts.Format {
	case ImageFormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		err = png.Encode(w, img)
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

// --- renderer ---

type previewRenderer struct {
	img       *image.RGBA
	layout    Layout
	fontCache *FontCache
}

func (r *previewRenderer) renderShape(s Shape) {
	switch sh := s.(type) {
	case *Circle:
		r.renderEllipse(sh.center, sh.radius, sh.radius, &sh.BaseShape)
	case *Ellipse:
		r.renderEllipse(sh.center, sh.radiusX, sh.radiusY, &sh.BaseShape)
	case *Rectangle:
		r.renderRectangle(sh)
	case *Line:
		if c, w, ok := r.strokePaint(sh.stroke); ok {
			p1, p2 := r.pixel(sh.start), r.pixel(sh.end)
			r.drawThickLine(p1, p2, w, c)
		}
	case *Polygon:
		r.renderRings([][]Point{sh.points}, &sh.BaseShape, true)
	case *Polyline:
		r.renderRings([][]Point{sh.points}, &sh.BaseShape, false)
	case *Path:
		r.renderRings(sh.subpaths, &sh.BaseShape, true)
	case *Text:
		r.renderText(sh)
	case *Group:
		for _, child := range sh.shapes {
			r.renderShape(child)
		}
	case *LineChart:
		for _, part := range sh.parts() {
			r.renderShape(part)
		}
	}
}

// pixel maps a user-space point to image coordinates.
func (r *previewRenderer) pixel(p Point) image.Point {
	q := r.layout.TranslatePoint(p)
	return image.Pt(int(math.Round(q.X)), int(math.Round(q.Y)))
}

func toRGBA(c Color) (color.RGBA, bool) {
	if c.Transparent {
		return color.RGBA{}, false
	}
	return color.RGBA{R: clampChannel(c.R), G: clampChannel(c.G), B: clampChannel(c.B), A: 255}, true
}

func clampChannel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

func (r *previewRenderer) strokePaint(s Stroke) (color.RGBA, int, bool) {
	if !s.IsEnabled() {
		return color.RGBA{}, 0, false
	}
	c, ok := toRGBA(s.Color)
	if !ok {
		return c, 0, false
	}
	w := int(math.Round(r.layout.TranslateScale(s.Width)))
	if s.NonScaling {
		w = int(math.Round(s.Width))
	}
	return c, max(w, 1), true
}

func (r *previewRenderer) renderEllipse(center Point, rx, ry float64, b *BaseShape) {
	c := r.pixel(center)
	w := int(math.Round(r.layout.TranslateScale(rx) * 2))
	h := int(math.Round(r.layout.TranslateScale(ry) * 2))
	x, y := c.X-w/2, c.Y-h/2
	if fill, ok := toRGBA(b.fill.Color); ok {
		r.fillEllipse(x, y, w, h, fill)
	}
	if sc, _, ok := r.strokePaint(b.stroke); ok {
		r.drawEllipse(x, y, w, h, sc)
	}
}

func (r *previewRenderer) renderRectangle(s *Rectangle) {
	// x,y are written as is, so the rectangle extends right and down from
	// the translated edge in markup space.
	p := r.pixel(s.edge)
	w := int(math.Round(r.layout.TranslateScale(s.width)))
	h := int(math.Round(r.layout.TranslateScale(s.height)))
	rect := image.Rect(p.X, p.Y, p.X+w, p.Y+h)
	if fill, ok := toRGBA(s.fill.Color); ok {
		draw.Draw(r.img, rect, &image.Uniform{fill}, image.Point{}, draw.Src)
	}
	if c, width, ok := r.strokePaint(s.stroke); ok {
		r.drawRect(rect, c, width)
	}
}

func (r *previewRenderer) renderRings(rings [][]Point, b *BaseShape, closed bool) {
	px := make([][]image.Point, 0, len(rings))
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		pts := make([]image.Point, len(ring))
		for i, p := range ring {
			pts[i] = r.pixel(p)
		}
		px = append(px, pts)
	}
	if len(px) == 0 {
		return
	}
	if fill, ok := toRGBA(b.fill.Color); ok {
		r.fillPolygon(px, fill)
	}
	c, w, ok := r.strokePaint(b.stroke)
	if !ok {
		return
	}
	for _, pts := range px {
		for i := 1; i < len(pts); i++ {
			r.drawThickLine(pts[i-1], pts[i], w, c)
		}
		if closed && len(pts) > 2 {
			r.drawThickLine(pts[len(pts)-1], pts[0], w, c)
		}
	}
}

func (r *previewRenderer) renderText(t *Text) {
	fill, ok := toRGBA(t.fill.Color)
	if !ok || t.content == "" {
		return
	}
	var face font.Face = basicfont.Face7x13
	if size := r.layout.TranslateScale(t.font.Size); size > 0 {
		if f, err := r.fontCache.GetMeasureFace(t.font.Family, size); err == nil {
			face = f
		}
	}
	origin := r.layout.TranslatePoint(t.origin)
	d := &font.Drawer{
		Dst:  r.img,
		Src:  &image.Uniform{fill},
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(origin.X), Y: floatToFixed(origin.Y)},
	}
	d.DrawString(t.content)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// --- Drawing primitives ---

// drawRect outlines rect with a border width pixels wide, inset from the
// rectangle's edges.
func (r *previewRenderer) drawRect(rect image.Rectangle, c color.RGBA, width int) {
	width = min(width, rect.Dx(), rect.Dy())
	if width <= 0 {
		return
	}
	src := &image.Uniform{c}
	for _, edge := range [...]image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width),
		image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y),
		image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y),
	} {
		draw.Draw(r.img, edge, src, image.Point{}, draw.Src)
	}
}

// drawThickLine stamps a square pen of the given width along the segment.
func (r *previewRenderer) drawThickLine(p1, p2 image.Point, width int, c color.RGBA) {
	if width <= 1 {
		r.drawLine(p1.X, p1.Y, p2.X, p2.Y, c)
		return
	}
	lo := -(width - 1) / 2
	for oy := lo; oy < lo+width; oy++ {
		for ox := lo; ox < lo+width; ox++ {
			r.drawLine(p1.X+ox, p1.Y+oy, p2.X+ox, p2.Y+oy, c)
		}
	}
}

// drawLine plots a one pixel segment with Bresenham's algorithm.
func (r *previewRenderer) drawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx, sx := x1-x0, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy, sy := y0-y1, 1
	if dy > 0 {
		dy = -dy
	}
	if y1 < y0 {
		sy = -1
	}
	e := dx + dy
	for {
		r.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// insideEllipse reports whether pixel (px,py) has its center within the
// ellipse inscribed in the w by h box at (x,y).
func insideEllipse(px, py, x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	rx, ry := float64(w)/2, float64(h)/2
	nx := (float64(px-x) + 0.5 - rx) / rx
	ny := (float64(py-y) + 0.5 - ry) / ry
	return nx*nx+ny*ny <= 1
}

func (r *previewRenderer) fillEllipse(x, y, w, h int, c color.RGBA) {
	area := image.Rect(x, y, x+w, y+h).Intersect(r.img.Bounds())
	for py := area.Min.Y; py < area.Max.Y; py++ {
		for px := area.Min.X; px < area.Max.X; px++ {
			if insideEllipse(px, py, x, y, w, h) {
				r.img.SetRGBA(px, py, c)
			}
		}
	}
}

// drawEllipse outlines the ellipse one pixel wide: pixels inside it whose
// neighbor on some side falls outside.
func (r *previewRenderer) drawEllipse(x, y, w, h int, c color.RGBA) {
	area := image.Rect(x, y, x+w, y+h).Intersect(r.img.Bounds())
	for py := area.Min.Y; py < area.Max.Y; py++ {
		for px := area.Min.X; px < area.Max.X; px++ {
			if !insideEllipse(px, py, x, y, w, h) {
				continue
			}
			if !insideEllipse(px-1, py, x, y, w, h) || !insideEllipse(px+1, py, x, y, w, h) ||
				!insideEllipse(px, py-1, x, y, w, h) || !insideEllipse(px, py+1, x, y, w, h) {
				r.img.SetRGBA(px, py, c)
			}
		}
	}
}

// fillPolygon fills rings with the even-odd rule by scanline.
func (r *previewRenderer) fillPolygon(rings [][]image.Point, c color.RGBA) {
	minY, maxY := math.MaxInt, math.MinInt
	for _, ring := range rings {
		for _, p := range ring {
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
	}
	bounds := r.img.Bounds()
	minY = max(minY, bounds.Min.Y)
	maxY = min(maxY, bounds.Max.Y-1)

	var xs []float64
	for y := minY; y <= maxY; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for _, ring := range rings {
			n := len(ring)
			for i := 0; i < n; i++ {
				a, b := ring[i], ring[(i+1)%n]
				ay, by := float64(a.Y), float64(b.Y)
				if (ay <= sy) == (by <= sy) {
					continue
				}
				t := (sy - ay) / (by - ay)
				xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			for x := x0; x <= x1; x++ {
				r.setPixel(x, y, c)
			}
		}
	}
}

func (r *previewRenderer) setPixel(x, y int, c color.RGBA) {
	if image.Pt(x, y).In(r.img.Bounds()) {
		r.img.SetRGBA(x, y, c)
	}
}
