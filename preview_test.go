package simplesvg

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func previewOf(t *testing.T, l Layout, shapes ...Shape) *image.RGBA {
	t.Helper()
	opts := DefaultPreviewOptions()
	opts.FontCache = NewFontCacheFromDirs(t.TempDir())
	img, err := RenderPreview(NewShapeCollection(shapes...), l, opts)
	if err != nil {
		t.Fatalf("RenderPreview: %v", err)
	}
	return img.(*image.RGBA)
}

func TestRenderPreview_Size(t *testing.T) {
	img := previewOf(t, NewLayout(Dimensions{Width: 40, Height: 30}, BottomLeft))
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("bounds = %v", b)
	}
	if img.RGBAAt(0, 0) != white {
		t.Errorf("background = %v", img.RGBAAt(0, 0))
	}
}

func TestRenderPreview_InvalidLayout(t *testing.T) {
	if _, err := RenderPreview(nil, NewLayout(Dimensions{}, TopLeft), nil); err == nil {
		t.Error("expected error for zero sized layout")
	}
}

func TestRenderPreview_Rectangle(t *testing.T) {
	img := previewOf(t, NewLayout(Square(20), TopLeft),
		NewRectangle(Pt(0, 0), 10, 10, NewFill(Red.Color()), NoStroke()))
	if got := img.RGBAAt(5, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("inside = %v", got)
	}
	if got := img.RGBAAt(15, 15); got != white {
		t.Errorf("outside = %v", got)
	}
}

func TestRenderPreview_PolygonAndCircle(t *testing.T) {
	l := NewLayout(Square(40), TopLeft)
	img := previewOf(t, l,
		NewPolygon(NewFill(Blue.Color()), NoStroke()).AddPoints(Pt(2, 2), Pt(12, 2), Pt(12, 12), Pt(2, 12)),
		NewCircle(Pt(30, 30), 10, NewFill(Lime.Color()), NewStroke(1, Black.Color())),
	)
	if got := img.RGBAAt(7, 7); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("polygon interior = %v", got)
	}
	if got := img.RGBAAt(30, 30); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("circle interior = %v", got)
	}
	if got := img.RGBAAt(20, 20); got != white {
		t.Errorf("gap = %v", got)
	}
}

func TestRenderPreview_FlipsY(t *testing.T) {
	img := previewOf(t, NewLayout(Square(20), BottomLeft),
		NewLine(Pt(0, 2), Pt(19, 2), NewStroke(1, Black.Color())))
	black := color.RGBA{A: 255}
	if got := img.RGBAAt(10, 18); got != black {
		t.Errorf("line should be drawn near the bottom, got %v", got)
	}
	if got := img.RGBAAt(10, 2); got != white {
		t.Errorf("top should be empty, got %v", got)
	}
}

func TestRenderPreview_TextAndChart(t *testing.T) {
	chart := NewDefaultLineChart(Square(2)).
		AddPolyline(NewStrokePolyline(NewStroke(1, Blue.Color())).AddPoints(Pt(0, 0), Pt(10, 10), Pt(20, 5)))
	img := previewOf(t, NewLayout(Dimensions{Width: 80, Height: 40}, BottomLeft),
		NewText(Pt(30, 10), "Hi", NewFill(Black.Color()), NewFont(16, "Sans")),
		chart,
		NewGroup(NoFill(), NoStroke()).AddShape(NewEllipse(Pt(70, 30), 6, 4, NewFill(Red.Color()), NoStroke())),
	)
	inked := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != white {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("expected text, chart and group to be drawn")
	}
}

func TestSavePreview(t *testing.T) {
	dir := t.TempDir()
	c := NewShapeCollection(NewRectangle(Pt(0, 0), 5, 5, NewFill(Yellow.Color()), NoStroke()))
	l := NewLayout(Dimensions{Width: 16, Height: 8}, TopLeft)

	pngPath := filepath.Join(dir, "sub", "preview.png")
	if err := SavePreview(c, l, pngPath, nil); err != nil {
		t.Fatalf("SavePreview png: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("png bounds = %v", b)
	}

	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	jpgPath := filepath.Join(dir, "preview.jpg")
	opts := &PreviewOptions{Format: ImageFormatJPEG, JPEGQuality: 80, BackgroundColor: &bg}
	if err := SavePreview(c, l, jpgPath, opts); err != nil {
		t.Fatalf("SavePreview jpeg: %v", err)
	}
	jf, err := os.Open(jpgPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer jf.Close()
	if _, err := jpeg.Decode(jf); err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
}

type closeFailer struct {
	bytes.Buffer
	closeErr error
}

func (c *closeFailer) Close() error { return c.closeErr }

func TestEncodeImage_CloseError(t *testing.T) {
	img := previewOf(t, NewLayout(Square(4), TopLeft))

	ok := &closeFailer{}
	if err := encodeImage(ok, img, DefaultPreviewOptions()); err != nil {
		t.Fatalf("encodeImage: %v", err)
	}
	if ok.Len() == 0 {
		t.Error("nothing was encoded")
	}

	flushErr := errors.New("flush failed")
	bad := &closeFailer{closeErr: flushErr}
	err := encodeImage(bad, img, &PreviewOptions{Format: ImageFormatJPEG})
	if !errors.Is(err, flushErr) {
		t.Errorf("close error lost: %v", err)
	}
}

func TestRenderPreview_StrokedShapes(t *testing.T) {
	black := color.RGBA{A: 255}
	img := previewOf(t, NewLayout(Square(30), TopLeft),
		NewRectangle(Pt(2, 2), 10, 10, NoFill(), NewStroke(2, Black.Color())),
		NewEllipse(Pt(22, 22), 10, 6, NoFill(), NewStroke(1, Black.Color())),
	)
	if got := img.RGBAAt(2, 7); got != black {
		t.Errorf("rectangle left edge = %v", got)
	}
	if got := img.RGBAAt(10, 7); got != black {
		t.Errorf("rectangle right border should be 2px wide, got %v", got)
	}
	if got := img.RGBAAt(7, 7); got != white {
		t.Errorf("unfilled rectangle interior = %v", got)
	}
	if got := img.RGBAAt(17, 22); got != black {
		t.Errorf("ellipse left extreme = %v", got)
	}
	if got := img.RGBAAt(22, 22); got != white {
		t.Errorf("unfilled ellipse interior = %v", got)
	}
}
