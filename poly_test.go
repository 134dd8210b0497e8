package simplesvg

import (
	"strings"
	"testing"
)

func square(size float64) []Point {
	return []Point{Pt(0, 0), Pt(size, 0), Pt(size, size), Pt(0, size)}
}

func TestPolygon_FlipsY(t *testing.T) {
	p := NewPolygon(NewFill(Silver.Color()), NoStroke()).AddPoints(square(100)...)
	got := p.ToMarkup(NewLayout(Square(200), BottomLeft))
	if !strings.Contains(got, `points="0,200 100,200 100,100 0,100 "`) {
		t.Errorf("unexpected markup %q", got)
	}
}

func TestPolygon_DefaultLayout(t *testing.T) {
	p := NewOutlinePolygon(NewStroke(1, Red.Color()))
	for _, pt := range square(100) {
		p.AddPoint(pt)
	}
	got := p.ToMarkup(DefaultLayout())
	want := "\t<polygon points=\"0,300 100,300 100,200 0,200 \" fill=\"none\" stroke-width=\"1\" stroke=\"rgb(255,0,0)\" />\n"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
	if p.GetRotationCenter() != Pt(50, 50) {
		t.Errorf("center = %v", p.GetRotationCenter())
	}
}

func TestPolygon_Empty(t *testing.T) {
	got := NewPolygon(NoFill(), NoStroke()).ToMarkup(DefaultLayout())
	if !strings.Contains(got, `points="" `) {
		t.Errorf("empty polygon markup %q", got)
	}
}

func TestPolygon_CloneIsDeep(t *testing.T) {
	p := NewPolygon(NoFill(), NoStroke()).AddPoints(square(10)...)
	cp := p.Clone().(*Polygon)
	cp.Offset(Pt(1, 1))
	cp.AddPoint(Pt(5, 5))
	if got := p.GetPoints(); len(got) != 4 || got[0] != Pt(0, 0) {
		t.Errorf("original changed: %v", got)
	}
	pts := p.GetPoints()
	pts[0] = Pt(99, 99)
	if p.GetPoints()[0] != Pt(0, 0) {
		t.Error("GetPoints must return a copy")
	}
}

func TestPolyline_ToMarkup(t *testing.T) {
	p := NewStrokePolyline(NewStroke(1.25, Blue.Color())).AddPoint(Pt(0, 0)).AddPoint(Pt(25, 75))
	got := p.ToMarkup(NewLayout(Square(100), TopLeft))
	want := "\t<polyline points=\"0,0 25,75 \" fill=\"none\" stroke-width=\"1.25\" stroke=\"rgb(0,0,255)\" />\n"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
	if p.Len() != 2 {
		t.Errorf("Len = %d", p.Len())
	}
}

func TestPolyline_FromPointsCopies(t *testing.T) {
	pts := []Point{Pt(1, 2), Pt(3, 4)}
	p := NewPolylineFromPoints(pts, NoFill(), NoStroke())
	pts[0] = Pt(0, 0)
	if p.GetPoints()[0] != Pt(1, 2) {
		t.Error("polyline should own its points")
	}
}

func TestPath_Subpaths(t *testing.T) {
	p := NewPath(NewFill(Yellow.Color()), NewStroke(2, Purple.Color()))
	p.AddPoint(Pt(0, 0)).AddPoint(Pt(100, 0)).AddPoint(Pt(100, 100))
	p.StartNewSubPath()
	p.AddPoints(Pt(0, 100), Pt(0, 0))

	got := p.ToMarkup(DefaultLayout())
	for _, want := range []string{
		"<path ",
		`d="M0,300 100,300 100,200 z M0,200 0,300 z " `,
		`fill-rule="evenodd" `,
		`fill="rgb(255,255,0)" `,
		`stroke-width="2" `,
		`stroke="rgb(128,0,128)" `,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in %q", want, got)
		}
	}
}

func TestPath_StartNewSubPathSkipsEmpty(t *testing.T) {
	p := NewOutlinePath(NewStroke(1, Black.Color()))
	p.StartNewSubPath().StartNewSubPath()
	if n := p.GetSubPathCount(); n != 1 {
		t.Fatalf("subpath count = %d, want 1", n)
	}
	p.AddPoint(Pt(1, 1)).StartNewSubPath()
	if n := p.GetSubPathCount(); n != 2 {
		t.Fatalf("subpath count = %d, want 2", n)
	}
	got := p.ToMarkup(NewLayout(Square(10), TopLeft))
	if !strings.Contains(got, `d="M1,1 z " `) {
		t.Errorf("empty trailing subpath should be skipped: %q", got)
	}
}

func TestPath_RotationCenterDividesBySubpaths(t *testing.T) {
	p := NewPath(NoFill(), NoStroke()).AddPoints(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	if got := p.GetRotationCenter(); got != Pt(20, 10) {
		t.Errorf("single subpath center = %v, want (20,10)", got)
	}

	p.StartNewSubPath().AddPoints(Pt(0, 10), Pt(0, 0))
	// Sum (20,20) over 2 subpaths.
	if got := p.GetRotationCenter(); got != Pt(10, 10) {
		t.Errorf("two subpath center = %v, want (10,10)", got)
	}
}

func TestPath_CloneAndOffset(t *testing.T) {
	p := NewPath(NoFill(), NoStroke()).AddPoints(Pt(1, 1), Pt(2, 2))
	cp := p.Clone().(*Path)
	cp.Offset(Pt(10, 0))
	if got := cp.GetPoints(); got[0] != Pt(11, 1) || got[1] != Pt(12, 2) {
		t.Errorf("clone offset = %v", got)
	}
	if got := p.GetPoints(); got[0] != Pt(1, 1) {
		t.Errorf("original moved: %v", got)
	}
}
