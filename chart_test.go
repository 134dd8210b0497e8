package simplesvg

import (
	"strings"
	"testing"
)

func TestLineChart_SkipsEmptyPolyline(t *testing.T) {
	chart := NewLineChart(Square(5), 1, NewStroke(0.5, Purple.Color()))
	data := NewStrokePolyline(NewStroke(1, Blue.Color())).AddPoints(Pt(0, 0), Pt(10, 20))
	chart.AddPolyline(data).AddPolyline(NewStrokePolyline(NewStroke(1, Red.Color()))).AddPolyline(nil)

	if n := chart.GetPolylineCount(); n != 1 {
		t.Fatalf("polyline count = %d, want 1", n)
	}

	got := chart.ToMarkup(NewLayout(Square(100), TopLeft))
	if n := strings.Count(got, "<polyline "); n != 2 {
		t.Errorf("expected data polyline plus axis, got %d polylines in %q", n, got)
	}
	if n := strings.Count(got, "<circle "); n != 2 {
		t.Errorf("expected one marker per vertex, got %d", n)
	}
	if !strings.Contains(got, `points="5,5 15,25 " fill="none" stroke-width="1" stroke="rgb(0,0,255)"`) {
		t.Errorf("data polyline should be shifted by the margin: %q", got)
	}
	if !strings.Contains(got, `stroke-width="0.5" stroke="rgb(128,0,128)"`) {
		t.Errorf("axis stroke missing: %q", got)
	}
	if strings.Contains(got, "rgb(255,0,0)") {
		t.Error("empty polyline must not be rendered")
	}
	if strings.Contains(got, "<g") {
		t.Error("unrotated chart must not be wrapped")
	}
}

func TestLineChart_Axis(t *testing.T) {
	chart := NewDefaultLineChart(Dimensions{Width: 10, Height: 20})
	chart.AddPolyline(NewStrokePolyline(NoStroke()).AddPoints(Pt(0, 0), Pt(50, 100)))

	parts := chart.parts()
	axis, ok := parts[len(parts)-1].(*Polyline)
	if !ok {
		t.Fatalf("last part is %T, want *Polyline", parts[len(parts)-1])
	}
	pts := axis.GetPoints()
	if len(pts) != 3 {
		t.Fatalf("axis has %d points", len(pts))
	}
	if pts[1] != Pt(10, 20) {
		t.Errorf("axis corner = %v, want margin (10,20)", pts[1])
	}
	if pts[0].X != 10 || pts[0].Y <= 20+100 {
		t.Errorf("vertical axis end = %v, want above the data", pts[0])
	}
	if pts[2].Y != 20 || pts[2].X <= 10+50 {
		t.Errorf("horizontal axis end = %v, want right of the data", pts[2])
	}
	if !axis.GetFill().Color.Transparent {
		t.Error("axis must not be filled")
	}
}

func TestLineChart_Markers(t *testing.T) {
	chart := NewDefaultLineChart(Dimensions{})
	chart.AddPolyline(NewStrokePolyline(NoStroke()).AddPoints(Pt(0, 0), Pt(10, 60)))

	for _, s := range chart.parts() {
		c, ok := s.(*Circle)
		if !ok {
			continue
		}
		// Marker diameter is data height / 30.
		if c.GetRadius() != 1 {
			t.Errorf("marker radius = %v, want 1", c.GetRadius())
		}
		if c.GetFill().Color != Black.Color() {
			t.Errorf("marker fill = %v", c.GetFill().Color)
		}
	}
}

func TestLineChart_Empty(t *testing.T) {
	chart := NewDefaultLineChart(Square(10))
	if got := chart.ToMarkup(DefaultLayout()); got != "" {
		t.Errorf("empty chart markup = %q", got)
	}
	if got := chart.GetRotationCenter(); got != (Point{}) {
		t.Errorf("empty chart center = %v", got)
	}
}

func TestLineChart_RotationCenter(t *testing.T) {
	chart := NewDefaultLineChart(Dimensions{})
	chart.AddPolyline(NewStrokePolyline(NoStroke()).AddPoints(Pt(0, 0), Pt(10, 0)))
	chart.AddPolyline(NewStrokePolyline(NoStroke()).AddPoints(Pt(0, 20), Pt(30, 20)))
	// Centroids (5,0) and (15,20).
	if got := chart.GetRotationCenter(); got != Pt(10, 10) {
		t.Errorf("center = %v, want (10,10)", got)
	}

	chart.SetRotation(90)
	got := chart.ToMarkup(NewLayout(Square(100), TopLeft))
	if !strings.HasPrefix(got, "\t<g transform=\"rotate(90 10 10)\" >\n") || !strings.HasSuffix(got, "</g>\n") {
		t.Errorf("rotated chart should be wrapped in a group: %q", got)
	}
}

func TestLineChart_OwnsCopies(t *testing.T) {
	line := NewStrokePolyline(NoStroke()).AddPoints(Pt(0, 0), Pt(1, 1))
	chart := NewDefaultLineChart(Dimensions{}).AddPolyline(line)
	line.AddPoint(Pt(2, 2))

	cp := chart.Clone().(*LineChart)
	cp.Offset(Pt(100, 0))

	if got := chart.polylines[0].GetPoints(); len(got) != 2 || got[0] != Pt(0, 0) {
		t.Errorf("chart polyline = %v", got)
	}
	if got := cp.polylines[0].GetPoints(); got[0] != Pt(100, 0) {
		t.Errorf("clone polyline = %v", got)
	}
}
