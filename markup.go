package simplesvg

import (
	"strconv"
	"strings"
)

// XML namespace and envelope constants
const (
	nsSVG      = "http://www.w3.org/2000/svg"
	svgVersion = "1.1"
	svgDocType = `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`
)

// formatNumber writes a real number in its shortest form: 50, 112.5, 1e+21.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// attr renders name="value" followed by a separating space.
func attr(name, value string) string {
	return name + `="` + value + `" `
}

// numAttr renders a numeric attribute with an optional unit suffix.
func numAttr(name string, v float64, unit string) string {
	return attr(name, formatNumber(v)+unit)
}

func elemStart(name string) string { return "\t<" + name + " " }

func elemEnd(name string) string { return "</" + name + ">\n" }

const emptyElemEnd = "/>\n"

// pointList renders points as "x,y x,y " in markup space.
func pointList(sb *strings.Builder, points []Point, l Layout) {
	for _, p := range points {
		sb.WriteString(formatNumber(l.TranslateX(p.X)))
		sb.WriteByte(',')
		sb.WriteString(formatNumber(l.TranslateY(p.Y)))
		sb.WriteByte(' ')
	}
}

// rotationAttr returns the transform attribute for a rotation about center,
// or "" when the rotation is zero. The center is written as the user-space
// point unless l.MarkupRotation is set.
func rotationAttr(degrees float64, center Point, l Layout) string {
	if l.MarkupRotation {
		center = l.TranslatePoint(center)
	}
	return rotateAt(degrees, center)
}

// rotateAt writes c as is.
func rotateAt(degrees float64, c Point) string {
	if degrees == 0 {
		return ""
	}
	return attr("transform", "rotate("+formatNumber(degrees)+" "+formatNumber(c.X)+" "+formatNumber(c.Y)+")")
}
