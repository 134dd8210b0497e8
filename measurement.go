package simplesvg

// Physical unit conversion helpers. User space is measured in CSS pixels:
// 1 inch = 96 px, 1 point = 96/72 px, 1 cm = 96/2.54 px.

const (
	pxPerInch       = 96.0
	pxPerPoint      = pxPerInch / 72
	pxPerCentimeter = pxPerInch / 2.54
	pxPerMillimeter = pxPerCentimeter / 10
)

// Inch converts inches to user units.
func Inch(n float64) float64 { return n * pxPerInch }

// Points converts typographic points to user units.
func Points(n float64) float64 { return n * pxPerPoint }

// Centimeter converts centimeters to user units.
func Centimeter(n float64) float64 { return n * pxPerCentimeter }

// Millimeter converts millimeters to user units.
func Millimeter(n float64) float64 { return n * pxPerMillimeter }

// PxToInch converts user units to inches.
func PxToInch(px float64) float64 { return px / pxPerInch }

// PxToPoints converts user units to typographic points.
func PxToPoints(px float64) float64 { return px / pxPerPoint }

// PxToCentimeter converts user units to centimeters.
func PxToCentimeter(px float64) float64 { return px / pxPerCentimeter }

// PxToMillimeter converts user units to millimeters.
func PxToMillimeter(px float64) float64 { return px / pxPerMillimeter }

// A4 returns portrait A4 page dimensions in user units.
func A4() Dimensions {
	return Dimensions{Width: Millimeter(210), Height: Millimeter(297)}
}

// Letter returns portrait US Letter page dimensions in user units.
func Letter() Dimensions {
	return Dimensions{Width: Inch(8.5), Height: Inch(11)}
}
