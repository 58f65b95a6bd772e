package models

// Point is a single coordinate pair. Depending on context it is either in
// detector frame pixels (RawCode.Corners) or display pixels
// (DisplayBox.Corners).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FrameRect is an axis-aligned rectangle in detector frame pixels,
// left/top anchored.
type FrameRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RawCode is one code located by the external detector in a single frame.
// Value is nil when the detector located the code's geometry but could not
// decode its payload. Corners holds the quadrilateral boundary points in the
// order the detector reported them; the detector normally sends exactly 4
// but the count is not enforced anywhere downstream.
type RawCode struct {
	Value   *string   `json:"value"`
	Rect    FrameRect `json:"frameRect"`
	Corners []Point   `json:"corners"`
}

// DetectionFrame is the per-frame event emitted by the external detector:
// the dimensions of the sensor frame the geometry is relative to, plus every
// code found in that frame. The same decoded value may appear more than once.
//
// Orientation: the detector captures portrait on a landscape-native sensor,
// so FrameWidth runs along the display's vertical axis and FrameHeight along
// the horizontal one. The coordinate mapper accounts for this.
type DetectionFrame struct {
	FrameWidth  float64   `json:"width"`
	FrameHeight float64   `json:"height"`
	Codes       []RawCode `json:"codes"`
}
