// Package geometry maps detector frame-space code geometry into display
// space. The detector captures with a 90°-rotated sensor relative to the
// display, so horizontal display quantities scale against the frame's
// height and vertical ones against the frame's width; no rotation matrix
// is needed beyond the swapped divisors.
package geometry

import "scanoverlay/internal/models"

// MapCode converts one code's frame-space geometry into a DisplayBox.
// Rectangle fields come out in display-independent units; corner points
// stay in physical display pixels (they skip the pixel-ratio division).
// Frame dimensions are not validated: a zero-dimension frame is a detector
// contract violation and propagates as Inf/NaN.
func MapCode(code models.RawCode, frame models.DetectionFrame, metrics models.DisplayMetrics) models.DisplayBox {
	hScale := metrics.ScreenWidth / frame.FrameHeight
	vScale := metrics.ScreenHeight / frame.FrameWidth

	box := models.DisplayBox{
		X:      code.Rect.X * hScale / metrics.PixelRatio,
		Y:      code.Rect.Y * vScale / metrics.PixelRatio,
		Width:  code.Rect.Width * hScale / metrics.PixelRatio,
		Height: code.Rect.Height * vScale / metrics.PixelRatio,
	}

	if len(code.Corners) > 0 {
		box.Corners = make([]models.Point, len(code.Corners))
		for i, c := range code.Corners {
			box.Corners[i] = models.Point{
				X: c.X * hScale,
				Y: c.Y * vScale,
			}
		}
	}

	return box
}

// MapFrame maps every code in the frame, preserving detector order. Codes
// without a decoded value are still mapped; filtering by value is the
// session's concern, not the mapper's.
func MapFrame(frame models.DetectionFrame, metrics models.DisplayMetrics) []models.DisplayBox {
	if len(frame.Codes) == 0 {
		return nil
	}

	boxes := make([]models.DisplayBox, len(frame.Codes))
	for i, code := range frame.Codes {
		boxes[i] = MapCode(code, frame, metrics)
	}
	return boxes
}
