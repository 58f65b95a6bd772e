package models

// DisplayMetrics describes the display a session maps detections onto.
// Screen dimensions are rounded physical pixels; PixelRatio converts
// physical pixels to display-independent units.
type DisplayMetrics struct {
	ScreenWidth  float64 `json:"screenWidth"`
	ScreenHeight float64 `json:"screenHeight"`
	PixelRatio   float64 `json:"pixelRatio"`
}

// DisplayBox is a detected code's geometry mapped into display space.
// X/Y/Width/Height are in display-independent units (physical pixels divided
// by PixelRatio). Corners are in physical display pixels, NOT density
// divided; consumers reading both must reconcile the units.
type DisplayBox struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Corners []Point `json:"corners"`
}

// ScannedEntry is one decoded value from the current frame, paired with how
// long this frame's processing had been running when the entry was computed.
// ScanTime is per-frame latency in milliseconds, never cumulative.
type ScannedEntry struct {
	Value    string `json:"value"`
	ScanTime int64  `json:"scanTimeMs"`
}
