package models

import (
	"time"

	"github.com/google/uuid"
)

// DisplayProfile is a named, persisted set of display metrics for a device
// that connects repeatedly. Sessions can be created against a profile
// instead of sending raw metrics each time.
type DisplayProfile struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Metrics   DisplayMetrics `json:"metrics"`
	CreatedAt time.Time      `json:"createdAt"`
}

func NewDisplayProfile(name string, metrics DisplayMetrics) *DisplayProfile {
	return &DisplayProfile{
		ID:        uuid.New().String(),
		Name:      name,
		Metrics:   metrics,
		CreatedAt: time.Now(),
	}
}
