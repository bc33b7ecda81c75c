package models

import "time"

// PointsConfig is the points/cash conversion configuration, stored as a
// singleton document in the settings collection. Both values are strictly
// positive.
type PointsConfig struct {
	PointsPerKg  float64   `bson:"pointsPerKg" json:"pointsPerKg"`
	RatePerPoint int       `bson:"ratePerPoint" json:"ratePerPoint"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy    string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

// UpdatePointsConfigRequest is the settings form payload.
type UpdatePointsConfigRequest struct {
	PointsPerKg  float64 `json:"pointsPerKg" binding:"required"`
	RatePerPoint int     `json:"ratePerPoint" binding:"required"`
}
