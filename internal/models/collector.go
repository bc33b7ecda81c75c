package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectorStatus is the lifecycle status of a collector record.
type CollectorStatus string

const (
	// CollectorPendingConfirmation is the initial status of every
	// self-registered collector. Only an admin approval moves it forward.
	CollectorPendingConfirmation CollectorStatus = "PENDING_CONFIRMATION"
	CollectorActive              CollectorStatus = "ACTIVE"
	CollectorInactive            CollectorStatus = "INACTIVE"
)

// IsValid reports whether the status is one of the three legal values.
func (s CollectorStatus) IsValid() bool {
	switch s {
	case CollectorPendingConfirmation, CollectorActive, CollectorInactive:
		return true
	}
	return false
}

// Collector represents a waste collector (pengepul) in the ZeroCycle network.
// Rejection is a hard delete; there is no stored REJECTED status.
type Collector struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Location  string             `bson:"location" json:"location"`
	Contact   string             `bson:"contact" json:"contact"`
	Status    CollectorStatus    `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterCollectorRequest is the payload for both the public
// self-registration endpoint and the admin direct-create endpoint.
type RegisterCollectorRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
}

// CollectorChange is a single change-stream event on the collectors collection.
type CollectorChange struct {
	Type      ChangeType `json:"type"`
	ID        string     `json:"id"`
	Collector *Collector `json:"collector,omitempty"`
}
