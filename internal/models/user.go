package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStatus is the account status of an end user. Exactly two values exist.
type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

// IsValid reports whether the status is one of the two legal values.
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusBlocked
}

// User represents an end user of the ZeroCycle app. Accounts are created by
// the mobile app, never by the admin backend; the admin side can only toggle
// the status or delete the account.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Joined    time.Time          `bson:"joined" json:"joined"`
	Status    UserStatus         `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserChange is a single change-stream event on the users collection.
type UserChange struct {
	Type ChangeType `json:"type"`
	ID   string     `json:"id"`
	User *User      `json:"user,omitempty"`
}
