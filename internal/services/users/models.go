package users

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a user in the system. Email is unique across the
// collection (enforced by a unique index).
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd0"`
	FirstName string        `bson:"first_name,omitempty" json:"first_name,omitempty" example:"Kari"`
	LastName  string        `bson:"last_name,omitempty" json:"last_name,omitempty" example:"Nordmann"`
	Email     string        `bson:"email" json:"email" example:"kari@example.com"`
	Meta      *UserMeta     `bson:"meta,omitempty" json:"meta,omitempty"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at" example:"2025-06-01T23:00:26.005703677Z"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at" example:"2025-06-01T23:00:26.005703677Z"`
}

// UserMeta is the embedded profile record of a user.
type UserMeta struct {
	Age     int    `bson:"age,omitempty" json:"age,omitempty" validate:"omitempty,min=0,max=150" example:"37"`
	Website string `bson:"website,omitempty" json:"website,omitempty" validate:"omitempty,url" example:"https://kari.example.com"`
	Address string `bson:"address,omitempty" json:"address,omitempty" example:"Storgata 1"`
	Country string `bson:"country,omitempty" json:"country,omitempty" example:"Norway"`
}

// UpdateUserMeta represents the meta fields that can be updated.
// Nil fields are left untouched.
type UpdateUserMeta struct {
	Age     *int    `json:"age,omitempty" validate:"omitempty,min=0,max=150" example:"38"`
	Website *string `json:"website,omitempty" validate:"omitempty,url" example:"https://kari.example.org"`
	Address *string `json:"address,omitempty" example:"Storgata 2"`
	Country *string `json:"country,omitempty" example:"Sweden"`
}
