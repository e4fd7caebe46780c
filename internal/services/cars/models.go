package cars

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Car represents a registered car document
type Car struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	Make      string        `bson:"make" json:"make" validate:"required" example:"Tesla"`
	Model     string        `bson:"model" json:"model" validate:"required" example:"Model S"`
	Year      int           `bson:"year,omitempty" json:"year,omitempty" validate:"omitempty,min=1886" example:"2021"`
	Color     string        `bson:"color,omitempty" json:"color,omitempty" example:"black"`
	Owner     *Owner        `bson:"owner,omitempty" json:"owner,omitempty"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at" example:"2025-06-01T23:00:26.005703677Z"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at" example:"2025-06-01T23:00:26.005703677Z"`
}

// Owner is the embedded owner record of a car. It has no identity of its
// own and lives and dies with its parent document.
type Owner struct {
	Picture       string `bson:"picture,omitempty" json:"picture,omitempty" validate:"omitempty,url" example:"https://example.com/owner.jpg"`
	Country       string `bson:"country,omitempty" json:"country,omitempty" example:"Norway"`
	ContactName   string `bson:"contact_name,omitempty" json:"contact_name,omitempty" example:"Kari Nordmann"`
	ContactNumber string `bson:"contact_number,omitempty" json:"contact_number,omitempty" example:"+47 555 01 234"`
}

// UpdateCar represents the fields that can be updated on a car.
// Nil fields are left untouched.
type UpdateCar struct {
	Model *string `json:"model,omitempty" validate:"omitempty,min=1" example:"X"`
	Year  *int    `json:"year,omitempty" validate:"omitempty,min=1886" example:"2022"`
	Color *string `json:"color,omitempty" example:"beige"`
	Owner *Owner  `json:"owner,omitempty"`
}

// Filter selects cars by exact field values. Zero-valued fields are
// ignored; the zero Filter matches every car.
type Filter struct {
	Make  string `json:"make,omitempty" example:"Tesla"`
	Model string `json:"model,omitempty" example:"Model S"`
	Color string `json:"color,omitempty" example:"black"`
}

// IsZero reports whether the filter matches every car.
func (f Filter) IsZero() bool {
	return f.Make == "" && f.Model == "" && f.Color == ""
}
