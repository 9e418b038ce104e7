package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxCarImages is the upper bound on the number of images attached to a car.
const MaxCarImages = 10

// Car is a single inventory record owned by exactly one user.
type Car struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user"` // Owner; only this user may read or change the record.
	Model        string    `json:"model"`
	Price        float64   `json:"price"`
	Year         int       `json:"year"`
	Mileage      float64   `json:"mileage"`
	FuelType     string    `json:"fuelType"`
	Transmission string    `json:"transmission"`
	Description  string    `json:"description,omitempty"`
	Features     []string  `json:"features"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Validate checks the required fields and the image limit.
// It returns a human readable reason, or an empty string when the car is valid.
func (c *Car) Validate() string {
	var missing []string
	if strings.TrimSpace(c.Model) == "" {
		missing = append(missing, "model")
	}
	if strings.TrimSpace(c.FuelType) == "" {
		missing = append(missing, "fuelType")
	}
	if strings.TrimSpace(c.Transmission) == "" {
		missing = append(missing, "transmission")
	}
	if len(missing) > 0 {
		return "missing required fields: " + strings.Join(missing, ", ")
	}

	return validateImages(c.Images)
}

// CarPatch carries a partial update. Nil fields are left untouched.
// Features and Images replace the stored arrays when set.
type CarPatch struct {
	Model        *string
	Price        *float64
	Year         *int
	Mileage      *float64
	FuelType     *string
	Transmission *string
	Description  *string
	Features     *[]string
	Images       *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p *CarPatch) IsEmpty() bool {
	return p.Model == nil && p.Price == nil && p.Year == nil && p.Mileage == nil &&
		p.FuelType == nil && p.Transmission == nil && p.Description == nil &&
		p.Features == nil && p.Images == nil
}

// Validate rejects patches that would blank a required field or exceed the image limit.
func (p *CarPatch) Validate() string {
	blank := func(s *string) bool { return s != nil && strings.TrimSpace(*s) == "" }

	var missing []string
	if blank(p.Model) {
		missing = append(missing, "model")
	}
	if blank(p.FuelType) {
		missing = append(missing, "fuelType")
	}
	if blank(p.Transmission) {
		missing = append(missing, "transmission")
	}
	if len(missing) > 0 {
		return "required fields cannot be empty: " + strings.Join(missing, ", ")
	}

	if p.Images != nil {
		return validateImages(*p.Images)
	}

	return ""
}

func validateImages(images []string) string {
	if len(images) > MaxCarImages {
		return fmt.Sprintf("images exceeds the limit of %d images.", MaxCarImages)
	}

	return ""
}

// ListScope controls which cars the listing endpoint returns.
type ListScope string

const (
	// ListScopeOwner lists only the caller's cars.
	ListScopeOwner ListScope = "owner"
	// ListScopeAll lists every car regardless of owner.
	ListScopeAll ListScope = "all"
)

// IsValid checks if the ListScope is a known value.
func (s ListScope) IsValid() bool {
	switch s {
	case ListScopeOwner, ListScopeAll:
		return true
	default:
		return false
	}
}
