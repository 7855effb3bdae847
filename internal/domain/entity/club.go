package entity

import (
	"strings"
	"time"

	"github.com/clubmate/backend/internal/domain/common/errorz"
	"github.com/clubmate/backend/internal/domain/utils/validator"
)

type Club struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"not null;uniqueIndex"`
	Description string
	LogoURL     string
	Location    string
	OwnerID     string `gorm:"not null;index"`
}

// ClubUpdate carries a partial update. Absent fields keep the current
// value, null fields clear it.
type ClubUpdate struct {
	Name        Optional[string]
	Description Optional[string]
	LogoURL     Optional[string]
	Location    Optional[string]
}

func NewClub(id, name, ownerID string) (*Club, error) {
	name = strings.TrimSpace(name)
	if !validator.ClubName(name) {
		return nil, errorz.Validation("club name must be between 1 and 100 characters")
	}
	if ownerID == "" {
		return nil, errorz.Validation("club owner is required")
	}
	return &Club{
		ID:      id,
		Name:    name,
		OwnerID: ownerID,
	}, nil
}

// Update applies a partial update, re-validating every provided field.
// The name is not clearable; the optional fields are.
func (c *Club) Update(update ClubUpdate) error {
	if update.Name.Present {
		if update.Name.Null {
			return errorz.Validation("club name cannot be cleared")
		}
		name := strings.TrimSpace(update.Name.Value)
		if !validator.ClubName(name) {
			return errorz.Validation("club name must be between 1 and 100 characters")
		}
		c.Name = name
	}
	if update.Description.Present {
		if !update.Description.Null && !validator.ClubDescription(update.Description.Value) {
			return errorz.Validation("club description is too long")
		}
		c.Description = valueOrZero(update.Description)
	}
	if update.LogoURL.Present {
		if !update.LogoURL.Null && !validator.ClubLogoURL(update.LogoURL.Value) {
			return errorz.Validation("club logo url is too long")
		}
		c.LogoURL = valueOrZero(update.LogoURL)
	}
	if update.Location.Present {
		if !update.Location.Null && !validator.ClubLocation(update.Location.Value) {
			return errorz.Validation("club location is too long")
		}
		c.Location = valueOrZero(update.Location)
	}
	return nil
}

// ValidateNameUniqueness reports a conflict if the name collides with any of
// the existing names, ignoring case and surrounding/repeated whitespace.
func ValidateNameUniqueness(name string, existing []string) error {
	normalized := normalizeClubName(name)
	for _, other := range existing {
		if normalizeClubName(other) == normalized {
			return errorz.Conflict("A club with this name already exists")
		}
	}
	return nil
}

func normalizeClubName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func valueOrZero(field Optional[string]) string {
	if field.Null {
		return ""
	}
	return field.Value
}
