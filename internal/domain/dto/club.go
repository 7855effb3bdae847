package dto

import (
	"time"

	"github.com/clubmate/backend/internal/domain/entity"
)

type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	Location    string    `json:"location,omitempty"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewClubFromEntity(club entity.Club) Club {
	return Club{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		LogoURL:     club.LogoURL,
		Location:    club.Location,
		OwnerID:     club.OwnerID,
		CreatedAt:   club.CreatedAt,
		UpdatedAt:   club.UpdatedAt,
	}
}

type ClubList struct {
	Clubs []Club `json:"clubs"`
	Total int64  `json:"total"`
}
