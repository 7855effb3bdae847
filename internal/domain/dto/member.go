package dto

import (
	"time"

	"github.com/clubmate/backend/internal/domain/entity"
)

type Member struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	ClubID   string    `json:"clubId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

func NewMemberFromEntity(member entity.Member) Member {
	return Member{
		ID:       member.ID,
		UserID:   member.UserID,
		ClubID:   member.ClubID,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}
}
