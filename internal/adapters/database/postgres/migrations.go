package postgres

import (
	"gorm.io/gorm"

	"github.com/clubmate/backend/internal/domain/entity"
)

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.Club{},
	&entity.Subscription{},
	&entity.Invitation{},
	&entity.Member{},
	&entity.Training{},
	&entity.TrainingRegistration{},
}

// partialIndexes are the uniqueness constraints auto-migrate cannot express:
// at most one active membership per (user, club) and one non-cancelled
// registration per (training, user). They turn check-then-create races into
// reportable conflicts.
var partialIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_member
		ON members (club_id, user_id) WHERE is_active`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_registration
		ON training_registrations (training_id, user_id) WHERE status <> 'CANCELLED'`,
}

// Migrate runs the auto migrations plus the partial unique indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Migrations...); err != nil {
		return err
	}
	for _, index := range partialIndexes {
		if err := db.Exec(index).Error; err != nil {
			return err
		}
	}
	return nil
}
