package entity

import (
	"time"

	"github.com/google/uuid"
)

// Caregiver is a read-only directory entry.
type Caregiver struct {
	ID          uuid.UUID  `db:"caregiver_id"`
	UserID      *uuid.UUID `db:"user_id"`
	Name        string     `db:"name"`
	Phone       *string    `db:"phone"`
	Email       *string    `db:"email"`
	IsAvailable bool       `db:"available"`
	CreatedAt   time.Time  `db:"created_at"`
}
