package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// InsertionOrder sorts by the auto-incremented primary key, the only
// ordering guarantee the chat ledger gives.
type InsertionOrder struct{}

func (s InsertionOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
