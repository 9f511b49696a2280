package db_models

import "github.com/google/uuid"

type Favorite struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_account_sight"`
	SightID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_account_sight"`

	Sight Sight `gorm:"foreignKey:SightID"`
}
