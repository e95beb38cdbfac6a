package models

import "time"

// UserRole ties a user to a role. The composite primary key keeps at
// most one row per (user, role) pair; deleting either endpoint cascades
// to the row.
type UserRole struct {
	UserID    uint      `gorm:"primaryKey"`
	RoleID    uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID"`
	Role Role `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoleID;references:ID"`
}
