package models

import "time"

// Role is a named grouping assignable to users. Names are unique and
// matched case-sensitively as stored.
type Role struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null" json:"roleName"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
