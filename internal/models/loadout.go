package models

import (
	"time"

	"gorm.io/gorm"
)

type Loadout struct {
	ID          uint      `gorm:"primaryKey"`
	WeaponName  string    `gorm:"type:varchar(255);not null"`
	WeaponCode  string    `gorm:"type:varchar(255);not null"`
	WeaponImage string    `gorm:"type:varchar(500)"` // optional URL
	AddedBy     string    `gorm:"type:varchar(255);not null"`
	AddedDate   time.Time `gorm:"autoCreateTime"`
}

// BeforeSave hook for validation
func (l *Loadout) BeforeSave(tx *gorm.DB) error {
	if l.WeaponName == "" || l.WeaponCode == "" || l.AddedBy == "" {
		return gorm.ErrInvalidData
	}
	return nil
}

// TableName specifies the table name
func (Loadout) TableName() string {
	return "loadouts"
}
