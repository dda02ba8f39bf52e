package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Clan naming convention: in-game nicknames carry the clan tag as a prefix.
const (
	GameNickPrefix = "WFx"
	GameNickMinLen = 5
	GameNickMaxLen = 20
)

type Member struct {
	ID        uint      `gorm:"primaryKey"`
	DiscordID string    `gorm:"uniqueIndex;type:varchar(32);not null"`
	GameNick  string    `gorm:"type:varchar(32);not null"`
	JoinDate  time.Time `gorm:"autoCreateTime"`
}

// ValidGameNick reports whether nick satisfies the clan naming convention.
func ValidGameNick(nick string) bool {
	if len(nick) < GameNickMinLen || len(nick) > GameNickMaxLen {
		return false
	}
	return strings.HasPrefix(nick, GameNickPrefix)
}

// BeforeSave hook for validation
func (m *Member) BeforeSave(tx *gorm.DB) error {
	if m.DiscordID == "" {
		return gorm.ErrInvalidData
	}
	if !ValidGameNick(m.GameNick) {
		return gorm.ErrInvalidData
	}
	return nil
}

// TableName specifies the table name
func (Member) TableName() string {
	return "members"
}
