package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist stores tokens invalidated by logout until they expire.
type TokenBlacklist struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Token     string         `gorm:"type:text;not null;column:token;index" json:"token"`
	ExpiredAt time.Time      `gorm:"column:expired_at;not null" json:"expired_at"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
