package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is a teacher account running their tutoring business. Columns are
// kept unprefixed because the auth middleware and token claims address the
// users table directly.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	UserName string    `gorm:"size:50;not null;unique;column:user_name" json:"user_name"`
	Email    string    `gorm:"size:255;not null;unique;column:email" json:"email"`
	Password string    `gorm:"size:250;not null;column:password" json:"-"`
	IsActive bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }
