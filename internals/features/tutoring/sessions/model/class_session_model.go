package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// ClassSessionModel is one held (or planned) lesson of a group.
type ClassSessionModel struct {
	ClassSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_session_id" json:"class_session_id"`

	ClassSessionTeacherID uuid.UUID `gorm:"type:uuid;not null;column:class_session_teacher_id;index:idx_class_sessions_teacher" json:"class_session_teacher_id"`
	ClassSessionGroupID   uuid.UUID `gorm:"type:uuid;not null;column:class_session_group_id;index:idx_class_sessions_group" json:"class_session_group_id"`

	ClassSessionDate      time.Time `gorm:"type:date;not null;column:class_session_date" json:"class_session_date"`
	ClassSessionStartTime string    `gorm:"type:varchar(5);not null;column:class_session_start_time" json:"class_session_start_time"`
	ClassSessionEndTime   string    `gorm:"type:varchar(5);not null;column:class_session_end_time" json:"class_session_end_time"`

	// scheduled | completed | cancelled
	ClassSessionStatus string `gorm:"type:varchar(20);not null;default:'scheduled';column:class_session_status" json:"class_session_status"`

	ClassSessionTopic           *string `gorm:"type:varchar(200);column:class_session_topic" json:"class_session_topic,omitempty"`
	ClassSessionAttendanceCount int     `gorm:"not null;default:0;column:class_session_attendance_count" json:"class_session_attendance_count"`
	ClassSessionNotes           *string `gorm:"type:text;column:class_session_notes" json:"class_session_notes,omitempty"`

	ClassSessionCreatedAt time.Time      `gorm:"column:class_session_created_at;autoCreateTime" json:"class_session_created_at"`
	ClassSessionUpdatedAt time.Time      `gorm:"column:class_session_updated_at;autoUpdateTime" json:"class_session_updated_at"`
	ClassSessionDeletedAt gorm.DeletedAt `gorm:"column:class_session_deleted_at;index" json:"-"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }

func ValidSessionStatus(s string) bool {
	switch s {
	case SessionStatusScheduled, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}

func (m *ClassSessionModel) ensureConsistency() error {
	if !ValidSessionStatus(m.ClassSessionStatus) {
		return fmt.Errorf("class_session_status must be one of scheduled|completed|cancelled, got %q", m.ClassSessionStatus)
	}
	if m.ClassSessionAttendanceCount < 0 {
		return fmt.Errorf("class_session_attendance_count must be >= 0")
	}
	return nil
}

func (m *ClassSessionModel) BeforeCreate(_ *gorm.DB) error { return m.ensureConsistency() }
func (m *ClassSessionModel) BeforeUpdate(_ *gorm.DB) error { return m.ensureConsistency() }
