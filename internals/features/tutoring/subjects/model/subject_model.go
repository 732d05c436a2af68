package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	// PK
	SubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`

	// Tenant
	SubjectTeacherID uuid.UUID `gorm:"type:uuid;not null;column:subject_teacher_id;index:idx_subjects_teacher" json:"subject_teacher_id"`

	// Identity
	SubjectName        string  `gorm:"size:100;not null;column:subject_name" json:"subject_name"`
	SubjectGrade       string  `gorm:"size:100;not null;column:subject_grade" json:"subject_grade"`
	SubjectDescription *string `gorm:"type:text;column:subject_description" json:"subject_description,omitempty"`

	// Status
	SubjectIsActive bool `gorm:"not null;default:true;column:subject_is_active;index:idx_subjects_active" json:"subject_is_active"`

	// Timestamps (soft delete)
	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
