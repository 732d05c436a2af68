package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// Tenant
	StudentTeacherID uuid.UUID `gorm:"type:uuid;not null;column:student_teacher_id;index:idx_students_teacher" json:"student_teacher_id"`

	// Identity
	StudentName        string  `gorm:"size:100;not null;column:student_name" json:"student_name"`
	StudentCode        string  `gorm:"size:20;not null;column:student_code;index:idx_students_code" json:"student_code"`
	StudentPhone       string  `gorm:"size:20;not null;column:student_phone" json:"student_phone"`
	StudentParentPhone *string `gorm:"size:20;column:student_parent_phone" json:"student_parent_phone,omitempty"`

	// Placement (denormalized names; subject_id is an optional live FK)
	StudentGrade     string     `gorm:"size:100;not null;column:student_grade;index:idx_students_grade" json:"student_grade"`
	StudentSubject   string     `gorm:"size:100;not null;column:student_subject" json:"student_subject"`
	StudentSubjectID *uuid.UUID `gorm:"type:uuid;column:student_subject_id;index:idx_students_subject" json:"student_subject_id,omitempty"`

	// Contact extras
	StudentAddress *string `gorm:"type:text;column:student_address" json:"student_address,omitempty"`
	StudentNotes   *string `gorm:"type:text;column:student_notes" json:"student_notes,omitempty"`

	// Status
	StudentIsActive bool `gorm:"not null;default:true;column:student_is_active;index:idx_students_active" json:"student_is_active"`

	// Timestamps (soft delete)
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
