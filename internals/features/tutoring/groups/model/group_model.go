package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GroupModel struct {
	// PK
	GroupID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_id" json:"group_id"`

	// Tenant & subject
	GroupTeacherID uuid.UUID  `gorm:"type:uuid;not null;column:group_teacher_id;index:idx_groups_teacher" json:"group_teacher_id"`
	GroupSubjectID *uuid.UUID `gorm:"type:uuid;column:group_subject_id;index:idx_groups_subject" json:"group_subject_id,omitempty"`

	// Identity
	GroupName        string  `gorm:"size:100;not null;column:group_name" json:"group_name"`
	GroupGrade       string  `gorm:"size:100;not null;column:group_grade;index:idx_groups_grade" json:"group_grade"`
	GroupSubject     string  `gorm:"size:100;not null;column:group_subject" json:"group_subject"`
	GroupDescription *string `gorm:"type:text;column:group_description" json:"group_description,omitempty"`

	// Billing
	GroupMonthlyPrice int `gorm:"not null;default:0;column:group_monthly_price" json:"group_monthly_price"`

	// Capacity & counter
	GroupMaxStudents     int `gorm:"not null;column:group_max_students" json:"group_max_students"`
	GroupCurrentStudents int `gorm:"not null;default:0;column:group_current_students" json:"group_current_students"`

	// Place & free-text lists
	GroupLocation  *string        `gorm:"size:200;column:group_location" json:"group_location,omitempty"`
	GroupMaterials pq.StringArray `gorm:"type:text[];column:group_materials" json:"group_materials,omitempty"`
	GroupRules     pq.StringArray `gorm:"type:text[];column:group_rules" json:"group_rules,omitempty"`

	// Optional date range
	GroupStartDate *time.Time `gorm:"type:date;column:group_start_date" json:"group_start_date,omitempty"`
	GroupEndDate   *time.Time `gorm:"type:date;column:group_end_date" json:"group_end_date,omitempty"`

	// Status
	GroupIsActive bool `gorm:"not null;default:true;column:group_is_active;index:idx_groups_active" json:"group_is_active"`

	// Timestamps (soft delete)
	GroupCreatedAt time.Time      `gorm:"column:group_created_at;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt time.Time      `gorm:"column:group_updated_at;autoUpdateTime" json:"group_updated_at"`
	GroupDeletedAt gorm.DeletedAt `gorm:"column:group_deleted_at;index" json:"group_deleted_at,omitempty"`
}

func (GroupModel) TableName() string { return "groups" }

// FreeSeats is how many students can still be enrolled.
func (g *GroupModel) FreeSeats() int {
	free := g.GroupMaxStudents - g.GroupCurrentStudents
	if free < 0 {
		return 0
	}
	return free
}

// IsFull reports whether the group reached its capacity.
func (g *GroupModel) IsFull() bool {
	return g.GroupCurrentStudents >= g.GroupMaxStudents
}

// ensureConsistency mirrors the CHECK constraints on the groups table.
func (g *GroupModel) ensureConsistency() error {
	if g.GroupMaxStudents <= 0 {
		return errors.New("group_max_students must be > 0")
	}
	if g.GroupCurrentStudents < 0 || g.GroupCurrentStudents > g.GroupMaxStudents {
		return errors.New("group_current_students must stay within 0..group_max_students")
	}
	if g.GroupMonthlyPrice < 0 {
		return errors.New("group_monthly_price must be >= 0")
	}
	if g.GroupStartDate != nil && g.GroupEndDate != nil && g.GroupEndDate.Before(*g.GroupStartDate) {
		return errors.New("group_end_date must be >= group_start_date")
	}
	return nil
}

func (g *GroupModel) BeforeCreate(tx *gorm.DB) error { return g.ensureConsistency() }
func (g *GroupModel) BeforeUpdate(tx *gorm.DB) error { return g.ensureConsistency() }
