package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupStudentModel is the membership record tying a student to a group.
// group_current_students on the owning group must always equal the number of
// these rows for that group.
type GroupStudentModel struct {
	GroupStudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_student_id" json:"group_student_id"`

	GroupStudentGroupID   uuid.UUID `gorm:"type:uuid;not null;column:group_student_group_id;uniqueIndex:uq_group_student;index:idx_group_students_group" json:"group_student_group_id"`
	GroupStudentStudentID uuid.UUID `gorm:"type:uuid;not null;column:group_student_student_id;uniqueIndex:uq_group_student;index:idx_group_students_student" json:"group_student_student_id"`

	GroupStudentEnrolledAt time.Time `gorm:"column:group_student_enrolled_at;autoCreateTime" json:"group_student_enrolled_at"`
}

func (GroupStudentModel) TableName() string { return "group_students" }
