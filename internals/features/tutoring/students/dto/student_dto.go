package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "mudarris_backend/internals/features/tutoring/students/model"
)

/* ----------------- CREATE REQUEST ----------------- */

type StudentCreateRequest struct {
	StudentName        string     `json:"student_name"         validate:"required,min=1,max=100"`
	StudentCode        *string    `json:"student_code"         validate:"omitempty,min=1,max=20"`
	StudentPhone       string     `json:"student_phone"        validate:"required,min=5,max=20"`
	StudentParentPhone *string    `json:"student_parent_phone" validate:"omitempty,min=5,max=20"`
	StudentGrade       string     `json:"student_grade"        validate:"required,min=1,max=100"`
	StudentSubject     string     `json:"student_subject"      validate:"required,min=1,max=100"`
	StudentSubjectID   *uuid.UUID `json:"student_subject_id"`
	StudentAddress     *string    `json:"student_address"      validate:"omitempty,max=2000"`
	StudentNotes       *string    `json:"student_notes"        validate:"omitempty,max=2000"`
}

func (r *StudentCreateRequest) Normalize() {
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.StudentCode = trimPtr(r.StudentCode)
	r.StudentPhone = strings.TrimSpace(r.StudentPhone)
	r.StudentParentPhone = trimPtr(r.StudentParentPhone)
	r.StudentGrade = strings.TrimSpace(r.StudentGrade)
	r.StudentSubject = strings.TrimSpace(r.StudentSubject)
	r.StudentAddress = trimPtr(r.StudentAddress)
	r.StudentNotes = trimPtr(r.StudentNotes)
}

// ToModel leaves StudentCode empty when absent; the controller fills it via
// the code generator.
func (r StudentCreateRequest) ToModel(teacherID uuid.UUID) *m.StudentModel {
	code := ""
	if r.StudentCode != nil {
		code = *r.StudentCode
	}
	return &m.StudentModel{
		StudentTeacherID:   teacherID,
		StudentName:        r.StudentName,
		StudentCode:        code,
		StudentPhone:       r.StudentPhone,
		StudentParentPhone: r.StudentParentPhone,
		StudentGrade:       r.StudentGrade,
		StudentSubject:     r.StudentSubject,
		StudentSubjectID:   r.StudentSubjectID,
		StudentAddress:     r.StudentAddress,
		StudentNotes:       r.StudentNotes,
		StudentIsActive:    true,
	}
}

/* ----------------- UPDATE REQUEST ----------------- */

type StudentUpdateRequest struct {
	StudentName        *string    `json:"student_name"         validate:"omitempty,min=1,max=100"`
	StudentPhone       *string    `json:"student_phone"        validate:"omitempty,min=5,max=20"`
	StudentParentPhone *string    `json:"student_parent_phone" validate:"omitempty,min=5,max=20"`
	StudentGrade       *string    `json:"student_grade"        validate:"omitempty,min=1,max=100"`
	StudentSubject     *string    `json:"student_subject"      validate:"omitempty,min=1,max=100"`
	StudentSubjectID   *uuid.UUID `json:"student_subject_id"`
	StudentAddress     *string    `json:"student_address"      validate:"omitempty,max=2000"`
	StudentNotes       *string    `json:"student_notes"        validate:"omitempty,max=2000"`
	StudentIsActive    *bool      `json:"student_is_active"`
}

func (r *StudentUpdateRequest) Normalize() {
	r.StudentName = trimPtr(r.StudentName)
	r.StudentPhone = trimPtr(r.StudentPhone)
	r.StudentParentPhone = trimPtr(r.StudentParentPhone)
	r.StudentGrade = trimPtr(r.StudentGrade)
	r.StudentSubject = trimPtr(r.StudentSubject)
	r.StudentAddress = trimPtr(r.StudentAddress)
	r.StudentNotes = trimPtr(r.StudentNotes)
}

func (r StudentUpdateRequest) Apply(s *m.StudentModel) {
	if r.StudentName != nil {
		s.StudentName = *r.StudentName
	}
	if r.StudentPhone != nil {
		s.StudentPhone = *r.StudentPhone
	}
	if r.StudentParentPhone != nil {
		s.StudentParentPhone = r.StudentParentPhone
	}
	if r.StudentGrade != nil {
		s.StudentGrade = *r.StudentGrade
	}
	if r.StudentSubject != nil {
		s.StudentSubject = *r.StudentSubject
	}
	if r.StudentSubjectID != nil {
		s.StudentSubjectID = r.StudentSubjectID
	}
	if r.StudentAddress != nil {
		s.StudentAddress = r.StudentAddress
	}
	if r.StudentNotes != nil {
		s.StudentNotes = r.StudentNotes
	}
	if r.StudentIsActive != nil {
		s.StudentIsActive = *r.StudentIsActive
	}
}

/* ----------------- RESPONSE ----------------- */

type StudentResponse struct {
	StudentID          uuid.UUID   `json:"student_id"`
	StudentName        string      `json:"student_name"`
	StudentCode        string      `json:"student_code"`
	StudentPhone       string      `json:"student_phone"`
	StudentParentPhone *string     `json:"student_parent_phone,omitempty"`
	StudentGrade       string      `json:"student_grade"`
	StudentSubject     string      `json:"student_subject"`
	StudentSubjectID   *uuid.UUID  `json:"student_subject_id,omitempty"`
	StudentAddress     *string     `json:"student_address,omitempty"`
	StudentNotes       *string     `json:"student_notes,omitempty"`
	StudentIsActive    bool        `json:"student_is_active"`
	StudentGroupIDs    []uuid.UUID `json:"student_group_ids"`
	StudentCreatedAt   time.Time   `json:"student_created_at"`
	StudentUpdatedAt   time.Time   `json:"student_updated_at"`
}

// NewStudentResponse renders a student; groupIDs is the student's membership
// list derived from group_students (may be nil for list views that skip it).
func NewStudentResponse(s *m.StudentModel, groupIDs []uuid.UUID) *StudentResponse {
	if groupIDs == nil {
		groupIDs = []uuid.UUID{}
	}
	return &StudentResponse{
		StudentID:          s.StudentID,
		StudentName:        s.StudentName,
		StudentCode:        s.StudentCode,
		StudentPhone:       s.StudentPhone,
		StudentParentPhone: s.StudentParentPhone,
		StudentGrade:       s.StudentGrade,
		StudentSubject:     s.StudentSubject,
		StudentSubjectID:   s.StudentSubjectID,
		StudentAddress:     s.StudentAddress,
		StudentNotes:       s.StudentNotes,
		StudentIsActive:    s.StudentIsActive,
		StudentGroupIDs:    groupIDs,
		StudentCreatedAt:   s.StudentCreatedAt,
		StudentUpdatedAt:   s.StudentUpdatedAt,
	}
}

func NewStudentResponses(items []m.StudentModel, groupIDsByStudent map[uuid.UUID][]uuid.UUID) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(items))
	for i := range items {
		out = append(out, NewStudentResponse(&items[i], groupIDsByStudent[items[i].StudentID]))
	}
	return out
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}
