package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "mudarris_backend/internals/features/tutoring/subjects/model"
)

/* ----------------- CREATE REQUEST ----------------- */

type SubjectCreateRequest struct {
	SubjectName        string  `json:"subject_name"        validate:"required,min=1,max=100"`
	SubjectGrade       string  `json:"subject_grade"       validate:"required,min=1,max=100"`
	SubjectDescription *string `json:"subject_description" validate:"omitempty,max=2000"`
}

func (r *SubjectCreateRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	r.SubjectGrade = strings.TrimSpace(r.SubjectGrade)
	r.SubjectDescription = trimPtr(r.SubjectDescription)
}

func (r SubjectCreateRequest) ToModel(teacherID uuid.UUID) *m.SubjectModel {
	return &m.SubjectModel{
		SubjectTeacherID:   teacherID,
		SubjectName:        r.SubjectName,
		SubjectGrade:       r.SubjectGrade,
		SubjectDescription: r.SubjectDescription,
		SubjectIsActive:    true,
	}
}

/* ----------------- UPDATE REQUEST ----------------- */

type SubjectUpdateRequest struct {
	SubjectName        *string `json:"subject_name"        validate:"omitempty,min=1,max=100"`
	SubjectGrade       *string `json:"subject_grade"       validate:"omitempty,min=1,max=100"`
	SubjectDescription *string `json:"subject_description" validate:"omitempty,max=2000"`
	SubjectIsActive    *bool   `json:"subject_is_active"`
}

func (r *SubjectUpdateRequest) Normalize() {
	r.SubjectName = trimPtr(r.SubjectName)
	r.SubjectGrade = trimPtr(r.SubjectGrade)
	r.SubjectDescription = trimPtr(r.SubjectDescription)
}

func (r SubjectUpdateRequest) Apply(s *m.SubjectModel) {
	if r.SubjectName != nil {
		s.SubjectName = *r.SubjectName
	}
	if r.SubjectGrade != nil {
		s.SubjectGrade = *r.SubjectGrade
	}
	if r.SubjectDescription != nil {
		s.SubjectDescription = r.SubjectDescription
	}
	if r.SubjectIsActive != nil {
		s.SubjectIsActive = *r.SubjectIsActive
	}
}

/* ----------------- RESPONSE ----------------- */

type SubjectResponse struct {
	SubjectID          uuid.UUID `json:"subject_id"`
	SubjectName        string    `json:"subject_name"`
	SubjectGrade       string    `json:"subject_grade"`
	SubjectDescription *string   `json:"subject_description,omitempty"`
	SubjectIsActive    bool      `json:"subject_is_active"`
	SubjectCreatedAt   time.Time `json:"subject_created_at"`
	SubjectUpdatedAt   time.Time `json:"subject_updated_at"`
}

func NewSubjectResponse(s *m.SubjectModel) *SubjectResponse {
	return &SubjectResponse{
		SubjectID:          s.SubjectID,
		SubjectName:        s.SubjectName,
		SubjectGrade:       s.SubjectGrade,
		SubjectDescription: s.SubjectDescription,
		SubjectIsActive:    s.SubjectIsActive,
		SubjectCreatedAt:   s.SubjectCreatedAt,
		SubjectUpdatedAt:   s.SubjectUpdatedAt,
	}
}

func NewSubjectResponses(items []m.SubjectModel) []*SubjectResponse {
	out := make([]*SubjectResponse, 0, len(items))
	for i := range items {
		out = append(out, NewSubjectResponse(&items[i]))
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
