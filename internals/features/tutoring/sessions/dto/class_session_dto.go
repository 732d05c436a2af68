package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "mudarris_backend/internals/features/tutoring/sessions/model"
)

/* ----------------- CREATE REQUEST ----------------- */

type SessionCreateRequest struct {
	ClassSessionGroupID   uuid.UUID `json:"class_session_group_id" validate:"required"`
	ClassSessionDate      string    `json:"class_session_date"       validate:"required,datetime=2006-01-02"`
	ClassSessionStartTime string    `json:"class_session_start_time" validate:"required,datetime=15:04"`
	ClassSessionEndTime   string    `json:"class_session_end_time"   validate:"required,datetime=15:04"`
	ClassSessionTopic     *string   `json:"class_session_topic"      validate:"omitempty,max=200"`
	ClassSessionNotes     *string   `json:"class_session_notes"      validate:"omitempty,max=2000"`
}

func (r *SessionCreateRequest) Normalize() {
	r.ClassSessionDate = strings.TrimSpace(r.ClassSessionDate)
	r.ClassSessionStartTime = strings.TrimSpace(r.ClassSessionStartTime)
	r.ClassSessionEndTime = strings.TrimSpace(r.ClassSessionEndTime)
	r.ClassSessionTopic = trimPtr(r.ClassSessionTopic)
	r.ClassSessionNotes = trimPtr(r.ClassSessionNotes)
}

func (r SessionCreateRequest) ToModel(teacherID uuid.UUID) (*m.ClassSessionModel, error) {
	date, err := time.Parse("2006-01-02", r.ClassSessionDate)
	if err != nil {
		return nil, err
	}
	return &m.ClassSessionModel{
		ClassSessionTeacherID: teacherID,
		ClassSessionGroupID:   r.ClassSessionGroupID,
		ClassSessionDate:      date,
		ClassSessionStartTime: r.ClassSessionStartTime,
		ClassSessionEndTime:   r.ClassSessionEndTime,
		ClassSessionStatus:    m.SessionStatusScheduled,
		ClassSessionTopic:     r.ClassSessionTopic,
		ClassSessionNotes:     r.ClassSessionNotes,
	}, nil
}

/* ----------------- UPDATE REQUEST ----------------- */

type SessionUpdateRequest struct {
	ClassSessionDate            *string `json:"class_session_date"             validate:"omitempty,datetime=2006-01-02"`
	ClassSessionStartTime       *string `json:"class_session_start_time"       validate:"omitempty,datetime=15:04"`
	ClassSessionEndTime         *string `json:"class_session_end_time"         validate:"omitempty,datetime=15:04"`
	ClassSessionStatus          *string `json:"class_session_status"           validate:"omitempty,oneof=scheduled completed cancelled"`
	ClassSessionTopic           *string `json:"class_session_topic"            validate:"omitempty,max=200"`
	ClassSessionAttendanceCount *int    `json:"class_session_attendance_count" validate:"omitempty,min=0"`
	ClassSessionNotes           *string `json:"class_session_notes"            validate:"omitempty,max=2000"`
}

func (r *SessionUpdateRequest) Normalize() {
	r.ClassSessionDate = trimPtr(r.ClassSessionDate)
	r.ClassSessionStartTime = trimPtr(r.ClassSessionStartTime)
	r.ClassSessionEndTime = trimPtr(r.ClassSessionEndTime)
	r.ClassSessionStatus = trimPtr(r.ClassSessionStatus)
	r.ClassSessionTopic = trimPtr(r.ClassSessionTopic)
	r.ClassSessionNotes = trimPtr(r.ClassSessionNotes)
}

func (r SessionUpdateRequest) Apply(s *m.ClassSessionModel) error {
	if r.ClassSessionDate != nil {
		date, err := time.Parse("2006-01-02", *r.ClassSessionDate)
		if err != nil {
			return err
		}
		s.ClassSessionDate = date
	}
	if r.ClassSessionStartTime != nil {
		s.ClassSessionStartTime = *r.ClassSessionStartTime
	}
	if r.ClassSessionEndTime != nil {
		s.ClassSessionEndTime = *r.ClassSessionEndTime
	}
	if r.ClassSessionStatus != nil {
		s.ClassSessionStatus = *r.ClassSessionStatus
	}
	if r.ClassSessionTopic != nil {
		s.ClassSessionTopic = r.ClassSessionTopic
	}
	if r.ClassSessionAttendanceCount != nil {
		s.ClassSessionAttendanceCount = *r.ClassSessionAttendanceCount
	}
	if r.ClassSessionNotes != nil {
		s.ClassSessionNotes = r.ClassSessionNotes
	}
	return nil
}

/* ----------------- RESPONSE ----------------- */

type SessionResponse struct {
	ClassSessionID              uuid.UUID `json:"class_session_id"`
	ClassSessionGroupID         uuid.UUID `json:"class_session_group_id"`
	ClassSessionDate            string    `json:"class_session_date"`
	ClassSessionStartTime       string    `json:"class_session_start_time"`
	ClassSessionEndTime         string    `json:"class_session_end_time"`
	ClassSessionStatus          string    `json:"class_session_status"`
	ClassSessionTopic           *string   `json:"class_session_topic,omitempty"`
	ClassSessionAttendanceCount int       `json:"class_session_attendance_count"`
	ClassSessionNotes           *string   `json:"class_session_notes,omitempty"`
	ClassSessionCreatedAt       time.Time `json:"class_session_created_at"`
	ClassSessionUpdatedAt       time.Time `json:"class_session_updated_at"`
}

func NewSessionResponse(s *m.ClassSessionModel) *SessionResponse {
	return &SessionResponse{
		ClassSessionID:              s.ClassSessionID,
		ClassSessionGroupID:         s.ClassSessionGroupID,
		ClassSessionDate:            s.ClassSessionDate.Format("2006-01-02"),
		ClassSessionStartTime:       s.ClassSessionStartTime,
		ClassSessionEndTime:         s.ClassSessionEndTime,
		ClassSessionStatus:          s.ClassSessionStatus,
		ClassSessionTopic:           s.ClassSessionTopic,
		ClassSessionAttendanceCount: s.ClassSessionAttendanceCount,
		ClassSessionNotes:           s.ClassSessionNotes,
		ClassSessionCreatedAt:       s.ClassSessionCreatedAt,
		ClassSessionUpdatedAt:       s.ClassSessionUpdatedAt,
	}
}

func NewSessionResponses(items []m.ClassSessionModel) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(items))
	for i := range items {
		out = append(out, NewSessionResponse(&items[i]))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
