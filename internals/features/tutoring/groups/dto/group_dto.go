package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "mudarris_backend/internals/features/tutoring/groups/model"
	studentModel "mudarris_backend/internals/features/tutoring/students/model"
)

/* =========================================================
   Schedule slot payload (shared by create/update/replace)
========================================================= */

type ScheduleSlotRequest struct {
	GroupScheduleDay       string  `json:"group_schedule_day"        validate:"required,weekday"`
	GroupScheduleStartTime string  `json:"group_schedule_start_time" validate:"required,datetime=15:04"`
	GroupScheduleEndTime   string  `json:"group_schedule_end_time"   validate:"required,datetime=15:04"`
	GroupScheduleLocation  *string `json:"group_schedule_location"   validate:"omitempty,max=200"`
}

func (r *ScheduleSlotRequest) Normalize() {
	r.GroupScheduleDay = strings.TrimSpace(r.GroupScheduleDay)
	r.GroupScheduleStartTime = strings.TrimSpace(r.GroupScheduleStartTime)
	r.GroupScheduleEndTime = strings.TrimSpace(r.GroupScheduleEndTime)
	r.GroupScheduleLocation = trimPtr(r.GroupScheduleLocation)
}

// ToModel builds a slot; duration is derived, never taken from the client.
func (r ScheduleSlotRequest) ToModel(groupID uuid.UUID, groupLocation *string) m.GroupScheduleModel {
	location := r.GroupScheduleLocation
	if location == nil {
		// The group's own location is the suggested default for new slots.
		location = groupLocation
	}
	slot := m.GroupScheduleModel{
		GroupScheduleGroupID:   groupID,
		GroupScheduleDay:       r.GroupScheduleDay,
		GroupScheduleStartTime: r.GroupScheduleStartTime,
		GroupScheduleEndTime:   r.GroupScheduleEndTime,
		GroupScheduleLocation:  location,
	}
	slot.RecomputeDuration()
	return slot
}

type ReplaceScheduleRequest struct {
	Slots []ScheduleSlotRequest `json:"slots" validate:"required,min=1,dive"`
}

func (r *ReplaceScheduleRequest) Normalize() {
	for i := range r.Slots {
		r.Slots[i].Normalize()
	}
}

/* ----------------- CREATE REQUEST ----------------- */

type GroupCreateRequest struct {
	GroupName         string     `json:"group_name"          validate:"required,min=1,max=100"`
	GroupGrade        string     `json:"group_grade"         validate:"required,min=1,max=100"`
	GroupSubject      string     `json:"group_subject"       validate:"required,min=1,max=100"`
	GroupSubjectID    *uuid.UUID `json:"group_subject_id"`
	GroupDescription  *string    `json:"group_description"   validate:"omitempty,max=2000"`
	GroupMonthlyPrice int        `json:"group_monthly_price" validate:"min=0"`
	GroupMaxStudents  int        `json:"group_max_students"  validate:"required,min=1"`
	GroupLocation     *string    `json:"group_location"      validate:"omitempty,max=200"`
	GroupMaterials    []string   `json:"group_materials"`
	GroupRules        []string   `json:"group_rules"`
	GroupStartDate    *time.Time `json:"group_start_date"`
	GroupEndDate      *time.Time `json:"group_end_date"`

	// A group cannot exist without at least one weekly slot.
	Slots []ScheduleSlotRequest `json:"slots" validate:"required,min=1,dive"`
}

func (r *GroupCreateRequest) Normalize() {
	r.GroupName = strings.TrimSpace(r.GroupName)
	r.GroupGrade = strings.TrimSpace(r.GroupGrade)
	r.GroupSubject = strings.TrimSpace(r.GroupSubject)
	r.GroupDescription = trimPtr(r.GroupDescription)
	r.GroupLocation = trimPtr(r.GroupLocation)
	r.GroupMaterials = trimSlice(r.GroupMaterials)
	r.GroupRules = trimSlice(r.GroupRules)
	for i := range r.Slots {
		r.Slots[i].Normalize()
	}
}

func (r GroupCreateRequest) ToModel(teacherID uuid.UUID) *m.GroupModel {
	return &m.GroupModel{
		GroupTeacherID:    teacherID,
		GroupSubjectID:    r.GroupSubjectID,
		GroupName:         r.GroupName,
		GroupGrade:        r.GroupGrade,
		GroupSubject:      r.GroupSubject,
		GroupDescription:  r.GroupDescription,
		GroupMonthlyPrice: r.GroupMonthlyPrice,
		GroupMaxStudents:  r.GroupMaxStudents,
		GroupLocation:     r.GroupLocation,
		GroupMaterials:    pq.StringArray(r.GroupMaterials),
		GroupRules:        pq.StringArray(r.GroupRules),
		GroupStartDate:    r.GroupStartDate,
		GroupEndDate:      r.GroupEndDate,
		GroupIsActive:     true,
	}
}

/* ----------------- UPDATE REQUEST ----------------- */

type GroupUpdateRequest struct {
	GroupName         *string    `json:"group_name"          validate:"omitempty,min=1,max=100"`
	GroupGrade        *string    `json:"group_grade"         validate:"omitempty,min=1,max=100"`
	GroupSubject      *string    `json:"group_subject"       validate:"omitempty,min=1,max=100"`
	GroupSubjectID    *uuid.UUID `json:"group_subject_id"`
	GroupDescription  *string    `json:"group_description"   validate:"omitempty,max=2000"`
	GroupMonthlyPrice *int       `json:"group_monthly_price" validate:"omitempty,min=0"`
	GroupMaxStudents  *int       `json:"group_max_students"  validate:"omitempty,min=1"`
	GroupLocation     *string    `json:"group_location"      validate:"omitempty,max=200"`
	GroupMaterials    []string   `json:"group_materials"`
	GroupRules        []string   `json:"group_rules"`
	GroupStartDate    *time.Time `json:"group_start_date"`
	GroupEndDate      *time.Time `json:"group_end_date"`
	GroupIsActive     *bool      `json:"group_is_active"`
}

func (r *GroupUpdateRequest) Normalize() {
	r.GroupName = trimPtr(r.GroupName)
	r.GroupGrade = trimPtr(r.GroupGrade)
	r.GroupSubject = trimPtr(r.GroupSubject)
	r.GroupDescription = trimPtr(r.GroupDescription)
	r.GroupLocation = trimPtr(r.GroupLocation)
	r.GroupMaterials = trimSlice(r.GroupMaterials)
	r.GroupRules = trimSlice(r.GroupRules)
}

// Apply mutates the loaded group. The capacity guard runs in the controller
// before this is called.
func (r GroupUpdateRequest) Apply(g *m.GroupModel) {
	if r.GroupName != nil {
		g.GroupName = *r.GroupName
	}
	if r.GroupGrade != nil {
		g.GroupGrade = *r.GroupGrade
	}
	if r.GroupSubject != nil {
		g.GroupSubject = *r.GroupSubject
	}
	if r.GroupSubjectID != nil {
		g.GroupSubjectID = r.GroupSubjectID
	}
	if r.GroupDescription != nil {
		g.GroupDescription = r.GroupDescription
	}
	if r.GroupMonthlyPrice != nil {
		g.GroupMonthlyPrice = *r.GroupMonthlyPrice
	}
	if r.GroupMaxStudents != nil {
		g.GroupMaxStudents = *r.GroupMaxStudents
	}
	if r.GroupLocation != nil {
		g.GroupLocation = r.GroupLocation
	}
	if r.GroupMaterials != nil {
		g.GroupMaterials = pq.StringArray(r.GroupMaterials)
	}
	if r.GroupRules != nil {
		g.GroupRules = pq.StringArray(r.GroupRules)
	}
	if r.GroupStartDate != nil {
		g.GroupStartDate = r.GroupStartDate
	}
	if r.GroupEndDate != nil {
		g.GroupEndDate = r.GroupEndDate
	}
	if r.GroupIsActive != nil {
		g.GroupIsActive = *r.GroupIsActive
	}
}

/* ----------------- ENROLLMENT REQUESTS ----------------- */

type EnrollStudentsRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1"`
}

/* ----------------- RESPONSES ----------------- */

type ScheduleSlotResponse struct {
	GroupScheduleDay       string  `json:"group_schedule_day"`
	GroupScheduleStartTime string  `json:"group_schedule_start_time"`
	GroupScheduleEndTime   string  `json:"group_schedule_end_time"`
	GroupScheduleDuration  int     `json:"group_schedule_duration"`
	GroupScheduleLocation  *string `json:"group_schedule_location,omitempty"`
}

func NewScheduleSlotResponses(slots []m.GroupScheduleModel) []ScheduleSlotResponse {
	out := make([]ScheduleSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, ScheduleSlotResponse{
			GroupScheduleDay:       s.GroupScheduleDay,
			GroupScheduleStartTime: s.GroupScheduleStartTime,
			GroupScheduleEndTime:   s.GroupScheduleEndTime,
			GroupScheduleDuration:  s.GroupScheduleDuration,
			GroupScheduleLocation:  s.GroupScheduleLocation,
		})
	}
	return out
}

type GroupResponse struct {
	GroupID              uuid.UUID              `json:"group_id"`
	GroupSubjectID       *uuid.UUID             `json:"group_subject_id,omitempty"`
	GroupName            string                 `json:"group_name"`
	GroupGrade           string                 `json:"group_grade"`
	GroupSubject         string                 `json:"group_subject"`
	GroupDescription     *string                `json:"group_description,omitempty"`
	GroupMonthlyPrice    int                    `json:"group_monthly_price"`
	GroupMaxStudents     int                    `json:"group_max_students"`
	GroupCurrentStudents int                    `json:"group_current_students"`
	GroupFreeSeats       int                    `json:"group_free_seats"`
	GroupLocation        *string                `json:"group_location,omitempty"`
	GroupMaterials       []string               `json:"group_materials"`
	GroupRules           []string               `json:"group_rules"`
	GroupStartDate       *time.Time             `json:"group_start_date,omitempty"`
	GroupEndDate         *time.Time             `json:"group_end_date,omitempty"`
	GroupIsActive        bool                   `json:"group_is_active"`
	GroupSchedule        []ScheduleSlotResponse `json:"group_schedule,omitempty"`
	GroupCreatedAt       time.Time              `json:"group_created_at"`
	GroupUpdatedAt       time.Time              `json:"group_updated_at"`
}

func NewGroupResponse(g *m.GroupModel, slots []m.GroupScheduleModel) *GroupResponse {
	materials := []string(g.GroupMaterials)
	if materials == nil {
		materials = []string{}
	}
	rules := []string(g.GroupRules)
	if rules == nil {
		rules = []string{}
	}
	resp := &GroupResponse{
		GroupID:              g.GroupID,
		GroupSubjectID:       g.GroupSubjectID,
		GroupName:            g.GroupName,
		GroupGrade:           g.GroupGrade,
		GroupSubject:         g.GroupSubject,
		GroupDescription:     g.GroupDescription,
		GroupMonthlyPrice:    g.GroupMonthlyPrice,
		GroupMaxStudents:     g.GroupMaxStudents,
		GroupCurrentStudents: g.GroupCurrentStudents,
		GroupFreeSeats:       g.FreeSeats(),
		GroupLocation:        g.GroupLocation,
		GroupMaterials:       materials,
		GroupRules:           rules,
		GroupStartDate:       g.GroupStartDate,
		GroupEndDate:         g.GroupEndDate,
		GroupIsActive:        g.GroupIsActive,
		GroupCreatedAt:       g.GroupCreatedAt,
		GroupUpdatedAt:       g.GroupUpdatedAt,
	}
	if slots != nil {
		resp.GroupSchedule = NewScheduleSlotResponses(slots)
	}
	return resp
}

func NewGroupResponses(items []m.GroupModel) []*GroupResponse {
	out := make([]*GroupResponse, 0, len(items))
	for i := range items {
		out = append(out, NewGroupResponse(&items[i], nil))
	}
	return out
}

// CandidateResponse is the slim student shape offered by the picker.
type CandidateResponse struct {
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	StudentCode  string    `json:"student_code"`
	StudentPhone string    `json:"student_phone"`
}

func NewCandidateResponses(students []studentModel.StudentModel) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(students))
	for _, s := range students {
		out = append(out, CandidateResponse{
			StudentID:    s.StudentID,
			StudentName:  s.StudentName,
			StudentCode:  s.StudentCode,
			StudentPhone: s.StudentPhone,
		})
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

func trimSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
