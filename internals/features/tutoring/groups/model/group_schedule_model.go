package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mudarris_backend/internals/constants"
)

// GroupScheduleModel is one weekly recurring time window owned by a group.
// Slots have no identity across edits: saving a group's schedule deletes and
// reinserts the whole set.
type GroupScheduleModel struct {
	GroupScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_schedule_id" json:"group_schedule_id"`

	GroupScheduleGroupID uuid.UUID `gorm:"type:uuid;not null;column:group_schedule_group_id;index:idx_group_schedules_group" json:"group_schedule_group_id"`

	GroupScheduleDay       string  `gorm:"size:20;not null;column:group_schedule_day" json:"group_schedule_day"`
	GroupScheduleStartTime string  `gorm:"size:5;not null;column:group_schedule_start_time" json:"group_schedule_start_time"` // "HH:MM"
	GroupScheduleEndTime   string  `gorm:"size:5;not null;column:group_schedule_end_time" json:"group_schedule_end_time"`     // "HH:MM"
	GroupScheduleDuration  int     `gorm:"not null;default:60;column:group_schedule_duration" json:"group_schedule_duration"` // minutes
	GroupScheduleLocation  *string `gorm:"size:200;column:group_schedule_location" json:"group_schedule_location,omitempty"`

	GroupScheduleCreatedAt time.Time `gorm:"column:group_schedule_created_at;autoCreateTime" json:"group_schedule_created_at"`
}

func (GroupScheduleModel) TableName() string { return "group_schedules" }

// MinutesOfDay parses "HH:MM" into minutes since midnight.
func MinutesOfDay(hhmm string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return h*60 + m, nil
}

// ComputeDuration derives the slot length in minutes from start/end on a
// same-day basis. End at or before start (including a window meant to cross
// midnight, which the model does not support) falls back to the default.
func ComputeDuration(startTime, endTime string) int {
	start, err1 := MinutesOfDay(startTime)
	end, err2 := MinutesOfDay(endTime)
	if err1 != nil || err2 != nil {
		return constants.DefaultSlotDuration
	}
	d := end - start
	if d <= 0 {
		return constants.DefaultSlotDuration
	}
	return d
}

// RecomputeDuration rederives the duration from the slot's own endpoints.
// Called whenever either endpoint changes.
func (s *GroupScheduleModel) RecomputeDuration() {
	s.GroupScheduleDuration = ComputeDuration(s.GroupScheduleStartTime, s.GroupScheduleEndTime)
}

// ensureConsistency mirrors the CHECK constraints on group_schedules.
func (s *GroupScheduleModel) ensureConsistency() error {
	if !constants.IsWeekDay(s.GroupScheduleDay) {
		return fmt.Errorf("group_schedule_day %q is not a valid day label", s.GroupScheduleDay)
	}
	if _, err := MinutesOfDay(s.GroupScheduleStartTime); err != nil {
		return err
	}
	if _, err := MinutesOfDay(s.GroupScheduleEndTime); err != nil {
		return err
	}
	if s.GroupScheduleDuration <= 0 {
		s.GroupScheduleDuration = constants.DefaultSlotDuration
	}
	return nil
}

func (s *GroupScheduleModel) BeforeCreate(tx *gorm.DB) error { return s.ensureConsistency() }
func (s *GroupScheduleModel) BeforeUpdate(tx *gorm.DB) error { return s.ensureConsistency() }
